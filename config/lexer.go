package config

import (
	"fgrid/util"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"unicode"
)

var (
	keywordChars = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_")
	numberChars  = []rune("0123456789.-")
)

type Lexer struct {
	input []rune
	index int // Position in the input, i.e. the position of the current char.
}

func (l *Lexer) char() rune {
	if l.index >= len(l.input) {
		return -1
	}
	return l.input[l.index]
}

func (l *Lexer) read() ([]*Token, error) {
	var tokens []*Token

	for {
		token, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		if token == nil {
			break
		}

		l.tracef("Found token kind=%s, lexeme='%s'", token.kind.String(), token.lexeme)
		tokens = append(tokens, token)
	}

	return tokens, nil
}

// nextToken reads the token starting at the current index. A nil token without an error means the input has ended.
func (l *Lexer) nextToken() (*Token, error) {
	for unicode.IsSpace(l.char()) {
		l.index++
	}
	if l.char() == -1 {
		return nil, nil
	}

	char := l.char()

	switch char {
	case '=':
		return l.currentSingleCharToken(TokenKindAssignment), nil
	case ';':
		return l.currentSingleCharToken(TokenKindEntrySeparator), nil
	case '"':
		return l.currentString()
	}

	if util.Contains(keywordChars, char) {
		return l.currentKeyword(), nil
	}
	if util.Contains(numberChars, char) {
		return l.currentNumber(), nil
	}

	return nil, errors.Errorf("Unexpected character '%c' at position %d", char, l.index)
}

func (l *Lexer) currentSingleCharToken(kind TokenKind) *Token {
	token := &Token{
		kind:          kind,
		lexeme:        string(l.char()),
		startPosition: l.index,
	}
	l.index++
	return token
}

// currentKeyword reads a keyword at the current index. The first char must be a letter or underscore, all further
// chars may also be digits.
func (l *Lexer) currentKeyword() *Token {
	startIndex := l.index

	for l.char() != -1 && (util.Contains(keywordChars, l.char()) || unicode.IsDigit(l.char())) {
		l.index++
	}

	return &Token{
		kind:          TokenKindKeyword,
		lexeme:        string(l.input[startIndex:l.index]),
		startPosition: startIndex,
	}
}

func (l *Lexer) currentNumber() *Token {
	startIndex := l.index

	for l.char() != -1 && util.Contains(numberChars, l.char()) {
		l.index++
	}

	return &Token{
		kind:          TokenKindNumber,
		lexeme:        string(l.input[startIndex:l.index]),
		startPosition: startIndex,
	}
}

// currentString reads a quoted string at the current index. The quotes are not part of the resulting lexeme, escaping
// quotes within a string is not supported.
func (l *Lexer) currentString() (*Token, error) {
	startIndex := l.index

	// Skip the opening quote
	l.index++

	for l.char() != -1 && l.char() != '"' {
		l.index++
	}

	if l.char() == -1 {
		return nil, errors.Errorf("Unterminated string starting at position %d", startIndex)
	}

	// Skip the closing quote
	l.index++

	return &Token{
		kind:          TokenKindString,
		lexeme:        string(l.input[startIndex+1 : l.index-1]),
		startPosition: startIndex,
	}, nil
}

func (l *Lexer) tracef(format string, args ...interface{}) {
	if sigolo.ShouldLogTrace() {
		sigolo.Traceb(1, format, args...)
	}
}
