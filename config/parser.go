package config

import (
	"github.com/hauke96/sigolo/v2"
	"strings"
)

// Parse turns a fragment like "cell_size=0.5;culling_technique=crop" into a Config. Entries are separated by ';' and
// a trailing separator is allowed. Values are keywords, numbers or quoted strings. When a key appears multiple times,
// the last entry wins.
func Parse(fragment string) (*Config, error) {
	fragment = strings.TrimSpace(fragment)

	lexer := &Lexer{
		input: []rune(fragment),
		index: 0,
	}
	token, err := lexer.read()
	if err != nil {
		return nil, err
	}

	sigolo.Tracef("Found %d token in fragment '%s'", len(token), fragment)

	parser := &Parser{
		token: token,
		index: 0,
	}
	return parser.parse()
}

type Parser struct {
	token []*Token
	index int
}

func (p *Parser) currentToken() *Token {
	if p.index >= len(p.token) {
		return nil
	}
	return p.token[p.index]
}

func (p *Parser) moveToNextToken() *Token {
	p.index++
	return p.currentToken()
}

// getNextTokenStartPosition returns the position directly after the current token. When the token stream already
// ended, the position after the last token is returned.
func (p *Parser) getNextTokenStartPosition() int {
	currentToken := p.currentToken()
	if currentToken != nil {
		return currentToken.startPosition + len(currentToken.lexeme)
	}
	if len(p.token) != 0 {
		lastToken := p.token[len(p.token)-1]
		return lastToken.startPosition + len(lastToken.lexeme)
	}
	return 0
}

func (p *Parser) parse() (*Config, error) {
	conf := New()

	for p.currentToken() != nil {
		err := p.parseEntry(conf)
		if err != nil {
			return nil, err
		}

		separatorToken := p.currentToken()
		if separatorToken == nil {
			break
		}
		if separatorToken.kind != TokenKindEntrySeparator {
			return nil, errorExpectedButFound("'"+entrySeparator+"'", separatorToken.startPosition, separatorToken.lexeme, separatorToken.kind)
		}
		p.moveToNextToken()
	}

	return conf, nil
}

func (p *Parser) parseEntry(conf *Config) error {
	keyToken := p.currentToken()
	if keyToken.kind != TokenKindKeyword {
		return errorExpectedButFound("a key", keyToken.startPosition, keyToken.lexeme, keyToken.kind)
	}

	assignmentToken := p.moveToNextToken()
	if assignmentToken == nil {
		return errorTokenStreamEnded(p.getNextTokenStartPosition(), "'"+assignmentOperator+"'")
	}
	if assignmentToken.kind != TokenKindAssignment {
		return errorExpectedButFound("'"+assignmentOperator+"'", assignmentToken.startPosition, assignmentToken.lexeme, assignmentToken.kind)
	}

	valueToken := p.moveToNextToken()
	if valueToken == nil {
		return errorTokenStreamEnded(p.getNextTokenStartPosition(), "a value")
	}
	switch valueToken.kind {
	case TokenKindKeyword, TokenKindNumber, TokenKindString:
		conf.Set(keyToken.lexeme, valueToken.lexeme)
	default:
		return errorExpectedButFound("a value", valueToken.startPosition, valueToken.lexeme, valueToken.kind)
	}

	p.moveToNextToken()
	return nil
}
