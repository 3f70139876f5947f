package config

import (
	"fmt"
	"runtime"
	"strings"
)

type stack *[]uintptr

// getCurrentStack creates a new stack without the last three frames, because they are from the internal calls (e.g. to
// this function) and therefore irrelevant to the function creating the error.
func getCurrentStack() stack {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	var st = pcs[0:n]
	return &st
}

func getPrintableStackTrace(stack stack) string {
	var sb strings.Builder

	for _, pc := range *stack {
		f := runtime.FuncForPC(pc)
		file, line := f.FileLine(pc)
		sb.WriteString(fmt.Sprintf("%s\n\t%s:%d\n", f.Name(), file, line))
	}

	return sb.String()
}

// ExpectedButFoundError models a typical "Expected foo but found bar" kind of error.
type ExpectedButFoundError struct {
	Message         string    `json:"message"`
	Position        int       `json:"position"`
	CurrentLexeme   string    `json:"current-lexeme"`
	CurrentKind     TokenKind `json:"current-kind"`
	ExpectedMessage string    `json:"expected-message"`
	stack           stack
}

func errorExpectedButFound(expectedMessage string, position int, currentLexeme string, currentKind TokenKind) *ExpectedButFoundError {
	return &ExpectedButFoundError{
		Message:         fmt.Sprintf("Parsing error: Expected %s at position %d but found '%s' of kind %s.", expectedMessage, position, currentLexeme, currentKind.String()),
		Position:        position,
		CurrentLexeme:   currentLexeme,
		CurrentKind:     currentKind,
		ExpectedMessage: expectedMessage,
		stack:           getCurrentStack(),
	}
}

func (e *ExpectedButFoundError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		fmt.Fprintf(s, "%s\n%s", e.Error(), getPrintableStackTrace(e.stack))
	case 's':
		fmt.Fprintf(s, "%s", e.Error())
	}
}

func (e *ExpectedButFoundError) Error() string {
	return e.Message
}

// TokenStreamEndedError is returned when the fragment ended even though further tokens were needed.
type TokenStreamEndedError struct {
	Message         string `json:"message"`
	Position        int    `json:"position"`
	ExpectedMessage string `json:"expected-message"`
	stack           stack
}

func errorTokenStreamEnded(position int, expectedMessage string) *TokenStreamEndedError {
	return &TokenStreamEndedError{
		Message:         fmt.Sprintf("Parsing error: Token stream ended at position %d, expected %s.", position, expectedMessage),
		Position:        position,
		ExpectedMessage: expectedMessage,
		stack:           getCurrentStack(),
	}
}

func (e *TokenStreamEndedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		fmt.Fprintf(s, "%s\n%s", e.Error(), getPrintableStackTrace(e.stack))
	case 's':
		fmt.Fprintf(s, "%s", e.Error())
	}
}

func (e *TokenStreamEndedError) Error() string {
	return e.Message
}
