package config

import (
	"fmt"
)

type TokenKind int

const (
	TokenKindUnknown TokenKind = iota

	TokenKindKeyword
	TokenKindNumber
	TokenKindString

	TokenKindAssignment
	TokenKindEntrySeparator
)

var (
	assignmentOperator = "="
	entrySeparator     = ";"
	stringDelimiter    = "\""
)

func (k TokenKind) String() string {
	switch k {
	case TokenKindUnknown:
		return "TokenKindUnknown"
	case TokenKindKeyword:
		return "TokenKindKeyword"
	case TokenKindNumber:
		return "TokenKindNumber"
	case TokenKindString:
		return "TokenKindString"
	case TokenKindAssignment:
		return "TokenKindAssignment"
	case TokenKindEntrySeparator:
		return "TokenKindEntrySeparator"
	}
	return fmt.Sprintf("!! INVALID TOKEN KIND %d !!", k)
}

func (k TokenKind) Lexeme() string {
	switch k {
	case TokenKindUnknown:
		return "UNKNOWN"
	case TokenKindKeyword:
		return "keyword"
	case TokenKindNumber:
		return "number"
	case TokenKindString:
		return "string"
	case TokenKindAssignment:
		return assignmentOperator
	case TokenKindEntrySeparator:
		return entrySeparator
	}
	return fmt.Sprintf("!! INVALID TOKEN KIND %d !!", k)
}

type Token struct {
	kind          TokenKind
	lexeme        string
	startPosition int
}
