package config

import (
	"fgrid/util"
	"github.com/hauke96/sigolo/v2"
	"testing"
)

func TestParser_currentAndNextToken(t *testing.T) {
	// Arrange
	parser := &Parser{
		token: []*Token{
			{kind: TokenKindKeyword, lexeme: "cell_size", startPosition: 0},
			{kind: TokenKindAssignment, lexeme: "=", startPosition: 9},
		},
		index: 0,
	}

	// Act & Assert
	token := parser.currentToken()
	util.AssertEqual(t, parser.token[0], token)

	token = parser.moveToNextToken()
	util.AssertEqual(t, parser.token[1], token)

	token = parser.moveToNextToken()
	util.AssertNil(t, token)
	util.AssertEqual(t, 10, parser.getNextTokenStartPosition())
}

func TestParser_parse_singleEntry(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	conf, err := Parse("cell_size=0.5")

	// Assert
	util.AssertNil(t, err)
	util.AssertNotNil(t, conf)
	util.AssertEqual(t, []string{"cell_size"}, conf.Keys())
	util.AssertEqual(t, "0.5", conf.Get("cell_size", ""))
}

func TestParser_parse_multipleEntries(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	conf, err := Parse("cell_size=0.5;culling_technique=crop;spatialize_groups=false;")

	// Assert
	util.AssertNil(t, err)
	util.AssertNotNil(t, conf)
	util.AssertEqual(t, []string{"cell_size", "culling_technique", "spatialize_groups"}, conf.Keys())
	util.AssertEqual(t, "0.5", conf.Get("cell_size", ""))
	util.AssertEqual(t, "crop", conf.Get("culling_technique", ""))
	util.AssertEqual(t, "false", conf.Get("spatialize_groups", ""))
}

func TestParser_parse_quotedValue(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	conf, err := Parse("name=\"hello world\"")

	// Assert
	util.AssertNil(t, err)
	util.AssertNotNil(t, conf)
	util.AssertEqual(t, "hello world", conf.Get("name", ""))
}

func TestParser_parse_lastEntryWins(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	conf, err := Parse("a=1;a=2")

	// Assert
	util.AssertNil(t, err)
	util.AssertNotNil(t, conf)
	util.AssertEqual(t, []string{"a"}, conf.Keys())
	util.AssertEqual(t, "2", conf.Get("a", ""))
}

func TestParser_parse_emptyFragment(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	conf, err := Parse("   ")

	// Assert
	util.AssertNil(t, err)
	util.AssertNotNil(t, conf)
	util.AssertEqual(t, 0, len(conf.Keys()))
}

func TestParser_parse_missingValueReturnsError(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	conf, err := Parse("a=")

	// Assert
	util.AssertNotNil(t, err)
	util.AssertNil(t, conf)
	util.AssertError(t, "Parsing error: Token stream ended at position 2, expected a value.", err)
}

func TestParser_parse_missingAssignmentReturnsError(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	conf, err := Parse("a;b=1")

	// Assert
	util.AssertNotNil(t, err)
	util.AssertNil(t, conf)
	util.AssertError(t, "Parsing error: Expected '=' at position 1 but found ';' of kind TokenKindEntrySeparator.", err)
}

func TestParser_parse_missingSeparatorReturnsError(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	conf, err := Parse("a=1 b=2")

	// Assert
	util.AssertNotNil(t, err)
	util.AssertNil(t, conf)
	util.AssertError(t, "Parsing error: Expected ';' at position 4 but found 'b' of kind TokenKindKeyword.", err)
}

func TestParser_parse_invalidKeyReturnsError(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	conf, err := Parse("1=2")

	// Assert
	util.AssertNotNil(t, err)
	util.AssertNil(t, conf)
	util.AssertError(t, "Parsing error: Expected a key at position 0 but found '1' of kind TokenKindNumber.", err)
}
