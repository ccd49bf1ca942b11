package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mylang-lang/mylang/internal/lexer"
)

func TestScanRoutesAllEvents(t *testing.T) {
	source := "declare X = 10;\noutput X; ## done\n@"

	r := Scan(source)

	// 8 source tokens plus the terminal END_OF_INPUT.
	require.Len(t, r.Tokens, 9)
	assert.Equal(t, lexer.KEYWORD, r.Tokens[0].Type)
	assert.Equal(t, "declare", r.Tokens[0].Lexeme)
	assert.Equal(t, lexer.END_OF_INPUT, r.Tokens[8].Type)

	e, ok := r.Table.Lookup("X")
	require.True(t, ok)
	assert.Equal(t, 2, e.Frequency)
	assert.Equal(t, 1, e.FirstLine)
	assert.Equal(t, 9, e.FirstColumn)

	assert.Equal(t, 9, r.Stats.TotalTokens())
	assert.Equal(t, 1, r.Stats.CommentsRemoved())
	assert.Equal(t, 3, r.Stats.LinesProcessed())
	assert.Equal(t, 1, r.Stats.Count(lexer.ERROR))

	require.Equal(t, 1, r.Reporter.Count())
	d := r.Reporter.Diagnostics()[0]
	assert.Equal(t, "@", d.Lexeme)
	assert.Equal(t, 3, d.Line)
	assert.Equal(t, 1, d.Column)
}

func TestScanEmptySource(t *testing.T) {
	r := Scan("")

	require.Len(t, r.Tokens, 1)
	assert.Equal(t, lexer.END_OF_INPUT, r.Tokens[0].Type)
	assert.Equal(t, 0, r.Table.Len())
	assert.False(t, r.Reporter.HasErrors())
	assert.Equal(t, 1, r.Stats.LinesProcessed())
}

func TestScanMalformedOnlyInputStillReports(t *testing.T) {
	r := Scan("@ $ foo 'ab'")

	require.Len(t, r.Tokens, 1, "only the terminal token survives")
	assert.Equal(t, 4, r.Reporter.Count())
	assert.Equal(t, 4, r.Stats.Count(lexer.ERROR))
}

func TestFormatTokens(t *testing.T) {
	r := Scan("X;")

	want := "TOKENS\n" +
		"------\n" +
		"<IDENTIFIER, \"X\", Line: 1, Col: 1>\n" +
		"<PUNCTUATOR, \";\", Line: 1, Col: 2>\n" +
		"<END_OF_INPUT, \"\", Line: 1, Col: 3>\n"
	assert.Equal(t, want, r.FormatTokens())
}

func TestFormatSectionOrder(t *testing.T) {
	out := Scan("declare X = 1;").Format()

	iTokens := strings.Index(out, "TOKENS\n")
	iTable := strings.Index(out, "SYMBOL TABLE (Identifiers)\n")
	iStats := strings.Index(out, "STATISTICS\n")
	iErrors := strings.Index(out, "ERRORS\n")

	require.NotEqual(t, -1, iTokens)
	require.NotEqual(t, -1, iTable)
	require.NotEqual(t, -1, iStats)
	require.NotEqual(t, -1, iErrors)
	assert.True(t, iTokens < iTable && iTable < iStats && iStats < iErrors,
		"sections out of order:\n%s", out)
}

func TestFormatCleanScanSaysNoErrors(t *testing.T) {
	out := Scan("output X;").Format()
	assert.Contains(t, out, "No lexical errors.")
}

func TestFormatErrorsRendered(t *testing.T) {
	out := Scan("1.2345678").Format()
	assert.Contains(t, out,
		`ERROR [MALFORMED_LITERAL] Line 1, Col 1 | Lexeme="1.2345678" | Reason=Too many decimal digits (max 6)`)
	assert.NotContains(t, out, "No lexical errors.")
}
