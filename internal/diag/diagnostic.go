package diag

import (
	"fmt"
	"strings"
)

// Kind categorizes a lexical error. Both scanner variants report through
// the same kinds so their error output stays byte-identical.
type Kind string

const (
	InvalidCharacter         Kind = "INVALID_CHARACTER"
	InvalidIdentifier        Kind = "INVALID_IDENTIFIER"
	MalformedLiteral         Kind = "MALFORMED_LITERAL"
	UnclosedMultilineComment Kind = "UNCLOSED_MULTILINE_COMMENT"
)

// Diagnostic is a single lexical error. Immutable after creation;
// position is the 1-based line/column of the offending span's first
// character.
type Diagnostic struct {
	Kind   Kind
	Line   int
	Column int
	Lexeme string // offending source text, raw
	Reason string
}

// String renders the diagnostic on one line:
//
//	ERROR [MALFORMED_LITERAL] Line 3, Col 7 | Lexeme="1.2345678" | Reason=Too many decimal digits (max 6)
func (d Diagnostic) String() string {
	return fmt.Sprintf("ERROR [%s] Line %d, Col %d | Lexeme=\"%s\" | Reason=%s",
		d.Kind, d.Line, d.Column, Escape(d.Lexeme), d.Reason)
}

// escaper rewrites the control characters that would break one-line
// rendering. Backslash is included so escaped output stays unambiguous.
var escaper = strings.NewReplacer(
	"\\", "\\\\",
	"\"", "\\\"",
	"\n", "\\n",
	"\t", "\\t",
	"\r", "\\r",
)

// Escape returns s with backslashes, quotes and control characters
// escaped for single-line display.
func Escape(s string) string {
	return escaper.Replace(s)
}
