package lexer

import (
	"fmt"

	"github.com/mylang-lang/mylang/internal/diag"
)

// TokenType is the lexical category of a token.
type TokenType string

// Token type constants. The names double as the display names used in
// the token stream report, so both scanner variants print identically.
const (
	KEYWORD    TokenType = "KEYWORD"
	IDENTIFIER TokenType = "IDENTIFIER"

	INT_LITERAL    TokenType = "INT_LITERAL"
	FLOAT_LITERAL  TokenType = "FLOAT_LITERAL"
	STRING_LITERAL TokenType = "STRING_LITERAL"
	CHAR_LITERAL   TokenType = "CHAR_LITERAL"
	BOOL_LITERAL   TokenType = "BOOL_LITERAL"

	// Operators, split by family. Separate buckets keep the statistics
	// report readable and make the unary-sign rule cheap to check.
	OP_ARITHMETIC TokenType = "OP_ARITHMETIC" // + - * / % **
	OP_RELATIONAL TokenType = "OP_RELATIONAL" // == != <= >= < >
	OP_LOGICAL    TokenType = "OP_LOGICAL"    // && || !
	OP_ASSIGNMENT TokenType = "OP_ASSIGNMENT" // = += -= *= /=
	OP_INCDEC     TokenType = "OP_INCDEC"     // ++ --

	PUNCTUATOR TokenType = "PUNCTUATOR" // ( ) { } [ ] , ; :

	// Trivia. Skipped by default, emitted only in trivia mode.
	COMMENT    TokenType = "COMMENT"
	WHITESPACE TokenType = "WHITESPACE"

	END_OF_INPUT TokenType = "END_OF_INPUT"
	ERROR        TokenType = "ERROR"
)

// Categories lists every token type in a fixed order. The statistics
// report iterates it so per-category counts print deterministically.
var Categories = []TokenType{
	KEYWORD,
	IDENTIFIER,
	INT_LITERAL,
	FLOAT_LITERAL,
	STRING_LITERAL,
	CHAR_LITERAL,
	BOOL_LITERAL,
	OP_ARITHMETIC,
	OP_RELATIONAL,
	OP_LOGICAL,
	OP_ASSIGNMENT,
	OP_INCDEC,
	PUNCTUATOR,
	COMMENT,
	WHITESPACE,
	END_OF_INPUT,
	ERROR,
}

// Emittable reports whether tokens of this type belong in the
// user-visible token stream. Comments, whitespace and error spans are
// counted but never displayed as tokens.
func (t TokenType) Emittable() bool {
	switch t {
	case COMMENT, WHITESPACE, ERROR:
		return false
	}
	return true
}

// Token is an immutable lexical token: category, exact source text, and
// the 1-based position of the first character of the lexeme.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

// IsIdentifier reports whether the token should be fed to the symbol table.
func (t Token) IsIdentifier() bool {
	return t.Type == IDENTIFIER
}

// String renders the token in the report format:
//
//	<KEYWORD, "start", Line: 1, Col: 1>
//
// Control characters in the lexeme are escaped so a token always prints
// on one line.
func (t Token) String() string {
	return fmt.Sprintf("<%s, \"%s\", Line: %d, Col: %d>",
		t.Type, diag.Escape(t.Lexeme), t.Line, t.Column)
}

// keywords is the fixed keyword vocabulary. Keywords are lowercase,
// case-sensitive exact matches.
var keywords = map[string]bool{
	"start":     true,
	"finish":    true,
	"loop":      true,
	"condition": true,
	"declare":   true,
	"output":    true,
	"input":     true,
	"function":  true,
	"return":    true,
	"break":     true,
	"continue":  true,
	"else":      true,
}

var booleanLiterals = map[string]bool{
	"true":  true,
	"false": true,
}

// IsKeyword reports whether word is in the keyword vocabulary.
func IsKeyword(word string) bool { return keywords[word] }

// IsBooleanLiteral reports whether word is a boolean literal.
func IsBooleanLiteral(word string) bool { return booleanLiterals[word] }

// LookupWord classifies a lowercase-alphabetic run. ok is false when the
// word is neither a keyword nor a boolean literal, in which case the run
// is an invalid identifier (identifiers must start with A-Z).
func LookupWord(word string) (tt TokenType, ok bool) {
	if keywords[word] {
		return KEYWORD, true
	}
	if booleanLiterals[word] {
		return BOOL_LITERAL, true
	}
	return "", false
}
