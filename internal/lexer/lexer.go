package lexer

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/mylang-lang/mylang/internal/diag"
)

// tracer traces with key 'mylang.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("mylang.lexer")
}

// ErrorKind identifies the class of a lexical error.
type ErrorKind int

const (
	ErrInvalidCharacter ErrorKind = iota
	ErrInvalidIdentifier
	ErrMalformedLiteral
	ErrUnclosedComment
)

func (k ErrorKind) diagnosticKind() diag.Kind {
	switch k {
	case ErrInvalidCharacter:
		return diag.InvalidCharacter
	case ErrInvalidIdentifier:
		return diag.InvalidIdentifier
	case ErrMalformedLiteral:
		return diag.MalformedLiteral
	case ErrUnclosedComment:
		return diag.UnclosedMultilineComment
	default:
		return diag.Kind("UNKNOWN")
	}
}

// ScanError is a lexical error recorded by the scanner. The scanner
// never stops on one; it records the error and resynchronizes.
type ScanError struct {
	Kind   ErrorKind
	Line   int
	Column int
	Lexeme string
	Reason string
}

// ToDiagnostic converts a scan error into the shared diagnostic structure.
func (e ScanError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Kind:   e.Kind.diagnosticKind(),
		Line:   e.Line,
		Column: e.Column,
		Lexeme: e.Lexeme,
		Reason: e.Reason,
	}
}

// Scanner is the hand-coded scanning engine. It owns the cursor state
// (position, line, column) and produces tokens and scan errors in
// source order over a single pass.
type Scanner struct {
	src        []rune
	pos        int  // index of the next unconsumed rune
	line       int  // 1-based line of src[pos]
	col        int  // 1-based column of src[pos]
	emitTrivia bool // emit COMMENT/WHITESPACE/ERROR tokens instead of skipping

	// lastEmitted is the type of the most recent emittable token,
	// empty at stream start. Drives the unary-sign rule.
	lastEmitted TokenType

	comments int // comment spans removed

	Errors []ScanError
}

func newScanner(input string, emitTrivia bool) *Scanner {
	return &Scanner{
		src:        []rune(input),
		pos:        0,
		line:       1,
		col:        1,
		emitTrivia: emitTrivia,
	}
}

// New creates a scanner over the complete source text. Comments and
// whitespace are skipped (but counted).
func New(input string) *Scanner {
	return newScanner(input, false)
}

// NewWithTrivia creates a scanner that also emits COMMENT, WHITESPACE
// and ERROR tokens, so the token stream reconstructs the input exactly.
func NewWithTrivia(input string) *Scanner {
	return newScanner(input, true)
}

// ──────────────────────────────────────────────
//  Cursor primitives
// ──────────────────────────────────────────────

func (s *Scanner) atEnd() bool { return s.pos >= len(s.src) }

func (s *Scanner) peek() rune {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *Scanner) peekAt(offset int) rune {
	if i := s.pos + offset; i < len(s.src) {
		return s.src[i]
	}
	return 0
}

func (s *Scanner) advance() rune {
	ch := s.src[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return ch
}

func (s *Scanner) advanceN(n int) {
	for i := 0; i < n; i++ {
		s.advance()
	}
}

// text returns the consumed span starting at start.
func (s *Scanner) text(start int) string {
	return string(s.src[start:s.pos])
}

// CommentsRemoved returns the number of comment spans consumed so far.
func (s *Scanner) CommentsRemoved() int { return s.comments }

// Line returns the current 1-based line. After a full scan this is the
// number of lines processed.
func (s *Scanner) Line() int { return s.line }

func (s *Scanner) addError(kind ErrorKind, line, col int, lexeme, reason string) {
	tracer().Debugf("lexical error at %d:%d: %s", line, col, reason)
	s.Errors = append(s.Errors, ScanError{
		Kind:   kind,
		Line:   line,
		Column: col,
		Lexeme: lexeme,
		Reason: reason,
	})
}

// fail records a scan error. In trivia mode the offending span comes
// back as an ERROR token so the stream still reconstructs the input;
// otherwise no token is produced and scanning resumes.
func (s *Scanner) fail(kind ErrorKind, line, col int, lexeme, reason string) *Token {
	s.addError(kind, line, col, lexeme, reason)
	if s.emitTrivia {
		return &Token{Type: ERROR, Lexeme: lexeme, Line: line, Column: col}
	}
	return nil
}

// ──────────────────────────────────────────────
//  Dispatch
// ──────────────────────────────────────────────

// recognizer pairs a start predicate with a scan function. applies must
// not consume input; scan must consume at least one rune.
type recognizer struct {
	name    string
	applies func(*Scanner) bool
	scan    func(*Scanner, int, int) *Token
}

// dispatch is the fixed recognition priority, tried in order at each
// scan step after whitespace. The order is load-bearing: two-character
// operators before single-character ones (maximal munch), numeric
// literals before the bare-fraction error case, the invalid-character
// fallback last. Keeping it a literal slice makes the ordering a
// testable artifact rather than implicit code order.
var dispatch = []recognizer{
	{"block-comment", (*Scanner).atBlockComment, (*Scanner).scanBlockComment},
	{"line-comment", (*Scanner).atLineComment, (*Scanner).scanLineComment},
	{"two-char-operator", (*Scanner).atTwoCharOperator, (*Scanner).scanTwoCharOperator},
	{"keyword-or-boolean", (*Scanner).atWord, (*Scanner).scanWord},
	{"identifier", (*Scanner).atIdentifier, (*Scanner).scanIdentifier},
	{"number", (*Scanner).atNumber, (*Scanner).scanNumber},
	{"bare-fraction", (*Scanner).atBareFraction, (*Scanner).scanBareFraction},
	{"string", (*Scanner).atString, (*Scanner).scanString},
	{"char", (*Scanner).atChar, (*Scanner).scanChar},
	{"single-char-operator", (*Scanner).atSingleCharOperator, (*Scanner).scanSingleCharOperator},
	{"punctuator", (*Scanner).atPunctuator, (*Scanner).scanPunctuator},
	{"invalid-character", (*Scanner).atAnything, (*Scanner).scanInvalidCharacter},
}

// NextToken returns the next token. Lexical errors are recorded on the
// scanner and never halt it; the terminal token is END_OF_INPUT.
func (s *Scanner) NextToken() Token {
	for {
		if s.atEnd() {
			return s.emit(Token{Type: END_OF_INPUT, Lexeme: "", Line: s.line, Column: s.col})
		}
		if isWhitespace(s.peek()) {
			if tok := s.scanWhitespace(); tok != nil {
				return *tok
			}
			continue
		}
		line, col := s.line, s.col
		for _, r := range dispatch {
			if !r.applies(s) {
				continue
			}
			if tok := r.scan(s, line, col); tok != nil {
				return s.emit(*tok)
			}
			break // no token (skipped comment or recorded error); rescan
		}
	}
}

// ScanAll drains the scanner, returning every token through and
// including the terminal END_OF_INPUT token.
func (s *Scanner) ScanAll() []Token {
	var tokens []Token
	for {
		tok := s.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == END_OF_INPUT {
			tracer().Debugf("scan complete: %d tokens, %d errors, %d lines",
				len(tokens), len(s.Errors), s.line)
			return tokens
		}
	}
}

func (s *Scanner) emit(tok Token) Token {
	if tok.Type.Emittable() {
		s.lastEmitted = tok.Type
	}
	return tok
}

// signIsUnary decides whether a leading +/- belongs to a numeric
// literal. It does at stream start and after an operator, punctuator or
// keyword; after a value-like token the sign is a binary operator.
func (s *Scanner) signIsUnary() bool {
	switch s.lastEmitted {
	case "", OP_ARITHMETIC, OP_RELATIONAL, OP_LOGICAL, OP_ASSIGNMENT, PUNCTUATOR, KEYWORD:
		return true
	}
	return false
}

// ──────────────────────────────────────────────
//  Whitespace
// ──────────────────────────────────────────────

// scanWhitespace consumes a maximal whitespace run. Returns a
// WHITESPACE token in trivia mode, nil otherwise.
func (s *Scanner) scanWhitespace() *Token {
	line, col := s.line, s.col
	start := s.pos
	for !s.atEnd() && isWhitespace(s.peek()) {
		s.advance()
	}
	if !s.emitTrivia {
		return nil
	}
	return &Token{Type: WHITESPACE, Lexeme: s.text(start), Line: line, Column: col}
}

// ──────────────────────────────────────────────
//  Comments:  ##...   and   #* ... *#  (nesting)
// ──────────────────────────────────────────────

func (s *Scanner) atBlockComment() bool {
	return s.peek() == '#' && s.peekAt(1) == '*'
}

// scanBlockComment consumes a multi-line comment, tracking nesting
// depth. Reaching EOF with depth > 0 is an unclosed-comment error; the
// span then terminates at EOF.
func (s *Scanner) scanBlockComment(line, col int) *Token {
	start := s.pos
	s.advanceN(2) // consume #*
	depth := 1
	for !s.atEnd() && depth > 0 {
		if s.peek() == '#' && s.peekAt(1) == '*' {
			s.advanceN(2)
			depth++
		} else if s.peek() == '*' && s.peekAt(1) == '#' {
			s.advanceN(2)
			depth--
		} else {
			s.advance()
		}
	}
	if depth > 0 {
		// Show the head of the comment, not the whole span.
		head := s.src[start:]
		if len(head) > 20 {
			head = head[:20]
		}
		s.addError(ErrUnclosedComment, line, col, string(head),
			"Multi-line comment never closed")
	}
	s.comments++
	if s.emitTrivia {
		return &Token{Type: COMMENT, Lexeme: s.text(start), Line: line, Column: col}
	}
	return nil
}

func (s *Scanner) atLineComment() bool {
	return s.peek() == '#' && s.peekAt(1) == '#'
}

// scanLineComment consumes through, but excludes, the line terminator.
func (s *Scanner) scanLineComment(line, col int) *Token {
	start := s.pos
	s.advanceN(2) // consume ##
	for !s.atEnd() && s.peek() != '\n' {
		s.advance()
	}
	s.comments++
	if s.emitTrivia {
		return &Token{Type: COMMENT, Lexeme: s.text(start), Line: line, Column: col}
	}
	return nil
}

// ──────────────────────────────────────────────
//  Operators and punctuators
// ──────────────────────────────────────────────

var twoCharOperators = []struct {
	lit string
	typ TokenType
}{
	{"**", OP_ARITHMETIC},
	{"==", OP_RELATIONAL},
	{"!=", OP_RELATIONAL},
	{"<=", OP_RELATIONAL},
	{">=", OP_RELATIONAL},
	{"&&", OP_LOGICAL},
	{"||", OP_LOGICAL},
	{"++", OP_INCDEC},
	{"--", OP_INCDEC},
	{"+=", OP_ASSIGNMENT},
	{"-=", OP_ASSIGNMENT},
	{"*=", OP_ASSIGNMENT},
	{"/=", OP_ASSIGNMENT},
}

func (s *Scanner) matchTwoCharOperator() (TokenType, string, bool) {
	c0, c1 := s.peek(), s.peekAt(1)
	for _, op := range twoCharOperators {
		if rune(op.lit[0]) == c0 && rune(op.lit[1]) == c1 {
			return op.typ, op.lit, true
		}
	}
	return "", "", false
}

func (s *Scanner) atTwoCharOperator() bool {
	_, _, ok := s.matchTwoCharOperator()
	return ok
}

func (s *Scanner) scanTwoCharOperator(line, col int) *Token {
	typ, lit, _ := s.matchTwoCharOperator()
	s.advanceN(2)
	return &Token{Type: typ, Lexeme: lit, Line: line, Column: col}
}

var singleCharOperators = map[rune]TokenType{
	'+': OP_ARITHMETIC,
	'-': OP_ARITHMETIC,
	'*': OP_ARITHMETIC,
	'/': OP_ARITHMETIC,
	'%': OP_ARITHMETIC,
	'<': OP_RELATIONAL,
	'>': OP_RELATIONAL,
	'!': OP_LOGICAL,
	'=': OP_ASSIGNMENT,
}

func (s *Scanner) atSingleCharOperator() bool {
	_, ok := singleCharOperators[s.peek()]
	return ok
}

func (s *Scanner) scanSingleCharOperator(line, col int) *Token {
	typ := singleCharOperators[s.peek()]
	lit := string(s.advance())
	return &Token{Type: typ, Lexeme: lit, Line: line, Column: col}
}

var punctuators = map[rune]bool{
	'(': true, ')': true, '{': true, '}': true,
	'[': true, ']': true, ',': true, ';': true, ':': true,
}

func (s *Scanner) atPunctuator() bool {
	return punctuators[s.peek()]
}

func (s *Scanner) scanPunctuator(line, col int) *Token {
	lit := string(s.advance())
	return &Token{Type: PUNCTUATOR, Lexeme: lit, Line: line, Column: col}
}

// ──────────────────────────────────────────────
//  Keywords, booleans, identifiers
// ──────────────────────────────────────────────

func (s *Scanner) atWord() bool { return isLower(s.peek()) }

// scanWord consumes a maximal lowercase run and matches it against the
// keyword and boolean vocabularies. A run matching neither is an
// invalid identifier: identifiers must start with A-Z.
func (s *Scanner) scanWord(line, col int) *Token {
	start := s.pos
	for isLower(s.peek()) {
		s.advance()
	}
	word := s.text(start)
	typ, ok := LookupWord(word)
	if !ok {
		return s.fail(ErrInvalidIdentifier, line, col, word,
			"Identifiers must start with uppercase letter (A-Z)")
	}
	return &Token{Type: typ, Lexeme: word, Line: line, Column: col}
}

func (s *Scanner) atIdentifier() bool { return isUpper(s.peek()) }

// scanIdentifier consumes [A-Z][a-z0-9_]*. A body longer than 30
// characters consumes the entire run but produces no token, only an
// invalid-identifier error.
func (s *Scanner) scanIdentifier(line, col int) *Token {
	start := s.pos
	s.advance() // first char: A-Z
	body := 0
	for isIdentBody(s.peek()) {
		if body >= 30 {
			for isIdentBody(s.peek()) {
				s.advance()
			}
			return s.fail(ErrInvalidIdentifier, line, col, s.text(start),
				"Identifier exceeds maximum length of 31 characters")
		}
		s.advance()
		body++
	}
	return &Token{Type: IDENTIFIER, Lexeme: s.text(start), Line: line, Column: col}
}

// ──────────────────────────────────────────────
//  Numeric literals
//  Integer: [+-]?[0-9]+
//  Float:   [+-]?[0-9]+\.[0-9]{1,6}([eE][+-]?[0-9]+)?
// ──────────────────────────────────────────────

func (s *Scanner) atNumber() bool {
	if isDigit(s.peek()) {
		return true
	}
	return (s.peek() == '+' || s.peek() == '-') && isDigit(s.peekAt(1)) && s.signIsUnary()
}

func (s *Scanner) scanNumber(line, col int) *Token {
	start := s.pos
	if s.peek() == '+' || s.peek() == '-' {
		s.advance()
	}
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() != '.' {
		return &Token{Type: INT_LITERAL, Lexeme: s.text(start), Line: line, Column: col}
	}
	if !isDigit(s.peekAt(1)) {
		s.advance() // consume the dangling dot
		return s.fail(ErrMalformedLiteral, line, col, s.text(start),
			"Missing digits after decimal point")
	}
	s.advance() // consume '.'
	decimals := 0
	for isDigit(s.peek()) {
		s.advance()
		decimals++
	}
	if decimals > 6 {
		// Consume the full numeric-literal-like span, exponent
		// included, so one malformed literal yields one diagnostic.
		s.consumeTrailingExponent()
		return s.fail(ErrMalformedLiteral, line, col, s.text(start),
			"Too many decimal digits (max 6)")
	}
	if s.peek() == '.' {
		// Second dot terminates the float; the extra dot is handled
		// on the next scan step.
		return &Token{Type: FLOAT_LITERAL, Lexeme: s.text(start), Line: line, Column: col}
	}
	if s.peek() == 'e' || s.peek() == 'E' {
		s.advance()
		if s.peek() == '+' || s.peek() == '-' {
			s.advance()
		}
		if !isDigit(s.peek()) {
			return s.fail(ErrMalformedLiteral, line, col, s.text(start),
				"Float exponent requires at least one digit")
		}
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	return &Token{Type: FLOAT_LITERAL, Lexeme: s.text(start), Line: line, Column: col}
}

// consumeTrailingExponent eats an [eE][+-]?[0-9]+ tail when one is
// actually present. Called only on the already-malformed path.
func (s *Scanner) consumeTrailingExponent() {
	if s.peek() != 'e' && s.peek() != 'E' {
		return
	}
	next := s.peekAt(1)
	if isDigit(next) {
		s.advance()
	} else if (next == '+' || next == '-') && isDigit(s.peekAt(2)) {
		s.advanceN(2)
	} else {
		return
	}
	for isDigit(s.peek()) {
		s.advance()
	}
}

func (s *Scanner) atBareFraction() bool {
	return s.peek() == '.' && isDigit(s.peekAt(1))
}

// scanBareFraction handles a dot with no leading digits, e.g. ".14".
func (s *Scanner) scanBareFraction(line, col int) *Token {
	start := s.pos
	s.advance() // consume '.'
	for isDigit(s.peek()) {
		s.advance()
	}
	return s.fail(ErrMalformedLiteral, line, col, s.text(start),
		"Missing digits before decimal point")
}

// ──────────────────────────────────────────────
//  String literals:  "([^"\\\n]|\\["\\ntr])*"
// ──────────────────────────────────────────────

func (s *Scanner) atString() bool { return s.peek() == '"' }

// scanString consumes a string literal. A bad escape marks the whole
// literal malformed but scanning continues to the closing quote, so a
// single malformed literal produces exactly one diagnostic. A raw
// newline ends the literal without being consumed.
func (s *Scanner) scanString(line, col int) *Token {
	start := s.pos
	s.advance() // opening "
	malformed := false
	for !s.atEnd() {
		switch s.peek() {
		case '"':
			s.advance() // closing "
			if malformed {
				return s.fail(ErrMalformedLiteral, line, col, s.text(start),
					"Invalid escape sequence in string literal")
			}
			return &Token{Type: STRING_LITERAL, Lexeme: s.text(start), Line: line, Column: col}
		case '\n':
			return s.fail(ErrMalformedLiteral, line, col, s.text(start),
				"Unterminated string literal")
		case '\\':
			s.advance() // consume backslash
			if s.atEnd() {
				return s.fail(ErrMalformedLiteral, line, col, s.text(start),
					"Unterminated string literal")
			}
			// Consume the escaped character either way so scanning
			// stays synchronized.
			if !isValidEscape(s.advance(), '"') {
				malformed = true
			}
		default:
			s.advance()
		}
	}
	return s.fail(ErrMalformedLiteral, line, col, s.text(start),
		"Unterminated string literal")
}

// ──────────────────────────────────────────────
//  Character literals:  '([^'\\\n]|\\['\\ntr])'
// ──────────────────────────────────────────────

func (s *Scanner) atChar() bool { return s.peek() == '\'' }

// scanChar expects exactly one logical character between the quotes.
// Empty and multi-character bodies, bad escapes and missing closers are
// all malformed, with distinct reasons; when a closing quote exists the
// scanner still consumes through it so resynchronization stays on track.
func (s *Scanner) scanChar(line, col int) *Token {
	start := s.pos
	s.advance() // opening '

	if s.atEnd() || s.peek() == '\n' {
		return s.fail(ErrMalformedLiteral, line, col, s.text(start),
			"Unterminated character literal")
	}
	if s.peek() == '\'' {
		s.advance()
		return s.fail(ErrMalformedLiteral, line, col, s.text(start),
			"Empty character literal")
	}

	reason := ""
	if s.peek() == '\\' {
		s.advance() // consume backslash
		if s.atEnd() || s.peek() == '\n' {
			return s.fail(ErrMalformedLiteral, line, col, s.text(start),
				"Unterminated character literal")
		}
		if !isValidEscape(s.advance(), '\'') {
			reason = "Invalid escape sequence in character literal"
		}
	} else {
		s.advance() // the single character body
	}

	// Anything further before the closing quote makes the body
	// multi-character.
	for !s.atEnd() && s.peek() != '\'' && s.peek() != '\n' {
		s.advance()
		if reason == "" {
			reason = "Character literal must contain exactly one character"
		}
	}

	if s.peek() != '\'' {
		return s.fail(ErrMalformedLiteral, line, col, s.text(start),
			"Unterminated character literal")
	}
	s.advance() // closing '
	if reason != "" {
		return s.fail(ErrMalformedLiteral, line, col, s.text(start), reason)
	}
	return &Token{Type: CHAR_LITERAL, Lexeme: s.text(start), Line: line, Column: col}
}

// isValidEscape reports whether ch is a legal escape payload. quote is
// the enclosing quote character, which is always escapable.
func isValidEscape(ch rune, quote rune) bool {
	return ch == quote || ch == '\\' || ch == 'n' || ch == 't' || ch == 'r'
}

// ──────────────────────────────────────────────
//  Fallback
// ──────────────────────────────────────────────

func (s *Scanner) atAnything() bool { return true }

// scanInvalidCharacter consumes exactly one character and reports it,
// guaranteeing forward progress on any input.
func (s *Scanner) scanInvalidCharacter(line, col int) *Token {
	bad := string(s.advance())
	return s.fail(ErrInvalidCharacter, line, col, bad, "Unrecognized character")
}

// ──────────────────────────────────────────────
//  Character classification
// ──────────────────────────────────────────────

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }
func isLower(ch rune) bool { return ch >= 'a' && ch <= 'z' }
func isUpper(ch rune) bool { return ch >= 'A' && ch <= 'Z' }

func isIdentBody(ch rune) bool {
	return isLower(ch) || isDigit(ch) || ch == '_'
}
