package lexer

import (
	"strings"
	"testing"
)

func TestNextToken_LineComment(t *testing.T) {
	l := New("## a comment\nX")

	tok := l.NextToken()
	if tok.Type != IDENTIFIER || tok.Lexeme != "X" {
		t.Fatalf("expected IDENTIFIER X, got %q (%q)", tok.Type, tok.Lexeme)
	}
	if tok.Line != 2 {
		t.Fatalf("expected X on line 2, got line %d", tok.Line)
	}
	if l.CommentsRemoved() != 1 {
		t.Fatalf("expected 1 comment removed, got %d", l.CommentsRemoved())
	}
}

func TestNextToken_LineCommentAtEOF(t *testing.T) {
	l := New("## no trailing newline")
	if tok := l.NextToken(); tok.Type != END_OF_INPUT {
		t.Fatalf("expected END_OF_INPUT, got %q", tok.Type)
	}
	if l.CommentsRemoved() != 1 {
		t.Fatalf("expected 1 comment removed, got %d", l.CommentsRemoved())
	}
	if len(l.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", l.Errors)
	}
}

func TestNextToken_BlockComment(t *testing.T) {
	l := New("#* one\ntwo *# X")

	tok := l.NextToken()
	if tok.Type != IDENTIFIER || tok.Lexeme != "X" {
		t.Fatalf("expected IDENTIFIER X, got %q (%q)", tok.Type, tok.Lexeme)
	}
	if tok.Line != 2 {
		t.Fatalf("expected X on line 2, got line %d", tok.Line)
	}
	if l.CommentsRemoved() != 1 {
		t.Fatalf("expected 1 comment removed, got %d", l.CommentsRemoved())
	}
}

func TestNextToken_NestedBlockComment(t *testing.T) {
	// One comment span, zero diagnostics.
	l := New(`#* a #* b *# c *# X`)

	tok := l.NextToken()
	if tok.Type != IDENTIFIER || tok.Lexeme != "X" {
		t.Fatalf("expected IDENTIFIER X, got %q (%q)", tok.Type, tok.Lexeme)
	}
	if len(l.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", l.Errors)
	}
	if l.CommentsRemoved() != 1 {
		t.Fatalf("expected 1 comment span, got %d", l.CommentsRemoved())
	}
}

func TestNextToken_UnclosedBlockComment(t *testing.T) {
	l := New(`#* unterminated`)

	if tok := l.NextToken(); tok.Type != END_OF_INPUT {
		t.Fatalf("expected END_OF_INPUT, got %q", tok.Type)
	}
	if len(l.Errors) != 1 {
		t.Fatalf("expected exactly 1 error, got %d", len(l.Errors))
	}
	e := l.Errors[0]
	if e.Kind != ErrUnclosedComment {
		t.Fatalf("expected ErrUnclosedComment, got %v", e.Kind)
	}
	if e.Line != 1 || e.Column != 1 {
		t.Fatalf("expected error at 1:1, got %d:%d", e.Line, e.Column)
	}
	if e.Reason != "Multi-line comment never closed" {
		t.Fatalf("unexpected reason %q", e.Reason)
	}
}

func TestNextToken_UnclosedNestedBlockComment(t *testing.T) {
	// The inner *# only closes one level; EOF is still inside the
	// comment, so exactly one diagnostic.
	l := New("#* outer #* inner *# still open")

	if tok := l.NextToken(); tok.Type != END_OF_INPUT {
		t.Fatalf("expected END_OF_INPUT, got %q", tok.Type)
	}
	if len(l.Errors) != 1 {
		t.Fatalf("expected exactly 1 error, got %d", len(l.Errors))
	}
	if l.Errors[0].Kind != ErrUnclosedComment {
		t.Fatalf("expected ErrUnclosedComment, got %v", l.Errors[0].Kind)
	}
}

func TestTrivia_CommentTokens(t *testing.T) {
	l := NewWithTrivia("## note\nX #* c *#")

	expected := []TokenType{
		COMMENT,
		WHITESPACE,
		IDENTIFIER,
		WHITESPACE,
		COMMENT,
		END_OF_INPUT,
	}

	for i, typ := range expected {
		tok := l.NextToken()
		if tok.Type != typ {
			t.Fatalf("step %d - expected token %q, got %q (%q)", i, typ, tok.Type, tok.Lexeme)
		}
	}
}

func TestTrivia_ReconstructsInput(t *testing.T) {
	// Every consumed span is accounted for: concatenating all lexemes
	// from a trivia-mode scan yields the original input.
	inputs := []string{
		"declare X = 10;\noutput X + 1.5;\n",
		"#* nested #* deep *# *# ## tail\nloop { X++; }",
		"@ foo Bb 'ab' \"bad\\q\" 1.2345678 .5 3.",
		"\t \r\n  \n",
		`"Quote: \"OK\"" 'x' -42 X--`,
	}

	for i, input := range inputs {
		l := NewWithTrivia(input)
		var b strings.Builder
		for {
			tok := l.NextToken()
			if tok.Type == END_OF_INPUT {
				break
			}
			b.WriteString(tok.Lexeme)
		}
		if got := b.String(); got != input {
			t.Fatalf("inputs[%d] - reconstruction mismatch:\nwant %q\ngot  %q", i, input, got)
		}
	}
}
