// Package report composes the result of one scan: the token stream,
// symbol table, statistics and error list, with their report renderings.
package report

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/mylang-lang/mylang/internal/diag"
	"github.com/mylang-lang/mylang/internal/lexer"
	"github.com/mylang-lang/mylang/internal/stats"
	"github.com/mylang-lang/mylang/internal/symtab"
)

// tracer traces with key 'mylang.report'.
func tracer() tracing.Trace {
	return tracing.Select("mylang.report")
}

// Report holds the accumulated state of one completed scan. The three
// collectors own their state independently; the engine only hands
// events over.
type Report struct {
	Tokens   []lexer.Token // emittable tokens, END_OF_INPUT included
	Table    *symtab.Table
	Stats    *stats.Stats
	Reporter *diag.Reporter
}

// Scan runs the scanning engine over the complete source text and
// routes every token and error event to the collectors. A report is
// always produced, even for completely malformed input.
func Scan(source string) *Report {
	r := &Report{
		Table:    symtab.New(),
		Stats:    stats.New(),
		Reporter: diag.NewReporter(),
	}

	sc := lexer.New(source)
	for {
		tok := sc.NextToken()
		r.Stats.ObserveToken(tok)
		if tok.IsIdentifier() {
			r.Table.Observe(tok.Lexeme, tok.Line, tok.Column)
		}
		if tok.Type.Emittable() {
			r.Tokens = append(r.Tokens, tok)
		}
		if tok.Type == lexer.END_OF_INPUT {
			break
		}
	}

	for _, e := range sc.Errors {
		d := e.ToDiagnostic()
		r.Reporter.Report(d)
		r.Stats.ObserveDiagnostic(d)
	}
	r.Stats.AddComments(sc.CommentsRemoved())
	r.Stats.NoteLine(sc.Line())

	tracer().Debugf("scanned %d tokens, %d identifiers, %d errors",
		len(r.Tokens), r.Table.Len(), r.Reporter.Count())
	return r
}

// FormatTokens renders the TOKENS section: one emittable token per line.
func (r *Report) FormatTokens() string {
	var b strings.Builder
	b.WriteString("TOKENS\n")
	b.WriteString("------\n")
	for _, tok := range r.Tokens {
		b.WriteString(tok.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Format renders the full scan report: tokens, symbol table,
// statistics, errors.
func (r *Report) Format() string {
	var b strings.Builder
	b.WriteString(r.FormatTokens())
	b.WriteByte('\n')
	b.WriteString(r.Table.FormatReport())
	b.WriteByte('\n')
	b.WriteString(r.Stats.FormatReport())
	b.WriteByte('\n')
	b.WriteString(r.Reporter.FormatReport())
	return b.String()
}
