// Package stats accumulates scan counters: tokens by category, comments
// removed, and the highest line touched. Counters only ever go up.
package stats

import (
	"fmt"
	"strings"

	"github.com/mylang-lang/mylang/internal/diag"
	"github.com/mylang-lang/mylang/internal/lexer"
)

// Stats is the statistics aggregator for one scan.
type Stats struct {
	counts   map[lexer.TokenType]int
	total    int // emittable tokens
	maxLine  int
	comments int
}

// New returns a zeroed aggregator.
func New() *Stats {
	return &Stats{counts: make(map[lexer.TokenType]int)}
}

// ObserveToken tallies one token. Non-emittable tokens (trivia, error
// spans) are counted in their category bucket but not in the total.
func (s *Stats) ObserveToken(tok lexer.Token) {
	s.counts[tok.Type]++
	if tok.Type.Emittable() {
		s.total++
	}
	s.NoteLine(tok.Line)
}

// ObserveDiagnostic tallies one lexical error under the ERROR category.
func (s *Stats) ObserveDiagnostic(d diag.Diagnostic) {
	s.counts[lexer.ERROR]++
	s.NoteLine(d.Line)
}

// AddComments records n removed comment spans.
func (s *Stats) AddComments(n int) {
	s.comments += n
}

// NoteLine raises the highest-line-seen watermark.
func (s *Stats) NoteLine(line int) {
	if line > s.maxLine {
		s.maxLine = line
	}
}

// Count returns the tally for one category.
func (s *Stats) Count(t lexer.TokenType) int { return s.counts[t] }

// TotalTokens returns the number of emittable tokens observed.
func (s *Stats) TotalTokens() int { return s.total }

// LinesProcessed returns the highest line number any event touched.
func (s *Stats) LinesProcessed() int { return s.maxLine }

// CommentsRemoved returns the number of comment spans removed.
func (s *Stats) CommentsRemoved() int { return s.comments }

// FormatReport renders the STATISTICS section of the scan report:
// totals first, then the non-zero per-category counts in the fixed
// category order.
func (s *Stats) FormatReport() string {
	var b strings.Builder
	b.WriteString("STATISTICS\n")
	b.WriteString("----------\n")
	fmt.Fprintf(&b, "Total tokens:     %d\n", s.total)
	fmt.Fprintf(&b, "Lines processed:  %d\n", s.maxLine)
	fmt.Fprintf(&b, "Comments removed: %d\n", s.comments)
	b.WriteString("\nToken counts by type:\n")
	for _, t := range lexer.Categories {
		if c := s.counts[t]; c > 0 {
			fmt.Fprintf(&b, "  %-18s: %d\n", string(t), c)
		}
	}
	return b.String()
}
