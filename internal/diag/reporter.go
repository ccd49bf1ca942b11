package diag

import "strings"

// Reporter collects diagnostics in detection order. It never raises:
// the scanner reports and keeps scanning. Append-only, no deduplication.
type Reporter struct {
	diagnostics []Diagnostic
}

// NewReporter returns an empty reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Report appends a diagnostic. Detection order is source order because
// the scanner is single-pass.
func (r *Reporter) Report(d Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

// HasErrors reports whether anything was collected.
func (r *Reporter) HasErrors() bool {
	return len(r.diagnostics) > 0
}

// Count returns the number of collected diagnostics.
func (r *Reporter) Count() int {
	return len(r.diagnostics)
}

// Diagnostics returns the collected diagnostics in order. Callers must
// not mutate the returned slice.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// FormatReport renders the ERRORS section of the scan report. An empty
// reporter is itself a reportable state.
func (r *Reporter) FormatReport() string {
	var b strings.Builder
	b.WriteString("ERRORS\n")
	b.WriteString("------\n")
	if len(r.diagnostics) == 0 {
		b.WriteString("No lexical errors.\n")
		return b.String()
	}
	for _, d := range r.diagnostics {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	return b.String()
}
