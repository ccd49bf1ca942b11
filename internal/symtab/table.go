// Package symtab records every distinct identifier seen during a scan,
// with its first occurrence and how often it appeared.
package symtab

import (
	"fmt"
	"strings"
)

// Entry is one identifier row. Position fields are frozen at first
// sighting; only Frequency changes afterwards.
type Entry struct {
	Name        string
	FirstLine   int
	FirstColumn int
	Frequency   int
}

func (e Entry) String() string {
	return fmt.Sprintf("%s | first: (%d,%d) | freq: %d",
		e.Name, e.FirstLine, e.FirstColumn, e.Frequency)
}

// Table is an insertion-ordered identifier table keyed by exact lexeme
// (case-sensitive).
type Table struct {
	entries map[string]*Entry
	order   []string
}

// New returns an empty table.
func New() *Table {
	return &Table{entries: make(map[string]*Entry)}
}

// Observe records one sighting of name at (line, col). The first
// sighting creates the entry; later ones only bump the frequency.
func (t *Table) Observe(name string, line, col int) {
	if e, ok := t.entries[name]; ok {
		e.Frequency++
		return
	}
	t.entries[name] = &Entry{
		Name:        name,
		FirstLine:   line,
		FirstColumn: col,
		Frequency:   1,
	}
	t.order = append(t.order, name)
}

// Lookup returns the entry for name, if present.
func (t *Table) Lookup(name string) (Entry, bool) {
	if e, ok := t.entries[name]; ok {
		return *e, true
	}
	return Entry{}, false
}

// Len returns the number of distinct identifiers.
func (t *Table) Len() int { return len(t.order) }

// Entries returns all entries in insertion order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, *t.entries[name])
	}
	return out
}

// FormatReport renders the SYMBOL TABLE section of the scan report.
func (t *Table) FormatReport() string {
	var b strings.Builder
	b.WriteString("SYMBOL TABLE (Identifiers)\n")
	b.WriteString("Name | First(Line,Col) | Frequency\n")
	b.WriteString("-----------------------------------\n")
	for _, name := range t.order {
		e := t.entries[name]
		fmt.Fprintf(&b, "%s | (%d,%d) | %d\n",
			e.Name, e.FirstLine, e.FirstColumn, e.Frequency)
	}
	return b.String()
}
