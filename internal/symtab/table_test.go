package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveFirstSighting(t *testing.T) {
	tbl := New()
	tbl.Observe("Counter", 2, 9)

	e, ok := tbl.Lookup("Counter")
	require.True(t, ok)
	assert.Equal(t, "Counter", e.Name)
	assert.Equal(t, 2, e.FirstLine)
	assert.Equal(t, 9, e.FirstColumn)
	assert.Equal(t, 1, e.Frequency)
}

func TestObserveBumpsFrequencyOnly(t *testing.T) {
	tbl := New()
	tbl.Observe("X", 1, 1)
	tbl.Observe("X", 5, 3)
	tbl.Observe("X", 9, 20)

	e, ok := tbl.Lookup("X")
	require.True(t, ok)
	assert.Equal(t, 3, e.Frequency)
	assert.Equal(t, 1, e.FirstLine, "first sighting position is frozen")
	assert.Equal(t, 1, e.FirstColumn)
	assert.Equal(t, 1, tbl.Len())
}

func TestEntriesInsertionOrder(t *testing.T) {
	tbl := New()
	tbl.Observe("Zeta", 1, 1)
	tbl.Observe("Alpha", 1, 6)
	tbl.Observe("Zeta", 2, 1)
	tbl.Observe("Mid", 2, 6)

	entries := tbl.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Zeta", entries[0].Name)
	assert.Equal(t, "Alpha", entries[1].Name)
	assert.Equal(t, "Mid", entries[2].Name)
	assert.Equal(t, 2, entries[0].Frequency)
}

func TestLookupMissing(t *testing.T) {
	tbl := New()
	_, ok := tbl.Lookup("Nope")
	assert.False(t, ok)
}

func TestKeysAreCaseSensitive(t *testing.T) {
	tbl := New()
	tbl.Observe("Value", 1, 1)
	tbl.Observe("V", 1, 10)

	assert.Equal(t, 2, tbl.Len())
	e, ok := tbl.Lookup("Value")
	require.True(t, ok)
	assert.Equal(t, 1, e.Frequency)
}

func TestFormatReport(t *testing.T) {
	tbl := New()
	tbl.Observe("Total", 1, 9)
	tbl.Observe("I", 2, 6)
	tbl.Observe("Total", 3, 1)

	want := "SYMBOL TABLE (Identifiers)\n" +
		"Name | First(Line,Col) | Frequency\n" +
		"-----------------------------------\n" +
		"Total | (1,9) | 2\n" +
		"I | (2,6) | 1\n"
	assert.Equal(t, want, tbl.FormatReport())
}

func TestFormatReportEmpty(t *testing.T) {
	want := "SYMBOL TABLE (Identifiers)\n" +
		"Name | First(Line,Col) | Frequency\n" +
		"-----------------------------------\n"
	assert.Equal(t, want, New().FormatReport())
}
