// File: line.go
// Summary: Sparse per-row cell storage plus a read-only view over it.
// Usage: Owned by Buffer; manipulated by Screen's editing operations.
// Notes: Grounded on original_source/pyte/screens.py's Line(dict)/LineView classes;
// the cyclic screen<->line reference there is deliberately not reproduced (SPEC_FULL.md
// Design Notes) — Line carries its default Char by value instead.

package vtcore

import "sort"

// Line is a sparse mapping from column index to Char, plus the Char used to
// synthesize any absent column.
type Line struct {
	cells   map[int]Char
	Default Char
}

func newLine(def Char) *Line {
	return &Line{cells: make(map[int]Char), Default: def}
}

// Len reports the number of explicitly stored (non-default) cells.
func (l *Line) Len() int { return len(l.cells) }

// Empty reports whether the line has no explicitly stored cells at all.
func (l *Line) Empty() bool { return len(l.cells) == 0 }

// sortedKeys returns the stored column indices in ascending order.
func (l *Line) sortedKeys() []int {
	keys := make([]int, 0, len(l.cells))
	for x := range l.cells {
		keys = append(keys, x)
	}
	sort.Ints(keys)
	return keys
}

// WriteData creates or overwrites the cell at column x.
func (l *Line) WriteData(x int, data string, width int, style CharStyle) {
	l.cells[x] = Char{Data: data, Width: width, Style: style}
}

// Write stores ch directly at column x.
func (l *Line) Write(x int, ch Char) {
	l.cells[x] = ch
}

// CharAt returns the cell at x, materializing a copy of the line's default
// into storage first if x was absent — matching the reference's
// char_at, which is a mutating read used when a caller needs a concrete
// cell to mutate in place (e.g. folding a combining mark onto it).
func (l *Line) CharAt(x int) Char {
	if c, ok := l.cells[x]; ok {
		return c
	}
	c := l.Default
	l.cells[x] = c
	return c
}

// Get returns the cell at x without creating a storage entry — the
// non-mutating read used by display rendering and read-only views.
func (l *Line) Get(x int) Char {
	if c, ok := l.cells[x]; ok {
		return c
	}
	return l.Default
}

// Pop removes the stored cell at x, if any.
func (l *Line) Pop(x int) {
	delete(l.cells, x)
}

// PopRange removes every stored cell with index in [lo, hi).
func (l *Line) PopRange(lo, hi int) {
	for x := range l.cells {
		if x >= lo && x < hi {
			delete(l.cells, x)
		}
	}
}

// TruncateFrom drops every stored cell at or beyond column lo. Used after a
// history page restore to discard columns that no longer fit.
func (l *Line) TruncateFrom(lo int) {
	for x := range l.cells {
		if x >= lo {
			delete(l.cells, x)
		}
	}
}

// LineView is a read-only view over a Line (or its absence) that synthesizes
// the default Char for every unset column. Mutating a view's backing Line
// directly (bypassing Screen) is undefined behavior, per spec.
type LineView struct {
	line    *Line
	def     Char
	columns int
}

// At returns the Char at column x, synthesizing the default if absent or if
// the row itself is absent.
func (v LineView) At(x int) Char {
	if v.line == nil {
		return v.def
	}
	return v.line.Get(x)
}

// Columns reports the view's width.
func (v LineView) Columns() int { return v.columns }
