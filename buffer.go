// File: buffer.go
// Summary: Sparse row storage for a Screen, plus a read-only view over it.
// Usage: Owned by Screen; rows are materialized lazily on write.
// Notes: Grounded on original_source/pyte/screens.py's Buffer(dict)/BufferView classes.

package vtcore

import "sort"

// Buffer is a sparse mapping from row index to *Line. Absent rows logically
// contain columns copies of the owning screen's current default Char.
type Buffer struct {
	rows    map[int]*Line
	columns int
}

func newBuffer(columns int) *Buffer {
	return &Buffer{rows: make(map[int]*Line), columns: columns}
}

// LineAt returns the line at row y, creating it (with the given default
// Char) if absent.
func (b *Buffer) LineAt(y int, def Char) *Line {
	if l, ok := b.rows[y]; ok {
		return l
	}
	l := newLine(def)
	b.rows[y] = l
	return l
}

// Get returns the line at row y without creating it.
func (b *Buffer) Get(y int) (*Line, bool) {
	l, ok := b.rows[y]
	return l, ok
}

// Pop removes the stored line at row y, if any.
func (b *Buffer) Pop(y int) {
	delete(b.rows, y)
}

// PopRange removes every stored row with index in [lo, hi).
func (b *Buffer) PopRange(lo, hi int) {
	for y := range b.rows {
		if y >= lo && y < hi {
			delete(b.rows, y)
		}
	}
}

// Clear removes every stored row.
func (b *Buffer) Clear() {
	b.rows = make(map[int]*Line)
}

// setRow overwrites row y with l, or drops the row entirely if l is nil or
// empty. Used by history pagination to splice archived lines back in.
func (b *Buffer) setRow(y int, l *Line) {
	if l == nil || l.Empty() {
		delete(b.rows, y)
		return
	}
	b.rows[y] = l
}

// shiftRows moves every stored row y to y+delta, dropping rows that land
// outside [0, lines). Used by history pagination to slide the screen's
// content up or down before splicing archived rows into the gap.
func (b *Buffer) shiftRows(delta, lines int) {
	newRows := make(map[int]*Line, len(b.rows))
	for y, l := range b.rows {
		ny := y + delta
		if ny >= 0 && ny < lines {
			newRows[ny] = l
		}
	}
	b.rows = newRows
}

// Len reports the number of explicitly stored (non-default) rows.
func (b *Buffer) Len() int { return len(b.rows) }

// sortedKeys returns the stored row indices in ascending order.
func (b *Buffer) sortedKeys() []int {
	keys := make([]int, 0, len(b.rows))
	for y := range b.rows {
		keys = append(keys, y)
	}
	sort.Ints(keys)
	return keys
}

// BufferView is a read-only view over a Buffer that synthesizes a blank row
// for any absent index.
type BufferView struct {
	buf *Buffer
	def Char
}

// Row returns a LineView over row y.
func (v BufferView) Row(y int) LineView {
	l, _ := v.buf.Get(y)
	return LineView{line: l, def: v.def, columns: v.buf.columns}
}

// At is a convenience accessor equivalent to Row(y).At(x).
func (v BufferView) At(y, x int) Char {
	return v.Row(y).At(x)
}
