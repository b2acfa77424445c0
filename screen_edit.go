// File: screen_edit.go
// Summary: Insert/delete character and line shifting operations (ICH/DCH/IL/DL).
// Usage: Dispatched from the corresponding CSI handlers.
// Notes: Grounded on original_source/pyte/screens.py's insert_characters/
// delete_characters/insert_lines/delete_lines (sparse bisect-shift algorithm);
// reimplemented here as a direct rebuild of the sparse map, which is behaviorally
// equivalent and considerably simpler to read than the bisect-window optimization
// the Python reference uses purely for its own performance reasons.

package vtcore

// InsertCharacters inserts n (default 1) blank columns at the cursor,
// shifting existing cells on the current line rightward; cells shifted past
// the right edge are dropped. A no-op if the current line has no stored
// cells at all.
func (s *Screen) InsertCharacters(n int) {
	if n == 0 {
		n = 1
	}
	s.MarkDirty(s.cursor.Y)

	line, ok := s.buf.Get(s.cursor.Y)
	if !ok || line.Empty() {
		return
	}

	x0, columns := s.cursor.X, s.columns
	newCells := make(map[int]Char, len(line.cells))
	for x, ch := range line.cells {
		switch {
		case x < x0:
			newCells[x] = ch
		case x >= columns-n:
			// evicted off the right edge
		default:
			newCells[x+n] = ch
		}
	}
	line.cells = newCells
}

// DeleteCharacters deletes n (default 1) columns starting at the cursor,
// shifting cells to its right leftward; the freed columns at the right edge
// become empty.
func (s *Screen) DeleteCharacters(n int) {
	if n == 0 {
		n = 1
	}
	s.MarkDirty(s.cursor.Y)

	line, ok := s.buf.Get(s.cursor.Y)
	if !ok || line.Empty() {
		return
	}

	x0, columns := s.cursor.X, s.columns
	newCells := make(map[int]Char, len(line.cells))
	for x, ch := range line.cells {
		switch {
		case x < x0:
			newCells[x] = ch
		case x >= x0+n:
			if nx := x - n; nx < columns {
				newCells[nx] = ch
			}
		}
	}
	line.cells = newCells
}

// InsertLines inserts n (default 1) blank lines at the cursor row, shifting
// lines at and below it (within the scrolling region) down; a no-op if the
// cursor is outside the margins. Ends with a CarriageReturn.
func (s *Screen) InsertLines(n int) {
	if n == 0 {
		n = 1
	}
	top, bottom := s.margins.Top, s.margins.Bottom
	if s.cursor.Y < top || s.cursor.Y > bottom {
		return
	}
	s.markDirtyRange(s.cursor.Y, s.lines)
	s.scrollRegionDown(s.cursor.Y, bottom, n)
	s.CarriageReturn()
}

// DeleteLines deletes n (default 1) lines starting at the cursor row,
// shifting lines below it (within the scrolling region) up; a no-op if the
// cursor is outside the margins. Ends with a CarriageReturn.
func (s *Screen) DeleteLines(n int) {
	if n == 0 {
		n = 1
	}
	top, bottom := s.margins.Top, s.margins.Bottom
	if s.cursor.Y < top || s.cursor.Y > bottom {
		return
	}
	s.markDirtyRange(s.cursor.Y, s.lines)
	s.scrollRegionUp(s.cursor.Y, bottom, n)
	s.CarriageReturn()
}
