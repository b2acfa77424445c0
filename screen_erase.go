// File: screen_erase.go
// Summary: Character/line/display erasing (ECH/EL/ED) and DECALN alignment fill.
// Usage: Dispatched from the corresponding CSI/sharp handlers.
// Notes: Grounded on original_source/pyte/screens.py's erase_characters/erase_in_line/
// erase_in_display/alignment_display, including the "overwrite == default" deletion
// optimization, which is also a directly testable boundary property (SPEC_FULL.md §8).

package vtcore

// EraseCharacters overwrites n (default 1) cells starting at the cursor
// with the cursor's current attributes. If those attributes equal the
// line's default character, this is implemented as deletion of the
// corresponding sparse entries (and of the line itself if it becomes
// empty) rather than writing explicit cells.
func (s *Screen) EraseCharacters(n int) {
	if n == 0 {
		n = 1
	}
	s.MarkDirty(s.cursor.Y)
	hi := s.cursor.X + n
	if hi > s.columns {
		hi = s.columns
	}
	s.eraseRange(s.cursor.Y, s.cursor.X, hi)
}

// EraseInLine erases part of the current row: how==0 from the cursor to
// the end, how==1 from the start through the cursor, how==2 the whole row.
// The private parameter (erasable-only cells) is intentionally unimplemented,
// matching the reference this spec was distilled from.
func (s *Screen) EraseInLine(how int, private bool) {
	s.MarkDirty(s.cursor.Y)
	var lo, hi int
	switch how {
	case 1:
		lo, hi = 0, s.cursor.X+1
	case 2:
		lo, hi = 0, s.columns
	default:
		lo, hi = s.cursor.X, s.columns
	}
	s.eraseRange(s.cursor.Y, lo, hi)
}

// eraseRange applies the erase-or-delete optimization to row y's columns
// [lo, hi).
func (s *Screen) eraseRange(y, lo, hi int) {
	def := s.DefaultChar()
	line := s.buf.LineAt(y, def)

	if line.Default == s.cursor.Attrs {
		line.PopRange(lo, hi)
		if line.Empty() {
			s.buf.Pop(y)
		}
		return
	}

	data, width, style := s.cursor.Attrs.Data, s.cursor.Attrs.Width, s.cursor.Attrs.Style
	for x := lo; x < hi; x++ {
		line.WriteData(x, data, width, style)
	}
}

// EraseInDisplay erases part of the display: how==0 from the cursor to the
// end of the screen, how==1 from the start through the cursor's row,
// how==2 or 3 the whole screen (clearing stored rows outright when the
// cursor's attributes equal the default character). how==0/1 additionally
// erase the cursor's own row via EraseInLine.
func (s *Screen) EraseInDisplay(how int, private bool) {
	var top, bottom int
	switch how {
	case 1:
		top, bottom = 0, s.cursor.Y
	case 2, 3:
		top, bottom = 0, s.lines
	default:
		top, bottom = s.cursor.Y+1, s.lines
	}
	s.markDirtyRange(top, bottom)

	def := s.DefaultChar()
	switch {
	case (how == 2 || how == 3) && def == s.cursor.Attrs:
		// Erasing the whole screen to the default char is equivalent to
		// dropping every stored row outright.
		s.buf.Clear()
	case def == s.cursor.Attrs:
		// Erasing [top, bottom) to the default char is equivalent to
		// dropping just the stored rows in that range: a freshly
		// requested row within it will be recreated with the default.
		s.buf.PopRange(top, bottom)
	default:
		data, width, style := s.cursor.Attrs.Data, s.cursor.Attrs.Width, s.cursor.Attrs.Style
		for y := top; y < bottom; y++ {
			line := s.buf.LineAt(y, def)
			for x := 0; x < s.columns; x++ {
				line.WriteData(x, data, width, style)
			}
		}
	}

	if how == 0 || how == 1 {
		s.EraseInLine(how, false)
	}
}

// AlignmentDisplay fills every cell with "E" in the current default style,
// marking every row dirty — used for screen-alignment testing (DECALN).
func (s *Screen) AlignmentDisplay() {
	s.MarkAllDirty()
	style := s.DefaultChar().Style
	for y := 0; y < s.lines; y++ {
		line := s.buf.LineAt(y, s.DefaultChar())
		for x := 0; x < s.columns; x++ {
			line.WriteData(x, "E", 1, style)
		}
	}
}
