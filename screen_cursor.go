// File: screen_cursor.go
// Summary: Cursor movement, navigation controls, tab stops, save/restore.
// Usage: Dispatched from parser.go's basic/escape/csi tables.
// Notes: Grounded on original_source/pyte/screens.py (ensure_hbounds/ensure_vbounds/
// cursor_*/tab/backspace/save_cursor/restore_cursor) and the teacher's
// vterm_cursor.go/vterm_navigation.go for Go method shape.

package vtcore

// ensureHBounds clamps cursor.X into [0, columns-1].
func (s *Screen) ensureHBounds() {
	if s.cursor.X < 0 {
		s.cursor.X = 0
	} else if s.cursor.X > s.columns-1 {
		s.cursor.X = s.columns - 1
	}
}

// ensureVBounds clamps cursor.Y into the margins if useMargins or DECOM is
// set, otherwise into the full screen.
func (s *Screen) ensureVBounds(useMargins bool) {
	top, bottom := 0, s.lines-1
	if useMargins || s.hasMode(ModeDECOM, true) {
		top, bottom = s.margins.Top, s.margins.Bottom
	}
	if s.cursor.Y < top {
		s.cursor.Y = top
	} else if s.cursor.Y > bottom {
		s.cursor.Y = bottom
	}
}

// CarriageReturn moves the cursor to column 0.
func (s *Screen) CarriageReturn() {
	s.cursor.X = 0
}

// Index moves the cursor down one row, scrolling the region up by one if
// already at the bottom margin.
func (s *Screen) Index() {
	top, bottom := s.margins.Top, s.margins.Bottom
	if s.cursor.Y == bottom {
		if s.beforeScroll != nil {
			s.beforeScroll(top, bottom, true)
		}
		s.scrollRegionUp(top, bottom, 1)
	} else {
		s.cursor.Y++
	}
}

// ReverseIndex moves the cursor up one row, scrolling the region down by one
// if already at the top margin.
func (s *Screen) ReverseIndex() {
	top, bottom := s.margins.Top, s.margins.Bottom
	if s.cursor.Y == top {
		if s.beforeScroll != nil {
			s.beforeScroll(top, bottom, false)
		}
		s.scrollRegionDown(top, bottom, 1)
	} else {
		s.cursor.Y--
	}
}

// scrollRegionUp shifts rows [top, bottom] up by n: the top n rows are
// discarded, and n empty rows are introduced at the bottom of the region.
// Marks the full [0, lines) range dirty, matching
// original_source/pyte/screens.py's index() (self.dirty.update(range(self.lines))),
// which invalidates rows above a custom top margin too rather than just the
// scrolled region.
func (s *Screen) scrollRegionUp(top, bottom, n int) {
	s.markDirtyRange(0, s.lines)
	for y := top; y <= bottom; y++ {
		if y+n <= bottom {
			if l, ok := s.buf.Get(y + n); ok {
				s.buf.rows[y] = l
			} else {
				s.buf.Pop(y)
			}
		} else {
			s.buf.Pop(y)
		}
	}
}

// scrollRegionDown shifts rows [top, bottom] down by n: the bottom n rows
// are discarded, and n empty rows are introduced at the top of the region.
// Marks the full [0, lines) range dirty, matching
// original_source/pyte/screens.py's reverse_index() (self.dirty.update(range(self.lines))).
func (s *Screen) scrollRegionDown(top, bottom, n int) {
	s.markDirtyRange(0, s.lines)
	for y := bottom; y >= top; y-- {
		if y-n >= top {
			if l, ok := s.buf.Get(y - n); ok {
				s.buf.rows[y] = l
			} else {
				s.buf.Pop(y)
			}
		} else {
			s.buf.Pop(y)
		}
	}
}

// Linefeed performs Index, and additionally a CarriageReturn when LNM is set.
func (s *Screen) Linefeed() {
	s.Index()
	if s.hasMode(ModeLNM, false) {
		s.CarriageReturn()
	}
}

// Tab moves the cursor to the next tab stop strictly right of the current
// column, or to the last column if there is none.
func (s *Screen) Tab() {
	next := s.columns - 1
	best := -1
	for x := range s.tabstops {
		if x > s.cursor.X && (best == -1 || x < best) {
			best = x
		}
	}
	if best != -1 {
		next = best
	}
	s.cursor.X = next
}

// Backspace treats pending-wrap (X == columns) as the last column, then
// moves left by one, clamped to [0, columns-1].
func (s *Screen) Backspace() {
	if s.cursor.X == s.columns {
		s.cursor.X--
	}
	s.cursor.X--
	s.ensureHBounds()
}

// CursorUp moves the cursor up n rows (default 1), stopping at the top margin.
func (s *Screen) CursorUp(n int) {
	if n == 0 {
		n = 1
	}
	top := s.margins.Top
	s.cursor.Y -= n
	if s.cursor.Y < top {
		s.cursor.Y = top
	}
}

// CursorUp1 is CursorUp followed by CarriageReturn.
func (s *Screen) CursorUp1(n int) {
	s.CursorUp(n)
	s.CarriageReturn()
}

// CursorDown moves the cursor down n rows (default 1), stopping at the
// bottom margin.
func (s *Screen) CursorDown(n int) {
	if n == 0 {
		n = 1
	}
	bottom := s.margins.Bottom
	s.cursor.Y += n
	if s.cursor.Y > bottom {
		s.cursor.Y = bottom
	}
}

// CursorDown1 is CursorDown followed by CarriageReturn.
func (s *Screen) CursorDown1(n int) {
	s.CursorDown(n)
	s.CarriageReturn()
}

// CursorBack moves the cursor left n columns (default 1), undoing a pending
// wrap first if present.
func (s *Screen) CursorBack(n int) {
	if n == 0 {
		n = 1
	}
	if s.cursor.X == s.columns {
		s.cursor.X--
	}
	s.cursor.X -= n
	s.ensureHBounds()
}

// CursorForward moves the cursor right n columns (default 1).
func (s *Screen) CursorForward(n int) {
	if n == 0 {
		n = 1
	}
	s.cursor.X += n
	s.ensureHBounds()
}

// SetCursorPos moves the cursor to a 1-based (line, column), honoring DECOM.
func (s *Screen) SetCursorPos(line, column int) {
	if column == 0 {
		column = 1
	}
	if line == 0 {
		line = 1
	}
	col := column - 1
	ln := line - 1

	if s.hasMode(ModeDECOM, true) {
		ln += s.margins.Top
		if ln < s.margins.Top || ln > s.margins.Bottom {
			return
		}
	}

	s.cursor.X = col
	s.cursor.Y = ln
	s.ensureHBounds()
	s.ensureVBounds(false)
}

// CursorToColumn moves the cursor to a 1-based column in the current row.
func (s *Screen) CursorToColumn(column int) {
	if column == 0 {
		column = 1
	}
	s.cursor.X = column - 1
	s.ensureHBounds()
}

// CursorToLine moves the cursor to a 1-based row in the current column.
func (s *Screen) CursorToLine(line int) {
	if line == 0 {
		line = 1
	}
	s.cursor.Y = line - 1
	if s.hasMode(ModeDECOM, true) {
		s.cursor.Y += s.margins.Top
	}
	s.ensureVBounds(false)
}

// GetCursorX/GetCursorY expose the raw cursor coordinates.
func (s *Screen) GetCursorX() int { return s.cursor.X }
func (s *Screen) GetCursorY() int { return s.cursor.Y }

// SetCursorVisible toggles cursor.Hidden.
func (s *Screen) SetCursorVisible(visible bool) {
	s.cursor.Hidden = !visible
}

// --- tab stops -----------------------------------------------------

// SetTabStop sets a tab stop at the current column.
func (s *Screen) SetTabStop() {
	s.tabstops[s.cursor.X] = struct{}{}
}

// ClearTabStop clears a tab stop: how==0 clears at the cursor, how==3 clears all.
func (s *Screen) ClearTabStop(how int) {
	switch how {
	case 0:
		delete(s.tabstops, s.cursor.X)
	case 3:
		s.tabstops = make(map[int]struct{})
	}
}

// --- charsets -----------------------------------------------------

// DefineCharset assigns code to G0 (mode=='(') or G1 (mode==')'); ignored if
// code is not a recognized charset.
func (s *Screen) DefineCharset(code string, mode rune) {
	if _, ok := charsetTable(code); !ok {
		return
	}
	switch mode {
	case '(':
		s.g0 = code
	case ')':
		s.g1 = code
	}
}

// ShiftIn selects G0 as the active charset.
func (s *Screen) ShiftIn() { s.charset = 0 }

// ShiftOut selects G1 as the active charset.
func (s *Screen) ShiftOut() { s.charset = 1 }

// activeCharsetCode returns the currently active G0/G1 charset code.
func (s *Screen) activeCharsetCode() string {
	if s.charset == 1 {
		return s.g1
	}
	return s.g0
}

// --- save/restore -----------------------------------------------------

// SaveCursor pushes a snapshot of the cursor, charset state and origin/
// autowrap modes.
func (s *Screen) SaveCursor() {
	s.savepoints = append(s.savepoints, Savepoint{
		Cursor:       s.cursor,
		G0:           s.g0,
		G1:           s.g1,
		Charset:      s.charset,
		OriginMode:   s.hasMode(ModeDECOM, true),
		AutowrapMode: s.hasMode(ModeDECAWM, true),
	})
}

// RestoreCursor pops the most recent savepoint and restores cursor,
// charsets and origin/autowrap modes from it, clamping the cursor to
// bounds. With an empty stack it resets DECOM and homes the cursor.
func (s *Screen) RestoreCursor() {
	if len(s.savepoints) == 0 {
		s.removeMode(ModeDECOM, true)
		s.SetCursorPos(1, 1)
		return
	}
	sp := s.savepoints[len(s.savepoints)-1]
	s.savepoints = s.savepoints[:len(s.savepoints)-1]

	s.g0, s.g1, s.charset = sp.G0, sp.G1, sp.Charset
	if sp.OriginMode {
		s.addMode(ModeDECOM, true)
	} else {
		s.removeMode(ModeDECOM, true)
	}
	if sp.AutowrapMode {
		s.addMode(ModeDECAWM, true)
	} else {
		s.removeMode(ModeDECAWM, true)
	}
	s.cursor = sp.Cursor
	s.ensureHBounds()
	s.ensureVBounds(s.hasMode(ModeDECOM, true))
}
