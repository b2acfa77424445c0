// File: screen_modes.go
// Summary: ANSI and DEC private mode get/set (SM/RM, DECSET/DECRST).
// Usage: Dispatched from the CSI 'h'/'l' handlers.
// Notes: Grounded on original_source/pyte/screens.py's set_mode/reset_mode and the
// teacher's vterm_modes.go for the private-mode special-case switch shape.

package vtcore

// SetMode adds the given mode codes (ANSI if private is false, DEC private
// if true), applying the handful of modes with side effects.
func (s *Screen) SetMode(private bool, codes ...int) {
	for _, code := range codes {
		s.addMode(code, private)
		if !private {
			continue
		}
		switch code {
		case ModeDECSCNM:
			s.toggleReverseVideo(true)
		case ModeDECCOLM:
			s.savedColumns = s.columns
			s.hasSavedColumns = true
			_ = s.Resize(132, s.lines)
			s.EraseInDisplay(2, false)
			s.SetCursorPos(1, 1)
		case ModeDECOM:
			s.SetCursorPos(1, 1)
		case ModeDECTCEM:
			s.cursor.Hidden = false
		}
	}
}

// ResetMode removes the given mode codes, applying the inverse side effects.
func (s *Screen) ResetMode(private bool, codes ...int) {
	for _, code := range codes {
		s.removeMode(code, private)
		if !private {
			continue
		}
		switch code {
		case ModeDECSCNM:
			s.toggleReverseVideo(false)
		case ModeDECCOLM:
			if s.hasSavedColumns {
				_ = s.Resize(s.savedColumns, s.lines)
				s.hasSavedColumns = false
			}
		case ModeDECOM:
			s.SetCursorPos(1, 1)
		case ModeDECTCEM:
			s.cursor.Hidden = true
		}
	}
}

// toggleReverseVideo flips the Reverse bit of every stored cell and every
// line's default, and syncs the cursor's pen via SGR 7/27, matching
// DECSCNM's documented side effect.
func (s *Screen) toggleReverseVideo(on bool) {
	s.MarkAllDirty()
	for _, y := range s.buf.sortedKeys() {
		line, _ := s.buf.Get(y)
		for x, ch := range line.cells {
			ch.Style.Reverse = !ch.Style.Reverse
			line.cells[x] = ch
		}
		line.Default.Style.Reverse = !line.Default.Style.Reverse
	}
	if on {
		s.SelectGraphicRendition(7)
	} else {
		s.SelectGraphicRendition(27)
	}
}
