// File: screen_margins.go
// Summary: Scrolling-region (DECSTBM) handling.
// Usage: Dispatched from the CSI 'r' handler.

package vtcore

// SetMargins sets the scrolling region from 1-based top/bottom parameters.
// bottomGiven distinguishes a bottom parameter that was actually present on
// the wire from one that was merely defaulted to 0 by the parser, so that an
// omitted bottom (e.g. "CSI 5r") preserves the current bottom margin instead
// of resetting it to the full screen height, matching
// original_source/pyte/screens.py's set_margins(top=None, bottom=None),
// which defaults bottom to the existing margins.bottom rather than None.
// A zero value for top defaults to 1 (the whole screen); top==0 with an
// omitted bottom (or both omitted) resets to full-screen margins. A request
// with bottom-top < 1 row of region is ignored.
func (s *Screen) SetMargins(top, bottom int, bottomGiven bool) {
	if top == 0 && !bottomGiven {
		s.margins = Margins{Top: 0, Bottom: s.lines - 1}
		s.SetCursorPos(1, 1)
		return
	}
	if top == 0 {
		top = 1
	}
	if !bottomGiven {
		bottom = s.margins.Bottom + 1
	} else if bottom == 0 {
		bottom = s.lines
	}
	t, b := top-1, bottom-1
	if t < 0 {
		t = 0
	}
	if b > s.lines-1 {
		b = s.lines - 1
	}
	if b-t < 1 {
		return
	}
	s.margins = Margins{Top: t, Bottom: b}
	s.SetCursorPos(1, 1)
}
