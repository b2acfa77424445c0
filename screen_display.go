// File: screen_display.go
// Summary: Dense rendering of the sparse buffer, and screen resize.
// Usage: Screen.Display is the primary read surface external collaborators use.

package vtcore

import "strings"

// Display renders the full screen as lines strings, each exactly columns
// runes wide: gaps between sparse entries are filled with spaces, the stub
// cell following a width-2 cell is skipped, and absent rows render as all
// spaces.
func (s *Screen) Display() []string {
	out := make([]string, s.lines)
	for y := 0; y < s.lines; y++ {
		out[y] = s.renderLine(y)
	}
	return out
}

func (s *Screen) renderLine(y int) string {
	var b strings.Builder
	b.Grow(s.columns)

	line, ok := s.buf.Get(y)
	x := 0
	for x < s.columns {
		var ch Char
		if ok {
			ch = line.Get(x)
		} else {
			ch = s.DefaultChar()
		}
		if ch.Width == 0 && ch.Data == "" {
			// Stub cell with no preceding wide cell rendered (shouldn't
			// normally happen mid-scan); treat as a single blank column.
			b.WriteByte(' ')
			x++
			continue
		}
		if ch.Data == "" {
			ch = s.DefaultChar()
		}
		b.WriteString(ch.Data)
		if ch.Width == 2 {
			x += 2 // the stub to the right is intentionally not rendered again
		} else {
			x++
		}
	}
	rendered := b.String()
	// A wide cell at the last column, or a malformed entry, could overshoot;
	// always return exactly `columns` runes.
	runes := []rune(rendered)
	if len(runes) > s.columns {
		runes = runes[:s.columns]
	}
	for len(runes) < s.columns {
		runes = append(runes, ' ')
	}
	return string(runes)
}

// CompressedDisplay behaves like Display but can strip leading/trailing
// whitespace per line and drop leading/trailing all-blank lines, matching
// the distilled spec's test-only compressed_display helper.
func (s *Screen) CompressedDisplay(lstrip, rstrip, topFilter, bottomFilter bool) []string {
	lines := s.Display()
	for i, l := range lines {
		switch {
		case lstrip && rstrip:
			lines[i] = strings.TrimSpace(l)
		case lstrip:
			lines[i] = strings.TrimLeft(l, " ")
		case rstrip:
			lines[i] = strings.TrimRight(l, " ")
		}
	}
	start, end := 0, len(lines)
	if topFilter {
		for start < end && strings.TrimSpace(lines[start]) == "" {
			start++
		}
	}
	if bottomFilter {
		for end > start && strings.TrimSpace(lines[end-1]) == "" {
			end--
		}
	}
	return lines[start:end]
}

// Resize changes the screen's dimensions. A no-op if unchanged. Shrinking
// rows drops lines from the top (by homing the cursor, deleting at row 0 as
// many lines as no longer fit so the remaining rows shift up, then
// restoring the cursor); shrinking columns drops cells at or beyond the new
// width from every stored line. Margins are reset to full-screen and rows
// [0, lines) are marked dirty.
func (s *Screen) Resize(columns, lines int) error {
	if columns <= 0 || lines <= 0 {
		return errInvalidDimensions(columns, lines)
	}
	if columns == s.columns && lines == s.lines {
		return nil
	}

	if lines < s.lines {
		s.SaveCursor()
		s.SetCursorPos(1, 1)
		s.DeleteLines(s.lines - lines)
		s.RestoreCursor()
	}

	if columns < s.columns {
		for _, y := range s.buf.sortedKeys() {
			l, _ := s.buf.Get(y)
			l.PopRange(columns, s.columns)
		}
	}

	s.columns = columns
	s.lines = lines
	s.margins = Margins{Top: 0, Bottom: lines - 1}
	s.MarkAllDirty()
	return nil
}
