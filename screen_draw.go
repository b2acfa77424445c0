// File: screen_draw.go
// Summary: The draw() text-writing algorithm — charset translation, pending wrap,
// IRM insertion, wide/combining character handling.
// Usage: The parser's fast-path and per-character paths both funnel plain text here.
// Notes: Grounded on original_source/pyte/screens.py's draw(); this is the single most
// detailed algorithm in the reference and is ported step-for-step.

package vtcore

import "golang.org/x/text/unicode/norm"

// Draw writes a run of text at the cursor, applying charset translation,
// autowrap, insert-mode shifting, and wide/combining character handling one
// rune at a time.
func (s *Screen) Draw(text string) {
	for _, c := range text {
		s.drawRune(c)
	}
	if s.cursor.X > s.columns {
		s.cursor.X = s.columns
	}
}

func (s *Screen) drawRune(c rune) {
	w := wcwidth(c)

	// 1. Charset translation.
	c = translate(s.activeCharsetCode(), c)

	// 2. Pending wrap.
	if s.cursor.X >= s.columns {
		switch {
		case s.hasMode(ModeDECAWM, true):
			s.MarkDirty(s.cursor.Y)
			s.CarriageReturn()
			s.Index()
			s.cursor.X = 0
		case w > 0:
			s.cursor.X = s.columns - w
		default:
			s.cursor.X = s.columns
		}
	}

	// 3. IRM insertion.
	if s.hasMode(ModeIRM, false) && w > 0 {
		saved := s.cursor.X
		s.InsertCharacters(w)
		s.cursor.X = saved
	}

	// 4. Write.
	switch {
	case w == 1:
		line := s.buf.LineAt(s.cursor.Y, s.DefaultChar())
		line.WriteData(s.cursor.X, string(c), 1, s.cursor.Attrs.Style)
	case w == 2:
		line := s.buf.LineAt(s.cursor.Y, s.DefaultChar())
		line.WriteData(s.cursor.X, string(c), 2, s.cursor.Attrs.Style)
		if s.cursor.X+1 < s.columns {
			line.Write(s.cursor.X+1, stubChar)
		}
	case w == 0 && isCombining(c):
		s.foldCombining(c)
	default:
		// Unprintable; nothing is written and the cursor does not advance.
		return
	}

	// 5. Advance (may transiently overshoot columns; Draw clamps X to
	// columns once the whole run is written).
	s.cursor.X += w

	// 6. Dirty.
	s.MarkDirty(s.cursor.Y)
}

// foldCombining appends a combining mark onto the previous cell: at
// (x-1, y) if x>0, else at (columns-1, y-1) if y>0. The merged grapheme is
// NFC-normalized; width is unchanged.
func (s *Screen) foldCombining(c rune) {
	x, y := s.cursor.X, s.cursor.Y
	if x > 0 {
		x--
	} else if y > 0 {
		x, y = s.columns-1, y-1
	} else {
		return
	}
	line := s.buf.LineAt(y, s.DefaultChar())
	prev := line.CharAt(x)
	merged := norm.NFC.String(prev.Data + string(c))
	line.WriteData(x, merged, prev.Width, prev.Style)
	s.MarkDirty(y)
}
