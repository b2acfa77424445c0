package vtcore

import "testing"

func newTestScreen(t *testing.T, columns, lines int) *Screen {
	t.Helper()
	s, err := NewScreen(columns, lines)
	if err != nil {
		t.Fatalf("NewScreen(%d, %d): %v", columns, lines, err)
	}
	return s
}

func displayLine(t *testing.T, s *Screen, y int) string {
	t.Helper()
	lines := s.Display()
	if y < 0 || y >= len(lines) {
		t.Fatalf("row %d out of range of %d-line display", y, len(lines))
	}
	return lines[y]
}

func TestScreen_HelloAutowraps(t *testing.T) {
	s := newTestScreen(t, 5, 3)
	p := NewParser(s)
	p.FeedString("Hello, world!")

	if got, want := displayLine(t, s, 0), "Hello"; got != want {
		t.Errorf("row 0: got %q, want %q", got, want)
	}
	if got, want := displayLine(t, s, 1), ", wor"; got != want {
		t.Errorf("row 1: got %q, want %q", got, want)
	}
	if got, want := displayLine(t, s, 2), "ld!  "; got != want {
		t.Errorf("row 2: got %q, want %q", got, want)
	}
}

func TestScreen_AutowrapDisabledOverwritesLastColumn(t *testing.T) {
	s := newTestScreen(t, 5, 2)
	s.ResetMode(true, ModeDECAWM)
	p := NewParser(s)
	p.FeedString("ABCDEFGH")

	if got, want := displayLine(t, s, 0), "ABCDH"; got != want {
		t.Errorf("expected overwritten last column with DECAWM off, got %q want %q", got, want)
	}
	if got, want := displayLine(t, s, 1), "     "; got != want {
		t.Errorf("expected row 1 untouched, got %q want %q", got, want)
	}
}

func TestScreen_SGRRoundTrip(t *testing.T) {
	s := newTestScreen(t, 10, 3)
	p := NewParser(s)
	p.FeedString("\x1b[1;31mX\x1b[0mY")

	bold := s.Buffer().At(0, 0)
	if !bold.Style.Bold || bold.Style.FG != "red" {
		t.Fatalf("expected bold red X, got %+v", bold.Style)
	}
	plain := s.Buffer().At(0, 1)
	if plain.Style.Bold || plain.Style.FG != "default" {
		t.Fatalf("expected SGR 0 to reset style before Y, got %+v", plain.Style)
	}
}

func TestScreen_SGR256ColorThenSeparateCode(t *testing.T) {
	s := newTestScreen(t, 10, 3)
	p := NewParser(s)
	// 38;5;196 is a complete 256-color fg selector; the trailing ";1" is a
	// distinct, well-formed SGR code (bold) that must still apply.
	p.FeedString("\x1b[38;5;196;1mA")

	ch := s.Buffer().At(0, 0)
	if ch.Style.FG != xterm256Hex(196) {
		t.Fatalf("expected 256-color fg %s, got %s", xterm256Hex(196), ch.Style.FG)
	}
	if !ch.Style.Bold {
		t.Fatalf("expected the trailing SGR 1 to still apply bold, got %+v", ch.Style)
	}
}

func TestScreen_MalformedSGR38DropsRestOfSequence(t *testing.T) {
	s := newTestScreen(t, 10, 3)
	p := NewParser(s)
	// "38;5" with no palette index after it: must not fall through and apply 5 (blink).
	p.FeedString("\x1b[38;5mA")

	ch := s.Buffer().At(0, 0)
	if ch.Style.Blink {
		t.Fatalf("malformed 38;5 (missing palette index) leaked into SGR 5 (blink): %+v", ch.Style)
	}
}

func TestScreen_CUPThenEraseInDisplay(t *testing.T) {
	s := newTestScreen(t, 5, 3)
	p := NewParser(s)
	p.FeedString("AAAAA\r\nBBBBB\r\nCCCCC")
	p.FeedString("\x1b[2;1H\x1b[J") // CUP to row 2 col 1, erase to end of screen

	if got, want := displayLine(t, s, 0), "AAAAA"; got != want {
		t.Errorf("row 0 should survive ED from row 1: got %q want %q", got, want)
	}
	if got, want := displayLine(t, s, 1), "     "; got != want {
		t.Errorf("row 1 should be erased: got %q want %q", got, want)
	}
	if got, want := displayLine(t, s, 2), "     "; got != want {
		t.Errorf("row 2 should be erased: got %q want %q", got, want)
	}
}

func TestScreen_EraseInDisplayOptimizationDeletesRowsRegardlessOfHow(t *testing.T) {
	// The erase-to-default optimization (dropping stored rows outright
	// instead of writing blanks) must apply for how==0/1 as well as
	// how==2/3, matching original_source/pyte/screens.py's erase_in_display.
	s := newTestScreen(t, 5, 4)
	p := NewParser(s)
	p.FeedString("AAAAA\r\nBBBBB\r\nCCCCC\r\nDDDDD")

	p.FeedString("\x1b[2;1H\x1b[0J") // erase from row 1 (0-based) to end
	if n := s.buf.Len(); n != 1 {
		t.Fatalf("expected only row 0 to remain stored after how=0 ED, got %d stored rows", n)
	}
}

func TestScreen_ScrollRegionConfinesIndexAndReverseIndex(t *testing.T) {
	s := newTestScreen(t, 5, 5)
	s.SetMargins(2, 4, true) // rows 1..3 (0-based)

	rows := []string{"11111", "22222", "33333", "44444", "55555"}
	for i, row := range rows {
		s.SetCursorPos(i+1, 1)
		s.Draw(row)
	}

	s.SetCursorPos(4, 1) // bottom margin row, 1-based line 4 == 0-based row 3
	s.Index()            // should scroll only rows 1..3

	if got, want := displayLine(t, s, 0), "11111"; got != want {
		t.Errorf("row outside region should be untouched: got %q want %q", got, want)
	}
	if got, want := displayLine(t, s, 1), "33333"; got != want {
		t.Errorf("row 1 should have scrolled up to what was row 2: got %q want %q", got, want)
	}
	if got, want := displayLine(t, s, 3), "     "; got != want {
		t.Errorf("bottom of region should be blank after scroll: got %q want %q", got, want)
	}
	if got, want := displayLine(t, s, 4), "55555"; got != want {
		t.Errorf("row outside region should be untouched: got %q want %q", got, want)
	}
}

func TestScreen_ResizeShrinkDropsExcessColumnsAndTopRows(t *testing.T) {
	s := newTestScreen(t, 10, 5)
	for y := 0; y < 5; y++ {
		s.SetCursorPos(y+1, 1)
		digit := string(rune('0' + y))
		s.Draw(digit + digit + digit + digit + digit + digit + digit + digit + digit + digit)
	}

	if err := s.Resize(5, 3); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if s.Columns() != 5 || s.Lines() != 3 {
		t.Fatalf("expected 5x3 after resize, got %dx%d", s.Columns(), s.Lines())
	}
	// Shrinking height drops the top two rows of content (shifting the
	// bottom rows up), then shrinking width truncates each surviving row.
	if got, want := displayLine(t, s, 0), "22222"; got != want {
		t.Errorf("row 0: got %q, want %q", got, want)
	}
	if got, want := displayLine(t, s, 1), "33333"; got != want {
		t.Errorf("row 1: got %q, want %q", got, want)
	}
	if got, want := displayLine(t, s, 2), "44444"; got != want {
		t.Errorf("row 2: got %q, want %q", got, want)
	}
}

func TestScreen_WideCharacterOccupiesTwoColumns(t *testing.T) {
	s := newTestScreen(t, 10, 2)
	p := NewParser(s)
	p.FeedString("中A") // CJK wide char + 'A'

	if s.GetCursorX() != 3 {
		t.Fatalf("expected cursor to advance by 2+1, got x=%d", s.GetCursorX())
	}

	ch0 := s.Buffer().At(0, 0)
	if ch0.Data != "中" || ch0.Width != 2 {
		t.Fatalf("expected wide char at column 0 with width 2, got %+v", ch0)
	}
	stub := s.Buffer().At(0, 1)
	if stub.Width != 0 {
		t.Fatalf("expected column 1 to be the wide char's zero-width stub, got %+v", stub)
	}
	ch2 := s.Buffer().At(0, 2)
	if ch2.Data != "A" {
		t.Fatalf("expected 'A' at column 2, got %+v", ch2)
	}
}

func TestScreen_CombiningCharacterFoldsOntoPreviousCell(t *testing.T) {
	s := newTestScreen(t, 10, 2)
	p := NewParser(s)
	p.FeedString("e\u0301") // 'e' + combining acute accent (decomposed)

	if s.GetCursorX() != 1 {
		t.Fatalf("combining mark must not advance the cursor, got x=%d", s.GetCursorX())
	}
	ch := s.Buffer().At(0, 0)
	want := "\u00e9" // NFC composes 'e' + combining acute into the precomposed form
	if ch.Data != want {
		t.Fatalf("expected the combining mark NFC-folded onto 'e', got %q", ch.Data)
	}
}

func TestScreen_TabStopsEvery8Columns(t *testing.T) {
	s := newTestScreen(t, 20, 2)
	s.Tab()
	if s.GetCursorX() != 8 {
		t.Fatalf("expected first tab stop at column 8, got %d", s.GetCursorX())
	}
	s.Tab()
	if s.GetCursorX() != 16 {
		t.Fatalf("expected second tab stop at column 16, got %d", s.GetCursorX())
	}
}

func TestScreen_SaveRestoreCursorRoundTrip(t *testing.T) {
	s := newTestScreen(t, 10, 10)
	s.SetCursorPos(3, 4)
	s.SaveCursor()
	s.SetCursorPos(9, 9)
	s.RestoreCursor()

	if s.GetCursorX() != 3 || s.GetCursorY() != 2 {
		t.Fatalf("expected cursor restored to (3,2) 0-based, got (%d,%d)", s.GetCursorX(), s.GetCursorY())
	}
}

func TestScreen_DirtyTrackingClearedOnDemand(t *testing.T) {
	s := newTestScreen(t, 5, 5)
	s.ClearDirty()
	s.MarkDirty(2)
	if _, ok := s.DirtyLines()[2]; !ok {
		t.Fatal("expected row 2 marked dirty")
	}
	s.ClearDirty()
	if len(s.DirtyLines()) != 0 {
		t.Fatal("expected dirty set empty after ClearDirty")
	}
}

func TestScreen_DisableTrackDirtyLinesIsNoOp(t *testing.T) {
	s, err := NewScreen(5, 5, WithTrackDirtyLines(false))
	if err != nil {
		t.Fatal(err)
	}
	s.MarkDirty(0)
	if len(s.DirtyLines()) != 0 {
		t.Fatal("expected dirty tracking disabled to leave the set empty")
	}
}

func TestScreen_DeviceStatusReportRoutesThroughWriteProcessInput(t *testing.T) {
	var got string
	s, err := NewScreen(80, 24, WithProcessInputWriter(func(reply string) { got = reply }))
	if err != nil {
		t.Fatal(err)
	}
	s.SetCursorPos(5, 10)
	s.ReportDeviceStatus(6)

	if want := "\x1b[5;10R"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
