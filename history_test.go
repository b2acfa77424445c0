package vtcore

import "testing"

func newTestHistoryScreen(t *testing.T, columns, lines, historySize int, ratio float64) *HistoryScreen {
	t.Helper()
	h, err := NewHistoryScreen(columns, lines, historySize, ratio)
	if err != nil {
		t.Fatalf("NewHistoryScreen: %v", err)
	}
	return h
}

// writeNumberedRows writes n rows, one per line, forcing n-lines+1 scroll-ups past
// the bottom margin so the earliest rows are archived into scrollback.
func writeNumberedRows(h *HistoryScreen, n int) {
	for i := 0; i < n; i++ {
		h.Draw(rowLabel(i))
		h.CarriageReturn()
		h.Linefeed()
	}
}

func rowLabel(i int) string {
	return string(rune('A' + i%26))
}

func TestHistoryScreen_InvalidRatioRejected(t *testing.T) {
	if _, err := NewHistoryScreen(80, 24, 100, 0); err == nil {
		t.Fatal("expected error for ratio <= 0")
	}
	if _, err := NewHistoryScreen(80, 24, 100, 1.5); err == nil {
		t.Fatal("expected error for ratio > 1")
	}
}

func TestHistoryScreen_IndexArchivesRowsScrolledOffTop(t *testing.T) {
	h := newTestHistoryScreen(t, 5, 3, 50, 1.0)
	writeNumberedRows(h, 5) // scrolls three times past a 3-line screen

	if h.history.top.Len() == 0 {
		t.Fatal("expected rows scrolled off the top to be archived")
	}
}

func TestHistoryScreen_PrevPageThenNextPageReturnsToLiveView(t *testing.T) {
	h := newTestHistoryScreen(t, 5, 3, 50, 1.0)
	writeNumberedRows(h, 10)

	live := h.Display()

	h.PrevPage()
	if h.history.position >= h.history.size {
		t.Fatal("expected PrevPage to move position back out of the live view")
	}
	scrolledBack := h.Display()
	if scrolledBack[0] == live[0] {
		t.Fatal("expected scrolled-back view to differ from the live view")
	}

	// Page all the way back to the live view.
	for h.history.position < h.history.size {
		h.NextPage()
	}
	restored := h.Display()
	for y := range live {
		if restored[y] != live[y] {
			t.Fatalf("row %d: expected live view restored, got %q want %q", y, restored[y], live[y])
		}
	}
}

func TestHistoryScreen_BeforeEventPagesForwardOnNewInput(t *testing.T) {
	h := newTestHistoryScreen(t, 5, 3, 50, 1.0)
	writeNumberedRows(h, 10)

	h.PrevPage()
	if h.history.position >= h.history.size {
		t.Fatal("expected to have scrolled back")
	}

	// Any ordinary dispatched event should page back to live before acting.
	h.CarriageReturn()
	if h.history.position != h.history.size {
		t.Fatal("expected beforeEvent to restore the live view position")
	}
}

func TestHistoryScreen_EraseInDisplayMode3ClearsScrollback(t *testing.T) {
	h := newTestHistoryScreen(t, 5, 3, 50, 1.0)
	writeNumberedRows(h, 10)

	if h.history.top.Len() == 0 {
		t.Fatal("expected archived rows before clearing")
	}
	h.EraseInDisplay(3, false)
	if h.history.top.Len() != 0 || h.history.bottom.Len() != 0 {
		t.Fatal("expected ED mode 3 to drop all scrollback")
	}
	if h.history.position != h.history.size {
		t.Fatal("expected ED mode 3 to return to the live view")
	}
}

func TestHistoryScreen_ResetClearsScrollback(t *testing.T) {
	h := newTestHistoryScreen(t, 5, 3, 50, 1.0)
	writeNumberedRows(h, 10)
	h.Reset()

	if h.history.top.Len() != 0 || h.history.bottom.Len() != 0 {
		t.Fatal("expected Reset to clear scrollback")
	}
}

func TestHistoryScreen_SmallerThanScreenHistoryStillWorks(t *testing.T) {
	// historySize (2) smaller than the screen height (3): an explicitly
	// resolved open question (SPEC_FULL.md §9) rather than a rejected case.
	h := newTestHistoryScreen(t, 5, 3, 2, 1.0)
	writeNumberedRows(h, 10)

	if h.history.top.Len() > 2 {
		t.Fatalf("expected archive bounded at historySize=2, got %d", h.history.top.Len())
	}
}

func TestHistoryScreen_SatisfiesEventTarget(t *testing.T) {
	var _ EventTarget = (*HistoryScreen)(nil)
}
