// File: history.go
// Summary: HistoryScreen — a Screen augmented with bounded scrollback and
// page-at-a-time navigation back into it.
// Usage: NewHistoryScreen in place of NewScreen when scrollback is wanted;
// otherwise used exactly like a Screen (it embeds one).
// Notes: Grounded on original_source/pyte/screens.py's HistoryScreen. That
// class wraps every stream-dispatched method via __getattribute__ keyed by
// method name; this repository has no dynamic-dispatch-by-name mechanism
// (SPEC_FULL.md §9 Design Notes), so the same wrapping is spelled out here
// as explicit one-line forwarding methods instead (SPEC_FULL.md §4.E.1).

package vtcore

import "math"

// lineDeque is a bounded double-ended queue of *Line, used for the two
// scrollback archives. Grounded on the same HistoryScreen, whose top/bottom
// fields are plain collections.deque(maxlen=...) instances.
type lineDeque struct {
	lines []*Line
	max   int
}

func newLineDeque(max int) *lineDeque {
	return &lineDeque{max: max}
}

func (d *lineDeque) Len() int { return len(d.lines) }

func (d *lineDeque) clear() { d.lines = nil }

func (d *lineDeque) pushBack(l *Line) {
	d.lines = append(d.lines, l)
	if len(d.lines) > d.max {
		d.lines = d.lines[len(d.lines)-d.max:]
	}
}

func (d *lineDeque) pushBackAll(ls []*Line) {
	d.lines = append(d.lines, ls...)
	if len(d.lines) > d.max {
		d.lines = d.lines[len(d.lines)-d.max:]
	}
}

func (d *lineDeque) pushFrontAll(ls []*Line) {
	combined := make([]*Line, 0, len(ls)+len(d.lines))
	combined = append(combined, ls...)
	combined = append(combined, d.lines...)
	if len(combined) > d.max {
		combined = combined[:d.max]
	}
	d.lines = combined
}

func (d *lineDeque) popBack() *Line {
	if len(d.lines) == 0 {
		return nil
	}
	l := d.lines[len(d.lines)-1]
	d.lines = d.lines[:len(d.lines)-1]
	return l
}

func (d *lineDeque) popFront() *Line {
	if len(d.lines) == 0 {
		return nil
	}
	l := d.lines[0]
	d.lines = d.lines[1:]
	return l
}

// History holds the two bounded scrollback deques and pagination state of a
// HistoryScreen.
type History struct {
	top, bottom *lineDeque
	ratio       float64
	size        int
	position    int
}

// HistoryScreen is a Screen that archives rows scrolled off the top or
// bottom margin into bounded deques, and can page back through them.
type HistoryScreen struct {
	*Screen
	history History
}

// NewHistoryScreen constructs a HistoryScreen with historySize archived
// rows per direction, paging ratio (the fraction of the screen's height
// moved by one PrevPage/NextPage), and the given dimensions. ratio must lie
// in (0, 1].
func NewHistoryScreen(columns, lines, historySize int, ratio float64, opts ...Option) (*HistoryScreen, error) {
	if ratio <= 0 || ratio > 1 {
		return nil, errInvalidRatio(ratio)
	}
	s, err := NewScreen(columns, lines, opts...)
	if err != nil {
		return nil, err
	}
	h := &HistoryScreen{Screen: s}
	h.history = History{
		top:      newLineDeque(historySize),
		bottom:   newLineDeque(historySize),
		ratio:    ratio,
		size:     historySize,
		position: historySize,
	}
	h.Screen.beforeScroll = h.archiveScrolledRow
	return h, nil
}

// archiveScrolledRow is wired as Screen.beforeScroll: every scroll, however
// it is triggered internally (Linefeed, autowrap inside Draw, or a direct
// Index/ReverseIndex call), archives the row about to be discarded.
func (h *HistoryScreen) archiveScrolledRow(top, bottom int, up bool) {
	if up {
		h.history.top.pushBack(h.lineOrDefault(top))
	} else {
		h.history.bottom.pushBack(h.lineOrDefault(bottom))
	}
}

// lineOrDefault returns the Line at row y, synthesizing a blank one (under
// the screen's current default style) if the row has never been written.
func (h *HistoryScreen) lineOrDefault(y int) *Line {
	if l, ok := h.Screen.buf.Get(y); ok {
		return l
	}
	return newLine(h.DefaultChar())
}

// pageSize is ceil(lines * ratio), the number of rows moved per page.
func (h *HistoryScreen) pageSize() int {
	return int(math.Ceil(float64(h.lines) * h.history.ratio))
}

// beforeEvent guarantees every event other than PrevPage/NextPage is
// applied against the live (bottom-of-history) view, paging forward first
// if the caller had scrolled back.
func (h *HistoryScreen) beforeEvent() {
	for h.history.position < h.history.size {
		if h.history.bottom.Len() == 0 {
			h.history.position = h.history.size
			break
		}
		h.NextPage()
	}
}

// afterPageEvent is the post-processing PrevPage/NextPage share: truncate
// every row to the current width (a page operation can splice in archived
// rows wider than a screen that has since been resized), and recompute
// cursor visibility.
func (h *HistoryScreen) afterPageEvent() {
	for y := 0; y < h.lines; y++ {
		if l, ok := h.Screen.buf.Get(y); ok {
			l.TruncateFrom(h.columns)
		}
	}
	h.cursor.Hidden = h.history.position < h.history.size || !h.hasMode(ModeDECTCEM, true)
	h.MarkAllDirty()
}

// PrevPage scrolls one page back into scrollback, if there is room (past
// the lines-deep live view) and history to show.
func (h *HistoryScreen) PrevPage() {
	if h.history.position <= h.lines || h.history.top.Len() == 0 {
		return
	}
	mid := min(h.history.top.Len(), h.pageSize())
	if mid == 0 {
		return
	}

	saved := make([]*Line, mid)
	for i, y := 0, h.lines-mid; y < h.lines; i, y = i+1, y+1 {
		saved[i] = h.lineOrDefault(y)
	}
	h.history.bottom.pushFrontAll(saved)

	h.history.position -= mid
	h.Screen.buf.shiftRows(mid, h.lines)

	for i := mid - 1; i >= 0; i-- {
		h.Screen.buf.setRow(i, h.history.top.popBack())
	}

	h.afterPageEvent()
}

// NextPage scrolls one page forward, toward the live view.
func (h *HistoryScreen) NextPage() {
	if h.history.position >= h.history.size || h.history.bottom.Len() == 0 {
		return
	}
	mid := min(h.history.bottom.Len(), h.pageSize())
	if mid == 0 {
		return
	}

	saved := make([]*Line, mid)
	for y := 0; y < mid; y++ {
		saved[y] = h.lineOrDefault(y)
	}
	h.history.top.pushBackAll(saved)

	h.history.position += mid
	h.Screen.buf.shiftRows(-mid, h.lines)

	for y := h.lines - mid; y < h.lines; y++ {
		h.Screen.buf.setRow(y, h.history.bottom.popFront())
	}

	h.afterPageEvent()
}

// Index overrides Screen.Index so that PrevPage/NextPage state is restored
// to the live view before the event is applied; archiving the row scrolled
// off the top margin happens in archiveScrolledRow, wired as Screen's
// beforeScroll hook, since Screen.Linefeed and Draw's autowrap branch call
// Index on the embedded *Screen directly and would otherwise bypass this
// override entirely.
func (h *HistoryScreen) Index() {
	h.beforeEvent()
	h.Screen.Index()
}

// ReverseIndex overrides Screen.ReverseIndex for the same reason as Index.
func (h *HistoryScreen) ReverseIndex() {
	h.beforeEvent()
	h.Screen.ReverseIndex()
}

// EraseInDisplay overrides Screen.EraseInDisplay: a full-display erase (mode
// 3) also drops all scrollback and returns position to the live view.
func (h *HistoryScreen) EraseInDisplay(how int, private bool) {
	h.beforeEvent()
	h.Screen.EraseInDisplay(how, private)
	if how == 3 {
		h.resetHistoryState()
	}
}

// Reset overrides Screen.Reset: also clears scrollback.
func (h *HistoryScreen) Reset() {
	h.Screen.Reset()
	h.resetHistoryState()
}

func (h *HistoryScreen) resetHistoryState() {
	h.history.top.clear()
	h.history.bottom.clear()
	h.history.position = h.history.size
}

// --- mechanical forwarding: beforeEvent, then delegate. One of these per
// EventTarget method not already overridden above; see SPEC_FULL.md §4.E.1.

func (h *HistoryScreen) Bell() {
	h.beforeEvent()
	h.Screen.Bell()
}

func (h *HistoryScreen) Backspace() {
	h.beforeEvent()
	h.Screen.Backspace()
}

func (h *HistoryScreen) Tab() {
	h.beforeEvent()
	h.Screen.Tab()
}

func (h *HistoryScreen) Linefeed() {
	h.beforeEvent()
	h.Screen.Linefeed()
}

func (h *HistoryScreen) CarriageReturn() {
	h.beforeEvent()
	h.Screen.CarriageReturn()
}

func (h *HistoryScreen) ShiftOut() {
	h.beforeEvent()
	h.Screen.ShiftOut()
}

func (h *HistoryScreen) ShiftIn() {
	h.beforeEvent()
	h.Screen.ShiftIn()
}

func (h *HistoryScreen) SetTabStop() {
	h.beforeEvent()
	h.Screen.SetTabStop()
}

func (h *HistoryScreen) SaveCursor() {
	h.beforeEvent()
	h.Screen.SaveCursor()
}

func (h *HistoryScreen) RestoreCursor() {
	h.beforeEvent()
	h.Screen.RestoreCursor()
}

func (h *HistoryScreen) AlignmentDisplay() {
	h.beforeEvent()
	h.Screen.AlignmentDisplay()
}

func (h *HistoryScreen) DefineCharset(code string, mode rune) {
	h.beforeEvent()
	h.Screen.DefineCharset(code, mode)
}

func (h *HistoryScreen) InsertCharacters(n int) {
	h.beforeEvent()
	h.Screen.InsertCharacters(n)
}

func (h *HistoryScreen) CursorUp(n int) {
	h.beforeEvent()
	h.Screen.CursorUp(n)
}

func (h *HistoryScreen) CursorDown(n int) {
	h.beforeEvent()
	h.Screen.CursorDown(n)
}

func (h *HistoryScreen) CursorForward(n int) {
	h.beforeEvent()
	h.Screen.CursorForward(n)
}

func (h *HistoryScreen) CursorBack(n int) {
	h.beforeEvent()
	h.Screen.CursorBack(n)
}

func (h *HistoryScreen) CursorUp1(n int) {
	h.beforeEvent()
	h.Screen.CursorUp1(n)
}

func (h *HistoryScreen) CursorDown1(n int) {
	h.beforeEvent()
	h.Screen.CursorDown1(n)
}

func (h *HistoryScreen) CursorToColumn(column int) {
	h.beforeEvent()
	h.Screen.CursorToColumn(column)
}

func (h *HistoryScreen) SetCursorPos(line, column int) {
	h.beforeEvent()
	h.Screen.SetCursorPos(line, column)
}

func (h *HistoryScreen) EraseInLine(how int, private bool) {
	h.beforeEvent()
	h.Screen.EraseInLine(how, private)
}

func (h *HistoryScreen) InsertLines(n int) {
	h.beforeEvent()
	h.Screen.InsertLines(n)
}

func (h *HistoryScreen) DeleteLines(n int) {
	h.beforeEvent()
	h.Screen.DeleteLines(n)
}

func (h *HistoryScreen) DeleteCharacters(n int) {
	h.beforeEvent()
	h.Screen.DeleteCharacters(n)
}

func (h *HistoryScreen) EraseCharacters(n int) {
	h.beforeEvent()
	h.Screen.EraseCharacters(n)
}

func (h *HistoryScreen) ReportDeviceAttributes(mode int, private bool) {
	h.beforeEvent()
	h.Screen.ReportDeviceAttributes(mode, private)
}

func (h *HistoryScreen) CursorToLine(line int) {
	h.beforeEvent()
	h.Screen.CursorToLine(line)
}

func (h *HistoryScreen) ClearTabStop(how int) {
	h.beforeEvent()
	h.Screen.ClearTabStop(how)
}

func (h *HistoryScreen) SetMode(private bool, codes ...int) {
	h.beforeEvent()
	h.Screen.SetMode(private, codes...)
}

func (h *HistoryScreen) ResetMode(private bool, codes ...int) {
	h.beforeEvent()
	h.Screen.ResetMode(private, codes...)
}

func (h *HistoryScreen) SelectGraphicRendition(params ...int) {
	h.beforeEvent()
	h.Screen.SelectGraphicRendition(params...)
}

func (h *HistoryScreen) ReportDeviceStatus(mode int) {
	h.beforeEvent()
	h.Screen.ReportDeviceStatus(mode)
}

func (h *HistoryScreen) SetMargins(top, bottom int, bottomGiven bool) {
	h.beforeEvent()
	h.Screen.SetMargins(top, bottom, bottomGiven)
}

func (h *HistoryScreen) SetTitle(title string) {
	h.beforeEvent()
	h.Screen.SetTitle(title)
}

func (h *HistoryScreen) SetIconName(name string) {
	h.beforeEvent()
	h.Screen.SetIconName(name)
}

func (h *HistoryScreen) Draw(text string) {
	h.beforeEvent()
	h.Screen.Draw(text)
}

func (h *HistoryScreen) Debug(args ...interface{}) {
	h.beforeEvent()
	h.Screen.Debug(args...)
}
