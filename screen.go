// File: screen.go
// Summary: The base Screen type — construction, reset, mode storage, dirty tracking.
// Usage: The primary entry point of the library; see screen_*.go for grouped operations.
// Notes: Ported from original_source/pyte/screens.py's Screen class; file-per-concern
// split follows the teacher's own vterm_*.go convention.

package vtcore

import (
	"fmt"
	"log"
)

// modeKey identifies a mode independent of the wire-level private-bit
// encoding (SPEC_FULL.md Design Notes: a typed {code, private} pair replaces
// the left-shift-by-5 trick as the internal storage key).
type modeKey struct {
	code    int
	private bool
}

// Screen is a VT100/VT220-subset terminal screen: a sparse cell buffer with
// a cursor, scrolling margins, character sets, tab stops, modes and a
// save/restore stack.
type Screen struct {
	columns, lines int

	buf     *Buffer
	cursor  Cursor
	margins Margins
	modes   map[modeKey]bool

	g0, g1  string
	charset int // 0 selects g0, 1 selects g1

	tabstops map[int]struct{}

	savepoints []Savepoint

	dirty      map[int]struct{}
	trackDirty bool

	disableDisplayGraphic bool

	title, iconName string

	savedColumns    int
	hasSavedColumns bool

	logger            *log.Logger
	writeProcessInput func(string)

	// beforeScroll, if set, runs immediately before Index/ReverseIndex
	// discard a row at the scrolling region's edge. HistoryScreen wires this
	// to archive that row into scrollback. It exists because calls made from
	// within Screen's own methods (Linefeed, Draw's autowrap) address the
	// embedded *Screen directly and so never reach a HistoryScreen override
	// of Index/ReverseIndex — Go's embedding gives no virtual dispatch for
	// that case, unlike the EventTarget interface calls in parser.go.
	beforeScroll func(top, bottom int, up bool)
}

// NewScreen constructs a Screen of the given dimensions. columns and lines
// must both be positive.
func NewScreen(columns, lines int, opts ...Option) (*Screen, error) {
	if columns <= 0 || lines <= 0 {
		return nil, fmt.Errorf("vtcore: columns and lines must be positive, got %d x %d", columns, lines)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Screen{
		columns:               columns,
		lines:                 lines,
		trackDirty:            cfg.trackDirtyLines,
		disableDisplayGraphic: cfg.disableDisplayGraphic,
		logger:                cfg.logger,
		writeProcessInput:     cfg.writeProcessInput,
	}
	s.Reset()
	return s, nil
}

// DefaultChar returns the Char currently used to fill absent cells: a space
// in the current default style, reversed iff DECSCNM is active.
func (s *Screen) DefaultChar() Char {
	style := DefaultStyle
	if s.hasMode(ModeDECSCNM, true) {
		style.Reverse = true
	}
	return blankChar(style)
}

// Reset restores the screen to its just-constructed state: full-screen
// margins, DECAWM+DECTCEM on, default charsets, tab stops every 8 columns,
// empty savepoint stack, home cursor with default attrs, empty title/icon,
// and every row marked dirty.
func (s *Screen) Reset() {
	s.buf = newBuffer(s.columns)
	s.margins = Margins{Top: 0, Bottom: s.lines - 1}
	s.modes = make(map[modeKey]bool)
	s.addMode(ModeDECAWM, true)
	s.addMode(ModeDECTCEM, true)

	s.g0, s.g1 = "B", "0"
	s.charset = 0

	s.tabstops = make(map[int]struct{})
	for x := 8; x < s.columns; x += 8 {
		s.tabstops[x] = struct{}{}
	}

	s.savepoints = nil
	s.title, s.iconName = "", ""
	s.hasSavedColumns = false

	s.cursor = Cursor{X: 0, Y: 0, Attrs: s.DefaultChar(), Hidden: false}

	s.dirty = make(map[int]struct{})
	s.MarkAllDirty()
}

// Columns reports the screen's width.
func (s *Screen) Columns() int { return s.columns }

// Lines reports the screen's height.
func (s *Screen) Lines() int { return s.lines }

// Cursor returns a copy of the current cursor state.
func (s *Screen) Cursor() Cursor { return s.cursor }

// ScreenMargins returns the current scrolling-region bounds.
func (s *Screen) ScreenMargins() Margins { return s.margins }

// Title returns the last string set via set_title (OSC 0/2).
func (s *Screen) Title() string { return s.title }

// IconName returns the last string set via set_icon_name (OSC 0/1).
func (s *Screen) IconName() string { return s.iconName }

// Buffer returns a read-only view over the screen's sparse cell storage.
func (s *Screen) Buffer() BufferView {
	return BufferView{buf: s.buf, def: s.DefaultChar()}
}

// --- mode storage -----------------------------------------------------

func (s *Screen) hasMode(code int, private bool) bool {
	return s.modes[modeKey{code, private}]
}

func (s *Screen) addMode(code int, private bool) {
	s.modes[modeKey{code, private}] = true
}

func (s *Screen) removeMode(code int, private bool) {
	delete(s.modes, modeKey{code, private})
}

// --- dirty tracking -----------------------------------------------------

// MarkDirty marks a single row changed.
func (s *Screen) MarkDirty(y int) {
	if !s.trackDirty {
		return
	}
	s.dirty[y] = struct{}{}
}

// markDirtyRange marks every row in [lo, hi) changed.
func (s *Screen) markDirtyRange(lo, hi int) {
	if !s.trackDirty {
		return
	}
	for y := lo; y < hi; y++ {
		s.dirty[y] = struct{}{}
	}
}

// MarkAllDirty marks every row on the screen changed.
func (s *Screen) MarkAllDirty() {
	s.markDirtyRange(0, s.lines)
}

// DirtyLines returns the set of rows changed since the last ClearDirty call.
// When dirty tracking is disabled via WithTrackDirtyLines(false), this is
// always empty.
func (s *Screen) DirtyLines() map[int]struct{} {
	return s.dirty
}

// ClearDirty empties the dirty set. Callers own calling this after they have
// consumed DirtyLines.
func (s *Screen) ClearDirty() {
	s.dirty = make(map[int]struct{})
}

// Debug routes an unrecognized escape/CSI/OSC sequence to the injected
// logger, matching the distilled spec's "invoke debug sink, never crash"
// policy (SPEC_FULL.md §4.D). Satisfies EventTarget's debug sink.
func (s *Screen) Debug(args ...interface{}) {
	s.logger.Print(append([]interface{}{"vtcore: unhandled sequence:"}, args...)...)
}

// Bell is a no-op stub, overridable only by wrapping a Screen; present so
// the parser's dispatch table always has a target.
func (s *Screen) Bell() {}

// WriteProcessInput writes text to the injected process-input sink (default
// a no-op), used internally by ReportDeviceAttributes/ReportDeviceStatus.
func (s *Screen) WriteProcessInput(text string) {
	s.writeProcessInput(text)
}

// SetTitle stores the window title (OSC 0/2).
func (s *Screen) SetTitle(title string) { s.title = title }

// SetIconName stores the icon name (OSC 0/1).
func (s *Screen) SetIconName(name string) { s.iconName = name }
