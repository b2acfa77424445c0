package vtcore

import (
	"reflect"
	"testing"
)

// recordingTarget captures every EventTarget call it receives, letting
// tests assert on dispatch without a full Screen.
type recordingTarget struct {
	calls []string
	args  [][]interface{}
}

func (r *recordingTarget) record(name string, args ...interface{}) {
	r.calls = append(r.calls, name)
	r.args = append(r.args, args)
}

func (r *recordingTarget) Bell()           { r.record("Bell") }
func (r *recordingTarget) Backspace()      { r.record("Backspace") }
func (r *recordingTarget) Tab()            { r.record("Tab") }
func (r *recordingTarget) Linefeed()       { r.record("Linefeed") }
func (r *recordingTarget) CarriageReturn() { r.record("CarriageReturn") }
func (r *recordingTarget) ShiftOut()       { r.record("ShiftOut") }
func (r *recordingTarget) ShiftIn()        { r.record("ShiftIn") }

func (r *recordingTarget) Reset()         { r.record("Reset") }
func (r *recordingTarget) Index()         { r.record("Index") }
func (r *recordingTarget) ReverseIndex()  { r.record("ReverseIndex") }
func (r *recordingTarget) SetTabStop()    { r.record("SetTabStop") }
func (r *recordingTarget) SaveCursor()    { r.record("SaveCursor") }
func (r *recordingTarget) RestoreCursor() { r.record("RestoreCursor") }

func (r *recordingTarget) AlignmentDisplay() { r.record("AlignmentDisplay") }

func (r *recordingTarget) DefineCharset(code string, mode rune) { r.record("DefineCharset") }

func (r *recordingTarget) InsertCharacters(n int)     { r.record("InsertCharacters") }
func (r *recordingTarget) CursorUp(n int)             { r.record("CursorUp") }
func (r *recordingTarget) CursorDown(n int)           { r.record("CursorDown") }
func (r *recordingTarget) CursorForward(n int)        { r.record("CursorForward", n) }
func (r *recordingTarget) CursorBack(n int)           { r.record("CursorBack") }
func (r *recordingTarget) CursorUp1(n int)            { r.record("CursorUp1") }
func (r *recordingTarget) CursorDown1(n int)          { r.record("CursorDown1") }
func (r *recordingTarget) CursorToColumn(column int)  { r.record("CursorToColumn") }
func (r *recordingTarget) SetCursorPos(l, c int)      { r.record("SetCursorPos", l, c) }
func (r *recordingTarget) EraseInDisplay(h int, p bool) {
	r.record("EraseInDisplay", h, p)
}
func (r *recordingTarget) EraseInLine(h int, p bool) { r.record("EraseInLine", h, p) }
func (r *recordingTarget) InsertLines(n int)         { r.record("InsertLines") }
func (r *recordingTarget) DeleteLines(n int)         { r.record("DeleteLines") }
func (r *recordingTarget) DeleteCharacters(n int)    { r.record("DeleteCharacters") }
func (r *recordingTarget) EraseCharacters(n int)     { r.record("EraseCharacters") }
func (r *recordingTarget) ReportDeviceAttributes(m int, p bool) {
	r.record("ReportDeviceAttributes")
}
func (r *recordingTarget) CursorToLine(line int) { r.record("CursorToLine") }
func (r *recordingTarget) ClearTabStop(how int)  { r.record("ClearTabStop") }
func (r *recordingTarget) SetMode(p bool, codes ...int) {
	r.record("SetMode", p, codes)
}
func (r *recordingTarget) ResetMode(p bool, codes ...int) {
	r.record("ResetMode", p, codes)
}
func (r *recordingTarget) SelectGraphicRendition(params ...int) {
	r.record("SelectGraphicRendition", params)
}
func (r *recordingTarget) ReportDeviceStatus(mode int) { r.record("ReportDeviceStatus") }
func (r *recordingTarget) SetMargins(top, bottom int, bottomGiven bool) { r.record("SetMargins") }

func (r *recordingTarget) SetTitle(title string)  { r.record("SetTitle") }
func (r *recordingTarget) SetIconName(name string) { r.record("SetIconName") }

func (r *recordingTarget) Draw(text string)          { r.record("Draw", text) }
func (r *recordingTarget) Debug(args ...interface{}) { r.record("Debug") }

var _ EventTarget = (*recordingTarget)(nil)

func TestParser_FastPathDrawsPlainTextInOneCall(t *testing.T) {
	target := &recordingTarget{}
	p := NewParser(target)
	p.FeedString("hello world")

	if len(target.calls) != 1 || target.calls[0] != "Draw" {
		t.Fatalf("expected a single Draw call, got %v", target.calls)
	}
}

func TestParser_CSIParamsAndPrivateFlag(t *testing.T) {
	target := &recordingTarget{}
	p := NewParser(target)
	p.FeedString("\x1b[?25h")

	want := []string{"SetMode"}
	if !reflect.DeepEqual(target.calls, want) {
		t.Fatalf("got %v, want %v", target.calls, want)
	}
	if wantArgs := []interface{}{true, []int{25}}; !reflect.DeepEqual(target.args[0], wantArgs) {
		t.Fatalf("got SetMode args %v, want %v", target.args[0], wantArgs)
	}
}

func TestParser_MissingParamDefaultsToZero(t *testing.T) {
	target := &recordingTarget{}
	p := NewParser(target)
	p.FeedString("\x1b[H") // CUP with no params

	if len(target.calls) != 1 || target.calls[0] != "SetCursorPos" {
		t.Fatalf("expected SetCursorPos, got %v", target.calls)
	}
	if wantArgs := []interface{}{0, 0}; !reflect.DeepEqual(target.args[0], wantArgs) {
		t.Fatalf("expected missing params passed as 0, got %v", target.args[0])
	}
}

func TestParser_ParamClampedTo9999(t *testing.T) {
	s, err := NewScreen(80, 24)
	if err != nil {
		t.Fatal(err)
	}
	p := NewParser(s)
	p.FeedString("\x1b[99999999C") // CUF, absurdly large column count

	if s.GetCursorX() != 79 {
		t.Fatalf("expected cursor clamped to last column, got x=%d", s.GetCursorX())
	}

	rt := &recordingTarget{}
	NewParser(rt).FeedString("\x1b[99999999C")
	if want := []interface{}{9999}; len(rt.args) != 1 || !reflect.DeepEqual(rt.args[0], want) {
		t.Fatalf("expected CursorForward param clamped to 9999, got %v", rt.args)
	}
}

func TestParser_CANAbortsSequenceAndDrawsTheAbortChar(t *testing.T) {
	target := &recordingTarget{}
	p := NewParser(target)
	p.FeedString("\x1b[3;4\x18")

	want := []string{"Draw"}
	if !reflect.DeepEqual(target.calls, want) {
		t.Fatalf("got %v, want %v", target.calls, want)
	}
	if wantArgs := []interface{}{"\x18"}; !reflect.DeepEqual(target.args[0], wantArgs) {
		t.Fatalf("expected the CAN character itself drawn, got %v", target.args[0])
	}
}

func TestParser_UnknownCSIFinalInvokesDebugNotCrash(t *testing.T) {
	target := &recordingTarget{}
	p := NewParser(target)
	p.FeedString("\x1b[5z")

	if len(target.calls) != 1 || target.calls[0] != "Debug" {
		t.Fatalf("expected Debug sink for unknown final, got %v", target.calls)
	}
}

func TestParser_OSCSetTitleBothTerminators(t *testing.T) {
	s, err := NewScreen(80, 24)
	if err != nil {
		t.Fatal(err)
	}
	p := NewParser(s)
	p.FeedString("\x1b]2;hello\x07")
	if s.Title() != "hello" {
		t.Fatalf("BEL-terminated OSC: got title %q", s.Title())
	}

	p.FeedString("\x1b]2;world\x1b\\")
	if s.Title() != "world" {
		t.Fatalf("ST-terminated OSC: got title %q", s.Title())
	}
}

func TestParser_OSC0SetsBothTitleAndIcon(t *testing.T) {
	s, err := NewScreen(80, 24)
	if err != nil {
		t.Fatal(err)
	}
	p := NewParser(s)
	p.FeedString("\x1b]0;both\x07")
	if s.Title() != "both" || s.IconName() != "both" {
		t.Fatalf("expected both title and icon set, got title=%q icon=%q", s.Title(), s.IconName())
	}
}

func TestParser_SplitEscapeSequenceAcrossFeedCalls(t *testing.T) {
	s, err := NewScreen(80, 24)
	if err != nil {
		t.Fatal(err)
	}
	p := NewParser(s)
	p.FeedString("\x1b[1")
	p.FeedString(";1H")

	if s.GetCursorX() != 0 || s.GetCursorY() != 0 {
		t.Fatalf("expected cursor homed after split CUP, got (%d,%d)", s.GetCursorX(), s.GetCursorY())
	}
}
