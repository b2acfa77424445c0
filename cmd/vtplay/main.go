// File: main.go
// Summary: vtplay is a pty-backed demo driver: it runs the user's shell under
// a real pty, feeds its output through vtcore, and renders the resulting
// screen with tcell.
// Usage: go run ./cmd/vtplay [shell-command...]
// Notes: Grounded on the teacher's apps/texelterm/term.go (pty.StartWithSize/
// pty.Setsize sizing, the blocking pty-reader-goroutine shape, SIGWINCH
// handling) but stripped of the teacher's pane/tab/mouse/history-persistence
// machinery — this is a minimal external collaborator exercising vtcore's
// Feed/Buffer/Cursor/ClearDirty surface end to end (SPEC_FULL.md §"Domain
// stack / cmd driver").

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/framegrace/vtcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vtplay:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	args := os.Args[1:]
	name, cmdArgs := shell, []string(nil)
	if len(args) > 0 {
		name, cmdArgs = args[0], args[1:]
	}

	tscreen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("vtplay: new tcell screen: %w", err)
	}
	if err := tscreen.Init(); err != nil {
		return fmt.Errorf("vtplay: init tcell screen: %w", err)
	}
	defer tscreen.Fini()

	cols, lines := tscreen.Size()

	var ptmx *os.File
	vscreen, err := vtcore.NewHistoryScreen(cols, lines, 2000, 0.5,
		vtcore.WithProcessInputWriter(func(s string) {
			if ptmx != nil {
				_, _ = ptmx.WriteString(s)
			}
		}),
		vtcore.WithLogger(log.New(os.Stderr, "vtplay: ", 0)),
	)
	if err != nil {
		return fmt.Errorf("vtplay: new history screen: %w", err)
	}

	cmd := exec.CommandContext(ctx, name, cmdArgs...)
	cmd.Env = os.Environ()
	ptmx, err = pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(lines), Cols: uint16(cols)})
	if err != nil {
		return fmt.Errorf("vtplay: start pty: %w", err)
	}
	defer ptmx.Close()

	// The controlling terminal (not the pty) goes into raw mode so keystrokes
	// reach the child unmolested; restored on the way out.
	stdinFD := int(os.Stdin.Fd())
	if term.IsTerminal(stdinFD) {
		oldState, err := term.MakeRaw(stdinFD)
		if err == nil {
			defer term.Restore(stdinFD, oldState)
		}
	}

	stream := vtcore.NewByteStream(vscreen)

	sigwinch := make(chan os.Signal, 1)
	signal.Notify(sigwinch, syscall.SIGWINCH)
	defer signal.Stop(sigwinch)

	go readStdin(ctx, cancel, ptmx)
	go watchResize(ctx, tscreen, vscreen, ptmx, sigwinch)
	go func() {
		// Unblocks the pty reader's blocking Read once the context ends for
		// any reason (child exit, stdin EOF), since a pty
		// fd has no portable read-deadline support to select on instead.
		<-ctx.Done()
		ptmx.Close()
	}()

	readPtyAndRender(ctx, cancel, tscreen, vscreen, stream, ptmx)

	_, _ = cmd.Process.Wait()
	return nil
}

// readPtyAndRender is the single goroutine that ever touches vscreen: it
// blocks reading pty output, feeds each chunk to the byte stream, and
// repaints on a ticker right after the feed, matching SPEC_FULL.md §5.I's
// single-writer rule and the teacher's runPtyReaderLoop shape (blocking
// read, no synthetic deadlines).
func readPtyAndRender(ctx context.Context, cancel context.CancelFunc, tscreen tcell.Screen, vscreen *vtcore.HistoryScreen, stream *vtcore.ByteStream, ptmx *os.File) {
	defer cancel()

	buf := make([]byte, 16*1024)
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	dirty := false
	for {
		n, rerr := ptmx.Read(buf)
		if n > 0 {
			stream.Feed(buf[:n])
			dirty = true
		}

		select {
		case <-ticker.C:
			if dirty {
				render(tscreen, vscreen)
				vscreen.ClearDirty()
				dirty = false
			}
		default:
		}

		if rerr != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// readStdin forwards raw keystrokes from the controlling terminal to the
// pty. Escape-sequence translation is left to the terminal driving vtplay
// itself (it already emits VT-style sequences for arrow keys etc in raw
// mode), matching a plain pass-through pty client.
func readStdin(ctx context.Context, cancel context.CancelFunc, ptmx *os.File) {
	defer cancel()
	buf := make([]byte, 4096)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			if _, werr := ptmx.Write(buf[:n]); werr != nil {
				return
			}
		}
		if err != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// watchResize reacts to SIGWINCH by resizing the tcell screen, vscreen and
// the pty in lockstep, mirroring the teacher's Resize (pty.Setsize paired
// with the in-process terminal resize).
func watchResize(ctx context.Context, tscreen tcell.Screen, vscreen *vtcore.HistoryScreen, ptmx *os.File, sigwinch <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sigwinch:
			tscreen.Sync()
			cols, lines := tscreen.Size()
			if err := vscreen.Resize(cols, lines); err != nil {
				continue
			}
			_ = pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(lines), Cols: uint16(cols)})
		}
	}
}

// colorFor resolves a vtcore color string ("default", a named ANSI color, or
// "rrggbb" hex) to a tcell.Color. vtcore's color.go already folds the
// teacher's palette-index world down to names and hex strings (see
// xterm256Hex), so unlike the teacher's fixed 258-slot tcell.Color array
// this only needs the 16 named slots plus a direct hex lookup for
// everything xterm256Hex or a 24-bit SGR produced.
func colorFor(name string) tcell.Color {
	if name == "" || name == "default" {
		return tcell.ColorDefault
	}
	if c, ok := namedColors[name]; ok {
		return c
	}
	return tcell.GetColor("#" + name)
}

var namedColors = map[string]tcell.Color{
	"black":         tcell.ColorBlack,
	"red":           tcell.ColorMaroon,
	"green":         tcell.ColorGreen,
	"yellow":        tcell.ColorOlive,
	"blue":          tcell.ColorNavy,
	"magenta":       tcell.ColorPurple,
	"cyan":          tcell.ColorTeal,
	"white":         tcell.ColorSilver,
	"brightblack":   tcell.ColorGray,
	"brightred":     tcell.ColorRed,
	"brightgreen":   tcell.ColorLime,
	"brightyellow":  tcell.ColorYellow,
	"brightblue":    tcell.ColorBlue,
	"brightmagenta": tcell.ColorFuchsia,
	"brightcyan":    tcell.ColorAqua,
	"brightwhite":   tcell.ColorWhite,
}

// styleFor maps a vtcore.CharStyle onto a tcell.Style, the rendering-side
// counterpart of screen_sgr.go's wire-side attribute parsing.
func styleFor(cs vtcore.CharStyle) tcell.Style {
	st := tcell.StyleDefault.Foreground(colorFor(cs.FG)).Background(colorFor(cs.BG))
	st = st.Bold(cs.Bold).Italic(cs.Italics).Underline(cs.Underscore)
	st = st.StrikeThrough(cs.Strikethrough).Blink(cs.Blink).Reverse(cs.Reverse)
	return st
}

// render draws vscreen's current buffer onto tscreen, using go-runewidth as
// the display-side width oracle (vtcore itself only needs Char.Width at
// write time; a renderer re-derives column advance from the glyph it is
// about to draw, which is what a real terminal emulator's draw loop does).
func render(tscreen tcell.Screen, vscreen *vtcore.HistoryScreen) {
	buf := vscreen.Buffer()
	cols, lines := vscreen.Columns(), vscreen.Lines()

	for y := 0; y < lines; y++ {
		x := 0
		for x < cols {
			ch := buf.At(y, x)
			data := ch.Data
			if data == "" {
				data = " "
			}
			r := []rune(data)[0]
			w := runewidth.RuneWidth(r)
			if w < 1 {
				w = 1
			}
			tscreen.SetContent(x, y, r, nil, styleFor(ch.Style))
			x += w
		}
	}

	cursor := vscreen.Cursor()
	if cursor.Hidden {
		tscreen.HideCursor()
	} else {
		tscreen.ShowCursor(cursor.X, cursor.Y)
	}
	tscreen.Show()
}
