// File: options.go
// Summary: Functional-options configuration for Screen/HistoryScreen construction.
// Usage: Pass Option values to NewScreen/NewHistoryScreen.
// Notes: Mirrors the teacher's own WithX(...) Option idiom (apps/texelterm/parser/vterm.go).

package vtcore

import (
	"io"
	"log"
)

// config collects the construction-time knobs every Option mutates.
type config struct {
	trackDirtyLines      bool
	disableDisplayGraphic bool
	logger               *log.Logger
	writeProcessInput    func(string)
}

func defaultConfig() config {
	return config{
		trackDirtyLines:       true,
		disableDisplayGraphic: false,
		logger:                log.New(io.Discard, "", 0),
		writeProcessInput:     func(string) {},
	}
}

// Option configures a Screen (or HistoryScreen) at construction time.
type Option func(*config)

// WithTrackDirtyLines controls whether Screen maintains a dirty-row set at
// all; passing false makes the dirty sink a no-op, matching
// disable_display_graphic-style opt-outs in the teacher's own option set.
func WithTrackDirtyLines(track bool) Option {
	return func(c *config) { c.trackDirtyLines = track }
}

// WithDisableDisplayGraphic makes select_graphic_rendition a no-op that
// resets the cursor to the default style, skipping all color/attribute
// bookkeeping for callers that never render style.
func WithDisableDisplayGraphic(disable bool) Option {
	return func(c *config) { c.disableDisplayGraphic = disable }
}

// WithLogger injects the logger used for the debug sink (unhandled escape
// sequences). Defaults to a discard logger so a freshly constructed Screen
// never writes to a process-global stream.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithProcessInputWriter injects the sink used to answer device-attribute
// and device-status reports (DA/DSR). Defaults to a no-op.
func WithProcessInputWriter(fn func(string)) Option {
	return func(c *config) {
		if fn != nil {
			c.writeProcessInput = fn
		}
	}
}
