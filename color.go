// File: color.go
// Summary: ANSI/aixterm color names and the xterm 256-color to "rrggbb" palette.
// Usage: Used by screen_sgr.go when resolving SGR color parameters.

package vtcore

import "fmt"

// ansiColorNames indexes the eight basic ANSI colors in wire order (30-37 / 40-47).
var ansiColorNames = [8]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

// ansiColorName returns the name for a standard color code 0-7, or its
// aixterm-bright counterpart ("brightred", ...) for 8-15.
func ansiColorName(code int) string {
	if code < 0 {
		return "default"
	}
	if code < 8 {
		return ansiColorNames[code]
	}
	if code < 16 {
		return "bright" + ansiColorNames[code-8]
	}
	return xterm256Hex(code)
}

// xterm256Level are the six color-cube intensity levels used by indices 16-231.
var xterm256Level = [6]int{0, 95, 135, 175, 215, 255}

// xterm256Hex converts an xterm 256-color palette index (0-255) to a
// lowercase "rrggbb" hex string. Indices 0-15 reuse the standard 16-color
// hex values; 16-231 are the 6x6x6 color cube; 232-255 are a 24-step
// grayscale ramp. This table is specified directly by the wire protocol
// (SPEC_FULL.md §6) rather than grounded on any single example in the
// retrieved pack (the one gopyte reference that attempts it,
// other_examples/10c53a93_scottpeterman-gopyte__gopyte-screen.go.go,
// stubs it out as "colorN" placeholders).
func xterm256Hex(n int) string {
	switch {
	case n < 0 || n > 255:
		return "default"
	case n < 16:
		return xterm16Hex[n]
	case n < 232:
		idx := n - 16
		r := xterm256Level[idx/36]
		g := xterm256Level[(idx/6)%6]
		b := xterm256Level[idx%6]
		return fmt.Sprintf("%02x%02x%02x", r, g, b)
	default:
		gray := 8 + (n-232)*10
		return fmt.Sprintf("%02x%02x%02x", gray, gray, gray)
	}
}

var xterm16Hex = [16]string{
	"000000", "800000", "008000", "808000",
	"000080", "800080", "008080", "c0c0c0",
	"808080", "ff0000", "00ff00", "ffff00",
	"0000ff", "ff00ff", "00ffff", "ffffff",
}
