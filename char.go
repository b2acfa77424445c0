// File: char.go
// Summary: The Char and CharStyle value types — the atomic unit of screen storage.
// Usage: Used throughout line.go, buffer.go and screen*.go.

package vtcore

// CharStyle describes the rendition attributes applied to a Char. Colors are
// strings: either a name ("default", "black", "red", ..., "brightwhite") or a
// six lowercase hex digit string ("rrggbb"). Unrecognized color strings are
// never produced internally; callers that construct a CharStyle by hand are
// responsible for passing one of the two forms.
type CharStyle struct {
	FG            string
	BG            string
	Bold          bool
	Italics       bool
	Underscore    bool
	Strikethrough bool
	Reverse       bool
	Blink         bool
}

// DefaultStyle is the style of a freshly reset screen: default foreground
// and background, no attributes set.
var DefaultStyle = CharStyle{FG: "default", BG: "default"}

// Char is an immutable-by-convention grapheme cell: a base code point plus
// any combining marks folded into Data, the display width fixed by the
// leading code point, and the style in effect when it was written.
type Char struct {
	Data  string
	Width int
	Style CharStyle
}

// blankChar returns the Char used to fill an absent cell under the given style.
func blankChar(style CharStyle) Char {
	return Char{Data: " ", Width: 1, Style: style}
}

// stubChar is the zero-width placeholder occupying the column immediately
// to the right of a width-2 cell.
var stubChar = Char{Data: "", Width: 0}
