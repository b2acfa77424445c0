// File: charset.go
// Summary: Character-set translation tables and the wcwidth/wcswidth width oracle.
// Usage: Consulted by Screen.Draw (translation) and throughout the cell model (width).
// Notes: The width ranges below are pinned exactly to the reference this spec was
// distilled from (original_source/pyte/wcwidth.py); do not "improve" them by delegating
// to a general-purpose width library, or the stored-width invariant in SPEC_FULL.md §8
// stops holding bit-for-bit.

package vtcore

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// vt100LineDrawing maps the VT100 line-drawing character set (charset code "0"),
// used for box-drawing glyphs sent as plain ASCII in the 0x60-0x7e range.
var vt100LineDrawing = map[rune]rune{
	'`': '◆', 'a': '▒', 'b': '␉', 'c': '␌',
	'd': '␍', 'e': '␊', 'f': '°', 'g': '±',
	'h': '␤', 'i': '␋', 'j': '┘', 'k': '┐',
	'l': '┌', 'm': '└', 'n': '┼', 'o': '⎺',
	'p': '⎻', 'q': '─', 'r': '⎼', 's': '⎽',
	't': '├', 'u': '┤', 'v': '┴', 'w': '┬',
	'x': '│', 'y': '≤', 'z': '≥', '{': 'π',
	'|': '≠', '}': '£', '~': '·',
}

// ibmPC maps the upper half (0x80-0xff) of IBM-PC code page 437 to its
// Unicode equivalent, used for the "U" charset; absent entries (the 0x00-0x7f
// range, which cp437 shares with ASCII) pass through unchanged. This is the
// standard cp437-to-Unicode table, not something original_source/pyte ships
// (it has no charsets.py), so it is reproduced here from general ecosystem
// knowledge of the code page rather than ported from the reference.
var ibmPC = map[rune]rune{
	0x80: 'Ç', 0x81: 'ü', 0x82: 'é', 0x83: 'â',
	0x84: 'ä', 0x85: 'à', 0x86: 'å', 0x87: 'ç',
	0x88: 'ê', 0x89: 'ë', 0x8A: 'è', 0x8B: 'ï',
	0x8C: 'î', 0x8D: 'ì', 0x8E: 'Ä', 0x8F: 'Å',
	0x90: 'É', 0x91: 'æ', 0x92: 'Æ', 0x93: 'ô',
	0x94: 'ö', 0x95: 'ò', 0x96: 'û', 0x97: 'ù',
	0x98: 'ÿ', 0x99: 'Ö', 0x9A: 'Ü', 0x9B: '¢',
	0x9C: '£', 0x9D: '¥', 0x9E: '₧', 0x9F: 'ƒ',
	0xA0: 'á', 0xA1: 'í', 0xA2: 'ó', 0xA3: 'ú',
	0xA4: 'ñ', 0xA5: 'Ñ', 0xA6: 'ª', 0xA7: 'º',
	0xA8: '¿', 0xA9: '⌐', 0xAA: '¬', 0xAB: '½',
	0xAC: '¼', 0xAD: '¡', 0xAE: '«', 0xAF: '»',
	0xB0: '░', 0xB1: '▒', 0xB2: '▓', 0xB3: '│',
	0xB4: '┤', 0xB5: '╡', 0xB6: '╢', 0xB7: '╖',
	0xB8: '╕', 0xB9: '╣', 0xBA: '║', 0xBB: '╗',
	0xBC: '╝', 0xBD: '╜', 0xBE: '╛', 0xBF: '┐',
	0xC0: '└', 0xC1: '┴', 0xC2: '┬', 0xC3: '├',
	0xC4: '─', 0xC5: '┼', 0xC6: '╞', 0xC7: '╟',
	0xC8: '╚', 0xC9: '╔', 0xCA: '╩', 0xCB: '╦',
	0xCC: '╠', 0xCD: '═', 0xCE: '╬', 0xCF: '╧',
	0xD0: '╨', 0xD1: '╤', 0xD2: '╥', 0xD3: '╙',
	0xD4: '╘', 0xD5: '╒', 0xD6: '╓', 0xD7: '╫',
	0xD8: '╪', 0xD9: '┘', 0xDA: '┌', 0xDB: '█',
	0xDC: '▄', 0xDD: '▌', 0xDE: '▐', 0xDF: '▀',
	0xE0: 'α', 0xE1: 'ß', 0xE2: 'Γ', 0xE3: 'π',
	0xE4: 'Σ', 0xE5: 'σ', 0xE6: 'µ', 0xE7: 'τ',
	0xE8: 'Φ', 0xE9: 'Θ', 0xEA: 'Ω', 0xEB: 'δ',
	0xEC: '∞', 0xED: 'φ', 0xEE: 'ε', 0xEF: '∩',
	0xF0: '≡', 0xF1: '±', 0xF2: '≥', 0xF3: '≤',
	0xF4: '⌠', 0xF5: '⌡', 0xF6: '÷', 0xF7: '≈',
	0xF8: '°', 0xF9: '∙', 0xFA: '·', 0xFB: '√',
	0xFC: 'ⁿ', 0xFD: '²', 0xFE: '■', 0xFF: ' ',
}

// charsetTable returns the translation table for the given charset code, and
// whether that code is recognized at all. "B" (Latin-1) and "K" (user,
// treated as Latin-1) have no translation table: both pass code points
// through unchanged.
func charsetTable(code string) (map[rune]rune, bool) {
	switch code {
	case "0":
		return vt100LineDrawing, true
	case "U":
		return ibmPC, true
	case "B", "K":
		return nil, true
	default:
		return nil, false
	}
}

// translate applies the given charset's table to r, passing r through
// unchanged if the table has no entry for it.
func translate(code string, r rune) rune {
	table, ok := charsetTable(code)
	if !ok || table == nil {
		return r
	}
	if out, found := table[r]; found {
		return out
	}
	return r
}

const wcwidthCacheSize = 4096

var wcwidthCache = make(map[rune]int, wcwidthCacheSize)

// wcwidth determines how many columns are needed to display a single rune:
// -1 if it is not printable (category Cc), 0 for specific zero-width
// ranges/categories, 2 for East Asian Wide/Fullwidth, 1 otherwise. Results
// are memoized, matching the reference implementation's @lru_cache.
func wcwidth(r rune) int {
	if v, ok := wcwidthCache[r]; ok {
		return v
	}
	v := wcwidthUncached(r)
	if len(wcwidthCache) < wcwidthCacheSize {
		wcwidthCache[r] = v
	}
	return v
}

func wcwidthUncached(r rune) int {
	// ASCII fast path.
	if r >= 0x20 && r < 0x7F {
		return 1
	}

	switch {
	case r == 0x0000,
		r >= 0x200B && r <= 0x200F,
		r >= 0x2028 && r <= 0x202E,
		r >= 0x2060 && r <= 0x2063:
		return 0
	}

	if unicode.Is(unicode.Cc, r) {
		return -1
	}
	if unicode.Is(unicode.Me, r) || unicode.Is(unicode.Mn, r) {
		return 0
	}
	if isEastAsianWide(r) {
		return 2
	}
	return 1
}

// wcswidth sums wcwidth over the NFC-normalized form of s; -1 propagates if
// any rune is unprintable.
func wcswidth(s string) int {
	width := 0
	for _, r := range norm.NFC.String(s) {
		w := wcwidth(r)
		if w < 0 {
			return -1
		}
		width += w
	}
	return width
}

// eastAsianWideRanges are the Unicode ranges with East_Asian_Width of F
// (Fullwidth) or W (Wide); Go's standard library does not expose this
// property directly (it lives in x/text/width, which covers more than this
// package needs), so the commonly-used block list is reproduced here.
var eastAsianWideRanges = []struct{ lo, hi rune }{
	{0x1100, 0x115F}, {0x2E80, 0x303E}, {0x3041, 0x33FF},
	{0x3400, 0x4DBF}, {0x4E00, 0x9FFF}, {0xA000, 0xA4CF},
	{0xAC00, 0xD7A3}, {0xF900, 0xFAFF}, {0xFE30, 0xFE4F},
	{0xFF00, 0xFF60}, {0xFFE0, 0xFFE6},
	{0x20000, 0x2FFFD}, {0x30000, 0x3FFFD},
}

func isEastAsianWide(r rune) bool {
	for _, rg := range eastAsianWideRanges {
		if r >= rg.lo && r <= rg.hi {
			return true
		}
		if r < rg.lo {
			break
		}
	}
	return false
}

// isCombining reports whether r is a Unicode combining mark (category Mn or
// Me) — used by Screen.Draw to decide whether a zero-width rune folds into
// the previous cell rather than being dropped.
func isCombining(r rune) bool {
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r)
}
