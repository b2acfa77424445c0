// File: bytestream.go
// Summary: ByteStream — feeds raw bytes to a Parser, decoding UTF-8
// incrementally or passing bytes through 1:1 in single-byte mode.
// Usage: NewByteStream(target), then Feed([]byte) per read from a pty/socket.
// Notes: Grounded on original_source/pyte/streams.py's ByteStream
// (codecs.getincrementaldecoder("utf-8")("replace")); the incremental decode
// loop here is built on stdlib unicode/utf8 rather than
// golang.org/x/text/encoding/unicode — see SPEC_FULL.md §4.G and DESIGN.md
// for why the latter doesn't fit this shape of problem.

package vtcore

import (
	"strings"
	"unicode/utf8"
)

// ByteStream wraps a Parser with a byte-oriented Feed, carrying any
// trailing incomplete UTF-8 sequence across calls.
type ByteStream struct {
	parser  *Parser
	pending []byte
}

// NewByteStream constructs a ByteStream driving target. Starts in UTF-8 mode.
func NewByteStream(target EventTarget) *ByteStream {
	p := NewParser(target)
	bs := &ByteStream{parser: p}
	p.onModeChange = func(utf8Mode bool) {
		// A mode switch invalidates whatever partial sequence was being
		// carried under the old mode.
		bs.pending = nil
	}
	return bs
}

// Feed decodes and dispatches data. In UTF-8 mode malformed sequences are
// replaced one byte at a time with U+FFFD; a sequence truncated at the end
// of data is buffered and completed by the next Feed call. In single-byte
// mode every byte maps directly to the rune of the same value.
func (bs *ByteStream) Feed(data []byte) {
	if len(data) == 0 {
		return
	}
	if bs.parser.UTF8Mode() {
		bs.feedUTF8(data)
	} else {
		bs.feedSingleByte(data)
	}
}

func (bs *ByteStream) feedUTF8(data []byte) {
	buf := data
	if len(bs.pending) > 0 {
		buf = append(bs.pending, data...)
		bs.pending = nil
	}

	var sb strings.Builder
	i := 0
	for i < len(buf) {
		if !utf8.FullRune(buf[i:]) {
			bs.pending = append([]byte(nil), buf[i:]...)
			break
		}
		r, size := utf8.DecodeRune(buf[i:])
		sb.WriteRune(r)
		i += size
	}
	if sb.Len() > 0 {
		bs.parser.FeedString(sb.String())
	}
}

func (bs *ByteStream) feedSingleByte(data []byte) {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	bs.parser.FeedString(string(runes))
}

// SelectOtherCharset switches the byte stream's decode mode directly,
// mirroring what an incoming ESC % sequence does: "@" selects single-byte
// pass-through, "G" or "8" returns to UTF-8.
func (bs *ByteStream) SelectOtherCharset(code rune) {
	switch code {
	case '@':
		bs.parser.setUTF8Mode(false)
	case 'G', '8':
		bs.parser.setUTF8Mode(true)
	}
}

// UTF8Mode reports the byte stream's current decode mode.
func (bs *ByteStream) UTF8Mode() bool { return bs.parser.UTF8Mode() }
