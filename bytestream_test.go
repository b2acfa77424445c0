package vtcore

import "testing"

func TestByteStream_UTF8SplitAcrossFeedCalls(t *testing.T) {
	s, err := NewScreen(80, 24)
	if err != nil {
		t.Fatal(err)
	}
	bs := NewByteStream(s)

	euro := []byte("€") // 0xE2 0x82 0xAC
	bs.Feed(euro[:1])
	bs.Feed(euro[1:])

	if got := s.Buffer().At(0, 0).Data; got != "€" {
		t.Fatalf("expected split multibyte rune drawn as %q, got %q", "€", got)
	}
}

func TestByteStream_MalformedUTF8Replaced(t *testing.T) {
	s, err := NewScreen(80, 24)
	if err != nil {
		t.Fatal(err)
	}
	bs := NewByteStream(s)
	bs.Feed([]byte{0xFF, 'A'})

	if got := s.Buffer().At(0, 1).Data; got != "A" {
		t.Fatalf("expected the byte following the malformed one to still draw, got %q", got)
	}
}

func TestByteStream_SingleByteModePassesThrough(t *testing.T) {
	s, err := NewScreen(80, 24)
	if err != nil {
		t.Fatal(err)
	}
	bs := NewByteStream(s)
	bs.SelectOtherCharset('@')
	if bs.UTF8Mode() {
		t.Fatal("expected single-byte mode after '@'")
	}

	bs.Feed([]byte{'A', 'B'})
	if got := s.Buffer().At(0, 0).Data; got != "A" {
		t.Fatalf("expected 'A' in single-byte mode, got %q", got)
	}

	bs.SelectOtherCharset('G')
	if !bs.UTF8Mode() {
		t.Fatal("expected UTF-8 mode restored after 'G'")
	}
}

func TestByteStream_ModeSwitchDropsPendingPartialSequence(t *testing.T) {
	s, err := NewScreen(80, 24)
	if err != nil {
		t.Fatal(err)
	}
	bs := NewByteStream(s)

	euro := []byte("€")
	bs.Feed(euro[:1]) // leaves a pending partial sequence

	bs.SelectOtherCharset('@')
	bs.SelectOtherCharset('G')

	bs.Feed([]byte("X"))
	if got := s.Buffer().At(0, 0).Data; got != "X" {
		t.Fatalf("expected stale partial sequence discarded, got %q", got)
	}
}
