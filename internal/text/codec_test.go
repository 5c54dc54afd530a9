package text

import (
	"bytes"
	"testing"
)

func TestDecodeUTF16BE_RoundTrip(t *testing.T) {
	tests := []string{
		"",
		"/music/a.mp3",
		"Mr Breaker (Extended Mix)",
		"日本語のタイトル",
		"emoji \U0001F3B5 title", // surrogate pair
	}
	for _, want := range tests {
		enc := EncodeUTF16BE(want)
		got, err := DecodeUTF16BE(enc)
		if err != nil {
			t.Fatalf("DecodeUTF16BE(%q): unexpected error: %v", want, err)
		}
		if got != want {
			t.Errorf("round trip of %q: got %q", want, got)
		}
	}
}

func TestDecodeUTF16BE_OddLength(t *testing.T) {
	if _, err := DecodeUTF16BE([]byte{0x00, 0x41, 0x00}); err == nil {
		t.Fatal("expected error for odd length, got nil")
	}
}

func TestDecodeUTF16BE_UnpairedSurrogate(t *testing.T) {
	tests := [][]byte{
		{0xD8, 0x00, 0x00, 0x41}, // high surrogate followed by BMP char
		{0xD8, 0x00},             // lone high surrogate at end
		{0xDC, 0x00, 0x00, 0x41}, // lone low surrogate
	}
	for _, b := range tests {
		if _, err := DecodeUTF16BE(b); err == nil {
			t.Errorf("expected error for %v, got nil", b)
		}
	}
}

func TestDecodeHeuristic_BOMBigEndian(t *testing.T) {
	b := append([]byte{0xFE, 0xFF}, EncodeUTF16BE("ABC")...)
	if got := DecodeHeuristic(b); got != "ABC" {
		t.Errorf("expected ABC, got %q", got)
	}
}

func TestDecodeHeuristic_BOMLittleEndian(t *testing.T) {
	// "ABC" in UTF-16LE with BOM
	b := []byte{0xFF, 0xFE, 'A', 0x00, 'B', 0x00, 'C', 0x00}
	if got := DecodeHeuristic(b); got != "ABC" {
		t.Errorf("expected ABC, got %q", got)
	}
}

func TestDecodeHeuristic_NullRatioBigEndian(t *testing.T) {
	// UTF-16BE without BOM: nulls at even offsets.
	b := EncodeUTF16BE("/music/a.mp3")
	if got := DecodeHeuristic(b); got != "/music/a.mp3" {
		t.Errorf("expected /music/a.mp3, got %q", got)
	}
}

func TestDecodeHeuristic_NullRatioLittleEndian(t *testing.T) {
	b := []byte{'d', 0x00, 'e', 0x00, 'c', 0x00, 'k', 0x00}
	if got := DecodeHeuristic(b); got != "deck" {
		t.Errorf("expected deck, got %q", got)
	}
}

func TestDecodeHeuristic_ASCIIFallback(t *testing.T) {
	if got := DecodeHeuristic([]byte("ABC")); got != "ABC" {
		t.Errorf("expected ABC, got %q", got)
	}
}

func TestDecodeHeuristic_ASCIIWithStrayNulls(t *testing.T) {
	// One NUL in six bytes keeps the odd-offset null ratio under the
	// UTF-16 threshold, so this takes the UTF-8-after-strip path.
	if got := DecodeHeuristic([]byte{'A', 'B', 'C', 'D', 'E', 0x00}); got != "ABCDE" {
		t.Errorf("expected ABCDE, got %q", got)
	}
}

func TestDecodeHeuristic_ShortAsciiWithNullIsUTF16(t *testing.T) {
	// "ABC\x00" has half its odd offsets null, which crosses the 0.4
	// threshold: the bytes are read as UTF-16LE code units, not ASCII.
	if got := DecodeHeuristic([]byte{'A', 'B', 'C', 0x00}); got != "䉁C" {
		t.Errorf("expected 䉁C, got %q", got)
	}
}

func TestDecodeHeuristic_CJKWithoutNulls(t *testing.T) {
	// UTF-16BE CJK text has no null bytes at all, so it reaches the raw
	// UTF-16BE strategy at the end.
	b := EncodeUTF16BE("日本語")
	if got := DecodeHeuristic(b); got != "日本語" {
		t.Errorf("expected 日本語, got %q", got)
	}
}

func TestDecodeHeuristic_HexFallback(t *testing.T) {
	// Odd length, invalid UTF-8: nothing decodes, so hex comes back.
	b := []byte{0xFF, 0x80, 0xFE}
	if got := DecodeHeuristic(b); got != "ff80fe" {
		t.Errorf("expected ff80fe, got %q", got)
	}
}

func TestDecodeHeuristic_Empty(t *testing.T) {
	if got := DecodeHeuristic(nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestDecodeUint(t *testing.T) {
	tests := []struct {
		in   []byte
		want uint64
	}{
		{nil, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x65, 0x53, 0xF1, 0x00}, 1700000000},
		{[]byte{0x00, 0x00, 0x00, 0x1F}, 31},
	}
	for _, tt := range tests {
		if got := DecodeUint(tt.in); got != tt.want {
			t.Errorf("DecodeUint(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestEncodeUTF16BE_ByteLayout(t *testing.T) {
	got := EncodeUTF16BE("AB")
	want := []byte{0x00, 'A', 0x00, 'B'}
	if !bytes.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
