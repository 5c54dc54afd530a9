package id3

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// encodeSynchsafe is the test-side inverse of decodeSynchsafe.
func encodeSynchsafe(v uint32) []byte {
	return []byte{
		byte(v >> 21 & 0x7F),
		byte(v >> 14 & 0x7F),
		byte(v >> 7 & 0x7F),
		byte(v & 0x7F),
	}
}

// textFrame builds one ID3v2.3 text frame with ISO-8859-1 encoding.
func textFrame(id, text string) []byte {
	payload := append([]byte{0}, text...)
	b := []byte(id)
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(payload)))
	b = append(b, size[:]...)
	b = append(b, 0, 0) // flags
	return append(b, payload...)
}

// id3v23 wraps frames in an ID3v2.3 tag header.
func id3v23(frames ...[]byte) []byte {
	var body []byte
	for _, f := range frames {
		body = append(body, f...)
	}
	b := []byte("ID3")
	b = append(b, 3, 0, 0) // version 2.3, no flags
	b = append(b, encodeSynchsafe(uint32(len(body)))...)
	return append(b, body...)
}

func TestParse_TextFrames(t *testing.T) {
	data := id3v23(
		textFrame("TPE1", "Bounce Inc"),
		textFrame("TIT2", "Mr Breaker"),
		textFrame("TALB", "bounce inc, tech support"),
		textFrame("TCON", "Bounce"),
		textFrame("TYER", "2024"),
	)

	tags, err := parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tags.Artist != "Bounce Inc" {
		t.Errorf("artist = %q", tags.Artist)
	}
	if tags.Title != "Mr Breaker" {
		t.Errorf("title = %q", tags.Title)
	}
	if tags.Album != "bounce inc, tech support" {
		t.Errorf("album = %q", tags.Album)
	}
	if tags.Genre != "Bounce" {
		t.Errorf("genre = %q", tags.Genre)
	}
	if tags.Year != 2024 {
		t.Errorf("year = %d", tags.Year)
	}
}

func TestParse_UTF16Frame(t *testing.T) {
	// Encoding byte 1: UTF-16 with little-endian BOM.
	payload := []byte{1, 0xFF, 0xFE, 'A', 0, 'B', 0}
	f := []byte("TIT2")
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(payload)))
	f = append(f, size[:]...)
	f = append(f, 0, 0)
	f = append(f, payload...)

	tags, err := parse(id3v23(f))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tags.Title != "AB" {
		t.Errorf("title = %q", tags.Title)
	}
}

func TestParse_UTF16FrameWithTerminator(t *testing.T) {
	// The high byte of a trailing ASCII code unit is zero; only the
	// two-byte NUL terminator may be trimmed, not that byte.
	payload := []byte{1, 0xFF, 0xFE, 'A', 0, 'B', 0, 0, 0}
	f := []byte("TPE1")
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(payload)))
	f = append(f, size[:]...)
	f = append(f, 0, 0)
	f = append(f, payload...)

	tags, err := parse(id3v23(f))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tags.Artist != "AB" {
		t.Errorf("artist = %q", tags.Artist)
	}
}

func TestParse_NoHeader(t *testing.T) {
	if _, err := parse([]byte("not an mp3 file")); err == nil {
		t.Fatal("expected error for missing ID3 header")
	}
}

func TestCamelot_Priority(t *testing.T) {
	tests := []struct {
		tags Tags
		want string
	}{
		{Tags{Publisher: "8a", Grouping: "A minor", Key: "Am"}, "8a"},
		{Tags{Grouping: "A minor", Key: "Am"}, "A minor"},
		{Tags{Key: "Am"}, "Am"},
		{Tags{Artist: "Some Artist (8A)"}, "8A"},
		{Tags{Artist: "Plain Artist"}, ""},
	}
	for _, tt := range tests {
		if got := tt.tags.Camelot(); got != tt.want {
			t.Errorf("Camelot() on %+v = %q, want %q", tt.tags, got, tt.want)
		}
	}
}

func TestReadTags_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.mp3")
	data := id3v23(textFrame("TPUB", "11b"), textFrame("TPE1", "Artist"))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	tags, err := ReadTags(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tags.Publisher != "11b" {
		t.Errorf("publisher = %q", tags.Publisher)
	}
	if CamelotKey(path) != "11b" {
		t.Errorf("CamelotKey = %q", CamelotKey(path))
	}
}

func TestCamelotKey_MissingFile(t *testing.T) {
	if got := CamelotKey(filepath.Join(t.TempDir(), "missing.mp3")); got != "" {
		t.Errorf("expected empty key for missing file, got %q", got)
	}
}
