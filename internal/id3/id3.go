// Package id3 is a minimal ID3v2.3/2.4 text-frame reader.
//
// The codec itself never touches audio files; this package serves the
// monitoring and reporting layers, which look up artist/title metadata
// and the Camelot key for tracks named in crate and session files. Frame
// writing is deliberately out of scope.
package id3

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Tags holds the text frames this reader understands.
type Tags struct {
	Artist string // TPE1
	Title  string // TIT2
	Album  string // TALB
	Genre  string // TCON
	Year   int    // TYER (2.3) or TDRC (2.4)

	// Frames the Camelot key conventionally hides in.
	Publisher string // TPUB
	Grouping  string // TIT1
	Key       string // TKEY
}

// TagWriter is the write side of the tag surface. Writing a frame means
// resizing the tag and rewriting the file, which this package does not
// do; callers that need it supply their own implementation.
type TagWriter interface {
	WriteFrame(path, frameID, text string) error
}

// frame is one ID3v2 frame header plus payload.
type frame struct {
	id   string
	data []byte
}

// ReadTags reads the ID3v2 text frames of an MP3 file. Files without an
// ID3v2 header return an error; callers treat that as "no metadata", not
// a batch-stopping failure.
func ReadTags(path string) (*Tags, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) (*Tags, error) {
	if len(data) < 10 || string(data[0:3]) != "ID3" {
		return nil, fmt.Errorf("no ID3v2 header")
	}

	version := data[3]
	if version != 3 && version != 4 {
		return nil, fmt.Errorf("unsupported ID3v2 version: 2.%d", version)
	}
	flags := data[5]
	size := decodeSynchsafe(data[6:10])

	tagEnd := 10 + int(size)
	if tagEnd > len(data) {
		tagEnd = len(data)
	}
	offset := 10

	// Skip the extended header if present.
	if flags&0x40 != 0 && offset+4 <= tagEnd {
		extSize := 0
		if version == 4 {
			extSize = int(decodeSynchsafe(data[offset : offset+4]))
		} else {
			extSize = int(binary.BigEndian.Uint32(data[offset:offset+4])) + 4
		}
		offset += extSize
	}

	tags := &Tags{}
	for offset+10 <= tagEnd {
		if data[offset] == 0 {
			break // padding
		}
		id := string(data[offset : offset+4])
		var frameSize uint32
		if version == 4 {
			frameSize = decodeSynchsafe(data[offset+4 : offset+8])
		} else {
			frameSize = binary.BigEndian.Uint32(data[offset+4 : offset+8])
		}
		end := offset + 10 + int(frameSize)
		if end > tagEnd {
			break
		}
		if strings.HasPrefix(id, "T") && id != "TXXX" {
			applyTextFrame(frame{id: id, data: data[offset+10 : end]}, tags)
		}
		offset = end
	}

	return tags, nil
}

func applyTextFrame(f frame, tags *Tags) {
	if len(f.data) < 1 {
		return
	}
	text := decodeText(f.data[1:], f.data[0])

	switch f.id {
	case "TIT2":
		tags.Title = text
	case "TPE1":
		tags.Artist = text
	case "TALB":
		tags.Album = text
	case "TCON":
		tags.Genre = text
	case "TYER", "TDRC":
		if year := parseYear(text); year > 0 {
			tags.Year = year
		}
	case "TPUB":
		tags.Publisher = text
	case "TIT1":
		tags.Grouping = text
	case "TKEY":
		tags.Key = text
	}
}

// camelotInArtist matches a Camelot key tucked into an artist name, like
// "Some Artist (8A)".
var camelotInArtist = regexp.MustCompile(`\(([0-9]+[AB])\)`)

// CamelotKey returns the harmonic-mixing key for a track, trying the
// frames it is conventionally stored in: TPUB, then TIT1, then the
// standard TKEY, then a bracketed key inside TPE1. Returns "" when the
// file has no readable key.
func CamelotKey(path string) string {
	tags, err := ReadTags(path)
	if err != nil {
		return ""
	}
	return tags.Camelot()
}

// Camelot resolves the key from already-read tags; see CamelotKey.
func (t *Tags) Camelot() string {
	if t.Publisher != "" {
		return t.Publisher
	}
	if t.Grouping != "" {
		return t.Grouping
	}
	if t.Key != "" {
		return t.Key
	}
	if m := camelotInArtist.FindStringSubmatch(t.Artist); m != nil {
		return m[1]
	}
	return ""
}

// decodeSynchsafe decodes a synchsafe integer (7 bits per byte).
func decodeSynchsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// decodeText decodes frame text based on the ID3v2 encoding byte.
// Terminators are trimmed per encoding: single NULs for the byte
// encodings, NUL pairs for UTF-16, where a lone trailing zero may be
// the high byte of the final code unit.
func decodeText(data []byte, encoding byte) string {
	switch encoding {
	case 0: // ISO-8859-1
		return decodeLatin1(bytes.TrimRight(data, "\x00"))
	case 1: // UTF-16 with BOM
		return decodeUTF16BOM(trimNullPairs(data))
	case 2: // UTF-16BE without BOM (ID3v2.4)
		return decodeUTF16(trimNullPairs(data), false)
	case 3: // UTF-8 (ID3v2.4)
		return strings.TrimRight(string(data), "\x00")
	default:
		return decodeLatin1(bytes.TrimRight(data, "\x00"))
	}
}

// trimNullPairs strips trailing two-byte NUL terminators.
func trimNullPairs(data []byte) []byte {
	for len(data) >= 2 && data[len(data)-1] == 0 && data[len(data)-2] == 0 {
		data = data[:len(data)-2]
	}
	return data
}

func decodeLatin1(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}

func decodeUTF16BOM(data []byte) string {
	if len(data) >= 2 {
		if data[0] == 0xFF && data[1] == 0xFE {
			return decodeUTF16(data[2:], true)
		}
		if data[0] == 0xFE && data[1] == 0xFF {
			return decodeUTF16(data[2:], false)
		}
	}
	return decodeUTF16(data, false)
}

func decodeUTF16(data []byte, littleEndian bool) string {
	units := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		if littleEndian {
			units = append(units, binary.LittleEndian.Uint16(data[i:]))
		} else {
			units = append(units, binary.BigEndian.Uint16(data[i:]))
		}
	}
	return strings.TrimRight(string(utf16.Decode(units)), "\x00")
}

func parseYear(text string) int {
	if len(text) >= 4 {
		if year, err := strconv.Atoi(text[:4]); err == nil {
			return year
		}
	}
	return 0
}
