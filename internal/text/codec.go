// Package text implements the two string representations used by Serato
// files: strict UTF-16BE for crate fields, and a best-effort heuristic
// decoder for session field values whose encoding is not declared.
package text

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/fraserlangton/cratedigger/internal/types"
)

// nullRatioThreshold is the fraction of zero bytes at even (or odd) offsets
// above which a session string is assumed to be UTF-16 in the matching
// endianness. Empirical value carried over from observed session files.
const nullRatioThreshold = 0.4

// DecodeUTF16BE strictly decodes b as UTF-16 big-endian.
//
// It fails with *types.InvalidEncodingError on odd length or on an
// unpaired surrogate, rather than substituting replacement characters:
// crate round-tripping depends on decode being exactly invertible.
func DecodeUTF16BE(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", &types.InvalidEncodingError{Reason: "odd byte length for UTF-16BE"}
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.BigEndian.Uint16(b[2*i:])
	}
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u < 0xDC00:
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] >= 0xE000 {
				return "", &types.InvalidEncodingError{Reason: "unpaired high surrogate"}
			}
			i++
		case u >= 0xDC00 && u < 0xE000:
			return "", &types.InvalidEncodingError{Reason: "unpaired low surrogate"}
		}
	}
	return string(utf16.Decode(units)), nil
}

// EncodeUTF16BE is the inverse of DecodeUTF16BE.
func EncodeUTF16BE(s string) []byte {
	units := utf16.Encode([]rune(s))
	b := make([]byte, 2*len(units))
	for i, u := range units {
		binary.BigEndian.PutUint16(b[2*i:], u)
	}
	return b
}

// DecodeHeuristic decodes a session-file string field of unknown encoding.
//
// The decision procedure, in order:
//  1. UTF-16BE byte-order mark: decode BE, strip BOM and NULs.
//  2. UTF-16LE byte-order mark: decode LE, strip BOM and NULs.
//  3. Null bytes concentrated at even offsets: decode BE, strip NULs.
//     Null bytes concentrated at odd offsets: decode LE, strip NULs.
//  4. UTF-8/ASCII after stripping stray NUL padding.
//  5. Raw UTF-16BE without stripping (purely non-ASCII text has no nulls).
//  6. Lowercase hex of the raw bytes.
//
// It never fails and is lossy by design for malformed input; it must not
// be used where round-trip fidelity matters.
func DecodeHeuristic(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	if bytes.HasPrefix(b, []byte{0xFE, 0xFF}) {
		if s, err := decodeUTF16(b, unicode.BigEndian); err == nil {
			return strings.Trim(s, "\ufeff\x00")
		}
	}
	if bytes.HasPrefix(b, []byte{0xFF, 0xFE}) {
		if s, err := decodeUTF16(b, unicode.LittleEndian); err == nil {
			return strings.Trim(s, "\ufeff\x00")
		}
	}

	if len(b) > 2 {
		var evenNulls, oddNulls int
		for i, c := range b {
			if c == 0 {
				if i%2 == 0 {
					evenNulls++
				} else {
					oddNulls++
				}
			}
		}
		half := float64(len(b)) / 2
		if float64(evenNulls)/half > nullRatioThreshold {
			if s, err := decodeUTF16(b, unicode.BigEndian); err == nil {
				return strings.TrimSpace(strings.ReplaceAll(s, "\x00", ""))
			}
		}
		if float64(oddNulls)/half > nullRatioThreshold {
			if s, err := decodeUTF16(b, unicode.LittleEndian); err == nil {
				return strings.TrimSpace(strings.ReplaceAll(s, "\x00", ""))
			}
		}
	}

	stripped := bytes.ReplaceAll(b, []byte{0}, nil)
	if utf8.Valid(stripped) {
		return strings.TrimSpace(string(stripped))
	}

	if s, err := decodeUTF16(b, unicode.BigEndian); err == nil {
		return s
	}

	return hex.EncodeToString(b)
}

// decodeUTF16 decodes b in the given endianness via x/text. The x/text
// decoder substitutes U+FFFD for malformed input instead of failing, so a
// replacement character in the output is reported as an error to let the
// heuristic fall through to its next strategy.
func decodeUTF16(b []byte, e unicode.Endianness) (string, error) {
	if len(b)%2 != 0 {
		return "", &types.InvalidEncodingError{Reason: "odd byte length for UTF-16"}
	}
	dec := unicode.UTF16(e, unicode.IgnoreBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return "", err
	}
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", &types.InvalidEncodingError{Reason: "malformed UTF-16 code unit"}
	}
	return string(out), nil
}

// DecodeUint decodes a big-endian unsigned integer of any byte length.
// Session integer fields are nominally 4 bytes but shorter or empty
// values appear in the wild; an empty value decodes to 0.
func DecodeUint(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}
