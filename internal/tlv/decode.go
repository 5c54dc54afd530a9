package tlv

import (
	"encoding/binary"
	"fmt"

	binutil "github.com/fraserlangton/cratedigger/internal/binary"
	"github.com/fraserlangton/cratedigger/internal/text"
	"github.com/fraserlangton/cratedigger/internal/types"
)

// Decode parses buf as a chunk sequence, recursing into containers.
//
// Decoding never fails: a record whose declared length runs past the end
// of the buffer, or trailing bytes too short to hold a tag and length,
// stop the walk cleanly and everything parsed so far is returned. Crate
// files in the wild carry trailing padding, so this is end-of-data, not
// an error; such stops are reported as warnings.
func Decode(buf []byte) ([]Child, []types.Warning) {
	var children []Child
	var warnings []types.Warning

	c := binutil.NewCursor(buf)
	for c.Remaining() >= 8 {
		start := c.Offset()
		tag, _ := c.ReadTag("chunk tag")
		length, _ := c.ReadU32("chunk length")
		raw, err := c.ReadExact(int(length), fmt.Sprintf("chunk %q value", tag))
		if err != nil {
			warnings = append(warnings, types.Warning{
				Stage:   "crate",
				Offset:  start,
				Message: fmt.Sprintf("chunk %q: declared length %d exceeds remaining %d bytes", tag, length, c.Remaining()),
			})
			break
		}
		value, w := decodeValue(Tag(tag), raw, start+8)
		warnings = append(warnings, w...)
		children = append(children, Child{Tag: Tag(tag), Value: value})
	}

	if r := c.Remaining(); r > 0 && r < 8 {
		warnings = append(warnings, types.Warning{
			Stage:   "crate",
			Offset:  c.Offset(),
			Message: fmt.Sprintf("%d trailing bytes after last complete chunk", r),
		})
	}

	return children, warnings
}

// decodeValue applies the classification table to one chunk value.
// A leaf that cannot be decoded as its classified kind is kept as raw
// bytes instead of failing: preserving the exact bytes through a round
// trip matters more than the classification.
func decodeValue(tag Tag, raw []byte, offset int) (Value, []types.Warning) {
	switch Classify(tag) {
	case KindContainer:
		children, warnings := Decode(raw)
		return Container(children...), warnings

	case KindText:
		s, err := text.DecodeUTF16BE(raw)
		if err != nil {
			return Raw(raw), []types.Warning{{
				Stage:   "crate",
				Offset:  offset,
				Message: fmt.Sprintf("chunk %q: %v, keeping raw bytes", tag, err),
			}}
		}
		return Text(s), nil

	case KindUInt:
		if len(raw) != 4 {
			return Raw(raw), []types.Warning{{
				Stage:   "crate",
				Offset:  offset,
				Message: fmt.Sprintf("chunk %q: expected 4 bytes for uint, got %d, keeping raw bytes", tag, len(raw)),
			}}
		}
		return UInt(binary.BigEndian.Uint32(raw)), nil

	default:
		return Raw(raw), nil
	}
}
