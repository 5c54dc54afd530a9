package session

import (
	"bytes"
	"fmt"

	binutil "github.com/fraserlangton/cratedigger/internal/binary"
	"github.com/fraserlangton/cratedigger/internal/text"
	"github.com/fraserlangton/cratedigger/internal/types"
)

// Session chunk tags.
const (
	tagVersion = "vrsn"
	tagEntry   = "oent" // wraps exactly one adat record
	tagData    = "adat" // flat field sequence for one track event
)

// Session is a decoded session file.
type Session struct {
	// Version is the format version string from the file header.
	Version string

	// Header holds every byte before the first oent marker, opaque. The
	// header layout beyond the version string is not structurally
	// delimited, so it is preserved verbatim should a write-back ever be
	// needed.
	Header []byte

	// Events in file order (append order, not necessarily chronological).
	Events []*Event

	// Warnings collected during decoding. Decoding itself never fails:
	// truncation mid-record stops the parse and keeps every complete
	// entry read so far.
	Warnings []types.Warning
}

// Decode parses a fully-buffered session file. Field meanings come from
// conv; pass DefaultConvention() for current files.
func Decode(buf []byte, conv Convention) *Session {
	s := &Session{}
	s.decodeHeader(buf)

	// The header is a fixed but unverified length, so synchronize on the
	// first occurrence of the entry-wrapper marker instead of trusting it.
	start := bytes.Index(buf, []byte(tagEntry))
	if start < 0 {
		s.Header = buf
		s.Warnings = append(s.Warnings, types.Warning{
			Stage:   "session",
			Message: "no entry marker found",
		})
		return s
	}
	s.Header = buf[:start]

	c := binutil.NewCursor(buf[start:])
	for c.Remaining() >= 8 {
		if string(c.Peek(4)) == tagEntry {
			// The entry wrapper carries no content of its own: its length
			// covers the adat record that follows, which is read as the
			// next chunk in the stream.
			c.Skip(8, "entry wrapper")
			continue
		}

		offset := start + c.Offset()
		tag, _ := c.ReadTag("chunk tag")
		length, _ := c.ReadU32("chunk length")
		content, err := c.ReadExact(int(length), fmt.Sprintf("chunk %q content", tag))
		if err != nil {
			s.Warnings = append(s.Warnings, types.Warning{
				Stage:   "session",
				Offset:  offset,
				Message: fmt.Sprintf("chunk %q truncated, keeping %d complete entries", tag, len(s.Events)),
			})
			break
		}
		if tag == tagData {
			s.Events = append(s.Events, decodeFields(content, conv))
		}
		// Other chunk kinds are skipped.
	}

	return s
}

// decodeHeader reads the fixed session header: vrsn tag, 2 reserved
// bytes, then an 8-byte UTF-16BE version string.
func (s *Session) decodeHeader(buf []byte) {
	c := binutil.NewCursor(buf)
	if string(c.Peek(4)) != tagVersion {
		s.Warnings = append(s.Warnings, types.Warning{
			Stage:   "header",
			Message: "missing vrsn header",
		})
		return
	}
	c.Skip(4, "vrsn tag")
	if err := c.Skip(2, "reserved bytes"); err != nil {
		s.Warnings = append(s.Warnings, types.Warning{Stage: "header", Message: err.Error()})
		return
	}
	raw, err := c.ReadExact(8, "version string")
	if err != nil {
		s.Warnings = append(s.Warnings, types.Warning{Stage: "header", Message: err.Error()})
		return
	}
	version, err := text.DecodeUTF16BE(raw)
	if err != nil {
		s.Warnings = append(s.Warnings, types.Warning{
			Stage:   "header",
			Message: fmt.Sprintf("version string: %v", err),
		})
		return
	}
	s.Version = version
}

// decodeFields parses an adat chunk: a flat sequence of
// (field id u32, length u32, value) records. An unparsable trailing
// record ends the sequence; everything read so far is kept.
func decodeFields(content []byte, conv Convention) *Event {
	fields := make(map[FieldID][]byte)
	c := binutil.NewCursor(content)
	for c.Remaining() >= 8 {
		id, _ := c.ReadU32("field id")
		length, _ := c.ReadU32("field length")
		value, err := c.ReadExact(int(length), fmt.Sprintf("field %d value", id))
		if err != nil {
			break
		}
		fields[FieldID(id)] = value
	}
	return &Event{Fields: fields, conv: conv}
}

// NewEvent builds an event from a raw field map, for tests and tooling
// that synthesize session data.
func NewEvent(fields map[FieldID][]byte, conv Convention) *Event {
	return &Event{Fields: fields, conv: conv}
}
