// Package binary provides bounds-checked primitives for reading and writing
// the big-endian tag/length/value encoding used by Serato files.
package binary

import (
	"encoding/binary"

	"github.com/fraserlangton/cratedigger/internal/types"
)

// Cursor is a forward-only reader over an in-memory byte buffer.
//
// Every read is bounds-checked and fails with *types.TruncatedError on
// short input. The "what" argument gives error messages context, the same
// way the read helpers do throughout the codec.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor creates a Cursor over buf, positioned at the start.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Offset returns the current position in the buffer.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.off
}

// ReadExact returns the next n bytes and advances the cursor.
// The returned slice aliases the underlying buffer.
func (c *Cursor) ReadExact(n int, what string) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, &types.TruncatedError{
			What:      what,
			Offset:    c.off,
			Want:      n,
			Remaining: c.Remaining(),
		}
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// ReadU32 reads a big-endian uint32 and advances the cursor.
func (c *Cursor) ReadU32(what string) (uint32, error) {
	b, err := c.ReadExact(4, what)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadTag reads a 4-byte chunk tag and advances the cursor.
func (c *Cursor) ReadTag(what string) (string, error) {
	b, err := c.ReadExact(4, what)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Peek returns up to n bytes without consuming them. Fewer bytes are
// returned when fewer remain; session decoding uses this to detect a
// synchronization tag before committing to a read.
func (c *Cursor) Peek(n int) []byte {
	if r := c.Remaining(); n > r {
		n = r
	}
	return c.buf[c.off : c.off+n]
}

// Skip advances the cursor by n bytes, failing if fewer remain.
func (c *Cursor) Skip(n int, what string) error {
	_, err := c.ReadExact(n, what)
	return err
}
