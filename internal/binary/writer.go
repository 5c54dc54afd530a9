package binary

import "encoding/binary"

// Writer accumulates bytes for an encoded chunk stream.
//
// It is append-only: values are written in document order and the finished
// buffer is retrieved with Bytes().
type Writer struct {
	buf []byte
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteBytes appends raw bytes.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteTag appends a 4-byte chunk tag.
func (w *Writer) WriteTag(tag string) {
	w.buf = append(w.buf, tag...)
}

// WriteU32 appends a big-endian uint32.
func (w *Writer) WriteU32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}
