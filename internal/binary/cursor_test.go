package binary

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fraserlangton/cratedigger/internal/types"
)

func TestCursor_ReadExact(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04})

	b, err := c.ReadExact(2, "test read")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(b, []byte{0x01, 0x02}) {
		t.Errorf("expected [0x01, 0x02], got %v", b)
	}
	if c.Offset() != 2 {
		t.Errorf("expected offset 2, got %d", c.Offset())
	}
	if c.Remaining() != 2 {
		t.Errorf("expected 2 remaining, got %d", c.Remaining())
	}
}

func TestCursor_ReadExact_Truncated(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})

	_, err := c.ReadExact(4, "short read")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var terr *types.TruncatedError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *types.TruncatedError, got %T", err)
	}
	if terr.Want != 4 || terr.Remaining != 2 {
		t.Errorf("expected want=4 remaining=2, got want=%d remaining=%d", terr.Want, terr.Remaining)
	}

	// A failed read must not advance the cursor.
	if c.Offset() != 0 {
		t.Errorf("expected offset 0 after failed read, got %d", c.Offset())
	}
}

func TestCursor_ReadU32(t *testing.T) {
	c := NewCursor([]byte{0x12, 0x34, 0x56, 0x78})

	v, err := c.ReadU32("test uint32")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x12345678 {
		t.Errorf("expected 0x12345678, got 0x%08x", v)
	}
}

func TestCursor_ReadU32_Truncated(t *testing.T) {
	c := NewCursor([]byte{0x12, 0x34})

	if _, err := c.ReadU32("short uint32"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestCursor_ReadTag(t *testing.T) {
	c := NewCursor([]byte("otrk" + "rest"))

	tag, err := c.ReadTag("tag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag != "otrk" {
		t.Errorf("expected otrk, got %q", tag)
	}
}

func TestCursor_Peek(t *testing.T) {
	c := NewCursor([]byte("oent...."))

	if got := string(c.Peek(4)); got != "oent" {
		t.Errorf("expected oent, got %q", got)
	}
	// Peek must not consume.
	if c.Offset() != 0 {
		t.Errorf("expected offset 0 after peek, got %d", c.Offset())
	}

	// Peek past the end returns only what remains.
	if err := c.Skip(6, "skip"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Peek(4); len(got) != 2 {
		t.Errorf("expected 2 bytes from short peek, got %d", len(got))
	}
}

func TestWriter(t *testing.T) {
	w := NewWriter()
	w.WriteTag("ptrk")
	w.WriteU32(16)
	w.WriteBytes([]byte{0xAA, 0xBB})

	want := []byte{'p', 't', 'r', 'k', 0x00, 0x00, 0x00, 0x10, 0xAA, 0xBB}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("expected %v, got %v", want, w.Bytes())
	}
	if w.Len() != 10 {
		t.Errorf("expected length 10, got %d", w.Len())
	}
}
