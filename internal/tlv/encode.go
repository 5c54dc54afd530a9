package tlv

import (
	binutil "github.com/fraserlangton/cratedigger/internal/binary"
	"github.com/fraserlangton/cratedigger/internal/text"
)

// Encode flattens a chunk sequence back to bytes, in document order.
//
// Each value is serialized by the Kind that Classify assigned during
// decoding (or that a constructor assigned when the tree was built), so
// decode and encode always agree. A container's length field is the sum
// of its children's encoded sizes plus 8 bytes of header per child, by
// construction.
func Encode(children []Child) []byte {
	w := binutil.NewWriter()
	encodeChildren(w, children)
	return w.Bytes()
}

func encodeChildren(w *binutil.Writer, children []Child) {
	for _, c := range children {
		value := encodeValue(c.Value)
		w.WriteTag(string(c.Tag))
		w.WriteU32(uint32(len(value)))
		w.WriteBytes(value)
	}
}

func encodeValue(v Value) []byte {
	switch v.Kind {
	case KindContainer:
		inner := binutil.NewWriter()
		encodeChildren(inner, v.Children)
		return inner.Bytes()
	case KindText:
		return text.EncodeUTF16BE(v.Text)
	case KindUInt:
		w := binutil.NewWriter()
		w.WriteU32(v.UInt)
		return w.Bytes()
	default:
		return v.Raw
	}
}
