package tlv

import "bytes"

// Value is a decoded chunk value: exactly one of the four kinds.
type Value struct {
	Kind     Kind
	Children []Child // KindContainer
	Text     string  // KindText
	UInt     uint32  // KindUInt
	Raw      []byte  // KindRaw
}

// Child is one (tag, value) pair inside a container. Child order is
// semantically significant: it is playback order for tracks and display
// order for columns.
type Child struct {
	Tag   Tag
	Value Value
}

// Container builds a container value from children in the given order.
func Container(children ...Child) Value {
	return Value{Kind: KindContainer, Children: children}
}

// Text builds a UTF-16BE text value.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// UInt builds an unsigned 32-bit integer value.
func UInt(v uint32) Value {
	return Value{Kind: KindUInt, UInt: v}
}

// Raw builds an opaque passthrough value.
func Raw(b []byte) Value {
	return Value{Kind: KindRaw, Raw: b}
}

// Equal reports structural equality, including child order.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindContainer:
		if len(v.Children) != len(o.Children) {
			return false
		}
		for i := range v.Children {
			if v.Children[i].Tag != o.Children[i].Tag {
				return false
			}
			if !v.Children[i].Value.Equal(o.Children[i].Value) {
				return false
			}
		}
		return true
	case KindText:
		return v.Text == o.Text
	case KindUInt:
		return v.UInt == o.UInt
	default:
		return bytes.Equal(v.Raw, o.Raw)
	}
}

// EqualChildren reports structural equality of two chunk sequences.
func EqualChildren(a, b []Child) bool {
	return Container(a...).Equal(Container(b...))
}

// FindAll appends to dst the text of every leaf with the given tag,
// searching depth-first in document order.
func FindAll(children []Child, tag Tag, dst []string) []string {
	for _, c := range children {
		if c.Tag == tag && c.Value.Kind == KindText {
			dst = append(dst, c.Value.Text)
		}
		if c.Value.Kind == KindContainer {
			dst = FindAll(c.Value.Children, tag, dst)
		}
	}
	return dst
}

// RewriteText rewrites the value of every leaf with the given tag via fn,
// depth-first, in place. It reports whether any rewrite produced a string
// different from the original; callers use this to skip re-encoding
// untouched files. No leaf is added or removed and order is preserved.
func RewriteText(children []Child, tag Tag, fn func(string) string) bool {
	changed := false
	for i := range children {
		c := &children[i]
		if c.Tag == tag && c.Value.Kind == KindText {
			old := c.Value.Text
			c.Value.Text = fn(old)
			if c.Value.Text != old {
				changed = true
			}
		}
		if c.Value.Kind == KindContainer {
			if RewriteText(c.Value.Children, tag, fn) {
				changed = true
			}
		}
	}
	return changed
}
