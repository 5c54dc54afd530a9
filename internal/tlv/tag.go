// Package tlv implements the recursive tag/length/value encoding used by
// Serato crate files: a 4-byte ASCII tag, a 4-byte big-endian length, and
// a value that is itself a chunk sequence, a UTF-16BE string, an unsigned
// 32-bit integer, or opaque bytes, depending on the tag.
package tlv

// Tag is a four-byte ASCII chunk identifier.
type Tag string

// Tags with known crate-format meanings.
const (
	TagVersion    Tag = "vrsn" // format version string
	TagTrack      Tag = "otrk" // one track entry
	TagTrackPath  Tag = "ptrk" // track file path
	TagColumn     Tag = "ocol" // column definition
	TagColumnName Tag = "tvcn" // column name
	TagColumnSort Tag = "osrt" // sort order
	TagSubVersion Tag = "sbav" // opaque sub-version blob
)

// Kind classifies how a tag's value is encoded.
type Kind int

const (
	// KindContainer values are a nested chunk sequence.
	KindContainer Kind = iota
	// KindText values are UTF-16BE strings.
	KindText
	// KindUInt values are big-endian unsigned 32-bit integers.
	KindUInt
	// KindRaw values pass through undecoded.
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindText:
		return "text"
	case KindUInt:
		return "uint"
	case KindRaw:
		return "raw"
	}
	return "unknown"
}

// Classify maps a tag to its value kind. Exact-tag rules take precedence;
// otherwise the tag's first character decides. Tags matching no rule are
// raw passthrough, so unknown future tags survive a round trip unchanged.
//
// Decode assigns the resulting Kind to each value and Encode serializes
// by that Kind, so this table is the single source of truth for both
// directions.
func Classify(t Tag) Kind {
	switch t {
	case TagVersion:
		return KindText
	case TagSubVersion:
		return KindRaw
	}
	if len(t) == 0 {
		return KindRaw
	}
	switch t[0] {
	case 'o':
		return KindContainer
	case 't', 'p':
		return KindText
	case 'u':
		return KindUInt
	case 'b':
		return KindRaw
	}
	return KindRaw
}
