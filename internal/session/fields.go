// Package session decodes Serato session files: a binary log of tracks
// loaded onto playback decks, with per-track metadata keyed by small
// integer field ids instead of ASCII tags.
package session

// FieldID keys one record inside an adat chunk. Unlike crate tags, field
// ids are 4-byte big-endian integers with no ASCII meaning.
type FieldID uint32

// Field ids with conventional meanings in current session files.
const (
	FieldPath   FieldID = 2  // track file path (text)
	FieldTitle  FieldID = 6  // title (text)
	FieldArtist FieldID = 7  // artist (text)
	FieldStart  FieldID = 28 // deck-load start, epoch seconds (uint)
	FieldEnd    FieldID = 29 // deck-load end, epoch seconds (uint)
	FieldDeck   FieldID = 31 // deck index (uint)
)

// Convention assigns meanings to field ids. The format itself declares
// nothing: the assignment is convention only, so it is passed explicitly
// to the decoder rather than baked in, and a future format revision can
// substitute its own mapping without touching parsing logic.
type Convention struct {
	Path   FieldID
	Title  FieldID
	Artist FieldID
	Start  FieldID
	End    FieldID
	Deck   FieldID
}

// DefaultConvention returns the field assignment used by current Serato
// session files.
func DefaultConvention() Convention {
	return Convention{
		Path:   FieldPath,
		Title:  FieldTitle,
		Artist: FieldArtist,
		Start:  FieldStart,
		End:    FieldEnd,
		Deck:   FieldDeck,
	}
}
