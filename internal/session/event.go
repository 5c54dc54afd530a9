package session

import (
	"slices"

	"github.com/fraserlangton/cratedigger/internal/text"
)

// Event is one track-load record: the raw field map of a single adat
// chunk. Derived fields are computed lazily from the map using the
// decoder's Convention; a record with no interpretable title or artist is
// still retained, and unknown field ids are carried as raw bytes.
type Event struct {
	// Fields maps field id to the raw value bytes, exactly as read.
	Fields map[FieldID][]byte

	conv Convention
}

// Path returns the track file path, decoded heuristically.
func (e *Event) Path() string {
	return text.DecodeHeuristic(e.Fields[e.conv.Path])
}

// Title returns the track title, decoded heuristically.
func (e *Event) Title() string {
	return text.DecodeHeuristic(e.Fields[e.conv.Title])
}

// Artist returns the track artist, decoded heuristically.
func (e *Event) Artist() string {
	return text.DecodeHeuristic(e.Fields[e.conv.Artist])
}

// Start returns the deck-load start time in epoch seconds (0 if absent).
func (e *Event) Start() int64 {
	return int64(text.DecodeUint(e.Fields[e.conv.Start]))
}

// End returns the deck-load end time in epoch seconds (0 if absent).
func (e *Event) End() int64 {
	return int64(text.DecodeUint(e.Fields[e.conv.End]))
}

// Deck returns the deck index the track was loaded onto (0 if absent).
func (e *Event) Deck() int {
	return int(text.DecodeUint(e.Fields[e.conv.Deck]))
}

// Duration returns End minus Start in seconds, or 0 when the end
// timestamp is missing or precedes the start.
func (e *Event) Duration() int64 {
	start, end := e.Start(), e.End()
	if end > start {
		return end - start
	}
	return 0
}

// SortByStart sorts events by their start timestamp, ascending. The
// decoder preserves file order, which is not necessarily chronological;
// consumers that need a timeline sort explicitly.
func SortByStart(events []*Event) {
	slices.SortStableFunc(events, func(a, b *Event) int {
		switch sa, sb := a.Start(), b.Start(); {
		case sa < sb:
			return -1
		case sa > sb:
			return 1
		}
		return 0
	})
}
