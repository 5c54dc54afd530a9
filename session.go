package cratedigger

import (
	"os"

	"github.com/fraserlangton/cratedigger/internal/session"
	"github.com/fraserlangton/cratedigger/internal/types"
)

// SessionEvent is an alias to session.Event, one track-load record.
type SessionEvent = session.Event

// FieldID is an alias to session.FieldID, the integer key of a session
// field record.
type FieldID = session.FieldID

// FieldConvention is an alias to session.Convention, the field-id to
// meaning assignment passed to the session decoder.
type FieldConvention = session.Convention

// DefaultFieldConvention returns the field assignment used by current
// Serato session files.
func DefaultFieldConvention() FieldConvention {
	return session.DefaultConvention()
}

// Session is a decoded session file.
type Session struct {
	// Path the session was opened from ("" for buffers).
	Path string

	// Version is the format version string from the file header.
	Version string

	// Header holds every byte before the first entry marker, opaque.
	Header []byte

	// Events in file order. Sessions log deck loads as they happen but
	// file order is not guaranteed chronological; use SortedEvents for a
	// timeline.
	Events []*SessionEvent

	// Warnings encountered during decoding (non-fatal issues).
	Warnings []Warning
}

// SessionOption configures session decoding.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	convention session.Convention
}

func defaultSessionOptions() *sessionOptions {
	return &sessionOptions{convention: session.DefaultConvention()}
}

// WithConvention substitutes the field-id convention used to interpret
// session records, for format revisions that assign meanings differently.
func WithConvention(conv FieldConvention) SessionOption {
	return func(o *sessionOptions) {
		o.convention = conv
	}
}

// OpenSession reads and decodes a session file.
//
// Session decoding never fails on content: truncation mid-record stops
// the parse and every complete entry read so far is returned, with a
// warning. Only the file read can return an error.
func OpenSession(path string, opts ...SessionOption) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.IoError{Path: path, Op: "read session", Err: err}
	}
	s := DecodeSession(data, opts...)
	s.Path = path
	return s, nil
}

// DecodeSession decodes a session from a fully-buffered byte slice.
func DecodeSession(data []byte, opts ...SessionOption) *Session {
	options := defaultSessionOptions()
	for _, opt := range opts {
		opt(options)
	}
	decoded := session.Decode(data, options.convention)
	return &Session{
		Version:  decoded.Version,
		Header:   decoded.Header,
		Events:   decoded.Events,
		Warnings: decoded.Warnings,
	}
}

// SortedEvents returns the events sorted by start timestamp, ascending,
// without mutating the decoded order.
func (s *Session) SortedEvents() []*SessionEvent {
	sorted := make([]*SessionEvent, len(s.Events))
	copy(sorted, s.Events)
	session.SortByStart(sorted)
	return sorted
}
