package cratedigger

import (
	"os"

	"github.com/fraserlangton/cratedigger/internal/tlv"
	"github.com/fraserlangton/cratedigger/internal/types"
)

// Version is the format version string written into new crates.
const Version = "1.0/Serato ScratchLive Crate"

// DefaultColumns is the column set Serato shows for a freshly created
// crate.
var DefaultColumns = []string{"song", "artist", "album", "bpm", "label", "grouping"}

// Tag is an alias to tlv.Tag, the four-byte ASCII chunk identifier.
type Tag = tlv.Tag

// Value is an alias to tlv.Value, a decoded chunk value.
type Value = tlv.Value

// Child is an alias to tlv.Child, one (tag, value) pair in a container.
type Child = tlv.Child

// Crate is a decoded crate file: the top level of a crate has no tag or
// length prefix of its own, so the root is implicitly a container and
// Children holds its chunk sequence in document order.
type Crate struct {
	// Path the crate was opened from ("" for crates built in memory).
	Path string

	// Children is the decoded chunk tree. Mutate freely; Encode consumes
	// the current state.
	Children []Child

	// Warnings encountered during decoding (non-fatal issues).
	Warnings []Warning
}

// OpenCrate reads and decodes a crate file.
//
// Decoding itself never fails: malformed trailing data is reported in
// Crate.Warnings alongside everything that parsed. Only the file read
// can return an error.
func OpenCrate(path string) (*Crate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.IoError{Path: path, Op: "read crate", Err: err}
	}
	crate := DecodeCrate(data)
	crate.Path = path
	return crate, nil
}

// DecodeCrate decodes a crate from a fully-buffered byte slice.
func DecodeCrate(data []byte) *Crate {
	children, warnings := tlv.Decode(data)
	return &Crate{Children: children, Warnings: warnings}
}

// NewCrate builds a writable crate with the stock version string, the
// given display columns (DefaultColumns when nil), and one track entry
// per path, in order.
func NewCrate(tracks []string, columns []string) *Crate {
	if columns == nil {
		columns = DefaultColumns
	}
	children := []Child{
		{Tag: tlv.TagVersion, Value: tlv.Text(Version)},
	}
	for _, col := range columns {
		children = append(children, Child{
			Tag:   tlv.TagColumn,
			Value: tlv.Container(Child{Tag: tlv.TagColumnName, Value: tlv.Text(col)}),
		})
	}
	for _, track := range tracks {
		children = append(children, Child{
			Tag:   tlv.TagTrack,
			Value: tlv.Container(Child{Tag: tlv.TagTrackPath, Value: tlv.Text(track)}),
		})
	}
	return &Crate{Children: children}
}

// Encode flattens the crate back to its binary form.
func (c *Crate) Encode() []byte {
	return tlv.Encode(c.Children)
}

// Save encodes the crate and writes it to path as a single whole-file
// write. Concurrent external modification of the same file during the
// read-decode-write window is not guarded against.
func (c *Crate) Save(path string) error {
	if err := os.WriteFile(path, c.Encode(), 0o644); err != nil {
		return &types.IoError{Path: path, Op: "write crate", Err: err}
	}
	return nil
}

// Version returns the crate's format version string, or "" if absent.
func (c *Crate) Version() string {
	for _, child := range c.Children {
		if child.Tag == tlv.TagVersion && child.Value.Kind == tlv.KindText {
			return child.Value.Text
		}
	}
	return ""
}

// TrackPaths returns every track path in playback order.
func (c *Crate) TrackPaths() []string {
	return tlv.FindAll(c.Children, tlv.TagTrackPath, nil)
}

// Columns returns the crate's display column names in display order.
func (c *Crate) Columns() []string {
	var cols []string
	for _, child := range c.Children {
		if child.Tag == tlv.TagColumn && child.Value.Kind == tlv.KindContainer {
			cols = tlv.FindAll(child.Value.Children, tlv.TagColumnName, cols)
		}
	}
	return cols
}

// RewriteTrackPaths rewrites every track path leaf in place via fn,
// preserving traversal order and child identity. It reports whether any
// rewrite changed a path byte-for-byte, so callers can skip re-encoding
// untouched files.
func (c *Crate) RewriteTrackPaths(fn func(string) string) bool {
	return tlv.RewriteText(c.Children, tlv.TagTrackPath, fn)
}
