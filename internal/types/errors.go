// Package types holds error and warning types shared by the codec packages.
package types

import "fmt"

// TruncatedError is returned when a buffer ends before a declared length.
type TruncatedError struct {
	What      string
	Offset    int
	Want      int
	Remaining int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated: need %d bytes for %s at offset %d, %d remain",
		e.Want, e.What, e.Offset, e.Remaining)
}

// InvalidEncodingError is returned when a text field fails strict decoding.
type InvalidEncodingError struct {
	Reason string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid encoding: %s", e.Reason)
}

// IoError wraps a file-level failure. It is fatal to the single file
// operation but never aborts a batch of other files.
type IoError struct {
	Path string
	Op   string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

// Warning represents a non-fatal issue encountered during decoding.
//
// Warnings indicate problems that don't prevent decoding the rest of the
// file. Examples include:
//   - A truncated trailing record
//   - A text field that fails strict UTF-16 decoding
//   - Trailing padding after the last complete record
//
// Warnings are collected on Crate and Session during decoding.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "crate", "session", "header", "fields"

	// Warning message
	Message string

	// Byte offset where the issue occurred (0 if not applicable)
	Offset int
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
