package cratedigger

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func TestNewCrate(t *testing.T) {
	crate := NewCrate([]string{"/music/a.mp3", "/music/b.mp3"}, nil)

	if crate.Version() != Version {
		t.Errorf("version = %q", crate.Version())
	}

	paths := crate.TrackPaths()
	if len(paths) != 2 || paths[0] != "/music/a.mp3" || paths[1] != "/music/b.mp3" {
		t.Errorf("track paths = %v", paths)
	}

	cols := crate.Columns()
	if len(cols) != len(DefaultColumns) {
		t.Fatalf("expected %d default columns, got %v", len(DefaultColumns), cols)
	}
	for i, want := range DefaultColumns {
		if cols[i] != want {
			t.Errorf("column %d = %q, want %q", i, cols[i], want)
		}
	}
}

func TestNewCrate_CustomColumns(t *testing.T) {
	crate := NewCrate(nil, []string{"song", "key"})
	cols := crate.Columns()
	if len(cols) != 2 || cols[0] != "song" || cols[1] != "key" {
		t.Errorf("columns = %v", cols)
	}
}

func TestCrate_EncodeDecodeRoundTrip(t *testing.T) {
	crate := NewCrate([]string{"/music/a.mp3"}, nil)
	buf := crate.Encode()

	decoded := DecodeCrate(buf)
	if len(decoded.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", decoded.Warnings)
	}
	if got := decoded.Encode(); !bytes.Equal(got, buf) {
		t.Error("encode(decode(b)) != b")
	}
	if decoded.TrackPaths()[0] != "/music/a.mp3" {
		t.Errorf("track paths = %v", decoded.TrackPaths())
	}
}

func TestCrate_RewriteTrackPaths(t *testing.T) {
	crate := NewCrate([]string{"/old/a.mp3", "/cache/b.mp3"}, nil)

	moveToCache := func(p string) string {
		return "/cache/" + filepath.Base(p)
	}

	if !crate.RewriteTrackPaths(moveToCache) {
		t.Fatal("expected first rewrite to report a change")
	}
	paths := crate.TrackPaths()
	if paths[0] != "/cache/a.mp3" || paths[1] != "/cache/b.mp3" {
		t.Errorf("paths after rewrite = %v", paths)
	}

	// The rewrite function is idempotent, so a second pass changes nothing.
	if crate.RewriteTrackPaths(moveToCache) {
		t.Error("expected second rewrite to report changed=false")
	}
}

func TestCrate_RewritePreservesOtherBytes(t *testing.T) {
	crate := NewCrate([]string{"/old/a.mp3", "/music/b.mp3"}, nil)
	before := crate.Encode()

	crate.RewriteTrackPaths(func(p string) string {
		if p == "/old/a.mp3" {
			return "/new/a.mp3" // same byte length as the original
		}
		return p
	})
	after := crate.Encode()

	if len(before) != len(after) {
		t.Fatalf("length changed: %d -> %d", len(before), len(after))
	}
	// Only the rewritten path's bytes may differ.
	diff := 0
	for i := range before {
		if before[i] != after[i] {
			diff++
		}
	}
	if diff == 0 {
		t.Error("expected the rewritten path bytes to differ")
	}
	if diff > 2*len("/old/a.mp3") {
		t.Errorf("too many differing bytes: %d", diff)
	}
}

func TestOpenCrate_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.crate")

	crate := NewCrate([]string{"/music/a.mp3"}, nil)
	if err := crate.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	opened, err := OpenCrate(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if opened.Path != path {
		t.Errorf("path = %q", opened.Path)
	}
	if !bytes.Equal(opened.Encode(), crate.Encode()) {
		t.Error("saved crate did not round-trip")
	}
}

func TestOpenCrate_Missing(t *testing.T) {
	_, err := OpenCrate(filepath.Join(t.TempDir(), "missing.crate"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var ioErr *IoError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IoError, got %T", err)
	}
}

func TestDecodeCrate_TrailingPadding(t *testing.T) {
	buf := NewCrate([]string{"/music/a.mp3"}, nil).Encode()
	buf = append(buf, 0x00, 0x00)

	crate := DecodeCrate(buf)
	if len(crate.TrackPaths()) != 1 {
		t.Fatalf("expected the complete entry, got %v", crate.TrackPaths())
	}
	if len(crate.Warnings) != 1 {
		t.Errorf("expected a trailing-bytes warning, got %v", crate.Warnings)
	}
}

func TestDecodeCrate_EmptyFile(t *testing.T) {
	crate := DecodeCrate(nil)
	if len(crate.Children) != 0 || len(crate.Warnings) != 0 {
		t.Errorf("empty buffer should decode to an empty crate, got %+v", crate)
	}
}
