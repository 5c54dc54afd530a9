// Package library locates crate and session files inside a Serato
// library directory.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Delimiter separates parent and child crate names in a crate filename,
// e.g. "soundcloud%%5am.crate".
const Delimiter = "%%"

const crateExt = ".crate"

// DefaultDir returns the conventional Serato library location,
// ~/Music/_Serato_.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "_Serato_"
	}
	return filepath.Join(home, "Music", "_Serato_")
}

// SubcratesDir returns the subcrate directory inside a Serato library.
func SubcratesDir(seratoDir string) string {
	return filepath.Join(seratoDir, "Subcrates")
}

// SessionsDir returns the session history directory inside a Serato
// library.
func SessionsDir(seratoDir string) string {
	return filepath.Join(seratoDir, "History", "Sessions")
}

// ListCrates returns every crate file under the library, Subcrates
// first, sorted by name within each directory.
func ListCrates(seratoDir string) []string {
	var found []string
	for _, dir := range []string{SubcratesDir(seratoDir), seratoDir} {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+crateExt))
		if err != nil {
			continue
		}
		sort.Strings(matches)
		found = append(found, matches...)
	}
	return found
}

// FindCrate resolves a crate by name, trying exact filenames first (with
// and without the extension, with the soundcloud parent prefix, and in
// case variants), then falling back to a substring glob. Returns an
// error when nothing matches.
func FindCrate(seratoDir, name string) (string, error) {
	patterns := []string{
		name + crateExt,
		name,
		"soundcloud" + Delimiter + name + crateExt,
		"soundcloud" + Delimiter + name,
		strings.ToLower(name) + crateExt,
		strings.ToUpper(name) + crateExt,
		"soundcloud" + Delimiter + strings.ToLower(name) + crateExt,
		"soundcloud" + Delimiter + strings.ToUpper(name) + crateExt,
	}
	dirs := []string{SubcratesDir(seratoDir), seratoDir}

	for _, dir := range dirs {
		for _, pattern := range patterns {
			path := filepath.Join(dir, pattern)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}

	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+name+"*"))
		if err != nil {
			continue
		}
		sort.Strings(matches)
		for _, m := range matches {
			if strings.HasSuffix(m, crateExt) {
				return m, nil
			}
		}
	}

	return "", fmt.Errorf("crate %q not found in %s", name, seratoDir)
}

// CratePath returns where a new crate with the given name belongs.
func CratePath(seratoDir, name string) string {
	return filepath.Join(SubcratesDir(seratoDir), name+crateExt)
}

// DisplayName simplifies a crate filename for listings: the soundcloud
// parent prefix and the extension are stripped.
func DisplayName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, crateExt)
	if idx := strings.Index(name, Delimiter); idx >= 0 {
		name = name[idx+len(Delimiter):]
	}
	return name
}

// LatestSession returns the most recently modified session file in the
// library's history, or an error when none exist.
func LatestSession(seratoDir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(SessionsDir(seratoDir), "*.session"))
	if err != nil || len(matches) == 0 {
		return "", fmt.Errorf("no session files in %s", SessionsDir(seratoDir))
	}

	latest := ""
	var latestMod int64
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); latest == "" || mod > latestMod {
			latest, latestMod = m, mod
		}
	}
	if latest == "" {
		return "", fmt.Errorf("no readable session files in %s", SessionsDir(seratoDir))
	}
	return latest, nil
}
