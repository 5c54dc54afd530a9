// Package cratedigger reads and writes the binary files Serato DJ uses to
// persist its library: crate files (ordered playlists of track paths plus
// display columns) and session files (a time-ordered log of tracks loaded
// into playback decks).
//
// Both formats share one recursive tag/length/value encoding: a 4-byte
// ASCII tag, a 4-byte big-endian length, and a value that is a nested
// chunk sequence, a UTF-16BE string, an unsigned 32-bit integer, or an
// opaque blob, depending on the tag.
//
// # Quick Start
//
// Reading a crate:
//
//	crate, err := cratedigger.OpenCrate("soundcloud%%5am.crate")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, path := range crate.TrackPaths() {
//		fmt.Println(path)
//	}
//
// Rewriting track paths in place:
//
//	changed := crate.RewriteTrackPaths(func(p string) string {
//		return filepath.Join(newDir, filepath.Base(p))
//	})
//	if changed {
//		err = crate.Save(crate.Path)
//	}
//
// Reading a session log:
//
//	session, err := cratedigger.OpenSession("2272.session")
//	for _, e := range session.SortedEvents() {
//		fmt.Printf("deck %d: %s - %s\n", e.Deck(), e.Artist(), e.Title())
//	}
//
// # Round-Trip Fidelity
//
// Serato rejects corrupted library files, so the crate codec guarantees
// bit-exact round trips: decoding a crate, mutating one field, and
// re-encoding reproduces every other byte unchanged. Leaves that fail
// their classified decoding (and tags with no classification rule at
// all) are carried as raw bytes rather than dropped or normalized.
//
// # Graceful Degradation
//
// Decoding never fails on malformed content. Truncated trailing records
// and undecodable text produce warnings alongside the successfully parsed
// data; check Crate.Warnings and Session.Warnings:
//
//	for _, w := range crate.Warnings {
//		log.Printf("warning: %s", w)
//	}
//
// Only file-level I/O failures are returned as errors, each naming the
// file that failed.
package cratedigger
