package monitor

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Pair records one track that mixed well out of another.
type Pair struct {
	Artist   string  `json:"artist"`
	Title    string  `json:"title"`
	Filename string  `json:"filename"`
	Key      string  `json:"key,omitempty"`
	SavedAt  float64 `json:"timestamp"` // unix seconds
}

// PairStore is a JSON file of good transitions, keyed by the earlier
// track. The key is the track's file path, or "Artist - Title" for
// events with no path.
type PairStore struct {
	path  string
	pairs map[string][]Pair

	// now stamps saved pairs; swapped out in tests.
	now func() time.Time
}

// OpenPairStore loads a pair store from a JSON file. A missing, empty
// or unparseable file yields an empty store rather than an error, so a
// corrupt file never blocks monitoring.
func OpenPairStore(path string) *PairStore {
	s := &PairStore{path: path, pairs: map[string][]Pair{}, now: time.Now}
	buf, err := os.ReadFile(path)
	if err != nil || len(buf) == 0 {
		return s
	}
	var loaded map[string][]Pair
	if err := json.Unmarshal(buf, &loaded); err == nil && loaded != nil {
		s.pairs = loaded
	}
	return s
}

// pairKey identifies a track in the store.
func pairKey(t *Track) string {
	if t.Path != "" {
		return t.Path
	}
	return fmt.Sprintf("%s - %s", t.Artist, t.Title)
}

// Save records that a and b mixed well, ordered so the earlier start
// time keys the pair, and writes the store back to disk. Duplicate
// pairs for the same file are dropped silently.
func (s *PairStore) Save(a, b *Track) error {
	first, second := a, b
	if second.Start < first.Start {
		first, second = second, first
	}

	key := pairKey(first)
	for _, existing := range s.pairs[key] {
		if existing.Filename == second.Path {
			return nil
		}
	}
	s.pairs[key] = append(s.pairs[key], Pair{
		Artist:   second.Artist,
		Title:    second.Title,
		Filename: second.Path,
		Key:      second.Key,
		SavedAt:  float64(s.now().Unix()),
	})
	return s.flush()
}

// For returns the saved pairs for a track, oldest first. Nil when none.
func (s *PairStore) For(t *Track) []Pair {
	return s.pairs[pairKey(t)]
}

// Len reports how many tracks have saved pairs.
func (s *PairStore) Len() int {
	return len(s.pairs)
}

func (s *PairStore) flush() error {
	buf, err := json.MarshalIndent(s.pairs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, buf, 0o644)
}
