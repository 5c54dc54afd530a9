// Package monitor watches the newest history session file and reports
// what is playing on each deck. It re-parses the whole file every poll
// interval; session files are small and Serato rewrites them in place,
// so diffing is not worth the bookkeeping.
package monitor

import (
	"context"
	"os"
	"time"

	"github.com/fraserlangton/cratedigger/internal/id3"
	"github.com/fraserlangton/cratedigger/internal/library"
	"github.com/fraserlangton/cratedigger/internal/session"
)

// DefaultInterval is how often the poller re-reads the session file.
const DefaultInterval = 2 * time.Second

// Track is one deck's current play, derived from the latest session
// event on that deck.
type Track struct {
	Artist string
	Title  string
	Path   string
	Key    string // Camelot key from the file's tags, "" if unreadable
	Deck   int
	Start  int64 // unix seconds
}

// Snapshot is the state of both decks at one poll.
type Snapshot struct {
	SessionPath string
	Deck1       *Track
	Deck2       *Track
}

// deckState is what change detection compares between polls.
type deckState struct {
	title string
	start int64
}

func stateOf(t *Track) deckState {
	if t == nil {
		return deckState{}
	}
	return deckState{title: t.Title, start: t.Start}
}

// Poller polls the newest session file under a Serato directory.
// The zero value is not usable; set Dir at least.
type Poller struct {
	Dir        string
	Interval   time.Duration      // defaults to DefaultInterval
	Convention session.Convention // zero value means the default field IDs

	// KeyLookup resolves a track path to its Camelot key. Defaults to
	// reading the file's ID3 tags.
	KeyLookup func(path string) string
}

func (p *Poller) interval() time.Duration {
	if p.Interval > 0 {
		return p.Interval
	}
	return DefaultInterval
}

func (p *Poller) convention() session.Convention {
	if p.Convention == (session.Convention{}) {
		return session.DefaultConvention()
	}
	return p.Convention
}

func (p *Poller) keyLookup() func(string) string {
	if p.KeyLookup != nil {
		return p.KeyLookup
	}
	return id3.CamelotKey
}

// Poll reads the newest session file once and returns the deck state.
func (p *Poller) Poll() (*Snapshot, error) {
	path, err := library.LatestSession(p.Dir)
	if err != nil {
		return nil, err
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	sess := session.Decode(buf, p.convention())
	events := make([]*session.Event, len(sess.Events))
	copy(events, sess.Events)
	session.SortByStart(events)

	lookup := p.keyLookup()
	snap := &Snapshot{SessionPath: path}
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		if e.Title() == "" && e.Artist() == "" {
			continue
		}
		var dst **Track
		switch e.Deck() {
		case 1:
			dst = &snap.Deck1
		case 2:
			dst = &snap.Deck2
		default:
			continue
		}
		if *dst != nil {
			continue
		}
		*dst = &Track{
			Artist: e.Artist(),
			Title:  e.Title(),
			Path:   e.Path(),
			Key:    lookup(e.Path()),
			Deck:   e.Deck(),
			Start:  e.Start(),
		}
		if snap.Deck1 != nil && snap.Deck2 != nil {
			break
		}
	}
	return snap, nil
}

// Run polls until the context is cancelled, sending a snapshot whenever
// a deck's current track changes. The first successful poll always
// sends. Poll errors are skipped; a session file that is mid-rewrite
// will parse fine on the next tick. The channel closes on return.
func (p *Poller) Run(ctx context.Context) <-chan Snapshot {
	ch := make(chan Snapshot, 1)
	go func() {
		defer close(ch)
		ticker := time.NewTicker(p.interval())
		defer ticker.Stop()

		var last [2]deckState
		first := true
		for {
			snap, err := p.Poll()
			if err == nil {
				state := [2]deckState{stateOf(snap.Deck1), stateOf(snap.Deck2)}
				if first || state != last {
					select {
					case ch <- *snap:
					case <-ctx.Done():
						return
					}
					last = state
					first = false
				}
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
