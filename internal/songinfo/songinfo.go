// Package songinfo extracts artist, title and release metadata from
// track filenames. DJ pools, SoundCloud rips and label promos each have
// their own naming habits, so extraction runs an ordered pattern table
// from most to least specific and reports a confidence score alongside
// the fields it found.
package songinfo

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Info holds whatever the filename gave up. Fields the matched pattern
// does not cover stay empty.
type Info struct {
	Artist       string
	Title        string
	Remix        string
	Label        string
	Featuring    string
	SoundCloudID string
	Version      string

	// Confidence is the matched pattern's score in (0, 1]; zero means
	// nothing matched.
	Confidence float64
	// Pattern names the table entry that matched, for reporting.
	Pattern string
	// Filename is the input as given, extension included.
	Filename string
}

type pattern struct {
	re         *regexp.Regexp
	name       string
	groups     []string
	confidence float64
}

// dash covers the ASCII hyphen plus the en and em dashes that show up
// in scraped filenames.
const dash = `[-–—]`

// patterns is ordered most specific first; extraction stops at the
// first match.
var patterns = []pattern{
	{
		re:         regexp.MustCompile(`^\[id=(\d+)\]\s*(.+?)\s*` + dash + `\s*(.+?)(?:\s*\[(.+?)\])?\s*$`),
		name:       "soundcloud id: artist - title [remix]",
		groups:     []string{"soundcloud_id", "artist", "title", "remix"},
		confidence: 0.95,
	},
	{
		re:         regexp.MustCompile(`^\[id=(\d+)\]\s*(.+?)(?:\s*\((.+?)\))?\s*$`),
		name:       "soundcloud id: title (version)",
		groups:     []string{"soundcloud_id", "title", "version"},
		confidence: 0.9,
	},
	{
		re:         regexp.MustCompile(`(?i)^(.+?)\s*(?:feat\.?|ft\.?|featuring)\s*(.+?)\s*` + dash + `\s*(.+?)(?:\s*\[(.+?)\])?\s*$`),
		name:       "artist feat. artist - title [remix]",
		groups:     []string{"artist", "featuring", "title", "remix"},
		confidence: 0.85,
	},
	{
		re:         regexp.MustCompile(`(?i)^(.+?)\s*` + dash + `\s*(.+?)\s*(?:feat\.?|ft\.?|featuring)\s*(.+?)(?:\s*\[(.+?)\])?\s*$`),
		name:       "artist - title feat. artist [remix]",
		groups:     []string{"artist", "title", "featuring", "remix"},
		confidence: 0.85,
	},
	{
		re:         regexp.MustCompile(`(?i)^(.+?)\s*` + dash + `\s*(.+?)\s*\((.+?)\s+Remix\)\s*\[(.+?)\]\s*$`),
		name:       "artist - title (artist remix) [label]",
		groups:     []string{"artist", "title", "remix", "label"},
		confidence: 0.85,
	},
	{
		re:         regexp.MustCompile(`^(.+?)\s*` + dash + `\s*(.+?)\s*\((.+?)\)\s*\[(.+?)\]\s*$`),
		name:       "artist - title (version) [label]",
		groups:     []string{"artist", "title", "version", "label"},
		confidence: 0.8,
	},
	{
		re:         regexp.MustCompile(`(?i)^(?:Premiere[:：]?)\s*(.+?)\s*` + dash + `\s*(.+?)(?:\s*\((.+?)\))?\s*$`),
		name:       "premiere: artist - title (version)",
		groups:     []string{"artist", "title", "version"},
		confidence: 0.75,
	},
	{
		re:         regexp.MustCompile(`(?i)^(.+?)\s*` + dash + `\s*(.+?)\s*[\[(]Free\s+(?:DL|Download)[\])]\s*$`),
		name:       "artist - title [free dl]",
		groups:     []string{"artist", "title"},
		confidence: 0.7,
	},
	{
		re:         regexp.MustCompile(`(?i)^(.+?)\s*` + dash + `\s*(.+?)\s*\(Extended\s+(?:Mix|Version)\)\s*$`),
		name:       "artist - title (extended mix)",
		groups:     []string{"artist", "title"},
		confidence: 0.75,
	},
	{
		re:         regexp.MustCompile(`(?i)^(.+?)\s+Mashup\s*\[(.+?)\s*` + dash + `\s*(.+?)\]\s*$`),
		name:       "artist mashup [track1 - track2]",
		groups:     []string{"artist", "title", "remix"},
		confidence: 0.7,
	},
	{
		re:         regexp.MustCompile(`^(.+?)\s*` + dash + `\s*(.+?)\s*\[(.+?)\]\s*$`),
		name:       "artist - title [remix]",
		groups:     []string{"artist", "title", "remix"},
		confidence: 0.8,
	},
	{
		re:         regexp.MustCompile(`^(.+?)\s*` + dash + `\s*(.+?)\s*\((.+?)\)\s*$`),
		name:       "artist - title (version)",
		groups:     []string{"artist", "title", "version"},
		confidence: 0.8,
	},
	{
		re:         regexp.MustCompile(`^(.+?)\s*` + dash + `\s*(.+?)\s*$`),
		name:       "artist - title",
		groups:     []string{"artist", "title"},
		confidence: 0.6,
	},
	{
		re:         regexp.MustCompile(`^([^-\n]+?)\s*$`),
		name:       "title only",
		groups:     []string{"title"},
		confidence: 0.3,
	},
}

var spaces = regexp.MustCompile(`\s+`)

// clean strips the extension and collapses runs of whitespace.
func clean(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	return strings.TrimSpace(spaces.ReplaceAllString(name, " "))
}

// Extract runs the pattern table over a filename. A zero-confidence
// Info means no pattern matched, which only happens for empty input.
func Extract(filename string) Info {
	info := Info{Filename: filename}
	name := clean(filename)

	for _, p := range patterns {
		m := p.re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		info.Pattern = p.name
		info.Confidence = p.confidence
		for i, group := range p.groups {
			if i+1 < len(m) {
				info.set(group, strings.TrimSpace(m[i+1]))
			}
		}
		return info
	}
	return info
}

func (i *Info) set(group, value string) {
	if value == "" {
		return
	}
	switch group {
	case "artist":
		i.Artist = value
	case "title":
		i.Title = value
	case "remix":
		i.Remix = value
	case "label":
		i.Label = value
	case "featuring":
		i.Featuring = value
	case "soundcloud_id":
		i.SoundCloudID = value
	case "version":
		i.Version = value
	}
}
