package session

import (
	"io"
	"time"

	"github.com/gocarina/gocsv"
)

const timestampLayout = "2006-01-02 15:04:05"

// CSVRow is one exported playback entry.
type CSVRow struct {
	Start    string `csv:"start_time"`
	End      string `csv:"end_time"`
	Duration int64  `csv:"duration_seconds"`
	Path     string `csv:"path"`
}

// CSVRows converts events to export rows in the given order. Events
// without a track path are dropped; zero timestamps export as empty
// strings.
func CSVRows(events []*Event) []CSVRow {
	rows := make([]CSVRow, 0, len(events))
	for _, e := range events {
		path := e.Path()
		if path == "" {
			continue
		}
		rows = append(rows, CSVRow{
			Start:    formatTimestamp(e.Start()),
			End:      formatTimestamp(e.End()),
			Duration: e.Duration(),
			Path:     path,
		})
	}
	return rows
}

// WriteCSV writes events to w as CSV with a header row.
func WriteCSV(w io.Writer, events []*Event) error {
	return gocsv.Marshal(CSVRows(events), w)
}

func formatTimestamp(epoch int64) string {
	if epoch <= 0 {
		return ""
	}
	return time.Unix(epoch, 0).Format(timestampLayout)
}
