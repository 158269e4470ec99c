package usagelog

import (
	"encoding/csv"
	"io"
	"time"
)

// csvHeader is the fixed export header. Field quoting and escaping follow
// RFC 4180 via encoding/csv.
var csvHeader = []string{"timestamp", "mode", "verb", "noun"}

// WriteCSV exports records to w with the fixed header row. Timestamps are
// formatted as ISO-8601 (RFC 3339) in UTC.
func WriteCSV(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range recs {
		row := []string{
			rec.Timestamp.UTC().Format(time.RFC3339),
			rec.Mode,
			rec.Verb,
			rec.Noun,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
