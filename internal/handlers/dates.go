package handlers

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Values without an offset are read as UTC.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseOrderDate keeps only the calendar date of raw.
func parseOrderDate(raw string) (time.Time, bool) {
	t, ok := parseDate(raw)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}

// Timestamp is a request time that also accepts values without a zone.
type Timestamp struct {
	time.Time
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	t, ok := parseDate(raw)
	if !ok {
		return fmt.Errorf("unrecognized timestamp %q", raw)
	}
	ts.Time = t
	return nil
}
