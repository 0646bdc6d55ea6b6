package domain

import (
	"fmt"
	"time"
)

// TimestampLayout is the canonical on-disk timestamp format. Values are UTC with
// microsecond precision.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// NormalizeTime converts t to the precision and location that survive a
// format/parse round trip.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func FormatTimestamp(t time.Time) string {
	return NormalizeTime(t).Format(TimestampLayout)
}

func ParseTimestamp(raw string) (time.Time, error) {
	parsed, err := time.Parse(TimestampLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", raw, err)
	}
	return parsed, nil
}
