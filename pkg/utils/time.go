package utils

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatRFC3339 renders a timestamp the way the table stores it.
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseRFC3339 parses a stored timestamp. Strict: anything that does not
// round-trip through RFC3339 is an integrity fault for the caller.
func ParseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
