package timeutil

import "time"

func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatISO8601 formats to RFC3339 in UTC.
func FormatISO8601(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func ParseISO8601(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
