package utils

import (
	"strconv"
	"time"
)

// ParseTimestamp parses a millisecond epoch string.
func ParseTimestamp(tsStr string) (time.Time, error) {
	ms, err := strconv.ParseInt(tsStr, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	sec := ms / 1000
	nsec := (ms % 1000) * 1e6
	return time.Unix(sec, nsec), nil
}

// IsTimestampValid reports whether ts is within the accepted freshness window.
// Stale webhook deliveries are rejected by callers.
func IsTimestampValid(ts time.Time, window time.Duration) bool {
	now := time.Now()
	diff := now.Sub(ts)
	return diff >= 0 && diff <= window
}
