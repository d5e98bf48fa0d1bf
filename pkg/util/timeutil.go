package util

import "time"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// UnixMillis converts t to epoch milliseconds, the persisted timestamp format.
func UnixMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromUnixMillis is the inverse of UnixMillis and always returns UTC.
func FromUnixMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
