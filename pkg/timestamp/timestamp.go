// Package timestamp provides standardized Unix timestamp handling for
// Obsidian envelopes.
//
// Pulses store creation time as int64 milliseconds since the Unix epoch
// (UTC). Using a single canonical integer format keeps envelope values
// comparable and copyable without timezone or monotonic-clock surprises.
//
// Zero Value Semantics:
//   - A timestamp value of 0 means "not set" or "unknown"
//   - Functions handle zero values gracefully, returning appropriate defaults
package timestamp

import "time"

// Now returns the current time as Unix milliseconds.
func Now() int64 {
	return time.Now().UnixMilli()
}

// ToUnixMs converts a time.Time to Unix milliseconds.
func ToUnixMs(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// FromUnixMs converts Unix milliseconds to time.Time.
// Returns zero time if timestamp is 0.
func FromUnixMs(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// ToTime is an alias for FromUnixMs for better readability.
func ToTime(ms int64) time.Time {
	return FromUnixMs(ms)
}

// Format converts Unix milliseconds to RFC3339 string for display.
// Returns empty string if timestamp is 0.
func Format(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}
