package repository

import (
	"fmt"
	"time"
)

// nowUTC returns the current UTC time formatted as RFC3339Nano.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// parseTime parses a stored RFC3339 timestamp, returning the zero time when
// the value is empty or malformed.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// checkRevision reports whether a Put expecting expect may overwrite a key
// whose live revision is current (0 when absent or deleted).
func checkRevision(key string, current, expect int64) error {
	if expect == AnyRevision || expect == current {
		return nil
	}
	return fmt.Errorf("document %q at revision %d, expected %d: %w", key, current, expect, ErrRevisionMismatch)
}
