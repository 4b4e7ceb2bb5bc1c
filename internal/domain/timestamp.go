package domain

import "time"

// Timestamp is a point in time stored as unix milliseconds. The integer form
// is what gets persisted, so a document survives a JSON round trip unchanged.
type Timestamp int64

// NewTimestamp truncates t to millisecond precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.UnixMilli())
}

// Time converts the timestamp back to a UTC time.Time.
func (ts Timestamp) Time() time.Time {
	return time.UnixMilli(int64(ts)).UTC()
}

// IsZero reports whether the timestamp was never set.
func (ts Timestamp) IsZero() bool {
	return ts == 0
}

// Later returns the larger of ts and other.
func (ts Timestamp) Later(other Timestamp) Timestamp {
	if other > ts {
		return other
	}
	return ts
}
