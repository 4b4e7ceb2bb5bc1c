package repository

import (
	"context"
	"time"
)

// AnyRevision makes Put unconditional: last write wins.
const AnyRevision int64 = -1

// Record is one stored document body with its revision. Revisions start at
// 1 and grow by one on every successful Put. A key's revisions never repeat:
// Delete remembers the last one and the next Put continues from it.
type Record struct {
	Key       string
	Body      []byte
	Revision  int64
	UpdatedAt time.Time
}

// DocumentRepo stores opaque document bodies under string keys.
//
// Put writes body under key when expect matches the stored revision and
// returns the new revision. expect == AnyRevision skips the check, expect ==
// 0 requires the key to be absent (never written, or deleted). A failed check returns
// ErrRevisionMismatch and leaves the stored value untouched.
type DocumentRepo interface {
	Get(ctx context.Context, key string) (*Record, error)
	Put(ctx context.Context, key string, body []byte, expect int64) (int64, error)
	Delete(ctx context.Context, key string) error
}
