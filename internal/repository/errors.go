package repository

import "errors"

var (
	// ErrNotFound means no document is stored under the key.
	ErrNotFound = errors.New("not found")
	// ErrRevisionMismatch means a conditional Put lost a race: the stored
	// revision differs from the one the caller read.
	ErrRevisionMismatch = errors.New("revision mismatch")
)
