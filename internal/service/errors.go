package service

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/folio/internal/imageenc"
)

var (
	// ErrNoActiveSession means no readable document exists under the store key.
	ErrNoActiveSession = errors.New("no active session")
	// ErrNotFound means an update or removal targeted an id absent from its list.
	ErrNotFound = errors.New("not found")
	// ErrConflict means another writer saved the document between this
	// operation's read and its write. Nothing was written.
	ErrConflict = errors.New("document modified concurrently")
	// ErrInvalidInput means a field failed validation before anything was written.
	ErrInvalidInput = errors.New("invalid input")
	// ErrPersistence matches every *PersistenceError.
	ErrPersistence = errors.New("persistence failure")
	// ErrQuotaExceeded means the encoded document is larger than the store allows.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	// ErrImageEncoding matches failures from EncodeImage and EncodeImageAsync.
	ErrImageEncoding = imageenc.ErrEncoding
)

// PersistenceError wraps a failure of the underlying document repository
// or of document serialization.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s document: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrPersistence) true for any PersistenceError.
func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
