package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/imageenc"
	"github.com/alexanderramin/folio/internal/repository"
	"github.com/alexanderramin/folio/internal/schema"
)

// DefaultKey is the storage key used when none is configured.
const DefaultKey = "folio-document"

// DefaultMaxDocumentBytes mirrors the usual browser local-storage budget.
const DefaultMaxDocumentBytes = 5 << 20

// Store is the data store for one portfolio document. It is the only
// component that reads or writes the document's key.
//
// Every operation re-reads the document from the repository; the store keeps
// no copy between calls. Mutations write back with a compare-and-swap on the
// revision they read and fail with ErrConflict if another writer got there
// first. Save and Create are unconditional: the last write wins.
type Store struct {
	repo        repository.DocumentRepo
	key         string
	now         func() time.Time
	logger      *slog.Logger
	observer    UseCaseObserver
	images      *imageenc.Encoder
	maxDocBytes int
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now for timestamps and ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for soft failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver sets the use-case observer.
func WithObserver(o UseCaseObserver) Option {
	return func(s *Store) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithImageEncoder replaces the default image encoder.
func WithImageEncoder(e *imageenc.Encoder) Option {
	return func(s *Store) {
		if e != nil {
			s.images = e
		}
	}
}

// WithMaxDocumentBytes caps the encoded document size. Non-positive values
// keep the default.
func WithMaxDocumentBytes(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxDocBytes = n
		}
	}
}

// NewStore creates a Store over repo that keeps its document under key.
func NewStore(repo repository.DocumentRepo, key string, opts ...Option) *Store {
	if key == "" {
		key = DefaultKey
	}
	s := &Store{
		repo:        repo,
		key:         key,
		now:         time.Now,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer:    NoopUseCaseObserver{},
		images:      imageenc.New(0),
		maxDocBytes: DefaultMaxDocumentBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key this store owns.
func (s *Store) Key() string { return s.key }

// Current returns the stored document. A missing, unreadable or
// unreachable document yields (nil, false); the cause is logged, never
// returned, so Current is safe to call before any session exists.
func (s *Store) Current(ctx context.Context) (*domain.Document, bool) {
	var doc *domain.Document
	_ = s.observe(ctx, "current_document", nil, func() error {
		d, _, err := s.load(ctx)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				s.logger.WarnContext(ctx, "document unavailable", "key", s.key, "error", err)
			}
			return nil
		}
		doc = d
		return nil
	})
	return doc, doc != nil
}

// Create seeds a new document for name and email and writes it, replacing
// whatever was stored before.
func (s *Store) Create(ctx context.Context, name, email string) (*domain.Document, error) {
	var doc *domain.Document
	err := s.observe(ctx, "create_document", nil, func() error {
		if name == "" {
			return invalid("name is required")
		}
		if email == "" {
			return invalid("email is required")
		}
		if !domain.ValidEmail(email) {
			return invalid("email %q is not an address", email)
		}
		now := s.now()
		profile := domain.Profile{
			ID:        domain.NewProfileID(now),
			Username:  name,
			Email:     email,
			CreatedAt: domain.NewTimestamp(now),
		}
		d := domain.SampleDocument(profile, now)
		if err := s.write(ctx, d, repository.AnyRevision); err != nil {
			return err
		}
		doc = d
		return nil
	})
	return doc, err
}

// Save writes doc as the whole stored document. No revision check is made;
// a concurrent writer's changes are silently replaced.
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	return s.observe(ctx, "save_document", nil, func() error {
		if doc == nil {
			return invalid("document is nil")
		}
		return s.write(ctx, doc, repository.AnyRevision)
	})
}

// Clear removes the stored document. Clearing an empty store succeeds.
func (s *Store) Clear(ctx context.Context) error {
	return s.observe(ctx, "clear_document", nil, func() error {
		if err := s.repo.Delete(ctx, s.key); err != nil {
			return &PersistenceError{Op: "clear", Err: err}
		}
		return nil
	})
}

// load reads and decodes the document with its revision. A missing key
// returns an error matching both ErrNoActiveSession and
// repository.ErrNotFound; an undecodable body matches ErrNoActiveSession.
func (s *Store) load(ctx context.Context) (*domain.Document, int64, error) {
	rec, err := s.repo.Get(ctx, s.key)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, 0, fmt.Errorf("%w: %w", ErrNoActiveSession, err)
	}
	if err != nil {
		return nil, 0, &PersistenceError{Op: "read", Err: err}
	}
	doc, err := schema.Decode(rec.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: stored document unreadable: %w", ErrNoActiveSession, err)
	}
	return doc, rec.Revision, nil
}

// write encodes doc and stores it when the stored revision still equals
// expect.
func (s *Store) write(ctx context.Context, doc *domain.Document, expect int64) error {
	data, err := schema.Encode(doc)
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if len(data) > s.maxDocBytes {
		return &PersistenceError{
			Op:  "write",
			Err: fmt.Errorf("%d bytes over limit %d: %w", len(data), s.maxDocBytes, ErrQuotaExceeded),
		}
	}
	if _, err := s.repo.Put(ctx, s.key, data, expect); err != nil {
		if errors.Is(err, repository.ErrRevisionMismatch) {
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return &PersistenceError{Op: "write", Err: err}
	}
	return nil
}

// mutate is the single read-modify-write path behind every per-entity
// helper. fn receives a freshly read document and the current timestamp; the
// document is written back only when fn succeeds.
func (s *Store) mutate(ctx context.Context, fn func(doc *domain.Document, now domain.Timestamp) error) error {
	doc, rev, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc, domain.NewTimestamp(s.now())); err != nil {
		return err
	}
	return s.write(ctx, doc, rev)
}

// SortedTimeline returns doc's timeline newest date first, the order the
// public timeline displays. Storage order is untouched.
func SortedTimeline(doc *domain.Document) []domain.TimelineEntry {
	if doc == nil {
		return nil
	}
	return domain.SortTimelineByDateDesc(doc.Timeline)
}
