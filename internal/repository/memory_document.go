package repository

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryDocumentRepo implements DocumentRepo in process memory.
type MemoryDocumentRepo struct {
	mu   sync.Mutex
	docs map[string]Record
	// last revision of deleted keys
	tombstones map[string]int64
}

// NewMemoryDocumentRepo creates an empty MemoryDocumentRepo.
func NewMemoryDocumentRepo() *MemoryDocumentRepo {
	return &MemoryDocumentRepo{docs: make(map[string]Record), tombstones: make(map[string]int64)}
}

func (r *MemoryDocumentRepo) Get(ctx context.Context, key string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.docs[key]
	if !ok {
		return nil, fmt.Errorf("document %q: %w", key, ErrNotFound)
	}
	rec.Body = append([]byte(nil), rec.Body...)
	return &rec, nil
}

func (r *MemoryDocumentRepo) Put(ctx context.Context, key string, body []byte, expect int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.docs[key].Revision
	if err := checkRevision(key, current, expect); err != nil {
		return 0, err
	}
	base := current
	if base == 0 {
		base = r.tombstones[key]
	}
	rec := Record{
		Key:       key,
		Body:      append([]byte(nil), body...),
		Revision:  base + 1,
		UpdatedAt: time.Now().UTC(),
	}
	r.docs[key] = rec
	delete(r.tombstones, key)
	return rec.Revision, nil
}

func (r *MemoryDocumentRepo) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.docs[key]; ok {
		r.tombstones[key] = rec.Revision
		delete(r.docs, key)
	}
	return nil
}
