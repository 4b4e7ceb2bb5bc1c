package testutil

import (
	"context"
	"sync/atomic"

	"github.com/alexanderramin/folio/internal/repository"
)

// FailingRepo wraps a DocumentRepo and injects Err into selected calls.
// Zero fields pass calls through. FailPutOn counts Put calls starting at 1
// and fails only that one; FailAllPuts fails every Put.
type FailingRepo struct {
	repository.DocumentRepo
	Err         error
	FailGet     bool
	FailDelete  bool
	FailAllPuts bool
	FailPutOn   int32

	puts atomic.Int32
}

func (f *FailingRepo) Get(ctx context.Context, key string) (*repository.Record, error) {
	if f.FailGet {
		return nil, f.Err
	}
	return f.DocumentRepo.Get(ctx, key)
}

func (f *FailingRepo) Put(ctx context.Context, key string, body []byte, expect int64) (int64, error) {
	n := f.puts.Add(1)
	if f.FailAllPuts || n == f.FailPutOn {
		return 0, f.Err
	}
	return f.DocumentRepo.Put(ctx, key, body, expect)
}

func (f *FailingRepo) Delete(ctx context.Context, key string) error {
	if f.FailDelete {
		return f.Err
	}
	return f.DocumentRepo.Delete(ctx, key)
}

// Puts reports how many Put calls reached the wrapper.
func (f *FailingRepo) Puts() int { return int(f.puts.Load()) }
