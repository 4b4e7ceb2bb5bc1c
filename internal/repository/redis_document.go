package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "folio:doc:" // Hash per document: folio:doc:{key}
	fieldBody      = "body"
	fieldRevision  = "revision"
	fieldUpdatedAt = "updated_at"
	fieldDeleted   = "deleted"
)

// RedisDocumentRepo implements DocumentRepo with one redis hash per key.
// Conditional puts use WATCH/MULTI on the hash. A deleted document keeps
// only its revision and a deleted marker.
type RedisDocumentRepo struct {
	client *redis.Client
}

// NewRedisDocumentRepo creates a new RedisDocumentRepo.
func NewRedisDocumentRepo(client *redis.Client) *RedisDocumentRepo {
	return &RedisDocumentRepo{client: client}
}

func (r *RedisDocumentRepo) redisKey(key string) string {
	return redisKeyPrefix + key
}

func (r *RedisDocumentRepo) Get(ctx context.Context, key string) (*Record, error) {
	fields, err := r.client.HGetAll(ctx, r.redisKey(key)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get document %q: %w", key, err)
	}
	if len(fields) == 0 || fields[fieldDeleted] == "1" {
		return nil, fmt.Errorf("document %q: %w", key, ErrNotFound)
	}

	rec := &Record{Key: key, Body: []byte(fields[fieldBody]), UpdatedAt: parseTime(fields[fieldUpdatedAt])}
	if _, err := fmt.Sscan(fields[fieldRevision], &rec.Revision); err != nil {
		return nil, fmt.Errorf("document %q has bad revision %q: %w", key, fields[fieldRevision], err)
	}
	return rec, nil
}

func (r *RedisDocumentRepo) Put(ctx context.Context, key string, body []byte, expect int64) (int64, error) {
	rk := r.redisKey(key)
	var next int64

	txf := func(tx *redis.Tx) error {
		last, deleted, err := r.revisionOf(ctx, tx, rk)
		if err != nil {
			return fmt.Errorf("failed to read revision of %q: %w", key, err)
		}
		current := last
		if deleted {
			current = 0
		}
		if err := checkRevision(key, current, expect); err != nil {
			return err
		}

		next = last + 1
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, rk,
				fieldBody, body,
				fieldRevision, next,
				fieldUpdatedAt, time.Now().UTC().Format(time.RFC3339Nano),
			)
			pipe.HDel(ctx, rk, fieldDeleted)
			return nil
		})
		return err
	}

	err := r.client.Watch(ctx, txf, rk)
	if errors.Is(err, redis.TxFailedErr) {
		return 0, fmt.Errorf("document %q changed during write: %w", key, ErrRevisionMismatch)
	}
	if err != nil {
		if errors.Is(err, ErrRevisionMismatch) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to write document %q: %w", key, err)
	}
	return next, nil
}

// Delete strips the hash down to a tombstone so the next Put continues the
// revision sequence.
func (r *RedisDocumentRepo) Delete(ctx context.Context, key string) error {
	rk := r.redisKey(key)
	txf := func(tx *redis.Tx) error {
		last, deleted, err := r.revisionOf(ctx, tx, rk)
		if err != nil {
			return err
		}
		if last == 0 || deleted {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HDel(ctx, rk, fieldBody, fieldUpdatedAt)
			pipe.HSet(ctx, rk, fieldDeleted, "1")
			return nil
		})
		return err
	}
	if err := r.client.Watch(ctx, txf, rk); err != nil {
		return fmt.Errorf("failed to delete document %q: %w", key, err)
	}
	return nil
}

// revisionOf returns the last revision written under rk (0 if never) and
// whether the document has since been deleted.
func (r *RedisDocumentRepo) revisionOf(ctx context.Context, tx *redis.Tx, rk string) (int64, bool, error) {
	vals, err := tx.HMGet(ctx, rk, fieldRevision, fieldDeleted).Result()
	if err != nil {
		return 0, false, err
	}
	var last int64
	if s, ok := vals[0].(string); ok {
		if _, err := fmt.Sscan(s, &last); err != nil {
			return 0, false, fmt.Errorf("bad revision %q: %w", s, err)
		}
	}
	deleted, _ := vals[1].(string)
	return last, deleted == "1", nil
}
