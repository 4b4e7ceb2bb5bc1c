package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/folio/internal/db"
)

// SQLiteDocumentRepo implements DocumentRepo on the documents table.
type SQLiteDocumentRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteDocumentRepo creates a new SQLiteDocumentRepo. Conditional puts
// run their read and write inside one uow transaction.
func NewSQLiteDocumentRepo(conn db.DBTX, uow db.UnitOfWork) *SQLiteDocumentRepo {
	return &SQLiteDocumentRepo{db: conn, uow: uow}
}

func (r *SQLiteDocumentRepo) Get(ctx context.Context, key string) (*Record, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT key, body, revision, updated_at FROM documents WHERE key = ? AND deleted = 0`, key)

	var rec Record
	var body, updatedAt string
	if err := row.Scan(&rec.Key, &body, &rec.Revision, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("document %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning document %q: %w", key, err)
	}
	rec.Body = []byte(body)
	rec.UpdatedAt = parseTime(updatedAt)
	return &rec, nil
}

func (r *SQLiteDocumentRepo) Put(ctx context.Context, key string, body []byte, expect int64) (int64, error) {
	var next int64
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var last int64
		var deleted bool
		err := tx.QueryRowContext(ctx, `SELECT revision, deleted FROM documents WHERE key = ?`, key).Scan(&last, &deleted)
		exists := err == nil
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("reading revision of %q: %w", key, err)
		}
		current := last
		if deleted {
			current = 0
		}
		if err := checkRevision(key, current, expect); err != nil {
			return err
		}

		next = last + 1
		if !exists {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO documents (key, body, revision, updated_at, size_bytes) VALUES (?, ?, ?, ?, ?)`,
				key, string(body), next, nowUTC(), len(body))
		} else {
			_, err = tx.ExecContext(ctx,
				`UPDATE documents SET body = ?, revision = ?, updated_at = ?, size_bytes = ?, deleted = 0 WHERE key = ?`,
				string(body), next, nowUTC(), len(body), key)
		}
		if err != nil {
			return fmt.Errorf("writing document %q: %w", key, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

// Delete leaves a tombstone row holding the last revision.
func (r *SQLiteDocumentRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE documents SET body = '', size_bytes = 0, deleted = 1, updated_at = ? WHERE key = ? AND deleted = 0`,
		nowUTC(), key)
	if err != nil {
		return fmt.Errorf("deleting document %q: %w", key, err)
	}
	return nil
}
