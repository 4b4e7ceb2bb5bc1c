package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS folio_documents (
	key        TEXT PRIMARY KEY,
	body       TEXT NOT NULL,
	revision   BIGINT NOT NULL CHECK (revision > 0),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
ALTER TABLE folio_documents ADD COLUMN IF NOT EXISTS deleted BOOLEAN NOT NULL DEFAULT false`

// PostgresDocumentRepo implements DocumentRepo on a postgres table. Every
// conditional write is a single statement, so no explicit transaction is
// needed. Deleted rows remain as tombstones carrying the last revision.
type PostgresDocumentRepo struct {
	db *sql.DB
}

// OpenPostgres connects to dsn with the lib/pq driver and ensures the
// documents table exists.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if _, err := conn.ExecContext(ctx, postgresSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating folio_documents: %w", err)
	}
	return conn, nil
}

// NewPostgresDocumentRepo creates a new PostgresDocumentRepo.
func NewPostgresDocumentRepo(conn *sql.DB) *PostgresDocumentRepo {
	return &PostgresDocumentRepo{db: conn}
}

func (r *PostgresDocumentRepo) Get(ctx context.Context, key string) (*Record, error) {
	var rec Record
	var body string
	err := r.db.QueryRowContext(ctx,
		`SELECT key, body, revision, updated_at FROM folio_documents WHERE key = $1 AND NOT deleted`, key,
	).Scan(&rec.Key, &body, &rec.Revision, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("document %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning document %q: %w", key, err)
	}
	rec.Body = []byte(body)
	rec.UpdatedAt = rec.UpdatedAt.UTC()
	return &rec, nil
}

func (r *PostgresDocumentRepo) Put(ctx context.Context, key string, body []byte, expect int64) (int64, error) {
	var (
		query string
		args  []any
	)
	now := time.Now().UTC()
	switch {
	case expect == AnyRevision:
		query = `INSERT INTO folio_documents (key, body, revision, updated_at) VALUES ($1, $2, 1, $3)
			ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body,
				revision = folio_documents.revision + 1, updated_at = EXCLUDED.updated_at, deleted = false
			RETURNING revision`
		args = []any{key, string(body), now}
	case expect == 0:
		query = `INSERT INTO folio_documents (key, body, revision, updated_at) VALUES ($1, $2, 1, $3)
			ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body,
				revision = folio_documents.revision + 1, updated_at = EXCLUDED.updated_at, deleted = false
				WHERE folio_documents.deleted
			RETURNING revision`
		args = []any{key, string(body), now}
	default:
		query = `UPDATE folio_documents SET body = $2, revision = revision + 1, updated_at = $3
			WHERE key = $1 AND revision = $4 AND NOT deleted
			RETURNING revision`
		args = []any{key, string(body), now, expect}
	}

	var next int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&next)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("document %q not at revision %d: %w", key, expect, ErrRevisionMismatch)
	}
	if err != nil {
		return 0, fmt.Errorf("writing document %q: %w", key, err)
	}
	return next, nil
}

func (r *PostgresDocumentRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE folio_documents SET body = '', deleted = true, updated_at = now() WHERE key = $1 AND NOT deleted`, key)
	if err != nil {
		return fmt.Errorf("deleting document %q: %w", key, err)
	}
	return nil
}
