package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillSizes(db); err != nil {
		return fmt.Errorf("backfilling document sizes: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		key        TEXT PRIMARY KEY,
		body       TEXT NOT NULL,
		revision   INTEGER NOT NULL DEFAULT 1 CHECK(revision > 0),
		updated_at TEXT NOT NULL
	)`,
	`ALTER TABLE documents ADD COLUMN size_bytes INTEGER NOT NULL DEFAULT 0`,
	`CREATE INDEX IF NOT EXISTS idx_documents_updated ON documents(updated_at)`,
	// Deleted rows stay behind as tombstones so revisions never repeat.
	`ALTER TABLE documents ADD COLUMN deleted INTEGER NOT NULL DEFAULT 0`,
}

// migrateBackfillSizes fills size_bytes for rows written before the column
// existed.
func migrateBackfillSizes(db *sql.DB) error {
	ctx := context.Background()
	_, err := db.ExecContext(ctx,
		`UPDATE documents SET size_bytes = length(CAST(body AS BLOB)) WHERE size_bytes = 0 AND body != ''`)
	return err
}
