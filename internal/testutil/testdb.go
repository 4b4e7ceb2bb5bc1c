package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/folio/internal/db"
	"github.com/alexanderramin/folio/internal/repository"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// NewTestDocumentRepo returns a SQLite document repository over a fresh
// in-memory database.
func NewTestDocumentRepo(t *testing.T) *repository.SQLiteDocumentRepo {
	t.Helper()
	database := NewTestDB(t)
	return repository.NewSQLiteDocumentRepo(database, NewTestUoW(database))
}
