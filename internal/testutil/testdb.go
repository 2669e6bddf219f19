package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/meridian/internal/db"
)

// NewTestDB opens a migrated in-memory database that lives for the test.
// It has a single connection, so never read through it while a unit of
// work on the same database is open.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openForTest(t, db.MemoryPath)
}

// NewFileTestDB opens a migrated database file under t.TempDir. Unlike
// :memory: every pooled connection sees the same data, which concurrency
// tests need.
func NewFileTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openForTest(t, filepath.Join(t.TempDir(), "meridian_test.db"))
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

func openForTest(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	if err != nil {
		t.Fatalf("open test database %s: %v", path, err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}
