package testfixtures

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/example/roombooking/internal/persistence/sqlite"
)

// SQLiteHarness provides a migrated temporary SQLite store for
// integration-style persistence tests.
type SQLiteHarness struct {
	Store *sqlite.Storage

	cleanup func()
}

// Close releases resources associated with the harness.
func (h *SQLiteHarness) Close() {
	if h != nil && h.cleanup != nil {
		h.cleanup()
		h.cleanup = nil
	}
}

// NewSQLiteHarness constructs a harness over a temporary database file that
// is migrated automatically. A cleanup callback is registered with the
// provided testing.TB, so calling Close is optional.
func NewSQLiteHarness(tb testing.TB) *SQLiteHarness {
	tb.Helper()

	dir := tb.TempDir()
	dsn := "file:" + filepath.Join(dir, "bookings.db") + "?_pragma=foreign_keys(1)"

	storage, err := sqlite.Open(dsn)
	if err != nil {
		tb.Fatalf("failed to open storage: %v", err)
	}

	if err := storage.Migrate(context.Background()); err != nil {
		_ = storage.Close()
		tb.Fatalf("failed to migrate storage: %v", err)
	}

	harness := &SQLiteHarness{
		Store: storage,
		cleanup: func() {
			_ = storage.Close()
		},
	}

	tb.Cleanup(harness.Close)
	return harness
}
