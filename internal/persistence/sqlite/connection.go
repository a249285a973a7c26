package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/roombooking/internal/persistence"
	_ "modernc.org/sqlite"
)

// Storage implements the persistence repositories on top of an embedded
// SQLite database file.
//
// Every operation acquires its own transaction scope and releases it on
// every exit path, so a lightweight file store is never held locked across
// unrelated requests.
type Storage struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at the given DSN.
func Open(dsn string) (*Storage, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ping tests the database connection.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type txFunc func(tx *sql.Tx) error

// withTx executes fn within a write transaction. The transaction is rolled
// back if fn returns an error and committed otherwise.
func (s *Storage) withTx(ctx context.Context, fn txFunc) error {
	return s.runTx(ctx, nil, fn)
}

// withReadTx executes fn within a read-only transaction.
func (s *Storage) withReadTx(ctx context.Context, fn txFunc) error {
	return s.runTx(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (s *Storage) runTx(ctx context.Context, opts *sql.TxOptions, fn txFunc) error {
	tx, err := s.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction failed (rollback error: %v): %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// mapError maps SQLite driver errors to persistence layer errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if err == sql.ErrNoRows {
		return persistence.ErrNotFound
	}

	errStr := err.Error()

	if strings.Contains(errStr, "FOREIGN KEY constraint failed") {
		// The pre-insert existence checks normally catch dangling
		// references first; this covers a row deleted between check
		// and insert by another connection.
		return &persistence.ReferenceError{Field: "reference"}
	}

	return err
}

// rowExists reports whether a row with the given id exists in the table.
// The table name is always a compile-time constant, never user input.
func rowExists(tx *sql.Tx, table string, id int64) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = ?)", table)
	if err := tx.QueryRow(query, id).Scan(&exists); err != nil {
		return false, mapError(err)
	}
	return exists, nil
}
