package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations holds the ordered schema statements. Each entry is applied at
// most once, tracked through the schema_migrations table.
var migrations = []struct {
	version    int
	statements []string
}{
	{
		version: 1,
		statements: []string{
			`CREATE TABLE users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				email_address TEXT
			)`,
			`CREATE TABLE rooms (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				location TEXT
			)`,
			`CREATE TABLE bookings (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER NOT NULL REFERENCES users (id),
				room_id INTEGER NOT NULL REFERENCES rooms (id),
				booked_on TEXT NOT NULL,
				booked_from TEXT,
				booked_to TEXT
			)`,
			`CREATE VIEW v_bookings AS
				SELECT
					b.id AS booking_id,
					u.id AS user_id,
					u.name AS user_name,
					r.id AS room_id,
					r.name AS room_name,
					b.booked_on AS booked_on,
					b.booked_from AS booked_from,
					b.booked_to AS booked_to
				FROM bookings b
				JOIN users u ON u.id = b.user_id
				JOIN rooms r ON r.id = b.room_id
				ORDER BY b.id`,
		},
	},
}

// Migrate brings the database schema up to date. It is safe to call on
// every startup.
func (s *Storage) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`); err != nil {
		return fmt.Errorf("failed to initialize version table: %w", err)
	}

	var current sql.NullInt64
	if err := s.db.QueryRowContext(ctx, "SELECT MAX(version) FROM schema_migrations").Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, migration := range migrations {
		if current.Valid && migration.version <= int(current.Int64) {
			continue
		}

		err := s.withTx(ctx, func(tx *sql.Tx) error {
			for _, statement := range migration.statements {
				if _, err := tx.Exec(statement); err != nil {
					return fmt.Errorf("migration %d failed: %w", migration.version, err)
				}
			}
			if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", migration.version); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", migration.version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}
