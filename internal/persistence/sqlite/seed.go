package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// SeedDemoData inserts a small set of demo users, rooms and bookings so a
// fresh install has something to browse. It is a no-op when users already
// exist.
func (s *Storage) SeedDemoData(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
			return mapError(err)
		}
		if count > 0 {
			return nil
		}

		users := []struct {
			name  string
			email any
		}{
			{"Mickey Mouse", "mickey.mouse@example.com"},
			{"Donald Duck", "donald.duck@example.com"},
			{"Kermit the Frog", nil},
		}
		for _, user := range users {
			if _, err := tx.Exec("INSERT INTO users (name, email_address) VALUES (?, ?)", user.name, user.email); err != nil {
				return fmt.Errorf("failed to seed user %q: %w", user.name, err)
			}
		}

		rooms := []struct {
			name     string
			location any
		}{
			{"Room A", "Next to the stairway"},
			{"Room B", "On the Second Floor"},
			{"Main Hall", nil},
		}
		for _, room := range rooms {
			if _, err := tx.Exec("INSERT INTO rooms (name, location) VALUES (?, ?)", room.name, room.location); err != nil {
				return fmt.Errorf("failed to seed room %q: %w", room.name, err)
			}
		}

		bookings := []struct {
			userID, roomID int64
			on             string
			from, to       any
		}{
			{1, 1, "2014-09-25", "09:00", "10:00"},
			{1, 3, "2015-09-25", nil, nil},
			{3, 2, "2014-09-22", "12:00", nil},
			{2, 1, "2015-02-14", "09:30", "10:00"},
		}
		for _, booking := range bookings {
			_, err := tx.Exec(
				"INSERT INTO bookings (user_id, room_id, booked_on, booked_from, booked_to) VALUES (?, ?, ?, ?, ?)",
				booking.userID, booking.roomID, booking.on, booking.from, booking.to,
			)
			if err != nil {
				return fmt.Errorf("failed to seed booking: %w", err)
			}
		}

		return nil
	})
}
