package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/example/roombooking/internal/persistence"
)

// CreateRoom inserts a new room and returns its store-assigned id.
func (s *Storage) CreateRoom(ctx context.Context, room persistence.NewRoom) (int64, error) {
	if strings.TrimSpace(room.Name) == "" {
		return 0, &persistence.ValidationError{Field: "name"}
	}

	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(
			"INSERT INTO rooms (name, location) VALUES (?, ?)",
			room.Name,
			room.Location,
		)
		if err != nil {
			return mapError(err)
		}
		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetRoom retrieves a room by id.
func (s *Storage) GetRoom(ctx context.Context, id int64) (persistence.Room, error) {
	var room persistence.Room
	err := s.withReadTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRow("SELECT id, name, location FROM rooms WHERE id = ?", id)
		return scanRoom(row, &room)
	})
	if err != nil {
		return persistence.Room{}, err
	}
	return room, nil
}

// ListRooms returns all rooms in creation order.
func (s *Storage) ListRooms(ctx context.Context) ([]persistence.Room, error) {
	var rooms []persistence.Room
	err := s.withReadTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.Query("SELECT id, name, location FROM rooms ORDER BY id ASC")
		if err != nil {
			return mapError(err)
		}
		defer rows.Close()

		for rows.Next() {
			var room persistence.Room
			if err := scanRoom(rows, &room); err != nil {
				return err
			}
			rooms = append(rooms, room)
		}
		return mapError(rows.Err())
	})
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func scanRoom(row rowScanner, room *persistence.Room) error {
	var location sql.NullString
	if err := row.Scan(&room.ID, &room.Name, &location); err != nil {
		return mapError(err)
	}
	if location.Valid {
		room.Location = &location.String
	}
	return nil
}
