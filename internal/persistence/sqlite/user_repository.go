package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/example/roombooking/internal/persistence"
)

// CreateUser inserts a new user and returns its store-assigned id.
func (s *Storage) CreateUser(ctx context.Context, user persistence.NewUser) (int64, error) {
	if strings.TrimSpace(user.Name) == "" {
		return 0, &persistence.ValidationError{Field: "name"}
	}

	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec(
			"INSERT INTO users (name, email_address) VALUES (?, ?)",
			user.Name,
			user.EmailAddress,
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

// GetUser retrieves a user by id.
func (s *Storage) GetUser(ctx context.Context, id int64) (persistence.User, error) {
	var user persistence.User
	err := s.withReadTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRow("SELECT id, name, email_address FROM users WHERE id = ?", id)
		return scanUser(row, &user)
	})
	if err != nil {
		return persistence.User{}, err
	}
	return user, nil
}

// ListUsers returns all users in creation order.
func (s *Storage) ListUsers(ctx context.Context) ([]persistence.User, error) {
	var users []persistence.User
	err := s.withReadTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.Query("SELECT id, name, email_address FROM users ORDER BY id ASC")
		if err != nil {
			return mapError(err)
		}
		defer rows.Close()

		for rows.Next() {
			var user persistence.User
			if err := scanUser(rows, &user); err != nil {
				return err
			}
			users = append(users, user)
		}
		return mapError(rows.Err())
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *persistence.User) error {
	var email sql.NullString
	if err := row.Scan(&user.ID, &user.Name, &email); err != nil {
		return mapError(err)
	}
	if email.Valid {
		user.EmailAddress = &email.String
	}
	return nil
}
