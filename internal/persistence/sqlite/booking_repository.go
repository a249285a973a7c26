package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/example/roombooking/internal/persistence"
)

const bookingViewColumns = `booking_id, user_id, user_name, room_id, room_name, booked_on, booked_from, booked_to`

// CreateBooking inserts a new booking and returns its store-assigned id.
//
// The referenced user and room are verified inside the same write
// transaction as the insert, so a dangling reference never leaves a
// half-written row behind.
func (s *Storage) CreateBooking(ctx context.Context, booking persistence.NewBooking) (int64, error) {
	if strings.TrimSpace(booking.BookedOn) == "" {
		return 0, &persistence.ValidationError{Field: "booked_on"}
	}

	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := rowExists(tx, "users", booking.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return &persistence.ReferenceError{Field: "user_id", ID: booking.UserID}
		}

		ok, err = rowExists(tx, "rooms", booking.RoomID)
		if err != nil {
			return err
		}
		if !ok {
			return &persistence.ReferenceError{Field: "room_id", ID: booking.RoomID}
		}

		result, err := tx.Exec(
			`INSERT INTO bookings (user_id, room_id, booked_on, booked_from, booked_to)
			VALUES (?, ?, ?, ?, ?)`,
			booking.UserID,
			booking.RoomID,
			booking.BookedOn,
			booking.BookedFrom,
			booking.BookedTo,
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

// ListBookings returns all rows of the booking view in booking order.
func (s *Storage) ListBookings(ctx context.Context) ([]persistence.BookingView, error) {
	return s.queryBookingView(ctx, "SELECT "+bookingViewColumns+" FROM v_bookings")
}

// ListBookingsForUser returns the booking view rows for one user.
func (s *Storage) ListBookingsForUser(ctx context.Context, userID int64) ([]persistence.BookingView, error) {
	return s.queryBookingView(ctx, "SELECT "+bookingViewColumns+" FROM v_bookings WHERE user_id = ?", userID)
}

// ListBookingsForRoom returns the booking view rows for one room.
func (s *Storage) ListBookingsForRoom(ctx context.Context, roomID int64) ([]persistence.BookingView, error) {
	return s.queryBookingView(ctx, "SELECT "+bookingViewColumns+" FROM v_bookings WHERE room_id = ?", roomID)
}

func (s *Storage) queryBookingView(ctx context.Context, query string, args ...any) ([]persistence.BookingView, error) {
	var bookings []persistence.BookingView
	err := s.withReadTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.Query(query, args...)
		if err != nil {
			return mapError(err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				booking  persistence.BookingView
				from, to sql.NullString
			)
			err := rows.Scan(
				&booking.BookingID,
				&booking.UserID,
				&booking.UserName,
				&booking.RoomID,
				&booking.RoomName,
				&booking.BookedOn,
				&from,
				&to,
			)
			if err != nil {
				return mapError(err)
			}
			if from.Valid {
				booking.BookedFrom = &from.String
			}
			if to.Valid {
				booking.BookedTo = &to.String
			}
			bookings = append(bookings, booking)
		}
		return mapError(rows.Err())
	})
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
