package testfixtures

import (
	"context"
	"testing"

	"github.com/example/roombooking/internal/persistence"
)

// Str returns a pointer to the given string, for optional fields.
func Str(value string) *string {
	return &value
}

// MustCreateUser creates a user and fails the test on error.
func MustCreateUser(tb testing.TB, repo persistence.UserRepository, name string, email *string) int64 {
	tb.Helper()
	id, err := repo.CreateUser(context.Background(), persistence.NewUser{Name: name, EmailAddress: email})
	if err != nil {
		tb.Fatalf("failed to create user %q: %v", name, err)
	}
	return id
}

// MustCreateRoom creates a room and fails the test on error.
func MustCreateRoom(tb testing.TB, repo persistence.RoomRepository, name string, location *string) int64 {
	tb.Helper()
	id, err := repo.CreateRoom(context.Background(), persistence.NewRoom{Name: name, Location: location})
	if err != nil {
		tb.Fatalf("failed to create room %q: %v", name, err)
	}
	return id
}

// MustCreateBooking creates a booking and fails the test on error.
func MustCreateBooking(tb testing.TB, repo persistence.BookingRepository, booking persistence.NewBooking) int64 {
	tb.Helper()
	id, err := repo.CreateBooking(context.Background(), booking)
	if err != nil {
		tb.Fatalf("failed to create booking: %v", err)
	}
	return id
}
