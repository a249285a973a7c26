package persistence

import "context"

// UserRepository exposes read and create operations for users.
type UserRepository interface {
	CreateUser(ctx context.Context, user NewUser) (int64, error)
	GetUser(ctx context.Context, id int64) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
}

// RoomRepository exposes read and create operations for rooms.
type RoomRepository interface {
	CreateRoom(ctx context.Context, room NewRoom) (int64, error)
	GetRoom(ctx context.Context, id int64) (Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
}

// BookingRepository stores bookings and reads them back through the joined
// booking view.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking NewBooking) (int64, error)
	ListBookings(ctx context.Context) ([]BookingView, error)
	ListBookingsForUser(ctx context.Context, userID int64) ([]BookingView, error)
	ListBookingsForRoom(ctx context.Context, roomID int64) ([]BookingView, error)
}
