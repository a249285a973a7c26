package testfixtures

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/example/roombooking/internal/persistence"
)

// MemoryStore is a map-backed implementation of the persistence
// repositories for handler tests that do not need a real database. Its
// validation and reference checks mirror the SQLite store's behaviour.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[int64]persistence.User
	rooms    map[int64]persistence.Room
	bookings map[int64]memoryBooking
	nextID   map[string]int64
}

type memoryBooking struct {
	ID         int64
	UserID     int64
	RoomID     int64
	BookedOn   string
	BookedFrom *string
	BookedTo   *string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[int64]persistence.User),
		rooms:    make(map[int64]persistence.Room),
		bookings: make(map[int64]memoryBooking),
		nextID:   map[string]int64{"users": 0, "rooms": 0, "bookings": 0},
	}
}

func (s *MemoryStore) assignID(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

// CreateUser stores a new user.
func (s *MemoryStore) CreateUser(ctx context.Context, user persistence.NewUser) (int64, error) {
	if strings.TrimSpace(user.Name) == "" {
		return 0, &persistence.ValidationError{Field: "name"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.assignID("users")
	s.users[id] = persistence.User{ID: id, Name: user.Name, EmailAddress: cloneString(user.EmailAddress)}
	return id, nil
}

// GetUser retrieves a user by id.
func (s *MemoryStore) GetUser(ctx context.Context, id int64) (persistence.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return persistence.User{}, persistence.ErrNotFound
	}
	return user, nil
}

// ListUsers returns all users in id order.
func (s *MemoryStore) ListUsers(ctx context.Context) ([]persistence.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]persistence.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// CreateRoom stores a new room.
func (s *MemoryStore) CreateRoom(ctx context.Context, room persistence.NewRoom) (int64, error) {
	if strings.TrimSpace(room.Name) == "" {
		return 0, &persistence.ValidationError{Field: "name"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.assignID("rooms")
	s.rooms[id] = persistence.Room{ID: id, Name: room.Name, Location: cloneString(room.Location)}
	return id, nil
}

// GetRoom retrieves a room by id.
func (s *MemoryStore) GetRoom(ctx context.Context, id int64) (persistence.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[id]
	if !ok {
		return persistence.Room{}, persistence.ErrNotFound
	}
	return room, nil
}

// ListRooms returns all rooms in id order.
func (s *MemoryStore) ListRooms(ctx context.Context) ([]persistence.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]persistence.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

// CreateBooking stores a new booking after verifying its references.
func (s *MemoryStore) CreateBooking(ctx context.Context, booking persistence.NewBooking) (int64, error) {
	if strings.TrimSpace(booking.BookedOn) == "" {
		return 0, &persistence.ValidationError{Field: "booked_on"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[booking.UserID]; !ok {
		return 0, &persistence.ReferenceError{Field: "user_id", ID: booking.UserID}
	}
	if _, ok := s.rooms[booking.RoomID]; !ok {
		return 0, &persistence.ReferenceError{Field: "room_id", ID: booking.RoomID}
	}

	id := s.assignID("bookings")
	s.bookings[id] = memoryBooking{
		ID:         id,
		UserID:     booking.UserID,
		RoomID:     booking.RoomID,
		BookedOn:   booking.BookedOn,
		BookedFrom: cloneString(booking.BookedFrom),
		BookedTo:   cloneString(booking.BookedTo),
	}
	return id, nil
}

// ListBookings returns the joined booking view for all bookings.
func (s *MemoryStore) ListBookings(ctx context.Context) ([]persistence.BookingView, error) {
	return s.listBookings(func(memoryBooking) bool { return true })
}

// ListBookingsForUser returns the booking view rows for one user.
func (s *MemoryStore) ListBookingsForUser(ctx context.Context, userID int64) ([]persistence.BookingView, error) {
	return s.listBookings(func(b memoryBooking) bool { return b.UserID == userID })
}

// ListBookingsForRoom returns the booking view rows for one room.
func (s *MemoryStore) ListBookingsForRoom(ctx context.Context, roomID int64) ([]persistence.BookingView, error) {
	return s.listBookings(func(b memoryBooking) bool { return b.RoomID == roomID })
}

func (s *MemoryStore) listBookings(match func(memoryBooking) bool) ([]persistence.BookingView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]persistence.BookingView, 0, len(s.bookings))
	for _, booking := range s.bookings {
		if !match(booking) {
			continue
		}
		views = append(views, persistence.BookingView{
			BookingID:  booking.ID,
			UserID:     booking.UserID,
			UserName:   s.users[booking.UserID].Name,
			RoomID:     booking.RoomID,
			RoomName:   s.rooms[booking.RoomID].Name,
			BookedOn:   booking.BookedOn,
			BookedFrom: cloneString(booking.BookedFrom),
			BookedTo:   cloneString(booking.BookedTo),
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].BookingID < views[j].BookingID })
	return views, nil
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
}
