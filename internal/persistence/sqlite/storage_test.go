package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/example/roombooking/internal/persistence"
)

func setupStorage(t *testing.T) *Storage {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "bookings.db") + "?_pragma=foreign_keys(1)"
	storage, err := Open(dsn)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = storage.Close() })

	if err := storage.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	return storage
}

func strPtr(value string) *string {
	return &value
}

func TestCreateAndListUsers(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	id, err := storage.CreateUser(ctx, persistence.NewUser{
		Name:         "Mickey Mouse",
		EmailAddress: strPtr("mickey.mouse@example.com"),
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if id == 0 {
		t.Fatal("CreateUser returned zero id")
	}

	users, err := storage.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0].Name != "Mickey Mouse" {
		t.Errorf("name = %q, want %q", users[0].Name, "Mickey Mouse")
	}
	if users[0].EmailAddress == nil || *users[0].EmailAddress != "mickey.mouse@example.com" {
		t.Errorf("email = %v, want mickey.mouse@example.com", users[0].EmailAddress)
	}

	retrieved, err := storage.GetUser(ctx, id)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if retrieved.ID != id || retrieved.Name != "Mickey Mouse" {
		t.Errorf("GetUser returned %+v", retrieved)
	}
}

func TestCreateUserWithoutEmail(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	id, err := storage.CreateUser(ctx, persistence.NewUser{Name: "Kermit the Frog"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	user, err := storage.GetUser(ctx, id)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user.EmailAddress != nil {
		t.Errorf("email = %q, want nil", *user.EmailAddress)
	}
}

func TestCreateUserEmptyNameFails(t *testing.T) {
	storage := setupStorage(t)

	_, err := storage.CreateUser(context.Background(), persistence.NewUser{Name: "  "})

	var vErr *persistence.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != "name" {
		t.Errorf("field = %q, want name", vErr.Field)
	}
}

func TestGetUserNotFound(t *testing.T) {
	storage := setupStorage(t)

	_, err := storage.GetUser(context.Background(), 99)
	if !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateAndListRooms(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	first, err := storage.CreateRoom(ctx, persistence.NewRoom{Name: "Room A", Location: strPtr("Next to the stairway")})
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	second, err := storage.CreateRoom(ctx, persistence.NewRoom{Name: "Main Hall"})
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	if second <= first {
		t.Errorf("ids are not increasing: %d then %d", first, second)
	}

	rooms, err := storage.ListRooms(ctx)
	if err != nil {
		t.Fatalf("ListRooms failed: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(rooms))
	}
	if rooms[0].Name != "Room A" || rooms[1].Name != "Main Hall" {
		t.Errorf("rooms out of creation order: %+v", rooms)
	}
	if rooms[1].Location != nil {
		t.Errorf("location = %q, want nil", *rooms[1].Location)
	}
}

func TestListRoomsIsIdempotent(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	if _, err := storage.CreateRoom(ctx, persistence.NewRoom{Name: "Room A"}); err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	if _, err := storage.CreateRoom(ctx, persistence.NewRoom{Name: "Room B"}); err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}

	first, err := storage.ListRooms(ctx)
	if err != nil {
		t.Fatalf("first ListRooms failed: %v", err)
	}
	second, err := storage.ListRooms(ctx)
	if err != nil {
		t.Fatalf("second ListRooms failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("ListRooms is not stable: %+v vs %+v", first, second)
	}
}

func TestCreateBookingAndViews(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	userID, err := storage.CreateUser(ctx, persistence.NewUser{Name: "Mickey Mouse"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	roomID, err := storage.CreateRoom(ctx, persistence.NewRoom{Name: "Room A"})
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}

	bookingID, err := storage.CreateBooking(ctx, persistence.NewBooking{
		UserID:     userID,
		RoomID:     roomID,
		BookedOn:   "2014-09-25",
		BookedFrom: strPtr("09:00"),
		BookedTo:   strPtr("10:00"),
	})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	forUser, err := storage.ListBookingsForUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListBookingsForUser failed: %v", err)
	}
	forRoom, err := storage.ListBookingsForRoom(ctx, roomID)
	if err != nil {
		t.Fatalf("ListBookingsForRoom failed: %v", err)
	}

	for _, views := range [][]persistence.BookingView{forUser, forRoom} {
		if len(views) != 1 {
			t.Fatalf("expected 1 booking view row, got %d", len(views))
		}
		row := views[0]
		if row.BookingID != bookingID {
			t.Errorf("booking id = %d, want %d", row.BookingID, bookingID)
		}
		if row.UserName != "Mickey Mouse" || row.RoomName != "Room A" {
			t.Errorf("denormalized names = %q/%q", row.UserName, row.RoomName)
		}
		if row.BookedOn != "2014-09-25" {
			t.Errorf("booked_on = %q", row.BookedOn)
		}
		if row.BookedFrom == nil || *row.BookedFrom != "09:00" {
			t.Errorf("booked_from = %v", row.BookedFrom)
		}
	}
}

func TestCreateBookingDanglingUser(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	roomID, err := storage.CreateRoom(ctx, persistence.NewRoom{Name: "Room A"})
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}

	_, err = storage.CreateBooking(ctx, persistence.NewBooking{
		UserID:   99,
		RoomID:   roomID,
		BookedOn: "2014-09-25",
	})

	var refErr *persistence.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if refErr.Field != "user_id" || refErr.ID != 99 {
		t.Errorf("reference error = %+v", refErr)
	}

	// The failed create must not leave a row behind.
	bookings, err := storage.ListBookings(ctx)
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if len(bookings) != 0 {
		t.Errorf("expected 0 bookings, got %d", len(bookings))
	}
}

func TestCreateBookingDanglingRoom(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	userID, err := storage.CreateUser(ctx, persistence.NewUser{Name: "Donald Duck"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	_, err = storage.CreateBooking(ctx, persistence.NewBooking{
		UserID:   userID,
		RoomID:   42,
		BookedOn: "2014-09-25",
	})

	var refErr *persistence.ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if refErr.Field != "room_id" {
		t.Errorf("field = %q, want room_id", refErr.Field)
	}
}

func TestCreateBookingEmptyDateFails(t *testing.T) {
	storage := setupStorage(t)

	_, err := storage.CreateBooking(context.Background(), persistence.NewBooking{UserID: 1, RoomID: 1})

	var vErr *persistence.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != "booked_on" {
		t.Errorf("field = %q, want booked_on", vErr.Field)
	}
}

func TestMigrateIsRepeatable(t *testing.T) {
	storage := setupStorage(t)

	// A second run must see the recorded version and change nothing.
	if err := storage.Migrate(context.Background()); err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}
}

func TestSeedDemoData(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	if err := storage.SeedDemoData(ctx); err != nil {
		t.Fatalf("SeedDemoData failed: %v", err)
	}

	users, err := storage.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 seeded users, got %d", len(users))
	}

	bookings, err := storage.ListBookings(ctx)
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if len(bookings) != 4 {
		t.Fatalf("expected 4 seeded bookings, got %d", len(bookings))
	}

	// Seeding again is a no-op.
	if err := storage.SeedDemoData(ctx); err != nil {
		t.Fatalf("second SeedDemoData failed: %v", err)
	}
	users, err = storage.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 3 {
		t.Errorf("seeding was not idempotent: %d users", len(users))
	}
}
