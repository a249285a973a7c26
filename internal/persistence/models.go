package persistence

// User represents a person who can book rooms.
type User struct {
	ID           int64
	Name         string
	EmailAddress *string
}

// Room represents a bookable room.
type Room struct {
	ID       int64
	Name     string
	Location *string
}

// BookingView is the read-only joined projection of a booking with the
// user's and room's names denormalized in. Every booking read path returns
// this shape; it is never written to.
type BookingView struct {
	BookingID  int64
	UserID     int64
	UserName   string
	RoomID     int64
	RoomName   string
	BookedOn   string
	BookedFrom *string
	BookedTo   *string
}

// NewUser carries the fields required to create a user.
type NewUser struct {
	Name         string
	EmailAddress *string
}

// NewRoom carries the fields required to create a room.
type NewRoom struct {
	Name     string
	Location *string
}

// NewBooking carries the fields required to create a booking. BookedFrom
// and BookedTo are optional; nil means the booking has no start or end time.
type NewBooking struct {
	UserID     int64
	RoomID     int64
	BookedOn   string
	BookedFrom *string
	BookedTo   *string
}
