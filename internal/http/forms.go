package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/example/roombooking/internal/persistence"
)

var errBadForm = errors.New("malformed form submission")

// The decode helpers turn a form submission into the typed creation
// structs the store expects. Required fields fail fast with a
// ValidationError naming the field; optional fields pass blank values
// through as nil.

func decodeUserForm(r *http.Request) (persistence.NewUser, error) {
	if err := r.ParseForm(); err != nil {
		return persistence.NewUser{}, errBadForm
	}

	name, err := requiredField(r, "name")
	if err != nil {
		return persistence.NewUser{}, err
	}

	return persistence.NewUser{
		Name:         name,
		EmailAddress: optionalField(r, "email_address"),
	}, nil
}

func decodeRoomForm(r *http.Request) (persistence.NewRoom, error) {
	if err := r.ParseForm(); err != nil {
		return persistence.NewRoom{}, errBadForm
	}

	name, err := requiredField(r, "name")
	if err != nil {
		return persistence.NewRoom{}, err
	}

	return persistence.NewRoom{
		Name:     name,
		Location: optionalField(r, "location"),
	}, nil
}

func decodeBookingForm(r *http.Request) (persistence.NewBooking, error) {
	if err := r.ParseForm(); err != nil {
		return persistence.NewBooking{}, errBadForm
	}

	userID, err := requiredIDField(r, "user_id")
	if err != nil {
		return persistence.NewBooking{}, err
	}
	roomID, err := requiredIDField(r, "room_id")
	if err != nil {
		return persistence.NewBooking{}, err
	}
	bookedOn, err := requiredField(r, "booked_on")
	if err != nil {
		return persistence.NewBooking{}, err
	}

	return persistence.NewBooking{
		UserID:     userID,
		RoomID:     roomID,
		BookedOn:   bookedOn,
		BookedFrom: optionalField(r, "booked_from"),
		BookedTo:   optionalField(r, "booked_to"),
	}, nil
}

func requiredField(r *http.Request, field string) (string, error) {
	value := strings.TrimSpace(r.Form.Get(field))
	if value == "" {
		return "", &persistence.ValidationError{Field: field}
	}
	return value, nil
}

func requiredIDField(r *http.Request, field string) (int64, error) {
	value, err := requiredField(r, field)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &persistence.ValidationError{Field: field}
	}
	return id, nil
}

func optionalField(r *http.Request, field string) *string {
	value := strings.TrimSpace(r.Form.Get(field))
	if value == "" {
		return nil
	}
	return &value
}
