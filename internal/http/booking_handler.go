package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/example/roombooking/internal/persistence"
	"github.com/example/roombooking/internal/view"
)

// BookingHandler serves the booking pages and the add-booking mutation.
// Beyond the flat listing it consumes further path segments itself:
// /bookings/user/{id} and /bookings/room/{id} scope the listing and the
// embedded creation form to one user or room.
type BookingHandler struct {
	bookings  persistence.BookingRepository
	users     persistence.UserRepository
	rooms     persistence.RoomRepository
	responder responder
	logger    *slog.Logger
	now       func() time.Time
}

func NewBookingHandler(
	bookings persistence.BookingRepository,
	users persistence.UserRepository,
	rooms persistence.RoomRepository,
	logger *slog.Logger,
) *BookingHandler {
	base := defaultLogger(logger)
	return &BookingHandler{
		bookings:  bookings,
		users:     users,
		rooms:     rooms,
		responder: newResponder(base),
		logger:    base,
		now:       time.Now,
	}
}

func (h *BookingHandler) log(ctx context.Context, operation string) *slog.Logger {
	return handlerLogger(ctx, h.logger, "BookingHandler", operation)
}

// Dispatch consumes the sub-category segment after /bookings: the empty
// segment lists everything, "user" and "room" consume one more numeric id
// segment and scope the listing. Anything else is unmatched.
func (h *BookingHandler) Dispatch(w http.ResponseWriter, r *http.Request, cursor pathCursor) {
	ctx := r.Context()

	category, rest := cursor.shift()
	switch category {
	case "":
		h.listAll(w, r)
	case "user":
		id, _, err := rest.shiftID()
		if err != nil {
			h.responder.writePlain(ctx, w, http.StatusBadRequest, "Bad Request: user id must be numeric")
			return
		}
		h.listForUser(w, r, id)
	case "room":
		id, _, err := rest.shiftID()
		if err != nil {
			h.responder.writePlain(ctx, w, http.StatusBadRequest, "Bad Request: room id must be numeric")
			return
		}
		h.listForRoom(w, r, id)
	default:
		h.responder.writeNotFound(ctx, w, category)
	}
}

func (h *BookingHandler) listAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.log(ctx, "ListAll")

	bookings, err := h.bookings.ListBookings(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "booking list failed", "error", err)
		h.responder.handleStoreError(ctx, w, err)
		return
	}

	users, rooms, err := h.selectorRows(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "booking form data failed", "error", err)
		h.responder.handleStoreError(ctx, w, err)
		return
	}

	page, err := h.bookingsPage("All Bookings", bookings, view.ScopeAll, view.BookingFormParams{
		Users: users,
		Rooms: rooms,
	})
	if err != nil {
		logger.ErrorContext(ctx, "booking page render failed", "error", err)
		h.responder.writePlain(ctx, w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	logger.With("result_count", len(bookings)).InfoContext(ctx, "bookings listed")
	h.responder.writePage(ctx, w, page)
}

func (h *BookingHandler) listForUser(w http.ResponseWriter, r *http.Request, userID int64) {
	ctx := r.Context()
	logger := h.log(ctx, "ListForUser").With("user_id", userID)

	user, err := h.users.GetUser(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "user lookup failed", "error", err)
		h.responder.handleStoreError(ctx, w, err)
		return
	}

	bookings, err := h.bookings.ListBookingsForUser(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "booking list failed", "error", err)
		h.responder.handleStoreError(ctx, w, err)
		return
	}

	_, rooms, err := h.selectorRows(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "booking form data failed", "error", err)
		h.responder.handleStoreError(ctx, w, err)
		return
	}

	page, err := h.bookingsPage(fmt.Sprintf("Bookings for %s", user.Name), bookings, view.ScopeUser, view.BookingFormParams{
		Rooms:       rooms,
		FixedUserID: userID,
	})
	if err != nil {
		logger.ErrorContext(ctx, "booking page render failed", "error", err)
		h.responder.writePlain(ctx, w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	logger.With("result_count", len(bookings)).InfoContext(ctx, "user bookings listed")
	h.responder.writePage(ctx, w, page)
}

func (h *BookingHandler) listForRoom(w http.ResponseWriter, r *http.Request, roomID int64) {
	ctx := r.Context()
	logger := h.log(ctx, "ListForRoom").With("room_id", roomID)

	room, err := h.rooms.GetRoom(ctx, roomID)
	if err != nil {
		logger.ErrorContext(ctx, "room lookup failed", "error", err)
		h.responder.handleStoreError(ctx, w, err)
		return
	}

	bookings, err := h.bookings.ListBookingsForRoom(ctx, roomID)
	if err != nil {
		logger.ErrorContext(ctx, "booking list failed", "error", err)
		h.responder.handleStoreError(ctx, w, err)
		return
	}

	users, _, err := h.selectorRows(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "booking form data failed", "error", err)
		h.responder.handleStoreError(ctx, w, err)
		return
	}

	page, err := h.bookingsPage(fmt.Sprintf("Bookings for %s", room.Name), bookings, view.ScopeRoom, view.BookingFormParams{
		Users:       users,
		FixedRoomID: roomID,
	})
	if err != nil {
		logger.ErrorContext(ctx, "booking page render failed", "error", err)
		h.responder.writePlain(ctx, w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	logger.With("result_count", len(bookings)).InfoContext(ctx, "room bookings listed")
	h.responder.writePage(ctx, w, page)
}

// Create adds a booking and redirects back to the page the form was
// submitted from, falling back to the flat booking listing.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.log(ctx, "Create")

	input, err := decodeBookingForm(r)
	if err != nil {
		if errors.Is(err, errBadForm) {
			h.responder.writePlain(ctx, w, http.StatusBadRequest, "Bad Request")
			return
		}
		logger.ErrorContext(ctx, "booking form rejected", "error", err)
		h.responder.handleStoreError(ctx, w, err)
		return
	}

	id, err := h.bookings.CreateBooking(ctx, input)
	if err != nil {
		logger.ErrorContext(ctx, "booking creation failed", "error", err)
		h.responder.handleStoreError(ctx, w, err)
		return
	}

	location := r.Referer()
	if location == "" {
		location = "/bookings"
	}

	logger.With("booking_id", id, "user_id", input.UserID, "room_id", input.RoomID).InfoContext(ctx, "booking created")
	h.responder.writeRedirect(ctx, w, location)
}

func (h *BookingHandler) selectorRows(ctx context.Context) ([]persistence.User, []persistence.Room, error) {
	users, err := h.users.ListUsers(ctx)
	if err != nil {
		return nil, nil, err
	}
	rooms, err := h.rooms.ListRooms(ctx)
	if err != nil {
		return nil, nil, err
	}
	return users, rooms, nil
}

func (h *BookingHandler) bookingsPage(title string, bookings []persistence.BookingView, scope view.BookingScope, form view.BookingFormParams) (string, error) {
	table, err := view.BookingTable(bookings, scope)
	if err != nil {
		return "", err
	}
	form.Today = h.now().Format("2006-01-02")
	formHTML, err := view.BookingForm(form)
	if err != nil {
		return "", err
	}
	return view.Page(title, table, formHTML)
}
