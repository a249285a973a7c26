package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/example/roombooking/internal/persistence"
	"github.com/example/roombooking/internal/view"
)

// RoomHandler serves the room listing page and the add-room mutation.
type RoomHandler struct {
	store     persistence.RoomRepository
	responder responder
	logger    *slog.Logger
}

func NewRoomHandler(store persistence.RoomRepository, logger *slog.Logger) *RoomHandler {
	base := defaultLogger(logger)
	return &RoomHandler{store: store, responder: newResponder(base), logger: base}
}

func (h *RoomHandler) log(ctx context.Context, operation string) *slog.Logger {
	return handlerLogger(ctx, h.logger, "RoomHandler", operation)
}

// List renders all rooms with an embedded creation form.
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.log(ctx, "List")

	rooms, err := h.store.ListRooms(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "room list failed", "error", err)
		h.responder.handleStoreError(ctx, w, err)
		return
	}

	page, err := roomsPage(rooms)
	if err != nil {
		logger.ErrorContext(ctx, "room page render failed", "error", err)
		h.responder.writePlain(ctx, w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	logger.With("result_count", len(rooms)).InfoContext(ctx, "rooms listed")
	h.responder.writePage(ctx, w, page)
}

// Create adds a room and redirects back to the room listing.
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.log(ctx, "Create")

	input, err := decodeRoomForm(r)
	if err != nil {
		if errors.Is(err, errBadForm) {
			h.responder.writePlain(ctx, w, http.StatusBadRequest, "Bad Request")
			return
		}
		logger.ErrorContext(ctx, "room form rejected", "error", err)
		h.responder.handleStoreError(ctx, w, err)
		return
	}

	id, err := h.store.CreateRoom(ctx, input)
	if err != nil {
		logger.ErrorContext(ctx, "room creation failed", "error", err)
		h.responder.handleStoreError(ctx, w, err)
		return
	}

	logger.With("room_id", id).InfoContext(ctx, "room created")
	h.responder.writeRedirect(ctx, w, "/rooms")
}

func roomsPage(rooms []persistence.Room) (string, error) {
	list, err := view.RoomList(rooms)
	if err != nil {
		return "", err
	}
	form, err := view.RoomForm()
	if err != nil {
		return "", err
	}
	return view.Page("Rooms", list, form)
}
