package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/example/roombooking/internal/persistence"
	"github.com/example/roombooking/internal/view"
)

// UserHandler serves the user listing page and the add-user mutation.
type UserHandler struct {
	store     persistence.UserRepository
	responder responder
	logger    *slog.Logger
}

func NewUserHandler(store persistence.UserRepository, logger *slog.Logger) *UserHandler {
	base := defaultLogger(logger)
	return &UserHandler{store: store, responder: newResponder(base), logger: base}
}

func (h *UserHandler) log(ctx context.Context, operation string) *slog.Logger {
	return handlerLogger(ctx, h.logger, "UserHandler", operation)
}

// List renders all users with an embedded creation form.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.log(ctx, "List")

	users, err := h.store.ListUsers(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "user list failed", "error", err)
		h.responder.handleStoreError(ctx, w, err)
		return
	}

	page, err := usersPage(users)
	if err != nil {
		logger.ErrorContext(ctx, "user page render failed", "error", err)
		h.responder.writePlain(ctx, w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	logger.With("result_count", len(users)).InfoContext(ctx, "users listed")
	h.responder.writePage(ctx, w, page)
}

// Create adds a user and redirects back to the user listing.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.log(ctx, "Create")

	input, err := decodeUserForm(r)
	if err != nil {
		if errors.Is(err, errBadForm) {
			h.responder.writePlain(ctx, w, http.StatusBadRequest, "Bad Request")
			return
		}
		logger.ErrorContext(ctx, "user form rejected", "error", err)
		h.responder.handleStoreError(ctx, w, err)
		return
	}

	id, err := h.store.CreateUser(ctx, input)
	if err != nil {
		logger.ErrorContext(ctx, "user creation failed", "error", err)
		h.responder.handleStoreError(ctx, w, err)
		return
	}

	logger.With("user_id", id).InfoContext(ctx, "user created")
	h.responder.writeRedirect(ctx, w, "/users")
}

func usersPage(users []persistence.User) (string, error) {
	list, err := view.UserList(users)
	if err != nil {
		return "", err
	}
	form, err := view.UserForm()
	if err != nil {
		return "", err
	}
	return view.Page("Users", list, form)
}
