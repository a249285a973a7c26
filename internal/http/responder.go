package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/example/roombooking/internal/logging"
	"github.com/example/roombooking/internal/persistence"
)

type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	if logger == nil {
		logger = slog.Default()
	}
	return responder{logger: logger}
}

// writePage sends a rendered HTML page.
func (r responder) writePage(ctx context.Context, w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprint(w, body); err != nil {
		r.loggerFor(ctx).ErrorContext(ctx, "failed to write response", "error", err)
	}
}

// writeRedirect sends a 301 with an empty body, completing the
// post/redirect/get cycle after a mutation.
func (r responder) writeRedirect(ctx context.Context, w http.ResponseWriter, location string) {
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusMovedPermanently)
}

// writeNotFound reports an unmatched path segment.
func (r responder) writeNotFound(ctx context.Context, w http.ResponseWriter, segment string) {
	r.writePlain(ctx, w, http.StatusNotFound, "Not Found: "+segment)
}

func (r responder) writePlain(ctx context.Context, w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := fmt.Fprintln(w, message); err != nil {
		r.loggerFor(ctx).ErrorContext(ctx, "failed to write response", "error", err)
	}
}

// handleStoreError maps DAL errors onto the HTTP error taxonomy. Validation
// and reference failures surface as 422 with a message naming the field;
// anything unrecognized is a store-level failure and becomes a 500.
func (r responder) handleStoreError(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		vErr   *persistence.ValidationError
		refErr *persistence.ReferenceError
	)

	switch {
	case errors.Is(err, persistence.ErrNotFound):
		r.writePlain(ctx, w, http.StatusNotFound, "Not Found")
	case errors.As(err, &vErr):
		r.writePlain(ctx, w, http.StatusUnprocessableEntity, fmt.Sprintf("%s is required", vErr.Field))
	case errors.As(err, &refErr):
		r.writePlain(ctx, w, http.StatusUnprocessableEntity, fmt.Sprintf("%s %d does not exist", refErr.Field, refErr.ID))
	default:
		r.loggerFor(ctx).ErrorContext(ctx, "store operation failed", "error", err)
		r.writePlain(ctx, w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func (r responder) loggerFor(ctx context.Context) *slog.Logger {
	if logger := logging.FromContext(ctx); logger != nil {
		return logger
	}
	return r.logger
}
