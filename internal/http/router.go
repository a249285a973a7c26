package http

import (
	"log/slog"
	"net/http"

	"github.com/example/roombooking/internal/view"
)

// RouterConfig wires the resource handlers into the dispatcher.
type RouterConfig struct {
	Users      *UserHandler
	Rooms      *RoomHandler
	Bookings   *BookingHandler
	Logger     *slog.Logger
	Middleware []func(http.Handler) http.Handler
}

// Router dispatches requests by consuming the request path one segment at a
// time. The first segment selects a resource handler; the remaining cursor
// is handed to handlers that consume further segments themselves. There is
// no routing table and no pattern matching: dispatch is exact string match
// on the peeled segment. The add-* endpoints are mutations regardless of
// the HTTP verb used to reach them.
type Router struct {
	users     *UserHandler
	rooms     *RoomHandler
	bookings  *BookingHandler
	responder responder
	logger    *slog.Logger
}

// NewRouter builds the dispatcher and applies the configured middleware,
// outermost first.
func NewRouter(cfg RouterConfig) http.Handler {
	base := defaultLogger(cfg.Logger)
	router := &Router{
		users:     cfg.Users,
		rooms:     cfg.Rooms,
		bookings:  cfg.Bookings,
		responder: newResponder(base),
		logger:    base,
	}

	var handler http.Handler = router
	for i := len(cfg.Middleware) - 1; i >= 0; i-- {
		if cfg.Middleware[i] != nil {
			handler = cfg.Middleware[i](handler)
		}
	}

	return handler
}

// ServeHTTP implements http.Handler.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	segment, rest := newPathCursor(r.URL.Path).shift()
	switch segment {
	case "":
		rt.index(w, r)
	case "users":
		rt.users.List(w, r)
	case "rooms":
		rt.rooms.List(w, r)
	case "bookings":
		rt.bookings.Dispatch(w, r, rest)
	case "add-user":
		rt.users.Create(w, r)
	case "add-room":
		rt.rooms.Create(w, r)
	case "add-booking":
		rt.bookings.Create(w, r)
	default:
		rt.responder.writeNotFound(ctx, w, segment)
	}
}

func (rt *Router) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	links, err := view.IndexLinks()
	if err == nil {
		var page string
		if page, err = view.Page("Starting Page", links); err == nil {
			rt.responder.writePage(ctx, w, page)
			return
		}
	}

	rt.responder.loggerFor(ctx).ErrorContext(ctx, "index render failed", "error", err)
	rt.responder.writePlain(ctx, w, http.StatusInternalServerError, "Internal Server Error")
}
