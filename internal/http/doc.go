// Package http serves the room booking site.
//
// The dispatcher peels one path segment at a time off the request path and
// selects a handler by exact match; nested resources keep consuming the
// remaining cursor. Endpoints:
//   - GET /: index page linking to the three listings.
//   - GET /users, GET /rooms: listing pages with embedded creation forms.
//   - GET /bookings: every booking; GET /bookings/user/{id} and
//     GET /bookings/room/{id}: bookings scoped to one user or room, with
//     the creation form pinned to that user or room.
//   - POST /add-user (name, email_address), POST /add-room (name,
//     location), POST /add-booking (user_id, room_id, booked_on,
//     booked_from, booked_to): mutations that answer with a 301 redirect
//     back to the relevant listing (add-booking honours the Referer).
//
// Any other top-level segment gets a plain-text 404 naming the segment.
// Validation and reference failures from the store surface as 422 before
// any redirect is issued.
package http
