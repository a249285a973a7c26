// Package view renders page fragments for the booking site.
//
// Every function is pure: rows in, markup out. Rendering goes through
// html/template so user-supplied text (names, emails, locations) is always
// escaped before it reaches a page.
package view

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/example/roombooking/internal/persistence"
)

// BookingScope selects which columns a booking table shows and which
// selector the matching creation form embeds.
type BookingScope int

const (
	// ScopeAll lists every booking with both user and room columns.
	ScopeAll BookingScope = iota
	// ScopeUser lists one user's bookings; the user is fixed.
	ScopeUser
	// ScopeRoom lists one room's bookings; the room is fixed.
	ScopeRoom
)

var pageTemplate = template.Must(template.New("page").Parse(`<html>
<head>
<title>Room Booking System: {{.Title}}</title>
<style>
body {
	background-color : #cff;
	margin : 1em;
	padding : 1em;
	border : thin solid black;
	font-family : sans-serif;
}
td {
	padding : 0.5em;
	margin : 0.5em;
	border : thin solid blue;
}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Fragments}}{{.}}
{{end}}</body>
</html>
`))

var fragmentTemplates = template.Must(template.New("fragments").Funcs(template.FuncMap{
	"orElse": func(value *string, fallback string) string {
		if value == nil || *value == "" {
			return fallback
		}
		return *value
	},
	"orBlank": func(value *string) string {
		if value == nil {
			return ""
		}
		return *value
	},
}).Parse(`
{{define "index"}}<ul>
<li><a href="/users">Users</a></li>
<li><a href="/rooms">Rooms</a></li>
<li><a href="/bookings">Bookings</a></li>
</ul>{{end}}

{{define "userList"}}<ul>
{{range .}}<li><a href="/bookings/user/{{.ID}}">{{.Name}}</a> ({{orElse .EmailAddress "No email"}})</li>
{{end}}</ul>{{end}}

{{define "userForm"}}<hr/>
<form method="POST" action="/add-user">
<label for="name">Name:</label>&nbsp;<input type="text" name="name"/>
<label for="email_address">Email:</label>&nbsp;<input type="text" name="email_address"/>
<input type="submit" name="submit" value="Add User"/>
</form>{{end}}

{{define "roomList"}}<ul>
{{range .}}<li><a href="/bookings/room/{{.ID}}">{{.Name}}</a> ({{orElse .Location "Location unknown"}})</li>
{{end}}</ul>{{end}}

{{define "roomForm"}}<hr/>
<form method="POST" action="/add-room">
<label for="name">Name:</label>&nbsp;<input type="text" name="name"/>
<label for="location">Location:</label>&nbsp;<input type="text" name="location"/>
<input type="submit" name="submit" value="Add Room"/>
</form>{{end}}

{{define "bookingTable"}}<table>
<tr>{{if .ShowUser}}<td>User</td>{{end}}{{if .ShowRoom}}<td>Room</td>{{end}}<td>Date</td><td>Times</td></tr>
{{range .Bookings}}<tr>{{if $.ShowUser}}<td>{{.UserName}}</td>{{end}}{{if $.ShowRoom}}<td>{{.RoomName}}</td>{{end}}<td>{{.BookedOn}}</td><td>{{orBlank .BookedFrom}} - {{orBlank .BookedTo}}</td></tr>
{{end}}</table>{{end}}

{{define "bookingForm"}}<hr/>
<form method="POST" action="/add-booking">
{{if .FixedUserID}}<input type="hidden" name="user_id" value="{{.FixedUserID}}"/>{{else}}<label for="user_id">User:</label>&nbsp;<select name="user_id">
{{range .Users}}<option value="{{.ID}}">{{.Name}}</option>
{{end}}</select>&nbsp;|&nbsp;{{end}}
{{if .FixedRoomID}}<input type="hidden" name="room_id" value="{{.FixedRoomID}}"/>{{else}}<label for="room_id">Room:</label>&nbsp;<select name="room_id">
{{range .Rooms}}<option value="{{.ID}}">{{.Name}}</option>
{{end}}</select>&nbsp;|&nbsp;{{end}}
<label for="booked_on">On</label>&nbsp;<input type="text" name="booked_on" value="{{.Today}}"/>
&nbsp;<label for="booked_from">between</label>&nbsp;<input type="text" name="booked_from"/>
&nbsp;<label for="booked_to">and</label>&nbsp;<input type="text" name="booked_to"/>
<input type="submit" name="submit" value="Add Booking"/>
</form>{{end}}
`))

func renderFragment(name string, data any) (template.HTML, error) {
	var buf strings.Builder
	if err := fragmentTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s fragment: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// Page wraps rendered fragments in the site shell.
func Page(title string, fragments ...template.HTML) (string, error) {
	var buf strings.Builder
	data := struct {
		Title     string
		Fragments []template.HTML
	}{Title: title, Fragments: fragments}
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return buf.String(), nil
}

// IndexLinks renders the landing page link list.
func IndexLinks() (template.HTML, error) {
	return renderFragment("index", nil)
}

// UserList renders users as links to their booking pages.
func UserList(users []persistence.User) (template.HTML, error) {
	return renderFragment("userList", users)
}

// UserForm renders the user creation form.
func UserForm() (template.HTML, error) {
	return renderFragment("userForm", nil)
}

// RoomList renders rooms as links to their booking pages.
func RoomList(rooms []persistence.Room) (template.HTML, error) {
	return renderFragment("roomList", rooms)
}

// RoomForm renders the room creation form.
func RoomForm() (template.HTML, error) {
	return renderFragment("roomForm", nil)
}

// BookingTable renders booking view rows. The scope decides whether the
// user and room columns appear.
func BookingTable(bookings []persistence.BookingView, scope BookingScope) (template.HTML, error) {
	data := struct {
		Bookings []persistence.BookingView
		ShowUser bool
		ShowRoom bool
	}{
		Bookings: bookings,
		ShowUser: scope == ScopeAll || scope == ScopeRoom,
		ShowRoom: scope == ScopeAll || scope == ScopeUser,
	}
	return renderFragment("bookingTable", data)
}

// BookingFormParams configures the booking creation form. A non-zero
// FixedUserID or FixedRoomID becomes a hidden field instead of a selector.
// Today prefills the date field; callers pass the current date so rendering
// stays free of side effects.
type BookingFormParams struct {
	Users       []persistence.User
	Rooms       []persistence.Room
	FixedUserID int64
	FixedRoomID int64
	Today       string
}

// BookingForm renders the booking creation form.
func BookingForm(params BookingFormParams) (template.HTML, error) {
	return renderFragment("bookingForm", params)
}
