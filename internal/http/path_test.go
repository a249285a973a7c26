package http

import "testing"

func TestPathCursorShift(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		segments []string
	}{
		{name: "root", path: "/", segments: []string{""}},
		{name: "single segment", path: "/users", segments: []string{"users", ""}},
		{name: "nested segments", path: "/bookings/user/3", segments: []string{"bookings", "user", "3", ""}},
		{name: "trailing slash", path: "/bookings/", segments: []string{"bookings", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cursor := newPathCursor(tt.path)
			for _, want := range tt.segments {
				var got string
				got, cursor = cursor.shift()
				if got != want {
					t.Fatalf("shift() = %q, want %q", got, want)
				}
			}
		})
	}
}

func TestPathCursorShiftIsImmutable(t *testing.T) {
	cursor := newPathCursor("/bookings/user/3")

	first, _ := cursor.shift()
	second, _ := cursor.shift()

	if first != second {
		t.Fatalf("repeated shift on the same cursor returned %q then %q", first, second)
	}
}

func TestPathCursorShiftID(t *testing.T) {
	cursor := newPathCursor("/42/rest")

	id, rest, err := cursor.shiftID()
	if err != nil {
		t.Fatalf("shiftID failed: %v", err)
	}
	if id != 42 {
		t.Errorf("shiftID() = %d, want 42", id)
	}

	segment, _ := rest.shift()
	if segment != "rest" {
		t.Errorf("remaining segment = %q, want %q", segment, "rest")
	}
}

func TestPathCursorShiftIDRejectsNonNumeric(t *testing.T) {
	cursor := newPathCursor("/abc")

	if _, _, err := cursor.shiftID(); err == nil {
		t.Fatal("expected error for non-numeric segment, got nil")
	}
}
