package persistence

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("persistence: not found")
)

// ValidationError reports a required field that was empty or absent. It is
// returned before any store write is attempted.
type ValidationError struct {
	Field string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("persistence: %s is required", e.Field)
}

// ReferenceError reports a booking that names a user or room id with no
// corresponding row.
type ReferenceError struct {
	Field string
	ID    int64
}

// Error implements the error interface.
func (e *ReferenceError) Error() string {
	return fmt.Sprintf("persistence: %s %d does not exist", e.Field, e.ID)
}
