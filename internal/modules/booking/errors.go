package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrInvalidRange  = errors.New("invalid date range")
	ErrNotFound      = errors.New("not found")
	ErrNotAvailable  = errors.New("room not available")
	ErrInvalidStatus = errors.New("invalid booking status")
)

// NotFoundError reports which resource was missing; errors.Is against
// ErrNotFound keeps handler switches simple.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// RoomNotAvailableError carries an advisory conflict description; the
// description is for humans, never required for correctness.
type RoomNotAvailableError struct {
	RoomID    int64
	CheckIn   time.Time
	CheckOut  time.Time
	Conflicts string
}

func (e *RoomNotAvailableError) Error() string {
	msg := fmt.Sprintf("room %d is not available from %s to %s",
		e.RoomID, e.CheckIn.Format(dateLayout), e.CheckOut.Format(dateLayout))
	if e.Conflicts != "" {
		msg += ": " + e.Conflicts
	}
	return msg
}

func (e *RoomNotAvailableError) Unwrap() error { return ErrNotAvailable }
