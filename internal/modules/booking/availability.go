package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stayhub/internal/domain"
	"stayhub/internal/repository"
)

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func today() time.Time {
	return dateOnly(time.Now().UTC())
}

// conflictsFor validates the requested range and returns the bookings that
// collide with it once expanded by the turnover buffer. A past check-in is
// rejected only for new bookings (excludeID == nil); edits to existing
// bookings may carry historical dates.
func (s *Service) conflictsFor(
	ctx context.Context,
	roomID int64,
	checkIn, checkOut time.Time,
	excludeID *int64,
) ([]domain.Booking, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidRange
	}
	if excludeID == nil && checkIn.Before(today()) {
		return nil, ErrInvalidRange
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, &NotFoundError{Resource: "room", ID: roomID}
	}

	return s.bookings.GetConflicting(ctx, roomID, checkIn, checkOut, excludeID, s.bufferDays)
}

// CheckAvailability reports whether the room is free over [checkIn, checkOut)
// with the buffer applied. Pure read, no side effects.
func (s *Service) CheckAvailability(
	ctx context.Context,
	roomID int64,
	checkIn, checkOut time.Time,
	excludeID *int64,
) (bool, error) {
	conflicts, err := s.conflictsFor(ctx, roomID, checkIn, checkOut, excludeID)
	if err != nil {
		return false, err
	}
	return len(conflicts) == 0, nil
}

// describeConflicts renders up to three conflicting bookings for error
// messages. Guest lookups that fail degrade to the bare id.
func (s *Service) describeConflicts(ctx context.Context, conflicts []domain.Booking) string {
	const maxListed = 3

	parts := make([]string, 0, maxListed+1)
	for i, b := range conflicts {
		if i == maxListed {
			break
		}
		name := fmt.Sprintf("guest #%d", b.GuestID)
		if g, err := s.guests.GetByID(ctx, b.GuestID); err == nil && g != nil {
			name = g.FullName()
		}
		parts = append(parts, fmt.Sprintf("booking #%d %s (%s - %s)",
			b.ID, name,
			b.CheckInDate.Format(dateLayout),
			b.CheckOutDate.Format(dateLayout)))
	}
	if extra := len(conflicts) - maxListed; extra > 0 {
		parts = append(parts, fmt.Sprintf("+%d more", extra))
	}
	return strings.Join(parts, "; ")
}

func (s *Service) notAvailableError(ctx context.Context, roomID int64, checkIn, checkOut time.Time, conflicts []domain.Booking) error {
	return &RoomNotAvailableError{
		RoomID:    roomID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Conflicts: s.describeConflicts(ctx, conflicts),
	}
}

// AvailableRoomsForDates filters currently available rooms down to those with
// no conflicting booking over the requested range.
func (s *Service) AvailableRoomsForDates(
	ctx context.Context,
	checkIn, checkOut time.Time,
	roomType *string,
	minCapacity *int,
) ([]domain.Room, error) {
	avail := true
	rooms, err := s.rooms.Search(ctx, repository.RoomFilter{
		RoomType:    roomType,
		MinCapacity: minCapacity,
		IsAvailable: &avail,
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		ok, err := s.CheckAvailability(ctx, room.ID, checkIn, checkOut, nil)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, room)
		}
	}
	return out, nil
}
