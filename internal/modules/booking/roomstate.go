package booking

import (
	"context"
	"time"

	"stayhub/internal/domain"
)

// RefreshRoomState recomputes the room's derived status and availability flag
// from its booking set relative to today, and persists them only when a value
// actually changed. It is invoked after every booking mutation; callers never
// write these fields directly.
func (s *Service) RefreshRoomState(ctx context.Context, roomID int64) error {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return &NotFoundError{Resource: "room", ID: roomID}
	}

	bookings, err := s.bookings.GetByRoom(ctx, roomID)
	if err != nil {
		return err
	}

	status, available := deriveRoomState(bookings, today(), s.bufferDays)
	if room.Status == status && room.IsAvailable == available {
		return nil
	}
	return s.rooms.UpdateState(ctx, roomID, status, available)
}

// deriveRoomState is the four-state machine over {available, reserved,
// turnover, occupied}. Occupancy considers pending and confirmed bookings;
// recent checkouts also count completed stays, which still need turnover.
func deriveRoomState(bookings []domain.Booking, today time.Time, bufferDays int) (domain.RoomStatus, bool) {
	var nextCheckIn, lastCheckOut *time.Time

	for _, b := range bookings {
		switch b.Status {
		case domain.BookingPending, domain.BookingConfirmed:
			if !b.CheckInDate.After(today) && b.CheckOutDate.After(today) {
				return domain.RoomOccupied, false
			}
			if !b.CheckInDate.Before(today) {
				if nextCheckIn == nil || b.CheckInDate.Before(*nextCheckIn) {
					t := b.CheckInDate
					nextCheckIn = &t
				}
			}
			if !b.CheckOutDate.After(today) {
				if lastCheckOut == nil || b.CheckOutDate.After(*lastCheckOut) {
					t := b.CheckOutDate
					lastCheckOut = &t
				}
			}
		case domain.BookingCompleted:
			if !b.CheckOutDate.After(today) {
				if lastCheckOut == nil || b.CheckOutDate.After(*lastCheckOut) {
					t := b.CheckOutDate
					lastCheckOut = &t
				}
			}
		}
	}

	if nextCheckIn != nil {
		if daysBetween(today, *nextCheckIn) < bufferDays {
			return domain.RoomTurnover, false
		}
		return domain.RoomReserved, true
	}
	if lastCheckOut != nil && daysBetween(*lastCheckOut, today) < bufferDays {
		return domain.RoomTurnover, false
	}
	return domain.RoomAvailable, true
}

// daysBetween assumes both arguments are UTC midnights.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
