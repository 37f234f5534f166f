package booking

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeriveRoomState(t *testing.T) {
	now := today()
	day := func(d int) time.Time { return now.AddDate(0, 0, d) }

	tests := []struct {
		name      string
		bookings  []domain.Booking
		status    domain.RoomStatus
		available bool
	}{
		{
			name:      "no bookings",
			bookings:  nil,
			status:    domain.RoomAvailable,
			available: true,
		},
		{
			name: "guest currently staying",
			bookings: []domain.Booking{
				{CheckInDate: day(-1), CheckOutDate: day(2), Status: domain.BookingConfirmed},
			},
			status:    domain.RoomOccupied,
			available: false,
		},
		{
			name: "check-in today counts as occupied",
			bookings: []domain.Booking{
				{CheckInDate: day(0), CheckOutDate: day(3), Status: domain.BookingPending},
			},
			status:    domain.RoomOccupied,
			available: false,
		},
		{
			name: "arrival inside the buffer",
			bookings: []domain.Booking{
				{CheckInDate: day(1), CheckOutDate: day(4), Status: domain.BookingConfirmed},
			},
			status:    domain.RoomTurnover,
			available: false,
		},
		{
			name: "arrival beyond the buffer",
			bookings: []domain.Booking{
				{CheckInDate: day(3), CheckOutDate: day(6), Status: domain.BookingConfirmed},
			},
			status:    domain.RoomReserved,
			available: true,
		},
		{
			name: "recent checkout needs turnover",
			bookings: []domain.Booking{
				{CheckInDate: day(-5), CheckOutDate: day(-1), Status: domain.BookingCompleted},
			},
			status:    domain.RoomTurnover,
			available: false,
		},
		{
			name: "old checkout is cleaned up already",
			bookings: []domain.Booking{
				{CheckInDate: day(-10), CheckOutDate: day(-4), Status: domain.BookingCompleted},
			},
			status:    domain.RoomAvailable,
			available: true,
		},
		{
			name: "cancelled bookings are ignored",
			bookings: []domain.Booking{
				{CheckInDate: day(-1), CheckOutDate: day(2), Status: domain.BookingCancelled},
			},
			status:    domain.RoomAvailable,
			available: true,
		},
		{
			name: "nearest arrival wins over far ones",
			bookings: []domain.Booking{
				{CheckInDate: day(8), CheckOutDate: day(12), Status: domain.BookingConfirmed},
				{CheckInDate: day(1), CheckOutDate: day(4), Status: domain.BookingPending},
			},
			status:    domain.RoomTurnover,
			available: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, available := deriveRoomState(tt.bookings, now, DefaultBufferDays)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.available, available)
		})
	}
}

func TestRefreshRoomState_WritesOnlyOnChange(t *testing.T) {
	svc, m := newService()

	m.rooms.On("GetByID", mock.Anything, int64(10)).Return(&domain.Room{
		ID: 10, Status: domain.RoomAvailable, IsAvailable: true,
	}, nil)
	m.bookings.On("GetByRoom", mock.Anything, int64(10)).Return([]domain.Booking{}, nil)

	err := svc.RefreshRoomState(context.Background(), 10)

	assert.NoError(t, err)
	m.rooms.AssertNotCalled(t, "UpdateState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRefreshRoomState_PersistsNewState(t *testing.T) {
	svc, m := newService()

	m.rooms.On("GetByID", mock.Anything, int64(10)).Return(&domain.Room{
		ID: 10, Status: domain.RoomAvailable, IsAvailable: true,
	}, nil)
	m.bookings.On("GetByRoom", mock.Anything, int64(10)).Return([]domain.Booking{
		{ID: 1, RoomID: 10, CheckInDate: today(), CheckOutDate: today().AddDate(0, 0, 2), Status: domain.BookingConfirmed},
	}, nil)
	m.rooms.On("UpdateState", mock.Anything, int64(10), domain.RoomOccupied, false).Return(nil)

	err := svc.RefreshRoomState(context.Background(), 10)

	assert.NoError(t, err)
	m.rooms.AssertExpectations(t)
}

func TestRefreshRoomState_RoomMissing(t *testing.T) {
	svc, m := newService()

	m.rooms.On("GetByID", mock.Anything, int64(42)).Return(nil, nil)

	err := svc.RefreshRoomState(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}
