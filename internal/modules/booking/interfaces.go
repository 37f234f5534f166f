package booking

import (
	"context"
	"time"

	"stayhub/internal/domain"
	"stayhub/internal/repository"
)

// BookingRepository defines the persistence operations the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	UpdateCost(ctx context.Context, id int64, cost float64) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.Booking, error)
	Search(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error)
	GetByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error)
	GetConflicting(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID *int64, bufferDays int) ([]domain.Booking, error)
	TodaysCheckins(ctx context.Context, today time.Time) ([]domain.Booking, error)
	TodaysCheckouts(ctx context.Context, today time.Time) ([]domain.Booking, error)
	Upcoming(ctx context.Context, today time.Time, limit int) ([]domain.Booking, error)
}

// RoomRepository is the narrow room surface the engine consumes. UpdateState
// is the only way derived status fields are ever written.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	Search(ctx context.Context, f repository.RoomFilter) ([]domain.Room, error)
	UpdateState(ctx context.Context, id int64, status domain.RoomStatus, isAvailable bool) error
}

type GuestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
}

// ServiceCatalog resolves add-on services for cost breakdowns.
type ServiceCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

type ChargeRepository interface {
	Create(ctx context.Context, c *domain.BookingCharge) error
	GetByID(ctx context.Context, id int64) (*domain.BookingCharge, error)
	GetByBooking(ctx context.Context, bookingID int64) ([]domain.BookingCharge, error)
	Delete(ctx context.Context, id int64) error
	DeleteByBooking(ctx context.Context, bookingID int64) (int64, error)
}

// PaymentService is the payment collaborator; the engine only triggers
// transitions, the payment module owns the mutation rules.
type PaymentService interface {
	CreatePending(ctx context.Context, bookingID int64, amount float64, method string) (*domain.Payment, error)
	GetByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error)
	UpdateStatus(ctx context.Context, paymentID int64, status string) (*domain.Payment, error)
}
