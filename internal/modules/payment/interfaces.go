package payment

import (
	"context"

	"stayhub/internal/domain"
	"stayhub/internal/repository"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	GetByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error)
	List(ctx context.Context, limit, offset int) ([]domain.Payment, error)
	Search(ctx context.Context, f repository.PaymentFilter) ([]domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
	Delete(ctx context.Context, id int64) error
	TotalRevenue(ctx context.Context) (float64, error)
	RevenueByMethod(ctx context.Context) (map[string]float64, error)
	Recent(ctx context.Context, limit int) ([]domain.Payment, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// BookingReader is the only thing this module needs from bookings.
type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
