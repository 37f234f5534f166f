package payment

import (
	"context"
	"time"

	"stayhub/internal/domain"
	"stayhub/internal/repository"
)

type Service struct {
	payments PaymentRepository
	bookings BookingReader
}

func NewService(payments PaymentRepository, bookings BookingReader) *Service {
	return &Service{payments: payments, bookings: bookings}
}

func (s *Service) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Service) ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, error) {
	return s.payments.List(ctx, limit, offset)
}

func (s *Service) SearchPayments(ctx context.Context, f repository.PaymentFilter) ([]domain.Payment, error) {
	return s.payments.Search(ctx, f)
}

func (s *Service) GetByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	return s.payments.GetByBooking(ctx, bookingID)
}

func (s *Service) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, error) {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrValidation
	}

	if req.Amount <= 0 {
		return nil, ErrValidation
	}
	if !domain.IsValidPaymentMethod(req.Method) {
		return nil, ErrInvalidMethod
	}

	status := domain.PaymentPending
	if req.Status != "" {
		if !domain.IsValidPaymentStatus(req.Status) {
			return nil, ErrInvalidStatus
		}
		status = domain.PaymentStatus(req.Status)
	}

	now := time.Now().UTC()
	p := &domain.Payment{
		BookingID:   req.BookingID,
		Amount:      req.Amount,
		Method:      req.Method,
		Status:      status,
		PaymentDate: &now,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// CreatePending registers an automatically generated pending payment for a
// booking; used by the booking lifecycle when costs come due.
func (s *Service) CreatePending(ctx context.Context, bookingID int64, amount float64, method string) (*domain.Payment, error) {
	return s.CreatePayment(ctx, CreatePaymentRequest{
		BookingID: bookingID,
		Amount:    amount,
		Method:    method,
		Status:    string(domain.PaymentPending),
	})
}

func (s *Service) UpdatePayment(ctx context.Context, id int64, req UpdatePaymentRequest) (*domain.Payment, error) {
	p, err := s.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, ErrValidation
		}
		p.Amount = *req.Amount
	}
	if req.Method != nil {
		if !domain.IsValidPaymentMethod(*req.Method) {
			return nil, ErrInvalidMethod
		}
		p.Method = *req.Method
	}

	if err := s.payments.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateStatus moves the payment to a new status. Completing a payment that
// never had a settlement date stamps it with today.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Payment, error) {
	if !domain.IsValidPaymentStatus(status) {
		return nil, ErrInvalidStatus
	}

	p, err := s.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Status = domain.PaymentStatus(status)
	if p.Status == domain.PaymentCompleted && p.PaymentDate == nil {
		now := time.Now().UTC()
		p.PaymentDate = &now
	}

	if err := s.payments.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeletePayment(ctx context.Context, id int64) error {
	if _, err := s.GetPayment(ctx, id); err != nil {
		return err
	}
	return s.payments.Delete(ctx, id)
}

func (s *Service) TotalRevenue(ctx context.Context) (float64, error) {
	return s.payments.TotalRevenue(ctx)
}

func (s *Service) RevenueByMethod(ctx context.Context) (map[string]float64, error) {
	return s.payments.RevenueByMethod(ctx)
}

func (s *Service) RecentPayments(ctx context.Context, limit int) ([]domain.Payment, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.payments.Recent(ctx, limit)
}
