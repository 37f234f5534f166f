package payment

import (
	"context"
	"testing"

	"stayhub/internal/domain"
	"stayhub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 555
	}
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) List(ctx context.Context, limit, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Search(ctx context.Context, f repository.PaymentFilter) ([]domain.Payment, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockPaymentRepository) RevenueByMethod(ctx context.Context) (map[string]float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]float64), args.Error(1)
}

func (m *MockPaymentRepository) Recent(ctx context.Context, limit int) ([]domain.Payment, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func TestService_CreatePayment_Success(t *testing.T) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingReader)
	svc := NewService(payments, bookings)

	bookings.On("GetByID", mock.Anything, int64(9)).Return(&domain.Booking{ID: 9}, nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)

	p, err := svc.CreatePayment(context.Background(), CreatePaymentRequest{
		BookingID: 9,
		Amount:    120,
		Method:    "cash",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, p.Status)
	assert.NotNil(t, p.PaymentDate)
	assert.Equal(t, int64(555), p.ID)
}

func TestService_CreatePayment_UnknownBooking(t *testing.T) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingReader)
	svc := NewService(payments, bookings)

	bookings.On("GetByID", mock.Anything, int64(9)).Return(nil, nil)

	_, err := svc.CreatePayment(context.Background(), CreatePaymentRequest{
		BookingID: 9,
		Amount:    120,
		Method:    "cash",
	})

	assert.ErrorIs(t, err, ErrValidation)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreatePayment_BadMethod(t *testing.T) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingReader)
	svc := NewService(payments, bookings)

	bookings.On("GetByID", mock.Anything, int64(9)).Return(&domain.Booking{ID: 9}, nil)

	_, err := svc.CreatePayment(context.Background(), CreatePaymentRequest{
		BookingID: 9,
		Amount:    120,
		Method:    "crypto",
	})

	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestService_CreatePayment_NonPositiveAmount(t *testing.T) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingReader)
	svc := NewService(payments, bookings)

	bookings.On("GetByID", mock.Anything, int64(9)).Return(&domain.Booking{ID: 9}, nil)

	_, err := svc.CreatePayment(context.Background(), CreatePaymentRequest{
		BookingID: 9,
		Amount:    0,
		Method:    "cash",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_UpdateStatus_StampsPaymentDate(t *testing.T) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingReader)
	svc := NewService(payments, bookings)

	payments.On("GetByID", mock.Anything, int64(5)).Return(&domain.Payment{
		ID: 5, BookingID: 9, Amount: 120, Method: "card", Status: domain.PaymentPending,
	}, nil)
	payments.On("Update", mock.Anything, mock.Anything).Return(nil)

	p, err := svc.UpdateStatus(context.Background(), 5, "completed")

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, p.Status)
	assert.NotNil(t, p.PaymentDate)
}

func TestService_UpdateStatus_Invalid(t *testing.T) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingReader)
	svc := NewService(payments, bookings)

	_, err := svc.UpdateStatus(context.Background(), 5, "done")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	payments.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_CreatePending(t *testing.T) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingReader)
	svc := NewService(payments, bookings)

	bookings.On("GetByID", mock.Anything, int64(9)).Return(&domain.Booking{ID: 9}, nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)

	p, err := svc.CreatePending(context.Background(), 9, 240, "card")

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, p.Status)
	assert.Equal(t, 240.0, p.Amount)
	assert.Equal(t, "card", p.Method)
}

func TestService_RecentPayments_DefaultLimit(t *testing.T) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingReader)
	svc := NewService(payments, bookings)

	payments.On("Recent", mock.Anything, 10).Return([]domain.Payment{}, nil)

	_, err := svc.RecentPayments(context.Background(), 0)

	assert.NoError(t, err)
	payments.AssertExpectations(t)
}
