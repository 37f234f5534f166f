package repository

import (
	"context"
	"errors"
	"time"

	"stayhub/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	BookingID   int64      `gorm:"column:booking_id;not null;index"`
	Amount      float64    `gorm:"column:amount;not null"`
	PaymentDate *time.Time `gorm:"column:payment_date"`
	Method      string     `gorm:"column:payment_method;size:50;not null"`
	Status      string     `gorm:"column:status;default:pending"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) *domain.Payment {
	return &domain.Payment{
		ID:          m.ID,
		BookingID:   m.BookingID,
		Amount:      m.Amount,
		PaymentDate: m.PaymentDate,
		Method:      m.Method,
		Status:      domain.PaymentStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toPaymentModel(p *domain.Payment) paymentModel {
	return paymentModel{
		ID:          p.ID,
		BookingID:   p.BookingID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Method:      p.Method,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PaymentFilter narrows Search results. Nil fields are ignored.
type PaymentFilter struct {
	BookingID *int64
	Status    *string
	Method    *string
	StartDate *time.Time
	EndDate   *time.Time
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	m := toPaymentModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPayment(m)
	return nil
}

// GetByID returns (nil, nil) when no payment exists with the given id.
func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var m paymentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainPayment(m), nil
}

func (r *PaymentRepository) GetByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	var ms []paymentModel
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPayments(ms), nil
}

func (r *PaymentRepository) List(ctx context.Context, limit, offset int) ([]domain.Payment, error) {
	var ms []paymentModel
	tx := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPayments(ms), nil
}

func (r *PaymentRepository) Search(ctx context.Context, f PaymentFilter) ([]domain.Payment, error) {
	q := r.db.WithContext(ctx).Model(&paymentModel{})
	if f.BookingID != nil {
		q = q.Where("booking_id = ?", *f.BookingID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Method != nil {
		q = q.Where("payment_method = ?", *f.Method)
	}
	if f.StartDate != nil {
		q = q.Where("payment_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("payment_date <= ?", *f.EndDate)
	}

	var ms []paymentModel
	if tx := q.Order("id DESC").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPayments(ms), nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	m := toPaymentModel(p)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPayment(m)
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&paymentModel{}, id).Error
}

// TotalRevenue sums completed payments.
func (r *PaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	tx := r.db.WithContext(ctx).
		Model(&paymentModel{}).
		Where("status = ?", string(domain.PaymentCompleted)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	return total, tx.Error
}

// RevenueByMethod sums completed payments grouped by payment method.
func (r *PaymentRepository) RevenueByMethod(ctx context.Context) (map[string]float64, error) {
	type row struct {
		Method string
		Total  float64
	}

	var rows []row
	tx := r.db.WithContext(ctx).
		Model(&paymentModel{}).
		Where("status = ?", string(domain.PaymentCompleted)).
		Select("payment_method AS method, COALESCE(SUM(amount), 0) AS total").
		Group("payment_method").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		out[r.Method] = r.Total
	}
	return out, nil
}

func (r *PaymentRepository) Recent(ctx context.Context, limit int) ([]domain.Payment, error) {
	var ms []paymentModel
	tx := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPayments(ms), nil
}

func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&paymentModel{}).Count(&n)
	return n, tx.Error
}

func (r *PaymentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).
		Model(&paymentModel{}).
		Where("status = ?", status).
		Count(&n)
	return n, tx.Error
}

func toDomainPayments(ms []paymentModel) []domain.Payment {
	out := make([]domain.Payment, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainPayment(m))
	}
	return out
}
