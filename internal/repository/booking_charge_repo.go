package repository

import (
	"context"
	"errors"

	"stayhub/internal/domain"

	"gorm.io/gorm"
)

type BookingChargeRepository struct {
	db *gorm.DB
}

func NewBookingChargeRepository(db *gorm.DB) *BookingChargeRepository {
	return &BookingChargeRepository{db: db}
}

type bookingChargeModel struct {
	ID        int64   `gorm:"column:id;primaryKey"`
	BookingID int64   `gorm:"column:booking_id;not null;index"`
	ServiceID int64   `gorm:"column:service_id;not null"`
	Quantity  int     `gorm:"column:quantity;default:1"`
	Subtotal  float64 `gorm:"column:subtotal"`
}

func (bookingChargeModel) TableName() string { return "booking_charges" }

func toDomainCharge(m bookingChargeModel) *domain.BookingCharge {
	return &domain.BookingCharge{
		ID:        m.ID,
		BookingID: m.BookingID,
		ServiceID: m.ServiceID,
		Quantity:  m.Quantity,
		Subtotal:  m.Subtotal,
	}
}

func (r *BookingChargeRepository) Create(ctx context.Context, c *domain.BookingCharge) error {
	m := bookingChargeModel{
		ID:        c.ID,
		BookingID: c.BookingID,
		ServiceID: c.ServiceID,
		Quantity:  c.Quantity,
		Subtotal:  c.Subtotal,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCharge(m)
	return nil
}

// GetByID returns (nil, nil) when no charge exists with the given id.
func (r *BookingChargeRepository) GetByID(ctx context.Context, id int64) (*domain.BookingCharge, error) {
	var m bookingChargeModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainCharge(m), nil
}

func (r *BookingChargeRepository) GetByBooking(ctx context.Context, bookingID int64) ([]domain.BookingCharge, error) {
	var ms []bookingChargeModel
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.BookingCharge, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainCharge(m))
	}
	return out, nil
}

func (r *BookingChargeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&bookingChargeModel{}, id).Error
}

// DeleteByBooking removes every charge attached to the booking and reports
// how many rows went away.
func (r *BookingChargeRepository) DeleteByBooking(ctx context.Context, bookingID int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Delete(&bookingChargeModel{})
	return tx.RowsAffected, tx.Error
}
