package repository

import (
	"context"
	"errors"
	"time"

	"stayhub/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	GuestID      int64     `gorm:"column:guest_id;not null;index"`
	RoomID       int64     `gorm:"column:room_id;not null;index"`
	CheckInDate  time.Time `gorm:"column:check_in_date;not null"`
	CheckOutDate time.Time `gorm:"column:check_out_date;not null"`
	TotalCost    float64   `gorm:"column:total_cost"`
	Status       string    `gorm:"column:status;default:pending"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:           m.ID,
		GuestID:      m.GuestID,
		RoomID:       m.RoomID,
		CheckInDate:  m.CheckInDate,
		CheckOutDate: m.CheckOutDate,
		TotalCost:    m.TotalCost,
		Status:       domain.BookingStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:           b.ID,
		GuestID:      b.GuestID,
		RoomID:       b.RoomID,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		TotalCost:    b.TotalCost,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// BookingFilter narrows Search results. Nil fields are ignored.
type BookingFilter struct {
	GuestID   *int64
	RoomID    *int64
	Status    *string
	StartDate *time.Time
	EndDate   *time.Time
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// GetByID returns (nil, nil) when no booking exists with the given id.
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) UpdateCost(ctx context.Context, id int64, cost float64) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("total_cost", cost).Error
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&bookingModel{}, id).Error
}

func (r *BookingRepository) List(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Order("check_in_date DESC").
		Limit(limit).Offset(offset).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) GetByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).Where("room_id = ?", roomID).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) GetByGuest(ctx context.Context, guestID int64) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).Where("guest_id = ?", guestID).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) Search(ctx context.Context, f BookingFilter) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{})
	if f.GuestID != nil {
		q = q.Where("guest_id = ?", *f.GuestID)
	}
	if f.RoomID != nil {
		q = q.Where("room_id = ?", *f.RoomID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.StartDate != nil {
		q = q.Where("check_in_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("check_out_date <= ?", *f.EndDate)
	}

	var ms []bookingModel
	if tx := q.Order("check_in_date DESC").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

// GetConflicting returns non-cancelled bookings on the room whose half-open
// interval overlaps [checkIn, checkOut) expanded by bufferDays on both sides.
// The booking identified by excludeID (if any) is skipped, so updates do not
// conflict with themselves.
func (r *BookingRepository) GetConflicting(
	ctx context.Context,
	roomID int64,
	checkIn, checkOut time.Time,
	excludeID *int64,
	bufferDays int,
) ([]domain.Booking, error) {
	buffer := time.Duration(bufferDays) * 24 * time.Hour
	windowStart := checkIn.Add(-buffer)
	windowEnd := checkOut.Add(buffer)

	q := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Where("status <> ?", string(domain.BookingCancelled)).
		Where("check_in_date < ?", windowEnd).
		Where("check_out_date > ?", windowStart)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var ms []bookingModel
	if tx := q.Order("check_in_date").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) TodaysCheckins(ctx context.Context, today time.Time) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("check_in_date = ?", today).
		Where("status IN ?", []string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) TodaysCheckouts(ctx context.Context, today time.Time) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("check_out_date = ?", today).
		Where("status = ?", string(domain.BookingConfirmed)).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) Upcoming(ctx context.Context, today time.Time, limit int) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("check_in_date >= ?", today).
		Where("status IN ?", []string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Order("check_in_date").
		Limit(limit).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&n)
	return n, tx.Error
}

func (r *BookingRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("status = ?", status).
		Count(&n)
	return n, tx.Error
}

func toDomainBookings(ms []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
