package repository

import (
	"context"
	"errors"
	"time"

	"stayhub/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	RoomNumber    string    `gorm:"column:room_number;uniqueIndex;size:10;not null"`
	RoomType      string    `gorm:"column:room_type;size:100;not null"`
	Capacity      int       `gorm:"column:capacity;not null;default:1"`
	PricePerNight float64   `gorm:"column:price_per_night;not null"`
	Status        string    `gorm:"column:status;default:available"`
	IsAvailable   bool      `gorm:"column:is_available;default:true"`
	Description   *string   `gorm:"column:description;size:255"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}

	return &domain.Room{
		ID:            m.ID,
		RoomNumber:    m.RoomNumber,
		RoomType:      domain.RoomType(m.RoomType),
		Capacity:      m.Capacity,
		PricePerNight: m.PricePerNight,
		Status:        domain.RoomStatus(m.Status),
		IsAvailable:   m.IsAvailable,
		Description:   desc,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	var desc *string
	if r.Description != "" {
		v := r.Description
		desc = &v
	}

	return roomModel{
		ID:            r.ID,
		RoomNumber:    r.RoomNumber,
		RoomType:      string(r.RoomType),
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
		Status:        string(r.Status),
		IsAvailable:   r.IsAvailable,
		Description:   desc,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// RoomFilter narrows Search results. Nil fields are ignored.
type RoomFilter struct {
	RoomType    *string
	MinCapacity *int
	IsAvailable *bool
	MinPrice    *float64
	MaxPrice    *float64
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

// GetByID returns (nil, nil) when no room exists with the given id.
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).Where("room_number = ?", number).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) List(ctx context.Context, limit, offset int) ([]domain.Room, error) {
	var ms []roomModel
	tx := r.db.WithContext(ctx).
		Order("room_number").
		Limit(limit).Offset(offset).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRooms(ms), nil
}

func (r *RoomRepository) ListAvailable(ctx context.Context) ([]domain.Room, error) {
	var ms []roomModel
	tx := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("room_number").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRooms(ms), nil
}

func (r *RoomRepository) Search(ctx context.Context, f RoomFilter) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Model(&roomModel{})
	if f.RoomType != nil {
		q = q.Where("room_type = ?", *f.RoomType)
	}
	if f.MinCapacity != nil {
		q = q.Where("capacity >= ?", *f.MinCapacity)
	}
	if f.IsAvailable != nil {
		q = q.Where("is_available = ?", *f.IsAvailable)
	}
	if f.MinPrice != nil {
		q = q.Where("price_per_night >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price_per_night <= ?", *f.MaxPrice)
	}

	var ms []roomModel
	if tx := q.Order("room_number").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRooms(ms), nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

// UpdateState persists the derived status fields only. Everything else on the
// room is out of reach here, so callers cannot smuggle other changes in.
func (r *RoomRepository) UpdateState(ctx context.Context, id int64, status domain.RoomStatus, isAvailable bool) error {
	return r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       string(status),
			"is_available": isAvailable,
		}).Error
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&roomModel{}, id).Error
}

func (r *RoomRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Count(&n)
	return n, tx.Error
}

func toDomainRooms(ms []roomModel) []domain.Room {
	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out
}
