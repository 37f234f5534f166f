package repository

import (
	"context"
	"errors"
	"time"

	"stayhub/internal/domain"

	"gorm.io/gorm"
)

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

type guestModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	FirstName  string    `gorm:"column:first_name;size:50;not null"`
	LastName   string    `gorm:"column:last_name;size:50;not null"`
	Email      string    `gorm:"column:email;uniqueIndex;size:100;not null"`
	Phone      *string   `gorm:"column:phone;size:20"`
	Address    *string   `gorm:"column:address;size:255"`
	IDDocument *string   `gorm:"column:id_document;size:50"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (guestModel) TableName() string { return "guests" }

func toDomainGuest(m guestModel) *domain.Guest {
	g := &domain.Guest{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Phone != nil {
		g.Phone = *m.Phone
	}
	if m.Address != nil {
		g.Address = *m.Address
	}
	if m.IDDocument != nil {
		g.IDDocument = *m.IDDocument
	}
	return g
}

func toGuestModel(g *domain.Guest) guestModel {
	m := guestModel{
		ID:        g.ID,
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Email:     g.Email,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
	if g.Phone != "" {
		v := g.Phone
		m.Phone = &v
	}
	if g.Address != "" {
		v := g.Address
		m.Address = &v
	}
	if g.IDDocument != "" {
		v := g.IDDocument
		m.IDDocument = &v
	}
	return m
}

func (r *GuestRepository) Create(ctx context.Context, g *domain.Guest) error {
	m := toGuestModel(g)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*g = *toDomainGuest(m)
	return nil
}

// GetByID returns (nil, nil) when no guest exists with the given id.
func (r *GuestRepository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	var m guestModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainGuest(m), nil
}

func (r *GuestRepository) GetByEmail(ctx context.Context, email string) (*domain.Guest, error) {
	var m guestModel
	tx := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainGuest(m), nil
}

func (r *GuestRepository) List(ctx context.Context, limit, offset int) ([]domain.Guest, error) {
	var ms []guestModel
	tx := r.db.WithContext(ctx).
		Order("last_name, first_name").
		Limit(limit).Offset(offset).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainGuests(ms), nil
}

// Search matches the query against names and email, case-insensitive.
func (r *GuestRepository) Search(ctx context.Context, query string) ([]domain.Guest, error) {
	like := "%" + query + "%"
	var ms []guestModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			like, like, like).
		Order("last_name, first_name").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainGuests(ms), nil
}

func (r *GuestRepository) Update(ctx context.Context, g *domain.Guest) error {
	m := toGuestModel(g)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*g = *toDomainGuest(m)
	return nil
}

func (r *GuestRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&guestModel{}, id).Error
}

func (r *GuestRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&guestModel{}).Count(&n)
	return n, tx.Error
}

func toDomainGuests(ms []guestModel) []domain.Guest {
	out := make([]domain.Guest, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainGuest(m))
	}
	return out
}
