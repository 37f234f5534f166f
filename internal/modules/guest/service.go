package guest

import (
	"context"
	"regexp"
	"strings"

	"stayhub/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type GuestRepository interface {
	Create(ctx context.Context, g *domain.Guest) error
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
	GetByEmail(ctx context.Context, email string) (*domain.Guest, error)
	List(ctx context.Context, limit, offset int) ([]domain.Guest, error)
	Search(ctx context.Context, query string) ([]domain.Guest, error)
	Update(ctx context.Context, g *domain.Guest) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	guests GuestRepository
}

func NewService(guests GuestRepository) *Service {
	return &Service{guests: guests}
}

func (s *Service) GetGuest(ctx context.Context, id int64) (*domain.Guest, error) {
	g, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNotFound
	}
	return g, nil
}

func (s *Service) ListGuests(ctx context.Context, limit, offset int) ([]domain.Guest, error) {
	return s.guests.List(ctx, limit, offset)
}

func (s *Service) SearchGuests(ctx context.Context, query string) ([]domain.Guest, error) {
	return s.guests.Search(ctx, strings.TrimSpace(query))
}

func (s *Service) CreateGuest(ctx context.Context, g *domain.Guest) (*domain.Guest, error) {
	g.Email = strings.TrimSpace(strings.ToLower(g.Email))
	if !emailPattern.MatchString(g.Email) {
		return nil, ErrValidation
	}

	existing, err := s.guests.GetByEmail(ctx, g.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicate
	}

	if err := s.guests.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) UpdateGuest(ctx context.Context, id int64, upd func(*domain.Guest) error) (*domain.Guest, error) {
	g, err := s.GetGuest(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := upd(g); err != nil {
		return nil, err
	}

	g.Email = strings.TrimSpace(strings.ToLower(g.Email))
	if !emailPattern.MatchString(g.Email) {
		return nil, ErrValidation
	}

	// Changing email must not collide with another guest.
	other, err := s.guests.GetByEmail(ctx, g.Email)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, ErrDuplicate
	}

	if err := s.guests.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) DeleteGuest(ctx context.Context, id int64) error {
	if _, err := s.GetGuest(ctx, id); err != nil {
		return err
	}
	return s.guests.Delete(ctx, id)
}
