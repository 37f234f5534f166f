package room

import (
	"context"
	"errors"
	"strings"

	"stayhub/internal/domain"
	"stayhub/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

type RoomRepository interface {
	Create(ctx context.Context, r *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	List(ctx context.Context, limit, offset int) ([]domain.Room, error)
	ListAvailable(ctx context.Context) ([]domain.Room, error)
	Search(ctx context.Context, f repository.RoomFilter) ([]domain.Room, error)
	Update(ctx context.Context, r *domain.Room) error
	Delete(ctx context.Context, id int64) error
}

// StateRefresher recomputes a room's derived status fields; implemented by
// the booking engine.
type StateRefresher interface {
	RefreshRoomState(ctx context.Context, roomID int64) error
}

type Service struct {
	rooms     RoomRepository
	refresher StateRefresher
}

func NewService(rooms RoomRepository, refresher StateRefresher) *Service {
	return &Service{rooms: rooms, refresher: refresher}
}

func isValidRoomType(t string) bool {
	for _, v := range domain.RoomTypes {
		if string(v) == t {
			return true
		}
	}
	return false
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	r, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNotFound
	}
	return r, nil
}

func (s *Service) ListRooms(ctx context.Context, limit, offset int) ([]domain.Room, error) {
	return s.rooms.List(ctx, limit, offset)
}

func (s *Service) ListAvailableRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.ListAvailable(ctx)
}

func (s *Service) SearchRooms(ctx context.Context, f repository.RoomFilter) ([]domain.Room, error) {
	return s.rooms.Search(ctx, f)
}

func (s *Service) CreateRoom(ctx context.Context, r *domain.Room) (*domain.Room, error) {
	r.RoomNumber = strings.TrimSpace(r.RoomNumber)
	if r.RoomNumber == "" {
		return nil, ErrValidation
	}
	if !isValidRoomType(string(r.RoomType)) {
		return nil, ErrValidation
	}
	if r.PricePerNight <= 0 {
		return nil, ErrValidation
	}
	if r.Capacity <= 0 {
		return nil, ErrValidation
	}

	existing, err := s.rooms.GetByNumber(ctx, r.RoomNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicate
	}

	// New rooms start free of bookings.
	r.Status = domain.RoomAvailable
	r.IsAvailable = true

	if err := s.rooms.Create(ctx, r); err != nil {
		// The pre-check races with concurrent inserts; the unique index has
		// the final word on postgres.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, upd func(*domain.Room) error) (*domain.Room, error) {
	r, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := upd(r); err != nil {
		return nil, err
	}

	r.RoomNumber = strings.TrimSpace(r.RoomNumber)
	if r.RoomNumber == "" {
		return nil, ErrValidation
	}
	if !isValidRoomType(string(r.RoomType)) {
		return nil, ErrValidation
	}
	if r.PricePerNight <= 0 {
		return nil, ErrValidation
	}
	if r.Capacity <= 0 {
		return nil, ErrValidation
	}

	other, err := s.rooms.GetByNumber(ctx, r.RoomNumber)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, ErrDuplicate
	}

	if err := s.rooms.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	if _, err := s.GetRoom(ctx, id); err != nil {
		return err
	}
	return s.rooms.Delete(ctx, id)
}

// RefreshState recomputes the derived status fields from the booking set and
// returns the fresh room.
func (s *Service) RefreshState(ctx context.Context, id int64) (*domain.Room, error) {
	if _, err := s.GetRoom(ctx, id); err != nil {
		return nil, err
	}
	if err := s.refresher.RefreshRoomState(ctx, id); err != nil {
		return nil, err
	}
	return s.GetRoom(ctx, id)
}
