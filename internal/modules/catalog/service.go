package catalog

import (
	"context"
	"strings"

	"stayhub/internal/domain"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	services ServiceRepository
}

func NewService(services ServiceRepository) *Service {
	return &Service{services: services}
}

func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNotFound
	}
	return svc, nil
}

func (s *Service) ListServices(ctx context.Context, activeOnly bool) ([]domain.Service, error) {
	return s.services.List(ctx, activeOnly)
}

func (s *Service) CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		return nil, ErrValidation
	}
	if svc.Price <= 0 {
		return nil, ErrValidation
	}

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) UpdateService(ctx context.Context, id int64, upd func(*domain.Service) error) (*domain.Service, error) {
	svc, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := upd(svc); err != nil {
		return nil, err
	}

	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		return nil, ErrValidation
	}
	if svc.Price <= 0 {
		return nil, ErrValidation
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) DeleteService(ctx context.Context, id int64) error {
	if _, err := s.GetService(ctx, id); err != nil {
		return err
	}
	return s.services.Delete(ctx, id)
}
