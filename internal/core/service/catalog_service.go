package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/spyweb/portal-api/internal/core/domain"
	"github.com/spyweb/portal-api/internal/core/ports"
)

// CatalogService manages marketing content: the service catalog and the
// singleton about page.
type CatalogService struct {
	services ports.ServiceRepository
	about    ports.AboutRepository
	logger   zerolog.Logger
}

func NewCatalogService(services ports.ServiceRepository, about ports.AboutRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{services: services, about: about, logger: logger}
}

func (s *CatalogService) ListServices(ctx context.Context) ([]*domain.Service, error) {
	return s.services.List(ctx)
}

func (s *CatalogService) CreateService(ctx context.Context, input ports.ServiceInput) (*domain.Service, error) {
	now := time.Now().UTC()
	created, err := s.services.Create(ctx, &domain.Service{
		Icon:        domain.ParseIcon(input.Icon),
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("service_id", created.ID).Str("title", created.Title).Msg("catalog service created")
	return created, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, id string, input ports.ServiceInput) (*domain.Service, error) {
	return s.services.Update(ctx, &domain.Service{
		ID:          id,
		Icon:        domain.ParseIcon(input.Icon),
		Title:       input.Title,
		Description: input.Description,
		UpdatedAt:   time.Now().UTC(),
	})
}

func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	return s.services.Delete(ctx, id)
}

// GetAbout returns the about page, or an empty document when it has never
// been saved, so the public site always renders.
func (s *CatalogService) GetAbout(ctx context.Context) (*domain.About, error) {
	about, err := s.about.Get(ctx)
	if err != nil {
		return nil, err
	}
	if about == nil {
		return &domain.About{Leadership: []domain.Leader{}}, nil
	}
	return about, nil
}

func (s *CatalogService) UpdateAbout(ctx context.Context, input ports.AboutInput) (*domain.About, error) {
	leadership := input.Leadership
	if leadership == nil {
		leadership = []domain.Leader{}
	}
	return s.about.Upsert(ctx, &domain.About{
		Description: input.Description,
		Mission:     input.Mission,
		Vision:      input.Vision,
		Values:      input.Values,
		Leadership:  leadership,
		UpdatedAt:   time.Now().UTC(),
	})
}
