package ports

import (
	"context"

	"github.com/spyweb/portal-api/internal/core/domain"
)

// ServiceRepository defines persistence for catalog services.
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}

// AboutRepository persists the singleton about-page document.
type AboutRepository interface {
	// Get returns (nil, nil) when the document has never been saved.
	Get(ctx context.Context) (*domain.About, error)
	// Upsert replaces the singleton, creating it when absent.
	Upsert(ctx context.Context, about *domain.About) (*domain.About, error)
}

// ServiceInput carries the fields of a catalog entry mutation.
type ServiceInput struct {
	Icon        string
	Title       string
	Description string
}

// AboutInput carries the editable about-page content.
type AboutInput struct {
	Description string
	Mission     string
	Vision      string
	Values      string
	Leadership  []domain.Leader
}

// CatalogService manages the marketing content: service catalog and about page.
type CatalogService interface {
	ListServices(ctx context.Context) ([]*domain.Service, error)
	CreateService(ctx context.Context, input ServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, id string, input ServiceInput) (*domain.Service, error)
	DeleteService(ctx context.Context, id string) error

	GetAbout(ctx context.Context) (*domain.About, error)
	UpdateAbout(ctx context.Context, input AboutInput) (*domain.About, error)
}
