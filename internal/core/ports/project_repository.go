package ports

import (
	"context"

	"github.com/spyweb/portal-api/internal/core/domain"
)

// ProjectFilter narrows project listings. Zero value lists everything.
type ProjectFilter struct {
	// ClientID limits results to projects owned by this account.
	ClientID string
	// PublicOnly limits results to projects with no owner.
	PublicOnly bool
}

// ProjectRepository defines persistence for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
