package ports

import (
	"context"
	"time"

	"github.com/spyweb/portal-api/internal/core/domain"
)

// Identity is the resolved caller passed from the transport layer. A zero
// Identity means an anonymous request.
type Identity struct {
	AccountID string
	Role      string
}

// Anonymous reports whether no authenticated account backs the request.
func (i Identity) Anonymous() bool { return i.AccountID == "" }

// Admin reports whether the caller holds the admin role.
func (i Identity) Admin() bool { return i.Role == domain.RoleAdmin }

// DocumentInput is one attached deliverable in a project mutation.
type DocumentInput struct {
	Title string
	URL   string
}

// ProjectInput carries all fields for creating or replacing a project.
type ProjectInput struct {
	Title        string
	Description  string
	ImageURL     string
	Technologies []string
	Status       string
	Progress     int
	StartDate    time.Time
	EndDate      time.Time
	ClientID     string
	Documents    []DocumentInput
}

// ProjectService defines project use cases, with ownership scoping applied
// uniformly to read, list, update, and delete.
type ProjectService interface {
	// PublicProjects lists showcase projects (no owner reference).
	PublicProjects(ctx context.Context) ([]*domain.Project, error)
	// MyProjects lists projects owned by the calling client.
	MyProjects(ctx context.Context, caller Identity) ([]*domain.Project, error)
	// GetProject returns a project if the caller may see it: public projects
	// for everyone, owned projects for their owner or an admin.
	GetProject(ctx context.Context, id string, caller Identity) (*domain.Project, error)
	CreateProject(ctx context.Context, input ProjectInput, caller Identity) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, input ProjectInput, caller Identity) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string, caller Identity) error
}
