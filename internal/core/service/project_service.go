package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/spyweb/portal-api/internal/core/domain"
	"github.com/spyweb/portal-api/internal/core/ports"
)

// ProjectService implements project use cases. All visibility decisions go
// through authorize so list, read, update, and delete enforce the same rule:
// an unowned project is public, an owned one belongs to exactly one client.
type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

func (s *ProjectService) PublicProjects(ctx context.Context) ([]*domain.Project, error) {
	return s.repo.List(ctx, ports.ProjectFilter{PublicOnly: true})
}

func (s *ProjectService) MyProjects(ctx context.Context, caller ports.Identity) ([]*domain.Project, error) {
	if caller.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}
	// The owner filter is applied in the query itself, never client-side.
	return s.repo.List(ctx, ports.ProjectFilter{ClientID: caller.AccountID})
}

func (s *ProjectService) GetProject(ctx context.Context, id string, caller ports.Identity) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeRead(project, caller); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, input ports.ProjectInput, caller ports.Identity) (*domain.Project, error) {
	if !caller.Admin() {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	project := projectFromInput(input)
	project.CreatedAt = now
	project.UpdatedAt = now

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}
	s.logger.Info().Str("project_id", created.ID).Str("client_id", created.ClientID).Msg("project created")
	return created, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id string, input ports.ProjectInput, caller ports.Identity) (*domain.Project, error) {
	if !caller.Admin() {
		return nil, domain.ErrForbidden
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project := projectFromInput(input)
	project.ID = existing.ID
	project.CreatedAt = existing.CreatedAt
	project.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, project)
}

func (s *ProjectService) DeleteProject(ctx context.Context, id string, caller ports.Identity) error {
	if !caller.Admin() {
		return domain.ErrForbidden
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// authorizeRead decides whether caller may see project: public projects are
// open to everyone, owned ones only to their owner or an admin. The project
// is reported as absent rather than forbidden to anonymous callers so the
// public route does not confirm its existence.
func authorizeRead(project *domain.Project, caller ports.Identity) error {
	if project.Public() || caller.Admin() || project.OwnedBy(caller.AccountID) {
		return nil
	}
	if caller.Anonymous() {
		return domain.ErrProjectNotFound
	}
	return domain.ErrForbidden
}

func projectFromInput(input ports.ProjectInput) *domain.Project {
	status := domain.ProjectStatus(input.Status)
	if status == "" {
		status = domain.ProjectPlanning
	}
	progress := input.Progress
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	docs := make([]domain.Document, len(input.Documents))
	for i, d := range input.Documents {
		docs[i] = domain.Document{
			Title:      d.Title,
			URL:        d.URL,
			UploadedAt: time.Now().UTC(),
		}
	}

	return &domain.Project{
		Title:        input.Title,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		Technologies: input.Technologies,
		Status:       status,
		Progress:     progress,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		ClientID:     input.ClientID,
		Documents:    docs,
	}
}
