package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/spyweb/portal-api/internal/core/domain"
	"github.com/spyweb/portal-api/internal/core/ports"
)

type stubProjectRepo struct {
	projects map[string]*domain.Project
	nextID   int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func cloneProject(p *domain.Project) *domain.Project {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	copy := cloneProject(p)
	if copy.ID == "" {
		r.nextID++
		copy.ID = "proj_" + strconv.Itoa(r.nextID)
	}
	r.projects[copy.ID] = cloneProject(copy)
	return cloneProject(copy), nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	if p, ok := r.projects[id]; ok {
		return cloneProject(p), nil
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) List(_ context.Context, filter ports.ProjectFilter) ([]*domain.Project, error) {
	var out []*domain.Project
	for _, p := range r.projects {
		if filter.PublicOnly && p.ClientID != "" {
			continue
		}
		if filter.ClientID != "" && p.ClientID != filter.ClientID {
			continue
		}
		out = append(out, cloneProject(p))
	}
	return out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) (*domain.Project, error) {
	if _, ok := r.projects[p.ID]; !ok {
		return nil, domain.ErrProjectNotFound
	}
	r.projects[p.ID] = cloneProject(p)
	return cloneProject(p), nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

var (
	adminIdent = ports.Identity{AccountID: "admin_1", Role: domain.RoleAdmin}
	ownerIdent = ports.Identity{AccountID: "client_1", Role: domain.RoleClient}
	otherIdent = ports.Identity{AccountID: "client_2", Role: domain.RoleClient}
	anonIdent  = ports.Identity{}
)

func seedProjects(t *testing.T, svc *ProjectService) (publicID, ownedID string) {
	t.Helper()

	pub, err := svc.CreateProject(context.Background(), ports.ProjectInput{Title: "Showcase"}, adminIdent)
	if err != nil {
		t.Fatalf("seed public project: %v", err)
	}
	owned, err := svc.CreateProject(context.Background(), ports.ProjectInput{Title: "Client Site", ClientID: "client_1"}, adminIdent)
	if err != nil {
		t.Fatalf("seed owned project: %v", err)
	}
	return pub.ID, owned.ID
}

func newTestProjectService() *ProjectService {
	return NewProjectService(newStubProjectRepo(), zerolog.Nop())
}

func TestProjectService_PublicProjects_ExcludesOwned(t *testing.T) {
	svc := newTestProjectService()
	publicID, _ := seedProjects(t, svc)

	projects, err := svc.PublicProjects(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 public project, got %d", len(projects))
	}
	if projects[0].ID != publicID {
		t.Fatalf("unexpected project %s in public list", projects[0].ID)
	}
}

func TestProjectService_MyProjects_ScopedToOwner(t *testing.T) {
	svc := newTestProjectService()
	_, ownedID := seedProjects(t, svc)

	mine, err := svc.MyProjects(context.Background(), ownerIdent)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != ownedID {
		t.Fatalf("expected only %s, got %+v", ownedID, mine)
	}

	theirs, err := svc.MyProjects(context.Background(), otherIdent)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(theirs) != 0 {
		t.Fatalf("expected empty list for non-owner, got %d", len(theirs))
	}
}

func TestProjectService_MyProjects_Anonymous(t *testing.T) {
	svc := newTestProjectService()

	if _, err := svc.MyProjects(context.Background(), anonIdent); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestProjectService_GetProject_Visibility(t *testing.T) {
	svc := newTestProjectService()
	publicID, ownedID := seedProjects(t, svc)

	cases := []struct {
		name    string
		id      string
		caller  ports.Identity
		wantErr error
	}{
		{"public for anonymous", publicID, anonIdent, nil},
		{"public for client", publicID, otherIdent, nil},
		{"owned for owner", ownedID, ownerIdent, nil},
		{"owned for admin", ownedID, adminIdent, nil},
		{"owned for other client", ownedID, otherIdent, domain.ErrForbidden},
		// existence must not leak to anonymous callers
		{"owned for anonymous", ownedID, anonIdent, domain.ErrProjectNotFound},
		{"missing project", "proj_missing", adminIdent, domain.ErrProjectNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.GetProject(context.Background(), tc.id, tc.caller)
			if err != tc.wantErr {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestProjectService_Create_AdminOnly(t *testing.T) {
	svc := newTestProjectService()

	if _, err := svc.CreateProject(context.Background(), ports.ProjectInput{Title: "X"}, ownerIdent); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for client, got %v", err)
	}
	if _, err := svc.CreateProject(context.Background(), ports.ProjectInput{Title: "X"}, anonIdent); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for anonymous, got %v", err)
	}
}

func TestProjectService_Create_Defaults(t *testing.T) {
	svc := newTestProjectService()

	created, err := svc.CreateProject(context.Background(), ports.ProjectInput{Title: "X", Progress: 250}, adminIdent)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != domain.ProjectPlanning {
		t.Fatalf("expected default status Planning, got %s", created.Status)
	}
	if created.Progress != 100 {
		t.Fatalf("expected progress clamped to 100, got %d", created.Progress)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestProjectService_Update_PreservesCreatedAt(t *testing.T) {
	svc := newTestProjectService()
	publicID, _ := seedProjects(t, svc)

	before, _ := svc.GetProject(context.Background(), publicID, adminIdent)

	updated, err := svc.UpdateProject(context.Background(), publicID, ports.ProjectInput{Title: "Renamed", Progress: 10}, adminIdent)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Fatalf("unexpected title: %s", updated.Title)
	}
	if !updated.CreatedAt.Equal(before.CreatedAt) {
		t.Fatalf("CreatedAt changed on update")
	}
}

func TestProjectService_Update_AdminOnly(t *testing.T) {
	svc := newTestProjectService()
	_, ownedID := seedProjects(t, svc)

	// even the owner cannot mutate; only admins manage projects
	if _, err := svc.UpdateProject(context.Background(), ownedID, ports.ProjectInput{Title: "X"}, ownerIdent); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestProjectService_Delete(t *testing.T) {
	svc := newTestProjectService()
	publicID, _ := seedProjects(t, svc)

	if err := svc.DeleteProject(context.Background(), publicID, ownerIdent); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for client, got %v", err)
	}
	if err := svc.DeleteProject(context.Background(), publicID, adminIdent); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeleteProject(context.Background(), publicID, adminIdent); err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound on second delete, got %v", err)
	}
}
