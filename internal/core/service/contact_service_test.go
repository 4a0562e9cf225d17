package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/spyweb/portal-api/internal/core/domain"
	"github.com/spyweb/portal-api/internal/core/ports"
)

type stubContactRepo struct {
	contacts map[string]*domain.Contact
	nextID   int
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{contacts: make(map[string]*domain.Contact)}
}

func (r *stubContactRepo) Create(_ context.Context, c *domain.Contact) (*domain.Contact, error) {
	copy := *c
	r.nextID++
	copy.ID = "cont_" + strconv.Itoa(r.nextID)
	r.contacts[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubContactRepo) List(_ context.Context) ([]*domain.Contact, error) {
	out := make([]*domain.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		copy := *c
		out = append(out, &copy)
	}
	return out, nil
}

func (r *stubContactRepo) UpdateStatus(_ context.Context, id string, status domain.ContactStatus) (*domain.Contact, error) {
	c, ok := r.contacts[id]
	if !ok {
		return nil, domain.ErrContactNotFound
	}
	c.Status = status
	copy := *c
	return &copy, nil
}

func (r *stubContactRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.contacts[id]; !ok {
		return domain.ErrContactNotFound
	}
	delete(r.contacts, id)
	return nil
}

func newTestContactService() *ContactService {
	return NewContactService(newStubContactRepo(), zerolog.Nop())
}

func TestContactService_Submit(t *testing.T) {
	svc := newTestContactService()

	contact, err := svc.Submit(context.Background(), ports.ContactInput{
		Name: "Visitor", Email: "visitor@example.com", Message: "Need a quote",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if contact.Status != domain.ContactNew {
		t.Fatalf("expected status new, got %s", contact.Status)
	}
	if contact.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}
}

func TestContactService_SetStatus(t *testing.T) {
	svc := newTestContactService()

	contact, _ := svc.Submit(context.Background(), ports.ContactInput{Name: "V", Email: "v@e.com", Message: "m"})

	updated, err := svc.SetStatus(context.Background(), contact.ID, string(domain.ContactRead))
	if err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if updated.Status != domain.ContactRead {
		t.Fatalf("expected read, got %s", updated.Status)
	}
}

func TestContactService_SetStatus_Invalid(t *testing.T) {
	svc := newTestContactService()

	contact, _ := svc.Submit(context.Background(), ports.ContactInput{Name: "V", Email: "v@e.com", Message: "m"})

	if _, err := svc.SetStatus(context.Background(), contact.ID, "archived"); err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestContactService_SetStatus_NotFound(t *testing.T) {
	svc := newTestContactService()

	if _, err := svc.SetStatus(context.Background(), "cont_missing", string(domain.ContactRead)); err != domain.ErrContactNotFound {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestContactService_Delete(t *testing.T) {
	svc := newTestContactService()

	contact, _ := svc.Submit(context.Background(), ports.ContactInput{Name: "V", Email: "v@e.com", Message: "m"})
	if err := svc.DeleteContact(context.Background(), contact.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeleteContact(context.Background(), contact.ID); err != domain.ErrContactNotFound {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}
