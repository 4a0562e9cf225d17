package ports

import (
	"context"

	"github.com/spyweb/portal-api/internal/core/domain"
)

// ContactRepository defines persistence for contact-form submissions.
type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	List(ctx context.Context) ([]*domain.Contact, error)
	UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

// ContactInput is the public contact form payload.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// ContactService handles contact-form intake and back-office triage.
type ContactService interface {
	Submit(ctx context.Context, input ContactInput) (*domain.Contact, error)
	ListContacts(ctx context.Context) ([]*domain.Contact, error)
	SetStatus(ctx context.Context, id string, status string) (*domain.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}
