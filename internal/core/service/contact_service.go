package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/spyweb/portal-api/internal/core/domain"
	"github.com/spyweb/portal-api/internal/core/ports"
)

// ContactService handles contact-form intake and back-office triage.
type ContactService struct {
	repo   ports.ContactRepository
	logger zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

func (s *ContactService) Submit(ctx context.Context, input ports.ContactInput) (*domain.Contact, error) {
	contact, err := s.repo.Create(ctx, &domain.Contact{
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		Status:    domain.ContactNew,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to store contact submission")
		return nil, err
	}
	s.logger.Info().Str("contact_id", contact.ID).Msg("contact submission received")
	return contact, nil
}

func (s *ContactService) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	return s.repo.List(ctx)
}

func (s *ContactService) SetStatus(ctx context.Context, id string, status string) (*domain.Contact, error) {
	cs := domain.ContactStatus(status)
	if !domain.ValidContactStatus(cs) {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, cs)
}

func (s *ContactService) DeleteContact(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
