package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/spyweb/portal-api/internal/core/domain"
	"github.com/spyweb/portal-api/internal/core/ports"
)

// AccountService is the back-office client directory. It never touches admin
// accounts; those are provisioned out of band.
type AccountService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

func (s *AccountService) ListClients(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.ListByRole(ctx, domain.RoleClient)
}

func (s *AccountService) ProvisionClient(ctx context.Context, input ports.ClientInput) (*domain.Account, error) {
	if input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account, err := s.repo.Create(ctx, &domain.Account{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Company:      input.Company,
		Address:      input.Address,
		Role:         domain.RoleClient,
		Status:       accountStatus(input.Status),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("account_id", account.ID).Msg("client provisioned by admin")
	return account, nil
}

func (s *AccountService) UpdateClient(ctx context.Context, id string, input ports.ClientInput) (*domain.Account, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Role != domain.RoleClient {
		return nil, domain.ErrForbidden
	}

	status := accountStatus(input.Status)
	update := domain.AccountUpdate{
		Name:    &input.Name,
		Email:   &input.Email,
		Phone:   &input.Phone,
		Company: &input.Company,
		Address: &input.Address,
		Status:  &status,
	}

	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
	}

	return s.repo.Update(ctx, id, update)
}

func (s *AccountService) DeleteClient(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Role != domain.RoleClient {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("account_id", id).Msg("client deleted by admin")
	return nil
}

func accountStatus(raw string) domain.AccountStatus {
	if domain.AccountStatus(raw) == domain.AccountInactive {
		return domain.AccountInactive
	}
	return domain.AccountActive
}
