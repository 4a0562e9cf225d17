package ports

import (
	"context"

	"github.com/spyweb/portal-api/internal/core/domain"
)

// AccountRepository defines persistence for client and admin accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// ListByRole returns all accounts with the given role, newest first.
	ListByRole(ctx context.Context, role string) ([]*domain.Account, error)
	Update(ctx context.Context, id string, update domain.AccountUpdate) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
}
