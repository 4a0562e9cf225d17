package ports

import (
	"context"

	"github.com/spyweb/portal-api/internal/core/domain"
)

// ClientInput carries the admin client-provisioning form. Password is only
// required on creation; an empty password on update leaves the hash untouched.
type ClientInput struct {
	Name     string
	Email    string
	Phone    string
	Company  string
	Address  string
	Status   string
	Password string
}

// AccountService is the back-office client directory: admin CRUD over client
// accounts.
type AccountService interface {
	ListClients(ctx context.Context) ([]*domain.Account, error)
	ProvisionClient(ctx context.Context, input ClientInput) (*domain.Account, error)
	UpdateClient(ctx context.Context, id string, input ClientInput) (*domain.Account, error)
	DeleteClient(ctx context.Context, id string) error
}

// ChatService produces assistant replies for the public chat widget.
type ChatService interface {
	Reply(ctx context.Context, message string) (string, error)
}
