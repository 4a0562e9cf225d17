package ports

import (
	"context"

	"github.com/spyweb/portal-api/internal/core/domain"
)

// SignupInput carries the public client registration form.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Company  string
	Phone    string
}

// ProfileUpdateInput is a partial profile mutation from the portal settings
// page. Nil fields are left untouched; a non-nil Password triggers a rehash
// and a token reissue.
type ProfileUpdateInput struct {
	Name     *string
	Email    *string
	Company  *string
	Phone    *string
	Address  *string
	Password *string
}

// AuthResult is returned by every operation that establishes or refreshes a
// session. Token is empty when the operation did not mint a new one.
type AuthResult struct {
	Token   string
	Account *domain.Account
}

// AuthService implements the credential verifier and token issuer.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	UpdateProfile(ctx context.Context, accountID string, input ProfileUpdateInput) (*AuthResult, error)
}

// TokenVerifier resolves a bearer token to a live account. Implementations
// must reject expired or tampered tokens and tokens whose account has been
// deleted or deactivated since issuance.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Account, error)
}

// LoginThrottle limits failed login attempts per identifier.
type LoginThrottle interface {
	// Allow reports whether the identifier may attempt a login right now.
	Allow(ctx context.Context, identifier string) (bool, error)
	// RecordFailure notes one failed attempt against the identifier.
	RecordFailure(ctx context.Context, identifier string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, identifier string) error
}
