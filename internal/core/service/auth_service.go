package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/spyweb/portal-api/internal/core/domain"
	"github.com/spyweb/portal-api/internal/core/ports"
)

// dummyHash is compared against when the account does not exist, so the
// not-found path costs the same as a wrong password and the response cannot
// be timed to enumerate accounts. It is the bcrypt of an unguessable value.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements signup, login, profile updates, and token
// verification. It is the sole issuer of session tokens.
type AuthService struct {
	repo      ports.AccountRepository
	throttle  ports.LoginThrottle
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, throttle ports.LoginThrottle, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{repo: repo, throttle: throttle, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Signup registers a new client account and logs it straight in.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
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
		Company:      input.Company,
		Phone:        input.Phone,
		Role:         domain.RoleClient,
		Status:       domain.AccountActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", account.ID).Msg("client signed up")
	return &ports.AuthResult{Token: token, Account: account}, nil
}

// Login verifies the credential pair and mints a session token. Unknown
// email, wrong password, and deactivated account are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.allowAttempt(ctx, email) {
		return nil, domain.ErrTooManyAttempts
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// Burn a compare so the miss costs the same as a mismatch.
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if account.Status != domain.AccountActive {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.throttle.Reset(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("throttle reset failed")
	}

	token, err := s.generateToken(account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", account.ID).Str("role", account.Role).Msg("login succeeded")
	return &ports.AuthResult{Token: token, Account: account}, nil
}

// UpdateProfile applies a partial profile mutation. When the password
// changes, the stored hash is replaced and a fresh token is issued so the
// client can keep its session without logging in again.
func (s *AuthService) UpdateProfile(ctx context.Context, accountID string, input ports.ProfileUpdateInput) (*ports.AuthResult, error) {
	update := domain.AccountUpdate{
		Name:    input.Name,
		Email:   input.Email,
		Company: input.Company,
		Phone:   input.Phone,
		Address: input.Address,
	}

	passwordChanged := input.Password != nil && *input.Password != ""
	if passwordChanged {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
	}

	account, err := s.repo.Update(ctx, accountID, update)
	if err != nil {
		return nil, err
	}

	result := &ports.AuthResult{Account: account}
	if passwordChanged {
		token, err := s.generateToken(account)
		if err != nil {
			return nil, err
		}
		result.Token = token
		s.logger.Info().Str("account_id", account.ID).Msg("password changed, token reissued")
	}
	return result, nil
}

// Verify resolves a bearer token to the live account that backs it. The
// account lookup catches deletion or deactivation since issuance.
func (s *AuthService) Verify(ctx context.Context, token string) (*domain.Account, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUnauthenticated
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, domain.ErrUnauthenticated
	}

	account, err := s.repo.FindByID(ctx, sub)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	if account.Status != domain.AccountActive {
		return nil, domain.ErrUnauthenticated
	}
	return account, nil
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"sub":   account.ID,
		"email": account.Email,
		"name":  account.Name,
		"role":  account.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// allowAttempt consults the throttle, failing open when it is unreachable so
// an outage never locks every client out.
func (s *AuthService) allowAttempt(ctx context.Context, email string) bool {
	ok, err := s.throttle.Allow(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login throttle unavailable")
		return true
	}
	return ok
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("throttle record failed")
	}
}
