package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/spyweb/portal-api/internal/api/metrics"
	"github.com/spyweb/portal-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxAccount   = "account"
	CtxAccountID = "account_id"
	CtxEmail     = "email"
	CtxRole      = "role"
)

// Auth validates the bearer token, resolves it to a live account, and injects
// the identity into the echo context. The account lookup happens on every
// request so tokens for deleted or deactivated accounts stop working
// immediately, not at expiry.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokensRejectedTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokensRejectedTotal.WithLabelValues("malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			account, err := verifier.Verify(c.Request().Context(), parts[1])
			if err != nil {
				metrics.TokensRejectedTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxAccount, account)
			c.Set(CtxAccountID, account.ID)
			c.Set(CtxEmail, account.Email)
			c.Set(CtxRole, account.Role)

			return next(c)
		}
	}
}

// OptionalAuth resolves a bearer token when one is present but lets the
// request through anonymously otherwise. Used on public routes whose results
// widen for authenticated callers.
func OptionalAuth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			if account, err := verifier.Verify(c.Request().Context(), parts[1]); err == nil {
				c.Set(CtxAccount, account)
				c.Set(CtxAccountID, account.ID)
				c.Set(CtxEmail, account.Email)
				c.Set(CtxRole, account.Role)
			}
			return next(c)
		}
	}
}
