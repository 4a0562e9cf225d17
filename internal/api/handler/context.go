package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spyweb/portal-api/internal/api/middleware"
	"github.com/spyweb/portal-api/internal/core/domain"
	"github.com/spyweb/portal-api/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A
// missing identity on a protected route means the middleware did not run;
// fail closed with 401.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	accountID, _ := c.Get(middleware.CtxAccountID).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	if accountID == "" || role == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Identity{AccountID: accountID, Role: role}, nil
}

// ctxOptionalIdentity returns the resolved identity, or a zero Identity for
// anonymous callers. Used behind OptionalAuth.
func ctxOptionalIdentity(c echo.Context) ports.Identity {
	accountID, _ := c.Get(middleware.CtxAccountID).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	return ports.Identity{AccountID: accountID, Role: role}
}

// ctxAccount returns the full account resolved by the Auth middleware.
func ctxAccount(c echo.Context) (*domain.Account, error) {
	account, _ := c.Get(middleware.CtxAccount).(*domain.Account)
	if account == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return account, nil
}
