package domain

import "errors"

var (
	// ErrInvalidCredentials covers both "account not found" and "wrong
	// password" on the login path so responses cannot be used to enumerate
	// accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")

	ErrAccountExists   = errors.New("account already exists")
	ErrAccountNotFound = errors.New("account not found")

	ErrInvalidStatus = errors.New("invalid status")

	ErrProjectNotFound = errors.New("project not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrContactNotFound = errors.New("contact not found")
	ErrTicketNotFound  = errors.New("ticket not found")
)
