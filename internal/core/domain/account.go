package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// AccountStatus is the provisioning state of an account.
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
)

// Account models an authenticated actor: a portal client or a back-office admin.
type Account struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	Company      string        `json:"company,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	Address      string        `json:"address,omitempty"`
	Role         string        `json:"role"`
	Status       AccountStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// AccountUpdate carries a partial profile mutation. Nil fields are left untouched.
type AccountUpdate struct {
	Name         *string
	Email        *string
	Company      *string
	Phone        *string
	Address      *string
	Status       *AccountStatus
	PasswordHash *string
}
