// Package portal is a Go client SDK for the SPYWEB portal API.
// It wraps the HTTP surface with typed calls and keeps the signed-in
// session (token + profile) in a durable Store so a CLI or desktop
// integration survives restarts without re-authenticating.
package portal

import "time"

// State describes where the client is in its sign-in lifecycle.
type State string

const (
	// StateAnonymous means no session is held; only public calls succeed.
	StateAnonymous State = "anonymous"
	// StateAuthenticating means a login request is in flight.
	StateAuthenticating State = "authenticating"
	// StateAuthenticated means a token and profile are cached.
	StateAuthenticated State = "authenticated"
)

// Profile is the account document as returned by the API.
type Profile struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Role    string `json:"role"`
	Status  string `json:"status"`
}

// Session is the unit the Store persists: the bearer token plus the
// profile snapshot taken at login time, and when it was saved.
type Session struct {
	Token   string    `json:"token"`
	Profile Profile   `json:"profile"`
	SavedAt time.Time `json:"saved_at"`
}
