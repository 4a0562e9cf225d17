package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ErrUnauthorized is returned when the server rejects the cached token
// or the supplied credentials. The cached session is cleared before the
// error is returned, so callers can go straight back to Login.
var ErrUnauthorized = errors.New("portal: unauthorized")

// ErrNotAuthenticated is returned by protected calls while the client
// holds no session.
var ErrNotAuthenticated = errors.New("portal: not authenticated")

// APIError carries a non-2xx response the SDK has no dedicated error for.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("portal: api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the portal API on behalf of one account.
//
// Contract:
//   - Login moves the client Anonymous -> Authenticating -> Authenticated
//     and persists the session via the Store; on failure the client
//     returns to Anonymous.
//   - Every protected call attaches the cached bearer token; any 401
//     response clears the store and reports ErrUnauthorized.
//   - Logout clears the session unconditionally.
//
// Client is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	store   Store

	mu    sync.RWMutex
	state State
	sess  *Session
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (timeouts, proxies,
// test transports).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New builds a Client for the API at baseURL, restoring any session the
// Store already holds so a previously signed-in user stays signed in.
func New(baseURL string, store Store, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
		state:   StateAnonymous,
	}
	for _, opt := range opts {
		opt(c)
	}

	sess, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if sess != nil && sess.Token != "" {
		c.sess = sess
		c.state = StateAuthenticated
	}
	return c, nil
}

// State reports the current sign-in state.
func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// CurrentProfile returns the cached profile snapshot, or nil when
// anonymous. It does not hit the network; use Me for a fresh copy.
func (c *Client) CurrentProfile() *Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.sess == nil {
		return nil
	}
	cp := c.sess.Profile
	return &cp
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupInput is the payload for Signup.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

type authPayload struct {
	Token string `json:"token"`
	Profile
}

// Login exchanges credentials for a token, persists the session, and
// leaves the client Authenticated.
func (c *Client) Login(ctx context.Context, email, password string) (*Profile, error) {
	c.setState(StateAuthenticating)

	var out authPayload
	err := c.do(ctx, http.MethodPost, "/api/clients/auth/login", credentials{Email: email, Password: password}, &out, false)
	if err != nil {
		c.setState(StateAnonymous)
		return nil, err
	}
	if err := c.adopt(out); err != nil {
		return nil, err
	}
	p := out.Profile
	return &p, nil
}

// Signup registers a new client account and signs it in, persisting the
// returned session the same way Login does.
func (c *Client) Signup(ctx context.Context, in SignupInput) (*Profile, error) {
	c.setState(StateAuthenticating)

	var out authPayload
	err := c.do(ctx, http.MethodPost, "/api/clients/auth/signup", in, &out, false)
	if err != nil {
		c.setState(StateAnonymous)
		return nil, err
	}
	if err := c.adopt(out); err != nil {
		return nil, err
	}
	p := out.Profile
	return &p, nil
}

// adopt installs a fresh token+profile and writes it through to the Store.
func (c *Client) adopt(out authPayload) error {
	sess := &Session{Token: out.Token, Profile: out.Profile, SavedAt: time.Now().UTC()}
	if err := c.store.Save(sess); err != nil {
		c.setState(StateAnonymous)
		return fmt.Errorf("persist session: %w", err)
	}

	c.mu.Lock()
	c.sess = sess
	c.state = StateAuthenticated
	c.mu.Unlock()
	return nil
}

// Logout drops the session locally. The token itself is stateless, so
// no server call is involved.
func (c *Client) Logout() error {
	c.mu.Lock()
	c.sess = nil
	c.state = StateAnonymous
	c.mu.Unlock()
	return c.store.Clear()
}

// Me fetches the caller's profile from the server and refreshes the
// cached copy.
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodGet, "/api/clients/auth/me", nil, &out, true); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.sess != nil {
		c.sess.Profile = out
		sess := *c.sess
		c.mu.Unlock()
		if err := c.store.Save(&sess); err != nil {
			return nil, fmt.Errorf("persist session: %w", err)
		}
	} else {
		c.mu.Unlock()
	}
	return &out, nil
}

// ProfileUpdate carries the fields UpdateProfile may change. Nil fields
// are left untouched on the server.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Company  *string `json:"company,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// UpdateProfile applies a partial profile update. When the server
// returns a fresh token (password changes rotate it), the cached
// session is replaced.
func (c *Client) UpdateProfile(ctx context.Context, in ProfileUpdate) (*Profile, error) {
	var out authPayload
	if err := c.do(ctx, http.MethodPut, "/api/clients/auth/profile", in, &out, true); err != nil {
		return nil, err
	}

	if out.Token != "" {
		if err := c.adopt(out); err != nil {
			return nil, err
		}
	} else {
		c.mu.Lock()
		if c.sess != nil {
			c.sess.Profile = out.Profile
			sess := *c.sess
			c.mu.Unlock()
			if err := c.store.Save(&sess); err != nil {
				return nil, fmt.Errorf("persist session: %w", err)
			}
		} else {
			c.mu.Unlock()
		}
	}
	p := out.Profile
	return &p, nil
}

// Project mirrors the API's project document.
type Project struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	Technologies []string  `json:"technologies"`
	Status       string    `json:"status"`
	Progress     int       `json:"progress"`
	StartDate    time.Time `json:"startDate,omitempty"`
	EndDate      time.Time `json:"endDate,omitempty"`
	ClientID     string    `json:"clientId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicProjects lists the showcase projects. No session required.
func (c *Client) PublicProjects(ctx context.Context) ([]Project, error) {
	var out []Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// MyProjects lists the projects owned by the signed-in client.
func (c *Client) MyProjects(ctx context.Context) ([]Project, error) {
	var out []Project
	if err := c.do(ctx, http.MethodGet, "/api/projects/my", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// Project fetches a single project. The token is attached when present
// so owned projects resolve for their owner.
func (c *Client) Project(ctx context.Context, id string) (*Project, error) {
	var out Project
	authed := c.State() == StateAuthenticated
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+id, nil, &out, authed); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ticket mirrors the API's support ticket document.
type Ticket struct {
	ID         string    `json:"_id"`
	Reference  string    `json:"reference"`
	Subject    string    `json:"subject"`
	Content    string    `json:"content"`
	Status     string    `json:"status"`
	AdminReply string    `json:"adminReply,omitempty"`
	ReplyDate  time.Time `json:"replyDate,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// OpenTicket files a support ticket for the signed-in client.
func (c *Client) OpenTicket(ctx context.Context, subject, content string) (*Ticket, error) {
	body := map[string]string{"subject": subject, "content": content}
	var out Ticket
	if err := c.do(ctx, http.MethodPost, "/api/messages", body, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyTickets lists the signed-in client's tickets, newest first.
func (c *Client) MyTickets(ctx context.Context) ([]Ticket, error) {
	var out []Ticket
	if err := c.do(ctx, http.MethodGet, "/api/messages", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.sess == nil {
		return ""
	}
	return c.sess.Token
}

// do issues one request. When authed is true the cached token is
// required and attached; a 401 on any call wipes the session.
func (c *Client) do(ctx context.Context, method, path string, in, out any, authed bool) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		tok := c.token()
		if tok == "" {
			return ErrNotAuthenticated
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Token revoked, expired, or credentials rejected. Either way
		// the cached session is no longer usable.
		_ = c.Logout()
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: readAPIMessage(resp.Body)}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func readAPIMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(data))
}
