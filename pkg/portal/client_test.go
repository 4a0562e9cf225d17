package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token-abc"

// newTestServer simulates the slice of the API the SDK touches:
// login, me, my projects, and tickets, guarded by a bearer check.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/clients/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Email != "alice@example.com" || creds.Password != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": testToken,
			"_id":   "u1",
			"name":  "Alice",
			"email": "alice@example.com",
			"role":  "client",
		})
	})

	requireToken := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid or expired token"})
			return false
		}
		return true
	}

	mux.HandleFunc("GET /api/clients/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if !requireToken(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"_id": "u1", "name": "Alice", "email": "alice@example.com", "role": "client",
		})
	})

	mux.HandleFunc("GET /api/projects/my", func(w http.ResponseWriter, r *http.Request) {
		if !requireToken(w, r) {
			return
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"_id": "p1", "title": "Site Redesign", "clientId": "u1", "status": "In Progress", "progress": 40},
		})
	})

	mux.HandleFunc("GET /api/projects", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"_id": "pub1", "title": "Showcase", "status": "Completed", "progress": 100},
		})
	})

	mux.HandleFunc("POST /api/messages", func(w http.ResponseWriter, r *http.Request) {
		if !requireToken(w, r) {
			return
		}
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"_id": "t1", "reference": "TICKET-1", "subject": body["subject"],
			"content": body["content"], "status": "New",
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientLoginPersistsSession(t *testing.T) {
	srv := newTestServer(t)
	path := filepath.Join(t.TempDir(), "session.json")

	c, err := New(srv.URL, NewFileStore(path))
	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, c.State())

	profile, err := c.Login(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, StateAuthenticated, c.State())

	// a second client over the same store resumes the session
	c2, err := New(srv.URL, NewFileStore(path))
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, c2.State())
	require.NotNil(t, c2.CurrentProfile())
	assert.Equal(t, "alice@example.com", c2.CurrentProfile().Email)

	me, err := c2.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", me.ID)
}

func TestClientLoginRejected(t *testing.T) {
	srv := newTestServer(t)

	c, err := New(srv.URL, NewMemoryStore())
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "alice@example.com", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, StateAnonymous, c.State())
	assert.Nil(t, c.CurrentProfile())
}

func TestClientProtectedCallWithoutSession(t *testing.T) {
	srv := newTestServer(t)

	c, err := New(srv.URL, NewMemoryStore())
	require.NoError(t, err)

	_, err = c.MyProjects(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestClientRejectedTokenClearsSession(t *testing.T) {
	srv := newTestServer(t)
	store := NewMemoryStore()

	// seed the store with a token the server no longer accepts
	require.NoError(t, store.Save(&Session{Token: "stale-token", Profile: Profile{ID: "u1"}}))

	c, err := New(srv.URL, store)
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, c.State())

	_, err = c.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)

	assert.Equal(t, StateAnonymous, c.State())
	sess, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestClientLogout(t *testing.T) {
	srv := newTestServer(t)
	store := NewMemoryStore()

	c, err := New(srv.URL, store)
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)

	require.NoError(t, c.Logout())
	assert.Equal(t, StateAnonymous, c.State())

	sess, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestClientPublicProjectsAnonymous(t *testing.T) {
	srv := newTestServer(t)

	c, err := New(srv.URL, NewMemoryStore())
	require.NoError(t, err)

	projects, err := c.PublicProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Showcase", projects[0].Title)
}

func TestClientOpenTicket(t *testing.T) {
	srv := newTestServer(t)

	c, err := New(srv.URL, NewMemoryStore())
	require.NoError(t, err)
	_, err = c.Login(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)

	ticket, err := c.OpenTicket(context.Background(), "Billing", "Invoice looks off")
	require.NoError(t, err)
	assert.Equal(t, "TICKET-1", ticket.Reference)
	assert.Equal(t, "New", ticket.Status)
}

func TestClientAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "email already registered"})
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, NewMemoryStore())
	require.NoError(t, err)

	_, err = c.Signup(context.Background(), SignupInput{Name: "A", Email: "a@b.c", Password: "x"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "email already registered", apiErr.Message)
	assert.Equal(t, StateAnonymous, c.State())
}
