package server

import (
	"net/http"
	"testing"

	"apt/internal/middleware"
	"apt/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	app, _ := newTestServer(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", fiber.Map{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "pw1",
		"confirm":  "pw1",
	}, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		User models.Principal `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "alice", body.User.Username)
	assert.Equal(t, models.LoomNone, body.User.Loom)

	var gotCookie bool
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookie {
			gotCookie = true
			assert.NotEmpty(t, c.Value)
		}
	}
	assert.True(t, gotCookie, "signup should log the user in")
}

func TestSignup_Validation(t *testing.T) {
	app, _ := newTestServer(t)

	tests := []struct {
		name string
		body fiber.Map
	}{
		{"missing fields", fiber.Map{"username": "alice"}},
		{"password mismatch", fiber.Map{
			"username": "alice", "email": "a@example.com", "password": "pw1", "confirm": "pw2",
		}},
		{"bad username", fiber.Map{
			"username": "a!", "email": "a@example.com", "password": "pw1", "confirm": "pw1",
		}},
		{"bad email", fiber.Map{
			"username": "alice", "email": "not-an-email", "password": "pw1", "confirm": "pw1",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", tt.body, nil)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestSignup_DuplicateUsername(t *testing.T) {
	app, _ := newTestServer(t)
	signup(t, app, "alice")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", fiber.Map{
		"username": "alice",
		"email":    "other@example.com",
		"password": "pw1",
		"confirm":  "pw1",
	}, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	app, _ := newTestServer(t)
	signup(t, app, "alice")

	t.Run("by username", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
			"login": "alice", "password": "pw1",
		}, nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("by email", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
			"login": "alice@example.com", "password": "pw1",
		}, nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
			"login": "alice", "password": "wrong",
		}, nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown account", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
			"login": "ghost", "password": "pw1",
		}, nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLogout_RevokesSession(t *testing.T) {
	app, _ := newTestServer(t)
	cookie := signup(t, app, "alice")

	// Session works before logout.
	resp := doJSON(t, app, http.MethodGet, "/api/feed", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/logout", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The old token is dead server-side, not merely cleared client-side.
	resp = doJSON(t, app, http.MethodGet, "/api/feed", nil, cookie)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestProtectedRoutes_RequireSession(t *testing.T) {
	app, _ := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/feed"},
		{http.MethodGet, "/api/reels/"},
		{http.MethodGet, "/api/users/"},
		{http.MethodGet, "/api/chat/"},
	}

	for _, p := range paths {
		resp := doJSON(t, app, p.method, p.path, nil, nil)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, p.path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), p.path)
	}
}
