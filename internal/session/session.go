// Package session implements the server-side session table backing the
// authorization gate. Sessions are keyed by an opaque token and expire on a
// sliding window: every successful lookup pushes the expiry out again.
package session

import (
	"context"
	"errors"
	"time"

	"apt/internal/models"
)

// ErrNotFound is returned when a token resolves to no live session.
var ErrNotFound = errors.New("session not found")

// Session maps an opaque token to an authenticated principal.
type Session struct {
	Token     string           `json:"token"`
	Principal models.Principal `json:"principal"`
	CreatedAt time.Time        `json:"created_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// Store persists sessions. Get refreshes the sliding expiry as a side effect.
type Store interface {
	Create(ctx context.Context, principal models.Principal) (*Session, error)
	Get(ctx context.Context, token string) (*Session, error)
	UpdateLoom(ctx context.Context, token string, loom models.Loom) error
	Revoke(ctx context.Context, token string) error
}
