package ports

import (
	"context"
	"time"
)

// AuthService authenticates the single administrative account and manages
// bearer-token sessions.
type AuthService interface {
	// Login returns a fresh bearer token on success, or
	// domain.ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, username, password string) (string, error)
	// Logout invalidates the session behind the token. Idempotent: logging
	// out an unknown or already-cleared token is not an error.
	Logout(ctx context.Context, token string) error
	// Authenticate returns the username bound to a currently valid token,
	// or domain.ErrSessionNotFound.
	Authenticate(ctx context.Context, token string) (string, error)
}

// SessionStore maps opaque bearer tokens to usernames with an expiry.
type SessionStore interface {
	Save(ctx context.Context, token, username string, ttl time.Duration) error
	// Get returns the username for token, or domain.ErrSessionNotFound when
	// the token is unknown or its TTL has elapsed.
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
