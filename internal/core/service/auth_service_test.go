package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/simonindia/hr-portal/internal/core/domain"
)

type stubSessionStore struct {
	sessions map[string]string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]string)}
}

func (s *stubSessionStore) Save(_ context.Context, token, username string, _ time.Duration) error {
	s.sessions[token] = username
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (string, error) {
	username, ok := s.sessions[token]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return username, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func testCredentials(t *testing.T) domain.AdminCredentials {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return domain.AdminCredentials{Username: "admin@hr.local", PasswordHash: string(hash)}
}

func TestAuthService_Login_Success(t *testing.T) {
	sessions := newStubSessionStore()
	svc := NewAuthService(testCredentials(t), sessions, "secret", time.Hour, zerolog.Nop())

	token, err := svc.Login(context.Background(), "admin@hr.local", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if sessions.sessions[token] != "admin@hr.local" {
		t.Fatalf("session not recorded for token")
	}

	username, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("authenticate after login failed: %v", err)
	}
	if username != "admin@hr.local" {
		t.Fatalf("unexpected username: %s", username)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(testCredentials(t), newStubSessionStore(), "secret", time.Hour, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "admin@hr.local", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser_SameError(t *testing.T) {
	svc := NewAuthService(testCredentials(t), newStubSessionStore(), "secret", time.Hour, zerolog.Nop())

	wrongUser := func() error {
		_, err := svc.Login(context.Background(), "ghost@hr.local", "s3cret")
		return err
	}
	wrongPass := func() error {
		_, err := svc.Login(context.Background(), "admin@hr.local", "bad")
		return err
	}

	// Both failure modes must be indistinguishable to the caller.
	if err := wrongUser(); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
	if err := wrongPass(); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_MultipleSessions(t *testing.T) {
	sessions := newStubSessionStore()
	svc := NewAuthService(testCredentials(t), sessions, "secret", time.Hour, zerolog.Nop())

	t1, err := svc.Login(context.Background(), "admin@hr.local", "s3cret")
	if err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	t2, err := svc.Login(context.Background(), "admin@hr.local", "s3cret")
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}

	// No single-session enforcement: both tokens stay valid.
	if _, err := svc.Authenticate(context.Background(), t1); err != nil {
		t.Fatalf("first token invalid: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), t2); err != nil {
		t.Fatalf("second token invalid: %v", err)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	sessions := newStubSessionStore()
	svc := NewAuthService(testCredentials(t), sessions, "secret", time.Hour, zerolog.Nop())

	token, err := svc.Login(context.Background(), "admin@hr.local", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after logout, got %v", err)
	}

	// Logging out twice, or with no token at all, is not an error.
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("second logout failed: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("empty-token logout failed: %v", err)
	}
}

func TestAuthService_Authenticate_ExpiredToken(t *testing.T) {
	sessions := newStubSessionStore()
	svc := NewAuthService(testCredentials(t), sessions, "secret", time.Hour, zerolog.Nop())

	// A token that expired an hour ago but still has a session entry,
	// simulating a store TTL that outlived the JWT exp.
	claims := jwt.MapClaims{"username": "admin@hr.local", "exp": time.Now().Add(-time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	_ = sessions.Save(context.Background(), token, "admin@hr.local", time.Hour)

	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for expired token, got %v", err)
	}
}

func TestAuthService_Authenticate_ForgedToken(t *testing.T) {
	svc := NewAuthService(testCredentials(t), newStubSessionStore(), "secret", time.Hour, zerolog.Nop())

	claims := jwt.MapClaims{"username": "admin@hr.local", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for forged token, got %v", err)
	}
}
