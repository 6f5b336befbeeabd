package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/simonindia/hr-portal/internal/core/domain"
	"github.com/simonindia/hr-portal/internal/core/ports"
)

// AuthService validates the configured admin credential pair and issues
// bearer tokens. A token is an HS256 JWT, but it is only honoured while its
// session entry exists in the store: logout deletes the entry, and the
// store's TTL enforces the expiry horizon independently of the JWT exp.
type AuthService struct {
	creds     domain.AdminCredentials
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(creds domain.AdminCredentials, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		creds:     creds,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Login mints a new session token when both fields match the configured
// pair. Username and password checks both run on every attempt so the
// response does not reveal which field was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(password))

	if !userOK || passErr != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.mintToken(username)
	if err != nil {
		return "", fmt.Errorf("mint token: %w", err)
	}

	if err := s.sessions.Save(ctx, token, username, s.tokenTTL); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	s.log.Info().Str("username", username).Msg("login successful")
	return token, nil
}

// Logout clears the session behind the token. Unknown tokens are ignored so
// a double logout stays a success.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Authenticate verifies the token signature and expiry, then confirms the
// session is still live in the store. Both must hold.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.ErrSessionNotFound
	}

	username, err := s.sessions.Get(ctx, token)
	if err != nil {
		return "", err
	}

	// The store is keyed by the token itself; a mismatch against the claim
	// means the entry does not belong to this token.
	if claimed, _ := claims["username"].(string); claimed != username {
		return "", domain.ErrSessionNotFound
	}

	return username, nil
}

func (s *AuthService) mintToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
