package domain

import "errors"

// The same error is returned for an unknown username and a wrong password
// so that login responses cannot be used for account enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrSessionNotFound covers missing, expired and logged-out sessions alike.
var ErrSessionNotFound = errors.New("session not found or expired")

// AdminCredentials is the single credential pair the portal accepts.
// PasswordHash is a bcrypt hash; plaintext is never held past startup.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}
