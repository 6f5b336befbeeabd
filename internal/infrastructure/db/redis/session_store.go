package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/simonindia/hr-portal/internal/core/domain"
)

// SessionStore maps bearer tokens to usernames in Redis.
// Key format: session:<token>. Expiry is enforced by the key TTL, so a
// stale token disappears from the store without any sweeper: the lookup on
// the next request simply misses.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save records the token with the given validity window. Saving the same
// token twice resets its TTL; tokens for the same user do not collide, so a
// user may hold several live sessions at once.
func (s *SessionStore) Save(ctx context.Context, token, username string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(token), username, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get returns the username bound to the token, or domain.ErrSessionNotFound
// when the key is absent or its TTL has elapsed.
func (s *SessionStore) Get(ctx context.Context, token string) (string, error) {
	username, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrSessionNotFound
		}
		return "", fmt.Errorf("get session: %w", err)
	}
	return username, nil
}

// Delete removes the token. Deleting an absent key is a no-op, which keeps
// logout idempotent.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return "session:" + token
}
