// Package session keeps the admin bearer token server-side, keyed by an
// opaque cookie value.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	tokenKeyPrefix = "portfolio_jwt_token:" // portfolio_jwt_token:{sid}
	// CookieName is the cookie carrying the session id.
	CookieName = "portfolio_sid"
	defaultTTL = 7 * 24 * time.Hour
)

// ErrNoToken is returned when the session holds no credential.
var ErrNoToken = errors.New("session: no token")

// Store persists one bearer token per session id in Redis.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

// NewID returns a fresh random session id.
func NewID() string {
	return uuid.NewString()
}

// TTL is how long a stored token lives without being rewritten.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Put stores token for sid, replacing any previous value.
func (s *Store) Put(ctx context.Context, sid, token string) error {
	if strings.TrimSpace(sid) == "" {
		return fmt.Errorf("session id is required")
	}
	if token == "" {
		return fmt.Errorf("token is required")
	}
	if err := s.client.Set(ctx, tokenKey(sid), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

// Get returns the token for sid or ErrNoToken.
func (s *Store) Get(ctx context.Context, sid string) (string, error) {
	if strings.TrimSpace(sid) == "" {
		return "", ErrNoToken
	}
	token, err := s.client.Get(ctx, tokenKey(sid)).Result()
	if err == redis.Nil {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Delete removes the token for sid. Deleting a missing token is not an error.
func (s *Store) Delete(ctx context.Context, sid string) error {
	if strings.TrimSpace(sid) == "" {
		return nil
	}
	if err := s.client.Del(ctx, tokenKey(sid)).Err(); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

func tokenKey(sid string) string {
	return tokenKeyPrefix + sid
}
