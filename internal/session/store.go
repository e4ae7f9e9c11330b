// Package session implements the server-side session layer: an opaque
// session id held in Redis with a rolling idle TTL, wrapped in a signed
// cookie token so the id cannot be forged client-side.
package session

import (
	"context" // Context for Redis operations
	"errors"
	"time" // Time durations

	"github.com/google/uuid"       // Session id generation
	"github.com/redis/go-redis/v9" // Redis client
)

// CookieName is the name of the session cookie.
const CookieName = "nanotify_session"

// IdleTimeout is the rolling idle expiry of a session. Every authenticated
// request resets the clock.
const IdleTimeout = 30 * time.Minute

// ErrNoSession is returned when a token does not resolve to a live session.
var ErrNoSession = errors.New("session: no live session")

const keyPrefix = "session:"

// Store keeps session state in Redis keyed by an opaque id.
type Store struct {
	rdb    *redis.Client // Redis client
	secret string        // Cookie signing secret
}

// NewStore returns a Store backed by rdb, signing cookies with secret.
func NewStore(rdb *redis.Client, secret string) *Store {
	return &Store{rdb: rdb, secret: secret}
}

// Create opens a session for email and returns the signed cookie token.
func (s *Store) Create(ctx context.Context, email string) (string, error) {
	id := uuid.NewString()
	if err := s.rdb.Set(ctx, keyPrefix+id, email, IdleTimeout).Err(); err != nil {
		return "", err
	}
	return signToken(id, s.secret)
}

// Resolve maps a cookie token to the session owner's email and resets the
// idle TTL (rolling expiry). A tampered token, an unknown id or an expired
// session all yield ErrNoSession.
func (s *Store) Resolve(ctx context.Context, token string) (string, error) {
	id, err := parseToken(token, s.secret)
	if err != nil {
		return "", ErrNoSession
	}
	email, err := s.rdb.Get(ctx, keyPrefix+id).Result()
	if err == redis.Nil {
		return "", ErrNoSession
	} else if err != nil {
		return "", err
	}
	// Refresh the idle window on every hit.
	if err := s.rdb.Expire(ctx, keyPrefix+id, IdleTimeout).Err(); err != nil {
		return "", err
	}
	return email, nil
}

// Destroy ends the session behind a cookie token. Unknown or tampered
// tokens are ignored, so logout stays idempotent.
func (s *Store) Destroy(ctx context.Context, token string) error {
	id, err := parseToken(token, s.secret)
	if err != nil {
		return nil
	}
	return s.rdb.Del(ctx, keyPrefix+id).Err()
}
