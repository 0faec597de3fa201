package redis

import (
	"context"
	"errors"
	"time"

	redisclient "github.com/aquatour/crm-backend/cmd/redis"
)

// ErrSessionsDisabled reports that no Redis client is configured, so
// session lookups cannot be answered either way. Callers decide whether
// to fall back to the token alone.
var ErrSessionsDisabled = errors.New("sessions disabled: no redis client")

// Repository defines the Redis-backed primitives: auth sessions and the
// fixed-window counters the rate limiter uses. A nil client (Redis not
// configured) degrades to no-ops so the service keeps running without it.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// IncrementWindow bumps the named fixed-window counter, setting the
	// window TTL on first increment, and returns the current count plus
	// the time left until the window resets.
	IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
	ResetWindow(ctx context.Context, key string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Set(ctx, key, userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, ErrSessionsDisabled
	}
	key := "session:" + sessionID
	val, err := client.Get(ctx, key).Uint64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Del(ctx, key).Err()
}

func (r *redis) IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, 0, nil
	}

	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}
	if count == 1 {
		if err := client.Expire(ctx, key, window).Err(); err != nil {
			return count, window, err
		}
		return count, window, nil
	}

	ttl, err := client.TTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		ttl = window
	}
	return count, ttl, err
}

func (r *redis) ResetWindow(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}
