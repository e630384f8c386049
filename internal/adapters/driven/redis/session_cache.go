package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.SessionCache = (*SessionCache)(nil)

// loggedInPrefix keys the per-user logged-in flag
const loggedInPrefix = "session:loggedin:"

// defaultTTL matches the token lifetime; a stale entry can never outlive
// the token it answers for
const defaultTTL = 24 * time.Hour

// SessionCache implements driven.SessionCache using Redis. The user store
// stays authoritative; this is a read-through cache in front of it.
type SessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache creates a new Redis-backed SessionCache
func NewSessionCache(client *redis.Client) *SessionCache {
	return &SessionCache{client: client, ttl: defaultTTL}
}

// SetLoggedIn records the logged-in flag for a user
func (c *SessionCache) SetLoggedIn(ctx context.Context, userID string, loggedIn bool) error {
	err := c.client.Set(ctx, loggedInPrefix+userID, strconv.FormatBool(loggedIn), c.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set logged-in flag: %w", err)
	}
	return nil
}

// GetLoggedIn retrieves the logged-in flag for a user.
// Returns ErrNotFound on a cache miss.
func (c *SessionCache) GetLoggedIn(ctx context.Context, userID string) (bool, error) {
	val, err := c.client.Get(ctx, loggedInPrefix+userID).Result()
	if err == redis.Nil {
		return false, domain.ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to get logged-in flag: %w", err)
	}

	flag, err := strconv.ParseBool(val)
	if err != nil {
		return false, domain.ErrNotFound
	}
	return flag, nil
}

// Invalidate drops the cached flag for a user
func (c *SessionCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, loggedInPrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to invalidate session flag: %w", err)
	}
	return nil
}
