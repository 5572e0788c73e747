package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cached entries expire on their own; revocation paths delete them eagerly,
// the TTL only bounds how long an orphaned entry can linger.
const sessionTTL = 15 * time.Minute

// SessionCache maps a session token to its user id in Redis.
// Key format: session:<sha256 of token> (raw JWTs are kept out of the keyspace).
type SessionCache struct {
	client *redis.Client
}

// NewSessionCache wraps the given Redis client.
func NewSessionCache(client *redis.Client) *SessionCache {
	return &SessionCache{client: client}
}

// Get returns the cached user id for token, with ok=false on a miss.
func (c *SessionCache) Get(ctx context.Context, token string) (string, bool, error) {
	userID, err := c.client.Get(ctx, c.key(token)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session cache get: %w", err)
	}
	return userID, true, nil
}

// Set records the token's owner (expires after sessionTTL).
func (c *SessionCache) Set(ctx context.Context, token, userID string) error {
	return c.client.Set(ctx, c.key(token), userID, sessionTTL).Err()
}

// Delete removes the entries for the given tokens.
func (c *SessionCache) Delete(ctx context.Context, tokens ...string) error {
	keys := make([]string, 0, len(tokens))
	for _, t := range tokens {
		keys = append(keys, c.key(t))
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *SessionCache) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:" + hex.EncodeToString(sum[:])
}
