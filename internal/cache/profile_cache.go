package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ProfileCache caches the identity -> user key mapping
type ProfileCache interface {
	// GetUserKey returns found=false on a miss
	GetUserKey(ctx context.Context, authUserID string) (userKey int64, found bool, err error)
	SetUserKey(ctx context.Context, authUserID string, userKey int64) error
	Delete(ctx context.Context, authUserID string) error
}

type profileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProfileCache creates a new profile cache
func NewProfileCache(client *redis.Client, ttl time.Duration) ProfileCache {
	return &profileCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *profileCache) key(authUserID string) string {
	return fmt.Sprintf("profile:%s:user_key", authUserID)
}

func (c *profileCache) GetUserKey(ctx context.Context, authUserID string) (int64, bool, error) {
	data, err := c.client.Get(ctx, c.key(authUserID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	userKey, err := strconv.ParseInt(data, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt cached user key for %s: %w", authUserID, err)
	}
	return userKey, true, nil
}

func (c *profileCache) SetUserKey(ctx context.Context, authUserID string, userKey int64) error {
	return c.client.Set(ctx, c.key(authUserID), strconv.FormatInt(userKey, 10), c.ttl).Err()
}

func (c *profileCache) Delete(ctx context.Context, authUserID string) error {
	return c.client.Del(ctx, c.key(authUserID)).Err()
}
