package access

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// RoleCachePrefix is the key prefix for cached roles.
const RoleCachePrefix = "role:"

// RoleCache stores roles by email.
type RoleCache interface {
	// Get returns the cached role and whether an entry exists.
	Get(ctx context.Context, email string) (string, bool, error)
	Set(ctx context.Context, email, role string) error
	Invalidate(ctx context.Context, email string) error
}

// RedisRoleCache implements RoleCache on Redis.
type RedisRoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRoleCache(client *redis.Client, ttl time.Duration) *RedisRoleCache {
	return &RedisRoleCache{client: client, ttl: ttl}
}

func (c *RedisRoleCache) Get(ctx context.Context, email string) (string, bool, error) {
	role, err := c.client.Get(ctx, RoleCachePrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return role, true, nil
}

func (c *RedisRoleCache) Set(ctx context.Context, email, role string) error {
	return c.client.Set(ctx, RoleCachePrefix+email, role, c.ttl).Err()
}

func (c *RedisRoleCache) Invalidate(ctx context.Context, email string) error {
	return c.client.Del(ctx, RoleCachePrefix+email).Err()
}
