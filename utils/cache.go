// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"deltaclinic/config"

	"github.com/go-redis/redis/v8"
)

// RoleCacheClient is the Redis client backing the role cache. It stays nil
// when the cache is disabled.
var RoleCacheClient *redis.Client

// InitRoleCache connects the role cache client when ROLE_CACHE_ENABLED is set.
func InitRoleCache(ctx context.Context) error {
	if !config.AppConfig.RoleCacheEnabled {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRoleDB,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis (role cache): %w", err)
	}
	RoleCacheClient = client
	return nil
}

// CloseRoleCache releases the role cache client.
func CloseRoleCache() error {
	if RoleCacheClient == nil {
		return nil
	}
	err := RoleCacheClient.Close()
	RoleCacheClient = nil
	return err
}
