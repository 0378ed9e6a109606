// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"fleetly/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the shared redis client used by the availability read cache.
var CacheClient *redis.Client

// InitCache initializes the redis cache client from AppConfig and verifies
// connectivity with a short ping.
func InitCache() error {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to redis cache: %w", err)
	}
	return nil
}

// GetCacheClient returns the shared cache client, initializing it on first use.
func GetCacheClient() (*redis.Client, error) {
	if CacheClient == nil {
		if err := InitCache(); err != nil {
			return nil, err
		}
	}
	return CacheClient, nil
}
