// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"glowbook/config"

	"github.com/go-redis/redis/v8"
)

// NewAuthCacheClient creates the Redis client used for caching verified
// identity tokens. The caller owns the handle; there is no package global.
func NewAuthCacheClient() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
	return client
}
