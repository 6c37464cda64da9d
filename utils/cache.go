// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"storefront/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the Redis client used for catalog read caching.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// CloseCache releases the Redis connection on shutdown.
func CloseCache() {
	if CacheClient != nil {
		if err := CacheClient.Close(); err != nil {
			log.Printf("Failed to close Redis cache client: %v", err)
		}
	}
}
