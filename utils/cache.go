// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"roombook/config"

	"github.com/go-redis/redis/v8"
)

// LockClient is the dedicated Redis client for booking serialization locks.
var LockClient *redis.Client

// InitRedis initializes the Redis client used for per-room booking locks.
func InitRedis() {
	LockClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLockDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := LockClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Locks): %v", err)
	}
}

// GetLockClient returns the lock client.
func GetLockClient() *redis.Client {
	if LockClient == nil {
		InitRedis()
	}
	return LockClient
}
