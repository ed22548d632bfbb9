package utils

import (
	"context"
	"log"
	"time"

	"koshub/config"

	"github.com/go-redis/redis/v8"
)

var sessionClient *redis.Client

// InitRedis initializes the Redis client backing the session store and the
// unread-count cache.
func InitRedis() {
	sessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := sessionClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
}

// GetRedisClient returns the session Redis client.
func GetRedisClient() *redis.Client {
	if sessionClient == nil {
		InitRedis()
	}
	return sessionClient
}
