package utils

import (
	"context"
	"log"
	"time"

	"careconnect/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// ReminderCacheClient backs the reminder sent-markers.
	ReminderCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitReminderCache initializes the Redis client holding reminder sent-markers.
func InitReminderCache() {
	ReminderCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ReminderCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Reminders): %v", err)
	}
}

// GetReminderCacheClient returns the reminder marker client.
func GetReminderCacheClient() *redis.Client {
	if ReminderCacheClient == nil {
		InitReminderCache()
	}
	return ReminderCacheClient
}

// InitRedis initializes every Redis client the service uses.
func InitRedis() {
	InitCache()
	InitReminderCache()
}
