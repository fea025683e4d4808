package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mayurihegde/evently-backend/config"
)

var RedisClient *redis.Client

// InitRedis connects the shared Redis client used for reference-data caching.
func InitRedis(cfg *config.Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     50,
		MinIdleConns: 5,
		MaxRetries:   3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := RedisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connect failed: %w", err)
	}

	log.Println("Connected to Redis")
	return nil
}

// CacheGetJSON loads key into dest. Returns false on a miss; cache errors
// are treated as misses so a Redis outage never breaks a read path.
func CacheGetJSON(ctx context.Context, key string, dest interface{}) bool {
	if RedisClient == nil {
		return false
	}
	raw, err := RedisClient.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

// CacheSetJSON stores value under key with a TTL. Best-effort.
func CacheSetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if RedisClient == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := RedisClient.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("cache set %s failed: %v", key, err)
	}
}

// CacheInvalidate drops the given keys. Best-effort.
func CacheInvalidate(ctx context.Context, keys ...string) {
	if RedisClient == nil || len(keys) == 0 {
		return
	}
	if err := RedisClient.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache invalidate failed: %v", err)
	}
}
