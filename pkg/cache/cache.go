// Package cache provides a Redis-backed JSON cache.
//
// All operations no-op safely when Redis is unreachable, so the API keeps
// serving from MongoDB without a cache tier.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hyrahs/shopstore-api/config"
)

var (
	rdb *redis.Client
	ctx = context.Background()
)

// Connect initialises the Redis client and verifies the connection with a
// ping. On failure the client is discarded and every cache call degrades to
// a miss.
func Connect() error {
	rdb = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb = nil
		return fmt.Errorf("cache: redis ping: %w", err)
	}
	return nil
}

// Get retrieves a cached value by key and unmarshals into dest.
// Returns true on a cache hit, false on miss or error.
func Get(key string, dest interface{}) bool {
	if rdb == nil {
		return false
	}

	val, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}

	return json.Unmarshal([]byte(val), dest) == nil
}

// Set stores value in Redis under key for the given TTL.
func Set(key string, value interface{}, ttl time.Duration) error {
	if rdb == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return rdb.Set(ctx, key, data, ttl).Err()
}

// Del removes a key. Used to invalidate listings after catalogue writes.
func Del(keys ...string) {
	if rdb == nil {
		return
	}
	rdb.Del(ctx, keys...)
}

// Close releases the client connection pool.
func Close() error {
	if rdb == nil {
		return nil
	}
	return rdb.Close()
}
