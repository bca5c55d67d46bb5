package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the query cache in front of the primary API. Values are
// stored as JSON under the keys built by redis_utils.
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a client from a redis:// URL or a host:port address
func NewRedisClient(addr string) (*RedisClient, error) {
	opt, err := redis.ParseURL(addr)
	if err != nil {
		// Plain "host:port" addresses are accepted for local development
		opt = &redis.Options{Addr: addr}
	}
	return &RedisClient{client: redis.NewClient(opt)}, nil
}

// GetJSON loads key into dst. The boolean is false on a cache miss.
func (rc *RedisClient) GetJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := rc.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("error getting cached value %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("error unmarshaling cached value %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores value under key with the given TTL
func (rc *RedisClient) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshaling cached value %s: %w", key, err)
	}
	if err := rc.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("error caching value %s: %w", key, err)
	}
	return nil
}

// Invalidate removes the given keys in one pipeline
func (rc *RedisClient) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	pipe := rc.client.Pipeline()
	for _, key := range keys {
		pipe.Del(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error invalidating cache keys %v: %w", keys, err)
	}
	return nil
}
