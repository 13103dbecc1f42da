package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores entries in Redis. It accepts any redis.UniversalClient,
// so a single node, a sentinel group or a cluster all work.
type RedisCache struct {
	client redis.UniversalClient
}

// RedisOptions configures NewRedisCacheFromAddr.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisCache wraps client and verifies the connection with PING.
func NewRedisCache(ctx context.Context, client redis.UniversalClient) (*RedisCache, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisCache{client: client}, nil
}

// NewRedisCacheFromAddr dials a Redis server and returns a cache backed by it.
func NewRedisCacheFromAddr(ctx context.Context, opts RedisOptions) (*RedisCache, error) {
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    []string{opts.Addr},
		Password: opts.Password,
		DB:       opts.DB,
	})
	c, err := NewRedisCache(ctx, client)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return c, nil
}

// Get retrieves a value from Redis. Transient failures are retried.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	var hit bool
	err := RetryWithBackoff(ctx, func() error {
		b, err := c.client.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			return nil
		case err != nil:
			return retryableRedisError(err)
		}
		data, hit = b, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return data, hit, nil
}

// Set stores a value. ttl <= 0 stores without expiry.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return RetryWithBackoff(ctx, func() error {
		return retryableRedisError(c.client.Set(ctx, key, data, ttl).Err())
	})
}

// Delete removes a value from Redis.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close closes the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// retryableRedisError marks errors other than context cancellation and
// closed-client as retryable.
func retryableRedisError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, redis.ErrClosed) {
		return err
	}
	return Retryable(err)
}

var _ Cache = (*RedisCache)(nil)
