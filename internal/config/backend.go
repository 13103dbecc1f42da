package config

import (
	"context"

	"github.com/matzehuels/identicon/pkg/cache"
)

// OpenCache constructs the configured cache backend. The file backend uses
// Cache.Dir, or CacheDir when that is empty.
func (c *Config) OpenCache(ctx context.Context) (cache.Cache, error) {
	switch c.Cache.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendMemory:
		return cache.NewMemoryCache(c.Cache.MemoryEntries)
	case BackendRedis:
		return cache.NewRedisCacheFromAddr(ctx, cache.RedisOptions{
			Addr:     c.Cache.RedisAddr,
			Password: c.Cache.RedisPassword,
			DB:       c.Cache.RedisDB,
		})
	}

	dir := c.Cache.Dir
	if dir == "" {
		d, err := CacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	return cache.NewFileCache(dir)
}
