package cache

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMemoryEntries bounds a MemoryCache created with size <= 0.
const DefaultMemoryEntries = 1024

type memoryItem struct {
	data      []byte
	expiresAt time.Time
}

func (i memoryItem) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && now.After(i.expiresAt)
}

// MemoryCache is a bounded in-process LRU cache. Least recently used entries
// are evicted once the size limit is reached; expired entries are dropped on
// read.
type MemoryCache struct {
	mu     sync.Mutex
	lru    *lru.Cache[string, memoryItem]
	closed bool
	now    func() time.Time
}

// NewMemoryCache creates a cache holding at most size entries.
func NewMemoryCache(size int) (*MemoryCache, error) {
	if size <= 0 {
		size = DefaultMemoryEntries
	}
	l, err := lru.New[string, memoryItem](size)
	if err != nil {
		return nil, err
	}
	return &MemoryCache{lru: l, now: time.Now}, nil
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, false, ErrClosed
	}

	item, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if item.expired(c.now()) {
		c.lru.Remove(key)
		return nil, false, nil
	}
	return item.data, true, nil
}

// Set stores a copy of data.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	item := memoryItem{data: append([]byte(nil), data...)}
	if ttl > 0 {
		item.expiresAt = c.now().Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.lru.Add(key, item)
	return nil
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(key)
	return nil
}

// Len returns the number of entries, including expired ones not yet read.
func (c *MemoryCache) Len() int {
	return c.lru.Len()
}

// Purge removes every entry.
func (c *MemoryCache) Purge() {
	c.lru.Purge()
}

// Close purges the cache; later calls fail with ErrClosed.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.lru.Purge()
	return nil
}

var _ Cache = (*MemoryCache)(nil)
