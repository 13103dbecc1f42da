package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryCache(4)
	require.NoError(t, err)

	src := []byte("value")
	require.NoError(t, c.Set(ctx, "key", src, time.Hour))
	src[0] = 'X'

	data, hit, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("value"), data, "Set stores a copy")

	require.NoError(t, c.Delete(ctx, "key"))
	_, hit, _ = c.Get(ctx, "key")
	assert.False(t, hit)
}

func TestMemoryCacheEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryCache(2)
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "a", []byte("a"), 0))
	require.NoError(t, c.Set(ctx, "b", []byte("b"), 0))
	_, _, _ = c.Get(ctx, "a")
	require.NoError(t, c.Set(ctx, "c", []byte("c"), 0))

	_, hit, _ := c.Get(ctx, "b")
	assert.False(t, hit, "b was least recently used")
	_, hit, _ = c.Get(ctx, "a")
	assert.True(t, hit)
	assert.Equal(t, 2, c.Len())
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryCache(0)
	require.NoError(t, err)

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "key", []byte("v"), time.Minute))
	_, hit, _ := c.Get(ctx, "key")
	assert.True(t, hit)

	now = now.Add(2 * time.Minute)
	_, hit, _ = c.Get(ctx, "key")
	assert.False(t, hit)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCacheClose(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryCache(8)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, "key", []byte("v"), 0))

	require.NoError(t, c.Close())
	_, _, err = c.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, c.Set(ctx, "key", []byte("v"), 0), ErrClosed)
}

func TestMemoryCacheConcurrent(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryCache(64)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%4)
			_ = c.Set(ctx, key, []byte(key), time.Minute)
			_, _, _ = c.Get(ctx, key)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 4, c.Len())
}
