package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "avatars")
	c, err := NewFileCache(dir)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, dir, c.Dir())

	_, hit, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, "key", []byte("png-bytes"), time.Hour))
	data, hit, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("png-bytes"), data)

	require.NoError(t, c.Delete(ctx, "key"))
	_, hit, _ = c.Get(ctx, "key")
	assert.False(t, hit)

	assert.NoError(t, c.Delete(ctx, "key"), "deleting a missing key is not an error")
}

func TestFileCacheNoExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "key", []byte("v"), 0))
	_, hit, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestFileCacheExpired(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "key", []byte("v"), time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	_, hit, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoFileExists(t, c.path("key"), "expired entries are removed")
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	path := c.path("key")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, hit, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoFileExists(t, path)
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, c.Set(ctx, k, []byte(k), time.Hour))
	}

	n, err := c.Clear()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, hit, _ := c.Get(ctx, "a")
	assert.False(t, hit)
	assert.DirExists(t, c.Dir())
}
