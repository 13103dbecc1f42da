package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/identicon/pkg/cache"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 420, c.Size)
	assert.Equal(t, "nearest", c.Filter)
	assert.Equal(t, "imaging", c.Scaler)
	assert.Equal(t, "sha256", c.Algorithm)
	assert.Equal(t, BackendFile, c.Cache.Backend)
	assert.Equal(t, cache.TTLAvatar, c.Cache.TTL.Duration)
	assert.Equal(t, cache.DefaultMemoryEntries, c.Cache.MemoryEntries)
	assert.Equal(t, DefaultRedisAddr, c.Cache.RedisAddr)
	assert.Equal(t, DefaultServerAddr, c.Server.Addr)
	assert.Equal(t, DefaultServerMaxSize, c.Server.MaxSize)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
size = 128
filter = "Lanczos"
algorithm = "blake3"

[cache]
backend = "memory"
ttl = "2h"
memory_entries = 32

[server]
addr = "127.0.0.1:9000"
max_size = 512
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 128, c.Size)
	assert.Equal(t, "lanczos", c.Filter)
	assert.Equal(t, "imaging", c.Scaler)
	assert.Equal(t, "blake3", c.Algorithm)
	assert.Equal(t, BackendMemory, c.Cache.Backend)
	assert.Equal(t, 2*time.Hour, c.Cache.TTL.Duration)
	assert.Equal(t, 32, c.Cache.MemoryEntries)
	assert.Equal(t, "127.0.0.1:9000", c.Server.Addr)
	assert.Equal(t, 512, c.Server.MaxSize)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, AppName), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, AppName, "config.toml"), []byte("size = 64\n"), 0o644))

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 64, c.Size)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "size = "},
		{"unknown key", "colour = \"red\"\n"},
		{"bad filter", "filter = \"bicubic\"\n"},
		{"bad scaler", "scaler = \"gpu\"\n"},
		{"bad algorithm", "algorithm = \"md5\"\n"},
		{"bad size", "size = -4\n"},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n"},
		{"bad ttl", "[cache]\nttl = \"forever\"\n"},
		{"bad max size", "[server]\nmax_size = 100000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_CACHE_HOME", "/tmp/cache")

	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/cfg", AppName, "config.toml"), p)

	d, err := CacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/cache", AppName), d)
}

func TestOpenCache(t *testing.T) {
	ctx := context.Background()

	c := Default()
	c.Cache.Backend = BackendNone
	got, err := c.OpenCache(ctx)
	require.NoError(t, err)
	assert.IsType(t, cache.NullCache{}, got)

	c.Cache.Backend = BackendMemory
	got, err = c.OpenCache(ctx)
	require.NoError(t, err)
	assert.IsType(t, &cache.MemoryCache{}, got)

	c.Cache.Backend = BackendFile
	c.Cache.Dir = t.TempDir()
	got, err = c.OpenCache(ctx)
	require.NoError(t, err)
	assert.IsType(t, &cache.FileCache{}, got)
}
