// Package config loads the identicon configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/identicon/config.toml
// (falling back to ~/.config/identicon/config.toml). Every key is optional:
//
//	size = 420
//	filter = "nearest"
//	scaler = "imaging"
//	algorithm = "sha256"
//
//	[cache]
//	backend = "file"
//	ttl = "720h"
//	memory_entries = 1024
//	redis_addr = "localhost:6379"
//	redis_db = 0
//
//	[server]
//	addr = ":8080"
//	max_size = 1024
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/identicon/pkg/cache"
	"github.com/matzehuels/identicon/pkg/digest"
	"github.com/matzehuels/identicon/pkg/pipeline"
	"github.com/matzehuels/identicon/pkg/render"
)

// AppName names the configuration and cache directories.
const AppName = "identicon"

// Cache backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Defaults.
const (
	DefaultServerAddr    = ":8080"
	DefaultServerMaxSize = 1024
	DefaultRedisAddr     = "localhost:6379"
)

// Config is the parsed configuration file.
type Config struct {
	Size      int    `toml:"size"`
	Filter    string `toml:"filter"`
	Scaler    string `toml:"scaler"`
	Algorithm string `toml:"algorithm"`

	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects and tunes the cache backend.
type CacheConfig struct {
	Backend       string   `toml:"backend"`
	TTL           Duration `toml:"ttl"`
	MemoryEntries int      `toml:"memory_entries"`
	RedisAddr     string   `toml:"redis_addr"`
	RedisPassword string   `toml:"redis_password"`
	RedisDB       int      `toml:"redis_db"`
	Dir           string   `toml:"dir"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr    string `toml:"addr"`
	MaxSize int    `toml:"max_size"`
}

// Duration is a time.Duration that decodes from strings like "720h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns a Config with every default applied.
func Default() *Config {
	c := &Config{}
	_ = c.Validate()
	return c
}

// Path returns the default configuration file path.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the default file cache directory (~/.cache/identicon/).
func CacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// Load reads the file at path, or the default path when path is empty.
// A missing file yields the defaults; an explicitly named missing file is an
// error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	c := &Config{}
	md, err := toml.DecodeFile(path, c)
	if os.IsNotExist(err) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate applies defaults and checks enumerated values.
func (c *Config) Validate() error {
	if c.Size == 0 {
		c.Size = pipeline.DefaultSize
	}
	if c.Size < 0 || c.Size > pipeline.MaxSize {
		return fmt.Errorf("size must be between 1 and %d (got %d)", pipeline.MaxSize, c.Size)
	}

	f, err := render.ParseFilter(c.Filter)
	if err != nil {
		return err
	}
	c.Filter = string(f)

	s, err := render.ParseScaler(c.Scaler)
	if err != nil {
		return err
	}
	c.Scaler = string(s)

	a, err := digest.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return err
	}
	c.Algorithm = string(a)

	if err := c.Cache.validate(); err != nil {
		return err
	}
	return c.Server.validate()
}

func (c *CacheConfig) validate() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case "":
		c.Backend = BackendFile
	case BackendFile, BackendMemory, BackendRedis, BackendNone:
	default:
		return fmt.Errorf("unknown cache backend %q (want file, memory, redis or none)", c.Backend)
	}

	if c.TTL.Duration == 0 {
		c.TTL.Duration = cache.TTLAvatar
	}
	if c.TTL.Duration < 0 {
		return fmt.Errorf("cache ttl must be positive (got %s)", c.TTL)
	}
	if c.MemoryEntries <= 0 {
		c.MemoryEntries = cache.DefaultMemoryEntries
	}
	if c.RedisAddr == "" {
		c.RedisAddr = DefaultRedisAddr
	}
	return nil
}

func (s *ServerConfig) validate() error {
	if s.Addr == "" {
		s.Addr = DefaultServerAddr
	}
	if s.MaxSize == 0 {
		s.MaxSize = DefaultServerMaxSize
	}
	if s.MaxSize < 0 || s.MaxSize > pipeline.MaxSize {
		return fmt.Errorf("server max_size must be between 1 and %d (got %d)", pipeline.MaxSize, s.MaxSize)
	}
	return nil
}
