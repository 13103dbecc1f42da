package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/identicon/pkg/cache"
	"github.com/matzehuels/identicon/pkg/digest"
	"github.com/matzehuels/identicon/pkg/identicon"
	"github.com/matzehuels/identicon/pkg/observability"
)

const keyTypeAvatar = "avatar"

// Runner executes the pipeline with caching.
//
// The Runner holds no per-request state, so multiple goroutines can share
// one Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the lifetime of cache entries written by the runner.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLAvatar,
	}
}

// Execute renders one identicon, serving it from the cache when possible.
// Cache failures are logged and otherwise ignored.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d, err := digest.FromIdentifier(opts.Identifier, digest.WithAlgorithm(digest.Algorithm(opts.Algorithm)))
	if err != nil {
		return nil, err
	}
	result := &Result{Identifier: opts.Identifier, Digest: d}
	key := r.Keyer.AvatarKey(d.String(), opts.AvatarKeyOpts())

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			r.Logger.Warn("cache read failed", "digest", d, "error", err)
		case hit:
			observability.Cache().OnCacheHit(ctx, keyTypeAvatar)
			result.PNG = data
			result.Stats.Bytes = len(data)
			result.CacheHit = true
			r.Logger.Debug("cache hit", "digest", d, "size", opts.Size)
			return result, nil
		default:
			observability.Cache().OnCacheMiss(ctx, keyTypeAvatar)
		}
	}

	data, elapsed, err := r.generate(ctx, d, opts)
	if err != nil {
		return nil, err
	}
	result.PNG = data
	result.Stats = Stats{GenerateTime: elapsed, Bytes: len(data)}

	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "digest", d, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, keyTypeAvatar, len(data))
	}

	return result, nil
}

func (r *Runner) generate(ctx context.Context, d digest.Digest, opts Options) ([]byte, time.Duration, error) {
	hooks := observability.Generate()
	hooks.OnGenerateStart(ctx, d.String(), opts.Size)

	start := time.Now()
	icon, err := identicon.FromDigest(d)
	var data []byte
	if err == nil {
		data, err = opts.Generator().Render(icon, opts.Size)
	}
	elapsed := time.Since(start)

	hooks.OnGenerateComplete(ctx, d.String(), opts.Size, len(data), elapsed, err)
	if err != nil {
		return nil, elapsed, fmt.Errorf("generate %s: %w", d, err)
	}
	return data, elapsed, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
