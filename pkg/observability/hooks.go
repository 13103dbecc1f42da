// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries never import a metrics backend. Instead they report events through
// hook interfaces whose default implementations do nothing; an application
// registers real implementations at startup.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGenerateHooks(&myGenerateHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Generate().OnGenerateStart(ctx, digest, size)
//	// ... render ...
//	observability.Generate().OnGenerateComplete(ctx, digest, size, len(png), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// GenerateHooks receives events from identicon generation.
type GenerateHooks interface {
	OnGenerateStart(ctx context.Context, digest string, size int)
	OnGenerateComplete(ctx context.Context, digest string, size, bytes int, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// ServerHooks receives events from the HTTP avatar server.
type ServerHooks interface {
	// OnRequest records an incoming request before routing.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed response; route is the matched pattern.
	OnResponse(ctx context.Context, method, route string, status int, duration time.Duration)
}

// NoopGenerateHooks is a no-op implementation of GenerateHooks.
type NoopGenerateHooks struct{}

func (NoopGenerateHooks) OnGenerateStart(context.Context, string, int) {}
func (NoopGenerateHooks) OnGenerateComplete(context.Context, string, int, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                      {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

var (
	generateHooks GenerateHooks = NoopGenerateHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	serverHooks   ServerHooks   = NoopServerHooks{}
	hooksMu       sync.RWMutex
)

// SetGenerateHooks registers custom generation hooks. Nil is ignored.
func SetGenerateHooks(h GenerateHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generateHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetServerHooks registers custom server hooks. Nil is ignored.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Generate returns the registered generation hooks.
func Generate() GenerateHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generateHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Server returns the registered server hooks.
func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generateHooks = NoopGenerateHooks{}
	cacheHooks = NoopCacheHooks{}
	serverHooks = NoopServerHooks{}
}
