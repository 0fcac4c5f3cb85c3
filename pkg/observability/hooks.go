// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about benchmark runs, cache operations, and API requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so the bench and server
// packages stay free of any particular metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBenchHooks(&myBenchHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Bench().OnRunStart(ctx, "fastmap", 10)
//	// ... run ...
//	observability.Bench().OnRunComplete(ctx, "fastmap", 10, count, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Bench Hooks
// =============================================================================

// BenchHooks receives events from the benchmark harness.
type BenchHooks interface {
	// OnRunStart fires before an algorithm run over size n begins.
	OnRunStart(ctx context.Context, algorithm string, n int)

	// OnRunComplete fires after a run, with the number of permutations processed.
	OnRunComplete(ctx context.Context, algorithm string, n int, count int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Server Hooks
// =============================================================================

// ServerHooks receives events from the HTTP API.
type ServerHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, route string)

	// OnResponse records the response status and latency of a request.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopBenchHooks is a no-op implementation of BenchHooks.
type NoopBenchHooks struct{}

func (NoopBenchHooks) OnRunStart(context.Context, string, int) {}
func (NoopBenchHooks) OnRunComplete(context.Context, string, int, int, time.Duration, error) {
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

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	benchHooks  BenchHooks  = NoopBenchHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	serverHooks ServerHooks = NoopServerHooks{}
	hooksMu     sync.RWMutex
)

// SetBenchHooks registers custom benchmark hooks.
// This should be called once at application startup before any runs.
func SetBenchHooks(h BenchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		benchHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetServerHooks registers custom server hooks.
// This should be called once at application startup before serving.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Bench returns the registered benchmark hooks.
func Bench() BenchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return benchHooks
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
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	benchHooks = NoopBenchHooks{}
	cacheHooks = NoopCacheHooks{}
	serverHooks = NoopServerHooks{}
}
