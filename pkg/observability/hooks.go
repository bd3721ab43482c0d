// Package observability provides hooks for instrumenting pubplot.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about destination scopes and rc store mutations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, plain logging, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetScopeHooks(&myScopeHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Scope().OnEnter(ctx, "figma", 3.125)
//	// ... run plotting code ...
//	observability.Scope().OnExit(ctx, "figma")
package observability

import (
	"context"
	"sync"
)

// =============================================================================
// Scope Hooks
// =============================================================================

// ScopeHooks receives events when destination scopes are entered and exited.
type ScopeHooks interface {
	// OnEnter records a destination scope becoming active.
	OnEnter(ctx context.Context, destination string, factor float64)

	// OnExit records a destination scope being unwound.
	OnExit(ctx context.Context, destination string)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from rc store mutations. The store has no
// context of its own, so these hooks carry none.
type StoreHooks interface {
	// OnSet records a single key being set.
	OnSet(key string)

	// OnPush records a scoped override of n keys being applied.
	OnPush(keys int)

	// OnRestore records a scoped override of n keys being unwound.
	OnRestore(keys int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopScopeHooks is a ScopeHooks implementation that does nothing.
type NoopScopeHooks struct{}

func (NoopScopeHooks) OnEnter(ctx context.Context, destination string, factor float64) {}
func (NoopScopeHooks) OnExit(ctx context.Context, destination string)                  {}

// NoopStoreHooks is a StoreHooks implementation that does nothing.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnSet(key string)   {}
func (NoopStoreHooks) OnPush(keys int)    {}
func (NoopStoreHooks) OnRestore(keys int) {}

// =============================================================================
// Global Registry
// =============================================================================

var (
	mu         sync.RWMutex
	scopeHooks ScopeHooks = NoopScopeHooks{}
	storeHooks StoreHooks = NoopStoreHooks{}
)

// SetScopeHooks registers scope hooks. Pass nil to restore the no-op default.
func SetScopeHooks(h ScopeHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		scopeHooks = NoopScopeHooks{}
		return
	}
	scopeHooks = h
}

// SetStoreHooks registers store hooks. Pass nil to restore the no-op default.
func SetStoreHooks(h StoreHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		storeHooks = NoopStoreHooks{}
		return
	}
	storeHooks = h
}

// Scope returns the currently registered scope hooks.
func Scope() ScopeHooks {
	mu.RLock()
	defer mu.RUnlock()
	return scopeHooks
}

// Store returns the currently registered store hooks.
func Store() StoreHooks {
	mu.RLock()
	defer mu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	scopeHooks = NoopScopeHooks{}
	storeHooks = NoopStoreHooks{}
}
