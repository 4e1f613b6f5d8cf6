// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about report generation, storage operations, and vision
// model calls.
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
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    observability.SetStorageHooks(&myStorageHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Engine().OnPlanStart(ctx, hasImage)
//	// ... lay out the document ...
//	observability.Engine().OnPlanComplete(ctx, pages, lines, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from the report generation engine.
type EngineHooks interface {
	// Plan events
	OnPlanStart(ctx context.Context, hasImage bool)
	OnPlanComplete(ctx context.Context, pages, lines int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, pages int)
	OnRenderComplete(ctx context.Context, size int, duration time.Duration, err error)
}

// =============================================================================
// Storage Hooks
// =============================================================================

// StorageHooks receives events from report file storage.
type StorageHooks interface {
	// OnSave records a stored file.
	OnSave(ctx context.Context, path string, size int)

	// OnRemove records a deleted file.
	OnRemove(ctx context.Context, path string)
}

// =============================================================================
// Inference Hooks
// =============================================================================

// InferenceHooks receives events from vision model calls.
type InferenceHooks interface {
	// OnRequest records an outgoing model call.
	OnRequest(ctx context.Context, provider, model string, imageSize int)

	// OnResponse records a model response.
	OnResponse(ctx context.Context, provider, model string, textLen int, duration time.Duration)

	// OnError records a failed model call.
	OnError(ctx context.Context, provider, model string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnPlanStart(context.Context, bool)                              {}
func (NoopEngineHooks) OnPlanComplete(context.Context, int, int, time.Duration, error) {}
func (NoopEngineHooks) OnRenderStart(context.Context, int)                             {}
func (NoopEngineHooks) OnRenderComplete(context.Context, int, time.Duration, error)    {}

// NoopStorageHooks is a no-op implementation of StorageHooks.
type NoopStorageHooks struct{}

func (NoopStorageHooks) OnSave(context.Context, string, int) {}
func (NoopStorageHooks) OnRemove(context.Context, string)    {}

// NoopInferenceHooks is a no-op implementation of InferenceHooks.
type NoopInferenceHooks struct{}

func (NoopInferenceHooks) OnRequest(context.Context, string, string, int)                 {}
func (NoopInferenceHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopInferenceHooks) OnError(context.Context, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	engineHooks    EngineHooks    = NoopEngineHooks{}
	storageHooks   StorageHooks   = NoopStorageHooks{}
	inferenceHooks InferenceHooks = NoopInferenceHooks{}
	hooksMu        sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup before any reports are generated.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// SetStorageHooks registers custom storage hooks.
// This should be called once at application startup before any storage operations.
func SetStorageHooks(h StorageHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storageHooks = h
	}
}

// SetInferenceHooks registers custom inference hooks.
// This should be called once at application startup before any model calls.
func SetInferenceHooks(h InferenceHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		inferenceHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Storage returns the registered storage hooks.
func Storage() StorageHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storageHooks
}

// Inference returns the registered inference hooks.
func Inference() InferenceHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return inferenceHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
	storageHooks = NoopStorageHooks{}
	inferenceHooks = NoopInferenceHooks{}
}
