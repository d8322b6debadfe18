// Package observability provides hooks for metrics and tracing.
//
// The engine and the API server emit events through hook interfaces with
// no-op defaults, so instrumentation is optional and backend-agnostic.
// Register implementations once at startup:
//
//	func main() {
//	    observability.SetConversionHooks(&promConversionHooks{})
//	    // ... run application
//	}
//
// Call sites emit events without knowing the backend:
//
//	observability.Conversions().OnConvert(ctx, "J", "eV", elapsed, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// ConversionHooks receives events from quantity conversions.
type ConversionHooks interface {
	// OnConvert records a conversion attempt. target is empty for a
	// plain parse/normalize without a conversion.
	OnConvert(ctx context.Context, source, target string, duration time.Duration, err error)

	// OnPretty records a formatting request.
	OnPretty(ctx context.Context, dimensions string, duration time.Duration)
}

// RegistryHooks receives events from registry mutations.
type RegistryHooks interface {
	// OnRegister records a registration. kind is "prefix", "unit", or
	// "conversion".
	OnRegister(ctx context.Context, kind, symbol string, err error)
}

// NoopConversionHooks is a no-op implementation of ConversionHooks.
type NoopConversionHooks struct{}

func (NoopConversionHooks) OnConvert(context.Context, string, string, time.Duration, error) {}
func (NoopConversionHooks) OnPretty(context.Context, string, time.Duration)                 {}

// NoopRegistryHooks is a no-op implementation of RegistryHooks.
type NoopRegistryHooks struct{}

func (NoopRegistryHooks) OnRegister(context.Context, string, string, error) {}

var (
	conversionHooks ConversionHooks = NoopConversionHooks{}
	registryHooks   RegistryHooks   = NoopRegistryHooks{}
	hooksMu         sync.RWMutex
)

// SetConversionHooks registers custom conversion hooks.
// This should be called once at application startup.
func SetConversionHooks(h ConversionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		conversionHooks = h
	}
}

// SetRegistryHooks registers custom registry hooks.
// This should be called once at application startup.
func SetRegistryHooks(h RegistryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		registryHooks = h
	}
}

// Conversions returns the registered conversion hooks.
func Conversions() ConversionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return conversionHooks
}

// Registry returns the registered registry hooks.
func Registry() RegistryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return registryHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	conversionHooks = NoopConversionHooks{}
	registryHooks = NoopRegistryHooks{}
}
