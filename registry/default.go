package registry

import "sync"

// Process-wide default registry. Applications that need isolation (tests,
// multi-tenant hosts) should construct their own Registry with New; the
// default exists for ergonomic parity with single-registry deployments.
var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

// Default returns the process-wide default registry, creating it on
// first use
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRegistry == nil {
		defaultRegistry = New()
	}
	return defaultRegistry
}

// ResetDefault clears the default registry's packs and subscriptions.
// Deterministic teardown is part of the contract, not a test-only hack.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRegistry != nil {
		defaultRegistry.Reset()
	}
}
