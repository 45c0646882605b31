package fontctx

import (
	"fmt"
	"slices"
	"sync"
)

// EngineFactory creates a new engine instance.
type EngineFactory func() (Engine, error)

// registry holds registered engines.
var (
	registryMu sync.RWMutex
	engines    = make(map[string]EngineFactory)
	// Priority order for engine selection (first available wins).
	enginePriority = []string{"ximage", "gotext"}
)

// RegisterEngine registers an engine factory with the given name.
// This is typically called from init() functions in engine packages.
// If an engine with the same name is already registered, it is replaced.
func RegisterEngine(name string, factory EngineFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	engines[name] = factory
}

// UnregisterEngine removes an engine from the registry.
// This is useful for testing.
func UnregisterEngine(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(engines, name)
}

// Engines returns the sorted names of registered engines.
func Engines() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewEngine creates an engine by name.
// Returns ErrEngineNotAvailable if no engine is registered under name.
func NewEngine(name string) (Engine, error) {
	registryMu.RLock()
	factory, ok := engines[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEngineNotAvailable, name)
	}
	return factory()
}

// DefaultEngine creates the best available engine based on priority.
// Engines outside the priority list are tried in name order.
func DefaultEngine() (Engine, error) {
	names := Engines()
	for _, name := range enginePriority {
		if slices.Contains(names, name) {
			return NewEngine(name)
		}
	}
	if len(names) == 0 {
		return nil, ErrEngineNotAvailable
	}
	return NewEngine(names[0])
}
