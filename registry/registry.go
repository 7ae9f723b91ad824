// Package registry maps agent type names onto constructors. Unlike a
// process-wide singleton, a Registry is an explicitly constructed object the
// caller owns and passes to a factory, so tests never need to reset shared
// state between runs.
package registry

import (
	"fmt"
	"sync"

	"github.com/hupe1980/agentforge/core"
)

// Registry is a goroutine-safe mapping from agent type name to constructor.
// Type names are unique; Types reports them in registration order.
type Registry struct {
	mu    sync.RWMutex
	types map[string]core.Constructor
	order []string
}

// New constructs an empty Registry.
func New() *Registry {
	return &Registry{types: make(map[string]core.Constructor)}
}

// Register adds a constructor under the given type name. It returns
// core.ErrDuplicateType if the name is already taken and
// core.ErrNilConstructor if ctor is nil (the Constructor signature enforces
// the agent capability contract statically).
func (r *Registry) Register(typeName string, ctor core.Constructor) error {
	if ctor == nil {
		return fmt.Errorf("register %q: %w", typeName, core.ErrNilConstructor)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[typeName]; exists {
		return fmt.Errorf("register %q: %w", typeName, core.ErrDuplicateType)
	}

	r.types[typeName] = ctor
	r.order = append(r.order, typeName)

	return nil
}

// Unregister removes a type name. Removing an absent name is a no-op.
func (r *Registry) Unregister(typeName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[typeName]; !exists {
		return
	}

	delete(r.types, typeName)
	for i, name := range r.order {
		if name == typeName {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Lookup returns the constructor registered under typeName, if any.
func (r *Registry) Lookup(typeName string) (core.Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.types[typeName]
	return ctor, ok
}

// IsRegistered reports whether typeName is present.
func (r *Registry) IsRegistered(typeName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.types[typeName]
	return ok
}

// Types returns a snapshot of registered type names in registration order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// Clear removes all registered types.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = make(map[string]core.Constructor)
	r.order = nil
}
