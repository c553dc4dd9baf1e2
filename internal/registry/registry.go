// SPDX-License-Identifier: MIT
package registry

import (
	"sort"
	"sync"
)

// Kind is the capability record for one renderable component type.
type Kind struct {
	Name            string
	AcceptsChildren bool
	// Tag is the preferred output element; empty lets the serializer pick
	// its default for the type.
	Tag  string
	Void bool
	// Module names the feature module that provides this kind. Empty for
	// built-ins. Module-provided kinds get the containment wrapper at
	// render time.
	Module string
}

// Registry maps component type names to kinds. Registration is append-only
// and keyed by name, last registration wins; concurrent render passes may
// share one registry safely.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Kind
	ready bool
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{kinds: map[string]Kind{}}
}

// Register adds or replaces a kind by name.
func (r *Registry) Register(k Kind) {
	if k.Name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[k.Name] = k
}

// Lookup resolves a type name to its kind.
func (r *Registry) Lookup(name string) (Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.kinds[name]
	return k, ok
}

// Ready reports whether the built-in kinds were registered.
func (r *Registry) Ready() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ready
}

// Names returns all registered type names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
