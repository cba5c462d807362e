// SPDX-License-Identifier: MIT
package starttree

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a fresh Builder.
type Factory func() Builder

type entry struct {
	description string
	factory     Factory
}

// Registry maps algorithm names to factories. Lookups take a read lock, so a
// registry populated at start-up can be shared by concurrent callers.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a factory under name. Names are case-sensitive.
//
// Errors: ErrEmptyName, ErrNilFactory, ErrDuplicateName.
func (r *Registry) Register(name, description string, f Factory) error {
	if name == "" {
		return ErrEmptyName
	}
	if f == nil {
		return fmt.Errorf("%s: %w", name, ErrNilFactory)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("%s: %w", name, ErrDuplicateName)
	}
	r.entries[name] = entry{description: description, factory: f}

	return nil
}

// MustRegister is Register that panics on error; for init-time registration.
func (r *Registry) MustRegister(name, description string, f Factory) {
	if err := r.Register(name, description, f); err != nil {
		panic(err)
	}
}

// New returns a fresh builder for name, or false when name is unknown.
// An unknown name leaves the registry untouched.
func (r *Registry) New(name string) (Builder, bool) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}

	return e.factory(), true
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[name]

	return ok
}

// Description returns the one-line description registered with name.
func (r *Registry) Description(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]

	return e.description, ok
}

// Names returns the registered names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)

	return names
}

// Len returns the number of registered algorithms.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Default is the process-wide registry, populated once at start-up.
var Default = NewRegistry()

func init() {
	Default.MustRegister(NJName, "Neighbour joining (Saitou & Nei 1987), unrooted", NewNJ)
	Default.MustRegister(UPGMAName, "UPGMA average-linkage clustering, rooted", NewUPGMA)
}
