package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/arthur-debert/mapcat/pkg/errors"
)

// Registry is a generic, thread-safe registry for storing and retrieving items by key
type Registry[K cmp.Ordered, T any] interface {
	// Register adds an item to the registry
	Register(key K, item T) error

	// Replace adds or overwrites an item
	Replace(key K, item T)

	// Get retrieves an item from the registry
	Get(key K) (T, error)

	// Lookup retrieves an item, reporting whether it was present
	Lookup(key K) (T, bool)

	// Keys returns all registered keys in ascending order
	Keys() []K

	// Has checks if an item is registered
	Has(key K) bool

	// Count returns the number of registered items
	Count() int
}

// registry is the internal implementation of Registry
type registry[K cmp.Ordered, T any] struct {
	mu    sync.RWMutex
	items map[K]T
}

// New creates a new Registry instance
func New[K cmp.Ordered, T any]() Registry[K, T] {
	return &registry[K, T]{
		items: make(map[K]T),
	}
}

// Register adds an item to the registry
func (r *registry[K, T]) Register(key K, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%v' is already registered", key)
	}

	r.items[key] = item
	return nil
}

// Replace adds or overwrites an item
func (r *registry[K, T]) Replace(key K, item T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[key] = item
}

// Get retrieves an item from the registry
func (r *registry[K, T]) Get(key K) (T, error) {
	item, exists := r.Lookup(key)
	if !exists {
		return item, errors.Newf(errors.ErrNotFound, "item '%v' not found in registry", key)
	}
	return item, nil
}

// Lookup retrieves an item, reporting whether it was present
func (r *registry[K, T]) Lookup(key K) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[key]
	return item, exists
}

// Keys returns all registered keys in ascending order
func (r *registry[K, T]) Keys() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]K, 0, len(r.items))
	for key := range r.items {
		keys = append(keys, key)
	}

	slices.Sort(keys)
	return keys
}

// Has checks if an item is registered
func (r *registry[K, T]) Has(key K) bool {
	_, exists := r.Lookup(key)
	return exists
}

// Count returns the number of registered items
func (r *registry[K, T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// MustRegister registers an item and panics if registration fails
// This is useful when building fixed tables where a duplicate is a programming error
func MustRegister[K cmp.Ordered, T any](reg Registry[K, T], key K, item T) {
	if err := reg.Register(key, item); err != nil {
		panic(fmt.Sprintf("failed to register %v: %v", key, err))
	}
}
