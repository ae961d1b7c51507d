// Package hooks implements the named lifecycle hook registry used to extend source attachment.
//
// A registry is an explicit object owned by its creator; there is no process-global
// hook state. Hooks run synchronously, in registration order, each receiving and
// (for value hooks) replacing the working value.
package hooks

import (
	"reflect"
	"slices"
	"sync"
)

// Fixed hook point names.
const (
	// UpdateSource hooks rewrite the source descriptor before attachment.
	UpdateSource = "updatesource"
	// BeforeInitialize hooks inspect or configure the engine before its source is attached.
	BeforeInitialize = "beforeinitialize"
)

// Hook is one extension function. It receives the working value and returns its
// replacement; hooks that only observe return the value unchanged.
type Hook func(v interface{}) interface{}

// Registry is a named lifecycle hook registry.
type Registry struct {
	mu    sync.Mutex
	hooks map[string][]Hook
}

// New creates an empty hook registry.
func New() *Registry {
	return &Registry{hooks: make(map[string][]Hook)}
}

// Register appends a hook to the named extension point.
func (r *Registry) Register(name string, fn Hook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks[name] = append(r.hooks[name], fn)
}

// Remove detaches a previously registered hook by function identity.
// Unknown functions are ignored.
func (r *Registry) Remove(name string, fn Hook) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ptr := reflect.ValueOf(fn).Pointer()
	r.hooks[name] = slices.DeleteFunc(r.hooks[name], func(h Hook) bool {
		return reflect.ValueOf(h).Pointer() == ptr
	})
}

// Len returns the number of hooks registered for the named extension point.
func (r *Registry) Len(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.hooks[name])
}

// Run folds the working value through every hook registered for the named
// extension point, in registration order, and returns the final value.
// A nil registry runs nothing and returns the value unchanged.
func (r *Registry) Run(name string, v interface{}) interface{} {
	if r == nil {
		return v
	}

	r.mu.Lock()
	snapshot := slices.Clone(r.hooks[name])
	r.mu.Unlock()

	for _, h := range snapshot {
		v = h(v)
	}
	return v
}
