package form

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores form specs by tag so callers can pick a query kind at
// runtime.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]Spec
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		specs: make(map[string]Spec),
	}
}

// Register validates spec and adds it under its Tag. Duplicate tags return an
// error.
func (r *Registry) Register(spec Spec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.specs[spec.Tag]; exists {
		return fmt.Errorf("form: spec %q already registered", spec.Tag)
	}
	r.specs[spec.Tag] = spec
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(spec Spec) {
	if err := r.Register(spec); err != nil {
		panic(err)
	}
}

// Get retrieves a spec by tag.
func (r *Registry) Get(tag string) (Spec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, ok := r.specs[tag]
	if !ok {
		return Spec{}, fmt.Errorf("form: spec %q not found", tag)
	}
	return spec, nil
}

// List returns a sorted list of registered tags.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.specs))
	for tag := range r.specs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Has reports whether a spec is registered under tag.
func (r *Registry) Has(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.specs[tag]
	return ok
}
