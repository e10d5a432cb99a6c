package pipeline

import (
	"sort"

	"github.com/pagemeta/pagemeta"
)

var _ pagemeta.Registry = (*Registry)(nil)

// Registry is an in-memory technique registry. It maps identifiers to
// factories and is meant to be populated at startup, before any extraction
// runs; it does no locking of its own.
type Registry struct {
	factories map[string]pagemeta.Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]pagemeta.Factory)}
}

// Register adds a factory under the given identifier.
// If a factory is already registered under the identifier, it is replaced.
func (r *Registry) Register(name string, factory pagemeta.Factory) {
	r.factories[name] = factory
}

// Resolve returns the factory registered under name.
// Returns ENOTFOUND if no factory is registered.
func (r *Registry) Resolve(name string) (pagemeta.Factory, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, pagemeta.Errorf(pagemeta.ENOTFOUND, "technique %q not registered", name)
	}
	return factory, nil
}

// Names returns all registered identifiers in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
