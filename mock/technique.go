package mock

import "github.com/pagemeta/pagemeta"

var _ pagemeta.Technique = (*Technique)(nil)

// Technique is a mock implementation of pagemeta.Technique.
type Technique struct {
	NameFn    func() string
	ExtractFn func(markup string) (pagemeta.Candidates, error)
}

func (t *Technique) Name() string {
	return t.NameFn()
}

func (t *Technique) Extract(markup string) (pagemeta.Candidates, error) {
	return t.ExtractFn(markup)
}

var _ pagemeta.Registry = (*Registry)(nil)

// Registry is a mock implementation of pagemeta.Registry.
type Registry struct {
	RegisterFn func(name string, factory pagemeta.Factory)
	ResolveFn  func(name string) (pagemeta.Factory, error)
	NamesFn    func() []string
}

func (r *Registry) Register(name string, factory pagemeta.Factory) {
	r.RegisterFn(name, factory)
}

func (r *Registry) Resolve(name string) (pagemeta.Factory, error) {
	return r.ResolveFn(name)
}

func (r *Registry) Names() []string {
	return r.NamesFn()
}
