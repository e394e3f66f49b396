package mock

import "github.com/clemfromspace/extraction"

var _ extraction.TechniqueRegistry = (*Registry)(nil)

// Registry is a mock implementation of extraction.TechniqueRegistry.
type Registry struct {
	RegisterFn func(name string, constructor extraction.TechniqueConstructor)
	GetFn      func(name string) (extraction.Technique, error)
	ListFn     func() []string
}

func (r *Registry) Register(name string, constructor extraction.TechniqueConstructor) {
	r.RegisterFn(name, constructor)
}

func (r *Registry) Get(name string) (extraction.Technique, error) {
	return r.GetFn(name)
}

func (r *Registry) List() []string {
	return r.ListFn()
}
