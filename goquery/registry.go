package goquery

import (
	"slices"

	"github.com/clemfromspace/extraction"
)

var _ extraction.TechniqueRegistry = (*Registry)(nil)

// Registry maps technique names to constructor functions. Techniques
// are constructed per extraction call, so one registry can serve any
// number of extractors.
type Registry struct {
	constructors map[string]extraction.TechniqueConstructor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[string]extraction.TechniqueConstructor),
	}
}

// Register adds a constructor under a name.
// If the name is already registered, the constructor is replaced.
func (r *Registry) Register(name string, constructor extraction.TechniqueConstructor) {
	r.constructors[name] = constructor
}

// Get constructs the technique registered under name.
// Returns ENOTFOUND if no technique is registered under name.
func (r *Registry) Get(name string) (extraction.Technique, error) {
	constructor, ok := r.constructors[name]
	if !ok {
		return nil, extraction.Errorf(extraction.ENOTFOUND, "technique %q not registered", name)
	}
	return constructor(), nil
}

// List returns all registered technique names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
