package generator

import "fmt"

// Registry maps kinds to problems. Register everything before sharing a
// Registry between goroutines; lookups do not lock.
type Registry struct {
	problems map[string]Problem
	order    []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{problems: make(map[string]Problem)}
}

// DefaultRegistry holds the built-in problems over p.
func DefaultRegistry(p Params) *Registry {
	reg := NewRegistry()
	for _, prob := range []Problem{
		NewDoubleRoot(p),
		NewRationalFunction(p),
		NewVertex(p),
		NewFactored(p),
	} {
		if err := reg.Register(prob); err != nil {
			panic(err)
		}
	}
	return reg
}

// Register adds p under p.Kind().
func (r *Registry) Register(p Problem) error {
	kind := p.Kind()
	if _, ok := r.problems[kind]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, kind)
	}
	r.problems[kind] = p
	r.order = append(r.order, kind)
	return nil
}

// Lookup returns the problem registered under kind.
func (r *Registry) Lookup(kind string) (Problem, error) {
	p, ok := r.problems[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return p, nil
}

// Kinds lists registered kinds in registration order.
func (r *Registry) Kinds() []string { return append([]string(nil), r.order...) }

// Problems lists registered problems in registration order.
func (r *Registry) Problems() []Problem {
	out := make([]Problem, len(r.order))
	for i, k := range r.order {
		out[i] = r.problems[k]
	}
	return out
}
