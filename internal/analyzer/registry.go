package analyzer

import "fmt"

// Registry manages scanners by name. Registration order is preserved:
// issue aggregation order follows it, so two reviews of the same input
// always report issues in the same order.
type Registry struct {
	scanners map[string]Scanner
	order    []string
}

// NewRegistry creates an empty scanner registry.
func NewRegistry() *Registry {
	return &Registry{scanners: make(map[string]Scanner)}
}

// Register adds a scanner to the registry. Re-registering a name
// replaces the scanner but keeps its original position.
func (r *Registry) Register(s Scanner) {
	if _, exists := r.scanners[s.Name()]; !exists {
		r.order = append(r.order, s.Name())
	}
	r.scanners[s.Name()] = s
}

// Get retrieves a scanner by name.
func (r *Registry) Get(name string) (Scanner, error) {
	s, ok := r.scanners[name]
	if !ok {
		return nil, fmt.Errorf("scanner %q not found", name)
	}
	return s, nil
}

// All returns all registered scanners in registration order.
func (r *Registry) All() []Scanner {
	result := make([]Scanner, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.scanners[name])
	}
	return result
}

// Names returns all scanner names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
