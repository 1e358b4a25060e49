package domain

import "sync"

// Registry is an ordered, append-only collection of every cat
// constructed through it. It is owned by whoever creates it and passed
// where needed; there is no process-global instance. Cats are never
// removed, and duplicates are allowed.
type Registry struct {
	mu   sync.Mutex
	cats []*Cat
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewCat constructs a cat and atomically appends it to the registry.
// Validation failure returns a *ValidationError and registers nothing.
func (r *Registry) NewCat(name, breed string, age int) (*Cat, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if age < 0 {
		return nil, &ValidationError{Field: "age", Reason: "must not be negative"}
	}

	cat := &Cat{name: name, breed: breed, age: age}
	r.mu.Lock()
	r.cats = append(r.cats, cat)
	r.mu.Unlock()
	return cat, nil
}

// All returns every cat constructed so far, in construction order.
// The returned slice is a snapshot; re-read the registry to observe
// cats constructed after the call.
func (r *Registry) All() []*Cat {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Cat, len(r.cats))
	copy(out, r.cats)
	return out
}

// Len returns the number of cats constructed so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cats)
}
