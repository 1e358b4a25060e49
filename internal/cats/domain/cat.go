// Package domain provides the pure domain layer for cat records with no
// infrastructure dependencies.
//
// It defines the Cat entity, the Registry that tracks every cat
// constructed during a run, the CatRepository interface for persistence
// abstraction, and domain-specific error types. The domain layer has no
// knowledge of infrastructure concerns (databases, file I/O, etc.).
package domain

// Cat represents a single cat record to be persisted.
// Fields are unexported; a Cat does not change after construction.
// Cats are created through Registry.NewCat so that every instance is
// tracked in construction order.
type Cat struct {
	name  string
	breed string
	age   int
}

// Name returns the cat's name.
func (c *Cat) Name() string {
	return c.name
}

// Breed returns the cat's breed.
func (c *Cat) Breed() string {
	return c.breed
}

// Age returns the cat's age in years.
func (c *Cat) Age() int {
	return c.age
}
