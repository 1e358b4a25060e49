package domain

// CatRepository defines the persistence interface for Cat entities.
// Implementations may use SQLite, in-memory storage, or other backends.
type CatRepository interface {
	// Save persists one cat as a single new row. Each call issues
	// exactly one write; nothing is retried. A rejected or failed
	// write returns a *PersistenceError.
	Save(cat *Cat) error

	// Close releases any resources held by the repository.
	Close() error
}
