package sqlite

import (
	"database/sql"

	"pawlog/internal/cats/domain"
	"pawlog/internal/log"
)

// insertCat is the single statement the writer issues. Values are
// always bound positionally; the statement text never changes.
const insertCat = `INSERT INTO cats (name, breed, age) VALUES (?, ?, ?)`

// catRepository implements domain.CatRepository using SQLite.
type catRepository struct {
	db *sql.DB
}

// newCatRepository creates a new catRepository instance.
func newCatRepository(db *sql.DB) *catRepository {
	return &catRepository{db: db}
}

// Ensure catRepository implements domain.CatRepository.
var _ domain.CatRepository = (*catRepository)(nil)

// Save inserts one row for the given cat, binding name, breed, and age
// in that order.
func (r *catRepository) Save(cat *domain.Cat) error {
	model := toCatModel(cat)
	if _, err := r.db.Exec(insertCat, model.Name, model.Breed, model.Age); err != nil {
		log.ErrorErr(log.CatDB, "Insert failed", err, "name", model.Name)
		return &domain.PersistenceError{Op: "insert cat", Err: err}
	}
	log.Debug(log.CatDB, "Inserted cat", "name", model.Name, "breed", model.Breed, "age", model.Age)
	return nil
}

// Close releases any resources held by the repository.
// This is a no-op because the connection is owned by the DB struct.
func (r *catRepository) Close() error {
	return nil
}
