package sqlite

import "pawlog/internal/cats/domain"

// CatModel represents the database row for the cats table.
// Fields map directly to SQL columns.
type CatModel struct {
	Name  string
	Breed string
	Age   int
}

// toCatModel converts a domain Cat entity to a database CatModel.
func toCatModel(c *domain.Cat) *CatModel {
	return &CatModel{
		Name:  c.Name(),
		Breed: c.Breed(),
		Age:   c.Age(),
	}
}
