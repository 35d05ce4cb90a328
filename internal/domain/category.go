package domain

import (
	"context"
	"errors"
)

var ErrCategoryNotFound = errors.New("category not found")

// AllCategoriesType is the quiz category type the front end sends when every
// category is selected.
const AllCategoriesType = "click"

// CategoryRepository defines read access to categories
type CategoryRepository interface {
	// List retrieves every category ordered by type
	List(ctx context.Context) ([]Category, error)

	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id int) (*Category, error)
}

// Category is a question category, e.g. "Science"
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryMap projects categories to the id -> type mapping used in responses.
func CategoryMap(categories []Category) map[int]string {
	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
