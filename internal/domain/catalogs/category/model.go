// Package category provides the product Category catalog.
package category

import (
	"context"

	"aromapos/internal/core/entity"
)

// Category groups products for browsing and reporting.
type Category struct {
	entity.Catalog

	// Description is a free-form note
	Description *string `db:"description" json:"description,omitempty"`
}

// NewCategory creates a new Category.
func NewCategory(code, name string) *Category {
	return &Category{Catalog: entity.NewCatalog(code, name)}
}

// Validate implements entity.Validatable interface.
func (c *Category) Validate(ctx context.Context) error {
	return c.Catalog.Validate(ctx)
}
