package tax

import (
	"context"

	"aromapos/internal/core/id"
	"aromapos/internal/domain"
)

// Repository defines the interface for Tax persistence.
type Repository interface {
	domain.CatalogRepository[*Tax]

	// FindByName retrieves a tax by its exact name.
	FindByName(ctx context.Context, name string) (*Tax, error)

	// GetForUpdate retrieves a tax with row lock.
	GetForUpdate(ctx context.Context, id id.ID) (*Tax, error)
}
