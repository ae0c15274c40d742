package customer

import (
	"context"

	"aromapos/internal/domain"
)

// Repository defines the interface for Customer persistence.
type Repository interface {
	domain.CatalogRepository[*Customer]

	// FindByPhone retrieves a customer by phone number.
	FindByPhone(ctx context.Context, phone string) (*Customer, error)

	// FindByEmail retrieves a customer by email.
	FindByEmail(ctx context.Context, email string) (*Customer, error)
}
