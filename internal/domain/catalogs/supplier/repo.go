package supplier

import (
	"context"

	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
	"aromapos/internal/domain"
)

// Repository defines the interface for Supplier persistence.
type Repository interface {
	domain.CatalogRepository[*Supplier]

	// GetForUpdate retrieves supplier with row lock (for balance updates).
	GetForUpdate(ctx context.Context, id id.ID) (*Supplier, error)

	// CreateTransaction inserts a ledger entry.
	CreateTransaction(ctx context.Context, t *Transaction) error

	// ListTransactions returns ledger entries for a supplier, newest first.
	ListTransactions(ctx context.Context, supplierID id.ID, limit, offset int) ([]Transaction, int64, error)

	// UpdateBalance sets the supplier's current balance.
	UpdateBalance(ctx context.Context, supplierID id.ID, balance types.Money) error
}
