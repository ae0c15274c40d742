// Package purchase provides the purchase document repository.
package purchase

import (
	"context"
	"time"

	"aromapos/internal/core/id"
	"aromapos/internal/domain"
)

// Repository defines operations for purchase documents.
type Repository interface {
	Create(ctx context.Context, doc *Purchase) error
	GetByID(ctx context.Context, docID id.ID) (*Purchase, error)
	GetByNumber(ctx context.Context, number string) (*Purchase, error)
	Update(ctx context.Context, doc *Purchase) error
	Delete(ctx context.Context, docID id.ID) error

	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Purchase], error)

	// FindReturnFor locates an existing return referencing the original
	FindReturnFor(ctx context.Context, originalID id.ID) (*Purchase, error)

	GetForUpdate(ctx context.Context, docID id.ID) (*Purchase, error)
}

// ListFilter for filtering purchases.
type ListFilter struct {
	domain.ListFilter

	SupplierID *id.ID
	Status     *Status
	Posted     *bool
	IsReturn   *bool
	DateFrom   *time.Time
	DateTo     *time.Time
}
