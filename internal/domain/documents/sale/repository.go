// Package sale provides the sale document repository.
package sale

import (
	"context"
	"time"

	"aromapos/internal/core/id"
	"aromapos/internal/domain"
)

// Repository defines operations for sale documents.
type Repository interface {
	Create(ctx context.Context, doc *Sale) error
	GetByID(ctx context.Context, docID id.ID) (*Sale, error)
	GetByNumber(ctx context.Context, number string) (*Sale, error)
	Update(ctx context.Context, doc *Sale) error
	Delete(ctx context.Context, docID id.ID) error

	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Sale], error)

	// FindReturnFor locates an existing return referencing the original
	FindReturnFor(ctx context.Context, originalID id.ID) (*Sale, error)

	GetForUpdate(ctx context.Context, docID id.ID) (*Sale, error)
}

// ListFilter for filtering sales.
type ListFilter struct {
	domain.ListFilter

	CustomerID *id.ID
	Posted     *bool
	IsReturn   *bool
	DateFrom   *time.Time
	DateTo     *time.Time
}
