package staff

import (
	"context"

	"aromapos/internal/core/id"
	"aromapos/internal/domain"
)

// Repository defines operations for staff accounts.
type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, memberID id.ID) (*Member, error)
	GetByUsername(ctx context.Context, username string) (*Member, error)
	Update(ctx context.Context, m *Member) error
	Delete(ctx context.Context, memberID id.ID) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Member], error)

	// CountAdmins counts active admin accounts
	CountAdmins(ctx context.Context) (int, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// ListFilter for filtering staff.
type ListFilter struct {
	domain.ListFilter

	Role     *Role
	IsActive *bool
}
