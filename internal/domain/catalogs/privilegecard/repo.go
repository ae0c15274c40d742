package privilegecard

import (
	"aromapos/internal/domain"
)

// Repository defines the interface for PrivilegeCard persistence.
type Repository interface {
	domain.CatalogRepository[*PrivilegeCard]
}
