package catalog_repo

import (
	"aromapos/internal/domain/catalogs/privilegecard"
	"aromapos/internal/infrastructure/storage/postgres"
)

const privilegeCardTable = "cat_privilege_cards"

// PrivilegeCardRepo implements privilegecard.Repository.
type PrivilegeCardRepo struct {
	*BaseCatalogRepo[*privilegecard.PrivilegeCard]
}

// NewPrivilegeCardRepo creates a new privilege card repository.
func NewPrivilegeCardRepo(txm *postgres.TxManager) *PrivilegeCardRepo {
	return &PrivilegeCardRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*privilegecard.PrivilegeCard](
			txm,
			privilegeCardTable,
			postgres.ExtractDBColumns[privilegecard.PrivilegeCard](),
			func() *privilegecard.PrivilegeCard { return &privilegecard.PrivilegeCard{} },
		),
	}
}
