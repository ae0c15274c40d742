package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"aromapos/internal/domain/catalogs/tax"
	"aromapos/internal/infrastructure/storage/postgres"
)

const taxTable = "cat_taxes"

// TaxRepo implements tax.Repository.
type TaxRepo struct {
	*BaseCatalogRepo[*tax.Tax]
}

// NewTaxRepo creates a new tax repository.
func NewTaxRepo(txm *postgres.TxManager) *TaxRepo {
	return &TaxRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*tax.Tax](
			txm,
			taxTable,
			postgres.ExtractDBColumns[tax.Tax](),
			func() *tax.Tax { return &tax.Tax{} },
		),
	}
}

// FindByName retrieves a tax by its exact name.
func (r *TaxRepo) FindByName(ctx context.Context, name string) (*tax.Tax, error) {
	q := r.baseSelect(ctx).
		Where(squirrel.Eq{"name": name}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)
	return r.FindOne(ctx, q)
}
