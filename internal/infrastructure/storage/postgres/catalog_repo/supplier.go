package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
	"aromapos/internal/domain/catalogs/supplier"
	"aromapos/internal/infrastructure/storage/postgres"
)

const (
	supplierTable            = "cat_suppliers"
	supplierTransactionTable = "sup_supplier_transactions"
)

// SupplierRepo implements supplier.Repository, including the ledger.
type SupplierRepo struct {
	*BaseCatalogRepo[*supplier.Supplier]
}

// NewSupplierRepo creates a new supplier repository.
func NewSupplierRepo(txm *postgres.TxManager) *SupplierRepo {
	return &SupplierRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*supplier.Supplier](
			txm,
			supplierTable,
			postgres.ExtractDBColumns[supplier.Supplier](),
			func() *supplier.Supplier { return &supplier.Supplier{} },
		),
	}
}

// CreateTransaction inserts a ledger entry.
func (r *SupplierRepo) CreateTransaction(ctx context.Context, t *supplier.Transaction) error {
	data := postgres.StructToMap(t)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in transaction")
	}

	q := r.Builder().
		Insert(supplierTransactionTable).
		SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.getTxManager(ctx).GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", supplierTransactionTable, err)
	}

	return nil
}

// ListTransactions returns ledger entries for a supplier, newest first.
func (r *SupplierRepo) ListTransactions(ctx context.Context, supplierID id.ID, limit, offset int) ([]supplier.Transaction, int64, error) {
	querier := r.getTxManager(ctx).GetQuerier(ctx)

	countQ := r.Builder().
		Select("COUNT(*)").
		From(supplierTransactionTable).
		Where(squirrel.Eq{"supplier_id": supplierID})

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count: %w", err)
	}

	var total int64
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	q := r.Builder().
		Select(postgres.ExtractDBColumns[supplier.Transaction]()...).
		From(supplierTransactionTable).
		Where(squirrel.Eq{"supplier_id": supplierID}).
		OrderBy("date DESC", "created_at DESC")

	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	if offset > 0 {
		q = q.Offset(uint64(offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var items []supplier.Transaction
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}

	return items, total, nil
}

// UpdateBalance sets the supplier's current balance.
func (r *SupplierRepo) UpdateBalance(ctx context.Context, supplierID id.ID, balance types.Money) error {
	q := r.Builder().
		Update(supplierTable).
		Set("current_balance", balance).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": supplierID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	querier := r.getTxManager(ctx).GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("supplier", supplierID.String())
	}

	return nil
}
