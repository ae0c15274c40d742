// Package register_repo provides PostgreSQL implementations for register repositories.
package register_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/entity"
	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
	"aromapos/internal/domain/registers/stock"
	"aromapos/internal/infrastructure/storage/postgres"
)

const (
	stockMovementsTable = "reg_stock_movements"
	stockBalancesTable  = "reg_stock_balances"
)

var stockMovementColumns = []string{
	"line_id", "recorder_id", "recorder_type", "recorder_version",
	"period", "record_type",
	"product_id", "quantity", "created_at",
}

// StockRepo implements stock.Repository.
type StockRepo struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType
}

// NewStockRepo creates a new stock register repository.
func NewStockRepo(txm *postgres.TxManager) *StockRepo {
	return &StockRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateMovements batch inserts movements.
func (r *StockRepo) CreateMovements(ctx context.Context, movements []entity.StockMovement) error {
	if len(movements) == 0 {
		return nil
	}

	// Fast path: COPY when inside a transaction.
	if tx := r.txm.GetTx(ctx); tx != nil {
		inserter := postgres.NewBatchInserter(r.txm)
		rows := make([][]any, 0, len(movements))
		for _, m := range movements {
			rows = append(rows, []any{
				m.LineID, m.RecorderID, m.RecorderType, m.RecorderVersion,
				m.Period, m.RecordType,
				m.ProductID, m.Quantity, m.CreatedAt,
			})
		}
		if _, err := inserter.CopyFromSlice(ctx, stockMovementsTable, stockMovementColumns, rows); err != nil {
			return fmt.Errorf("copy movements: %w", err)
		}
		return r.applyBalanceDeltas(ctx, movements)
	}

	// Fallback: non-transactional insert. Prefer calling within tx.
	q := r.builder.Insert(stockMovementsTable).Columns(stockMovementColumns...)
	for _, m := range movements {
		q = q.Values(
			m.LineID, m.RecorderID, m.RecorderType, m.RecorderVersion,
			m.Period, m.RecordType,
			m.ProductID, m.Quantity, m.CreatedAt,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert movements: %w", err)
	}

	return r.applyBalanceDeltas(ctx, movements)
}

// applyBalanceDeltas folds movement quantities into reg_stock_balances so
// reads never have to aggregate the movements table.
func (r *StockRepo) applyBalanceDeltas(ctx context.Context, movements []entity.StockMovement) error {
	deltas := make(map[id.ID]types.Quantity)
	lastMovement := make(map[id.ID]time.Time)
	for i := range movements {
		m := &movements[i]
		deltas[m.ProductID] += m.SignedQuantity()
		if m.Period.After(lastMovement[m.ProductID]) {
			lastMovement[m.ProductID] = m.Period
		}
	}

	sql, args, err := buildBalanceUpsert(r.builder, deltas, lastMovement)
	if err != nil {
		return fmt.Errorf("build balance upsert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("apply balance deltas: %w", err)
	}

	return nil
}

func buildBalanceUpsert(builder squirrel.StatementBuilderType, deltas map[id.ID]types.Quantity, lastMovement map[id.ID]time.Time) (string, []any, error) {
	q := builder.Insert(stockBalancesTable).
		Columns("product_id", "quantity", "last_movement_at", "updated_at")
	for productID, delta := range deltas {
		q = q.Values(productID, delta, lastMovement[productID], time.Now())
	}
	q = q.Suffix(`ON CONFLICT (product_id) DO UPDATE SET
		quantity = ` + stockBalancesTable + `.quantity + EXCLUDED.quantity,
		last_movement_at = GREATEST(` + stockBalancesTable + `.last_movement_at, EXCLUDED.last_movement_at),
		updated_at = NOW()`)

	return q.ToSql()
}

// deleteMovementsSQL removes a document's movements and subtracts their
// effect from the balance table in one statement.
const deleteMovementsSQL = `
	WITH removed AS (
		DELETE FROM reg_stock_movements
		WHERE recorder_id = $1 AND recorder_version < $2
		RETURNING product_id, record_type, quantity
	),
	totals AS (
		SELECT product_id,
		       SUM(CASE WHEN record_type = 'receipt' THEN quantity ELSE -quantity END) AS delta
		FROM removed
		GROUP BY product_id
	)
	UPDATE reg_stock_balances b
	SET quantity = b.quantity - t.delta,
	    updated_at = NOW()
	FROM totals t
	WHERE b.product_id = t.product_id
`

// DeleteMovementsByRecorder removes movements for a document version.
func (r *StockRepo) DeleteMovementsByRecorder(ctx context.Context, recorderID id.ID, beforeVersion int) error {
	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, deleteMovementsSQL, recorderID, beforeVersion); err != nil {
		return fmt.Errorf("delete movements: %w", err)
	}

	return nil
}

// GetMovementsByRecorder retrieves movements for a document.
func (r *StockRepo) GetMovementsByRecorder(ctx context.Context, recorderID id.ID) ([]entity.StockMovement, error) {
	q := r.builder.Select(stockMovementColumns...).
		From(stockMovementsTable).
		Where(squirrel.Eq{"recorder_id": recorderID}).
		OrderBy("created_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var movements []entity.StockMovement
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &movements, sql, args...); err != nil {
		return nil, fmt.Errorf("select movements: %w", err)
	}

	return movements, nil
}

// GetBalance returns the current balance for a product.
// A product with no movements yet has a zero balance.
func (r *StockRepo) GetBalance(ctx context.Context, productID id.ID) (entity.StockBalance, error) {
	var balance entity.StockBalance

	q := r.builder.Select(
		"product_id", "quantity", "last_movement_at", "updated_at",
	).From(stockBalancesTable).
		Where(squirrel.Eq{"product_id": productID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return balance, fmt.Errorf("build query: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &balance, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return entity.StockBalance{ProductID: productID}, nil
		}
		return balance, fmt.Errorf("get balance: %w", err)
	}

	return balance, nil
}

// GetBalanceForUpdate returns the balance with a pessimistic lock.
func (r *StockRepo) GetBalanceForUpdate(ctx context.Context, productID id.ID) (entity.StockBalance, error) {
	var balance entity.StockBalance

	sql := `
		SELECT product_id, quantity, last_movement_at, updated_at
		FROM reg_stock_balances
		WHERE product_id = $1
		FOR UPDATE
	`

	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &balance, sql, productID); err != nil {
		if pgxscan.NotFound(err) {
			return balance, apperror.NewNotFound("stock balance", productID.String())
		}
		return balance, fmt.Errorf("get balance for update: %w", err)
	}

	return balance, nil
}

// GetBalances returns balances matching the filter.
func (r *StockRepo) GetBalances(ctx context.Context, filter stock.BalanceFilter) ([]entity.StockBalance, error) {
	q := r.builder.Select(
		"product_id", "quantity", "last_movement_at", "updated_at",
	).From(stockBalancesTable)

	if filter.ExcludeZero {
		q = q.Where(squirrel.NotEq{"quantity": int64(0)})
	}
	if len(filter.ProductIDs) > 0 {
		q = q.Where(squirrel.Eq{"product_id": filter.ProductIDs})
	}
	if filter.BelowLevel != nil {
		q = q.Where(squirrel.Lt{"quantity": filter.BelowLevel.Int64Scaled()})
	}

	q = q.OrderBy("product_id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var balances []entity.StockBalance
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &balances, sql, args...); err != nil {
		return nil, fmt.Errorf("select balances: %w", err)
	}

	return balances, nil
}

// GetBalanceAtDate calculates the balance as of a specific date.
func (r *StockRepo) GetBalanceAtDate(ctx context.Context, productID id.ID, date time.Time) (types.Quantity, error) {
	sql := `
		SELECT COALESCE(
			SUM(CASE WHEN record_type = 'receipt' THEN quantity ELSE -quantity END),
			0
		)
		FROM reg_stock_movements
		WHERE product_id = $1
		  AND period <= $2
	`

	var balanceScaled int64
	querier := r.txm.GetQuerier(ctx)
	err := querier.QueryRow(ctx, sql, productID, date).Scan(&balanceScaled)
	if err != nil && err != pgx.ErrNoRows {
		return 0, fmt.Errorf("calculate balance at date: %w", err)
	}

	return types.NewQuantityFromInt64Scaled(balanceScaled), nil
}

// GetMovementHistory returns movement history for a product.
func (r *StockRepo) GetMovementHistory(ctx context.Context, productID id.ID, filter stock.MovementFilter) ([]entity.StockMovement, error) {
	q := r.builder.Select(stockMovementColumns...).
		From(stockMovementsTable).
		Where(squirrel.Eq{"product_id": productID})

	if filter.RecordType != nil {
		q = q.Where(squirrel.Eq{"record_type": *filter.RecordType})
	}
	if filter.FromDate != nil {
		q = q.Where(squirrel.GtOrEq{"period": *filter.FromDate})
	}
	if filter.ToDate != nil {
		q = q.Where(squirrel.LtOrEq{"period": *filter.ToDate})
	}

	q = q.OrderBy("period DESC", "created_at DESC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var movements []entity.StockMovement
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &movements, sql, args...); err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}

	return movements, nil
}

// GetTurnover calculates per-product receipt/expense totals for the period.
func (r *StockRepo) GetTurnover(ctx context.Context, filter stock.TurnoverFilter) ([]stock.Turnover, error) {
	args := []any{filter.FromDate, filter.ToDate}
	productCond := ""
	if filter.ProductID != nil {
		productCond = " AND product_id = $3"
		args = append(args, *filter.ProductID)
	}

	sql := fmt.Sprintf(`
		SELECT
			product_id,
			COALESCE(SUM(CASE WHEN record_type = 'receipt' AND period >= $1 AND period < $2 THEN quantity ELSE 0 END), 0) AS receipt,
			COALESCE(SUM(CASE WHEN record_type = 'expense' AND period >= $1 AND period < $2 THEN quantity ELSE 0 END), 0) AS expense,
			COALESCE(SUM(CASE WHEN period < $1 THEN
				CASE WHEN record_type = 'receipt' THEN quantity ELSE -quantity END
			ELSE 0 END), 0) AS opening_balance
		FROM reg_stock_movements
		WHERE period < $2%s
		GROUP BY product_id
		ORDER BY product_id
	`, productCond)

	querier := r.txm.GetQuerier(ctx)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("calculate turnover: %w", err)
	}
	defer rows.Close()

	var result []stock.Turnover
	for rows.Next() {
		var t stock.Turnover
		var receiptScaled, expenseScaled, openingScaled int64
		if err := rows.Scan(&t.ProductID, &receiptScaled, &expenseScaled, &openingScaled); err != nil {
			return nil, fmt.Errorf("scan turnover: %w", err)
		}
		t.Receipt = types.NewQuantityFromInt64Scaled(receiptScaled)
		t.Expense = types.NewQuantityFromInt64Scaled(expenseScaled)
		t.OpeningBalance = types.NewQuantityFromInt64Scaled(openingScaled)
		t.ClosingBalance = t.OpeningBalance + t.Receipt - t.Expense
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("turnover rows: %w", err)
	}

	return result, nil
}

// RecalculateBalances rebuilds the balance table from movements.
func (r *StockRepo) RecalculateBalances(ctx context.Context, productID *id.ID) error {
	querier := r.txm.GetQuerier(ctx)

	args := []any{}
	cond := ""
	if productID != nil {
		cond = " WHERE product_id = $1"
		args = append(args, *productID)
	}

	deleteSQL := "DELETE FROM " + stockBalancesTable + cond
	if _, err := querier.Exec(ctx, deleteSQL, args...); err != nil {
		return fmt.Errorf("clear balances: %w", err)
	}

	movementCond := ""
	if productID != nil {
		movementCond = " WHERE product_id = $1"
	}

	insertSQL := fmt.Sprintf(`
		INSERT INTO %s (product_id, quantity, last_movement_at, updated_at)
		SELECT
			product_id,
			SUM(CASE WHEN record_type = 'receipt' THEN quantity ELSE -quantity END),
			MAX(period),
			NOW()
		FROM %s%s
		GROUP BY product_id
	`, stockBalancesTable, stockMovementsTable, movementCond)

	if _, err := querier.Exec(ctx, insertSQL, args...); err != nil {
		return fmt.Errorf("rebuild balances: %w", err)
	}

	return nil
}

// Ensure interface compliance.
var _ stock.Repository = (*StockRepo)(nil)
