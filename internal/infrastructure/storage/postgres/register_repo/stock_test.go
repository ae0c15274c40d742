package register_repo

import (
	"strings"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"

	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
)

func TestBuildBalanceUpsert(t *testing.T) {
	builder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	productID := id.New()
	period := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	deltas := map[id.ID]types.Quantity{productID: types.NewQuantityFromInt64Scaled(-5000)}
	lastMovement := map[id.ID]time.Time{productID: period}

	sql, args, err := buildBalanceUpsert(builder, deltas, lastMovement)
	if err != nil {
		t.Fatalf("build upsert: %v", err)
	}

	if !strings.Contains(sql, "INSERT INTO reg_stock_balances") {
		t.Errorf("sql targets wrong table: %s", sql)
	}
	if !strings.Contains(sql, "ON CONFLICT (product_id) DO UPDATE") {
		t.Errorf("sql missing conflict clause: %s", sql)
	}
	if !strings.Contains(sql, "quantity = reg_stock_balances.quantity + EXCLUDED.quantity") {
		t.Errorf("sql must add the delta to the existing balance: %s", sql)
	}

	if len(args) != 4 {
		t.Fatalf("args = %d, want 4", len(args))
	}
	if args[0] != productID {
		t.Errorf("args[0] = %v, want %v", args[0], productID)
	}
	if args[1] != types.Quantity(-5000) {
		t.Errorf("args[1] = %v, want -5000", args[1])
	}
	if args[2] != period {
		t.Errorf("args[2] = %v, want %v", args[2], period)
	}
}

func TestDeleteMovementsSQL_AdjustsBalances(t *testing.T) {
	// Reversal must subtract the removed movements from the balance table
	// in the same statement, so no window exists where balances disagree
	// with movements.
	for _, fragment := range []string{
		"DELETE FROM reg_stock_movements",
		"recorder_version < $2",
		"CASE WHEN record_type = 'receipt' THEN quantity ELSE -quantity END",
		"UPDATE reg_stock_balances",
		"quantity = b.quantity - t.delta",
	} {
		if !strings.Contains(deleteMovementsSQL, fragment) {
			t.Errorf("delete statement missing %q", fragment)
		}
	}
}
