package posting_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/entity"
	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
	"aromapos/internal/domain/documents/purchase"
	"aromapos/internal/domain/documents/sale"
	"aromapos/internal/domain/posting"
	"aromapos/internal/domain/registers/stock"
	"aromapos/internal/pricing"
)

// fakeStockRepo keeps movements and balances in memory. Balances are
// recalculated on every write so availability checks see posted stock.
type fakeStockRepo struct {
	movements []entity.StockMovement
}

func (r *fakeStockRepo) CreateMovements(ctx context.Context, movements []entity.StockMovement) error {
	r.movements = append(r.movements, movements...)
	return nil
}

func (r *fakeStockRepo) DeleteMovementsByRecorder(ctx context.Context, recorderID id.ID, beforeVersion int) error {
	kept := r.movements[:0]
	for _, m := range r.movements {
		if m.RecorderID == recorderID && m.RecorderVersion < beforeVersion {
			continue
		}
		kept = append(kept, m)
	}
	r.movements = kept
	return nil
}

func (r *fakeStockRepo) GetMovementsByRecorder(ctx context.Context, recorderID id.ID) ([]entity.StockMovement, error) {
	var out []entity.StockMovement
	for _, m := range r.movements {
		if m.RecorderID == recorderID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) balance(productID id.ID) types.Quantity {
	var total types.Quantity
	for _, m := range r.movements {
		if m.ProductID == productID {
			total += m.SignedQuantity()
		}
	}
	return total
}

func (r *fakeStockRepo) GetBalance(ctx context.Context, productID id.ID) (entity.StockBalance, error) {
	return entity.StockBalance{ProductID: productID, Quantity: r.balance(productID)}, nil
}

func (r *fakeStockRepo) GetBalanceForUpdate(ctx context.Context, productID id.ID) (entity.StockBalance, error) {
	for _, m := range r.movements {
		if m.ProductID == productID {
			return entity.StockBalance{ProductID: productID, Quantity: r.balance(productID)}, nil
		}
	}
	return entity.StockBalance{}, apperror.NewNotFound("stock_balance", productID.String())
}

func (r *fakeStockRepo) GetBalances(ctx context.Context, filter stock.BalanceFilter) ([]entity.StockBalance, error) {
	return nil, nil
}

func (r *fakeStockRepo) GetBalanceAtDate(ctx context.Context, productID id.ID, date time.Time) (types.Quantity, error) {
	return r.balance(productID), nil
}

func (r *fakeStockRepo) GetMovementHistory(ctx context.Context, productID id.ID, filter stock.MovementFilter) ([]entity.StockMovement, error) {
	return nil, nil
}

func (r *fakeStockRepo) GetTurnover(ctx context.Context, filter stock.TurnoverFilter) ([]stock.Turnover, error) {
	return nil, nil
}

func (r *fakeStockRepo) RecalculateBalances(ctx context.Context, productID *id.ID) error {
	return nil
}

// fakeTxManager runs callbacks directly without a database.
type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newEngine(repo *fakeStockRepo) *posting.Engine {
	return posting.NewEngine(stock.NewService(repo, fakeTxManager{}), fakeTxManager{}, nil)
}

func noopUpdate(ctx context.Context) error { return nil }

func newPurchase(productID id.ID, qty int64) *purchase.Purchase {
	p := purchase.New(id.New(), purchase.PaymentCash)
	p.AddLine(productID, qty, types.MustMoney("100"), types.MustMoney("0"), pricing.TaxExclusive, nil, nil)
	return p
}

func newSale(productID id.ID, qty int64) *sale.Sale {
	s := sale.New(nil, sale.PaymentCash)
	s.AddLine(productID, qty, types.MustMoney("150"), types.MustMoney("0"), pricing.TaxInclusive, nil, nil)
	return s
}

func TestPost_PurchaseRecordsReceipt(t *testing.T) {
	repo := &fakeStockRepo{}
	engine := newEngine(repo)
	ctx := context.Background()

	productID := id.New()
	p := newPurchase(productID, 5)

	require.NoError(t, engine.Post(ctx, p, noopUpdate))

	assert.True(t, p.Posted)
	assert.Equal(t, 1, p.PostedVersion)
	require.Len(t, repo.movements, 1)
	assert.Equal(t, entity.RecordTypeReceipt, repo.movements[0].RecordType)
	assert.Equal(t, 5.0, repo.balance(productID).Float64())
}

func TestPost_SaleConsumesStock(t *testing.T) {
	repo := &fakeStockRepo{}
	engine := newEngine(repo)
	ctx := context.Background()

	productID := id.New()
	require.NoError(t, engine.Post(ctx, newPurchase(productID, 10), noopUpdate))

	s := newSale(productID, 4)
	require.NoError(t, engine.Post(ctx, s, noopUpdate))

	assert.True(t, s.Posted)
	assert.Equal(t, 6.0, repo.balance(productID).Float64())
}

func TestPost_SaleRejectedOnInsufficientStock(t *testing.T) {
	repo := &fakeStockRepo{}
	engine := newEngine(repo)
	ctx := context.Background()

	productID := id.New()
	require.NoError(t, engine.Post(ctx, newPurchase(productID, 3), noopUpdate))

	s := newSale(productID, 4)
	err := engine.Post(ctx, s, noopUpdate)

	require.Error(t, err)
	assert.False(t, s.Posted, "failed posting must leave the document unposted")
	assert.Equal(t, 3.0, repo.balance(productID).Float64())
}

func TestPost_UnknownProductTreatedAsZeroStock(t *testing.T) {
	repo := &fakeStockRepo{}
	engine := newEngine(repo)

	s := newSale(id.New(), 1)
	err := engine.Post(context.Background(), s, noopUpdate)

	require.Error(t, err)
	assert.False(t, s.Posted)
}

func TestUnpost_ReversesMovements(t *testing.T) {
	repo := &fakeStockRepo{}
	engine := newEngine(repo)
	ctx := context.Background()

	productID := id.New()
	p := newPurchase(productID, 5)
	require.NoError(t, engine.Post(ctx, p, noopUpdate))
	require.NoError(t, engine.Unpost(ctx, p, noopUpdate))

	assert.False(t, p.Posted)
	assert.Empty(t, repo.movements)
}

func TestUnpost_NotPostedFails(t *testing.T) {
	engine := newEngine(&fakeStockRepo{})

	p := newPurchase(id.New(), 1)
	assert.Error(t, engine.Unpost(context.Background(), p, noopUpdate))
}

func TestPost_RepostReplacesMovements(t *testing.T) {
	repo := &fakeStockRepo{}
	engine := newEngine(repo)
	ctx := context.Background()

	productID := id.New()
	p := newPurchase(productID, 5)
	require.NoError(t, engine.Post(ctx, p, noopUpdate))

	// Correct the quantity and post again: old movements must not linger.
	p.Lines = nil
	p.AddLine(productID, 8, types.MustMoney("100"), types.MustMoney("0"), pricing.TaxExclusive, nil, nil)
	require.NoError(t, engine.Post(ctx, p, noopUpdate))

	assert.Equal(t, 2, p.PostedVersion)
	require.Len(t, repo.movements, 1)
	assert.Equal(t, 8.0, repo.balance(productID).Float64())
}

func TestPost_SaleReturnSkipsAvailabilityCheck(t *testing.T) {
	repo := &fakeStockRepo{}
	engine := newEngine(repo)
	ctx := context.Background()

	productID := id.New()
	s := newSale(productID, 2)
	s.IsReturn = true

	require.NoError(t, engine.Post(ctx, s, noopUpdate))
	assert.Equal(t, 2.0, repo.balance(productID).Float64())
}
