package stock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aromapos/internal/core/entity"
	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
)

type recalcRepo struct {
	Repository

	inTx         bool
	recalculated []*id.ID
}

func (r *recalcRepo) RecalculateBalances(ctx context.Context, productID *id.ID) error {
	if !r.inTx {
		return assert.AnError
	}
	r.recalculated = append(r.recalculated, productID)
	return nil
}

// markerTx flags the repo while the callback runs so the test can verify
// the rebuild happens inside a transaction.
type markerTx struct {
	repo *recalcRepo
}

func (m markerTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.repo.inTx = true
	defer func() { m.repo.inTx = false }()
	return fn(ctx)
}

func TestRebuildBalances(t *testing.T) {
	repo := &recalcRepo{}
	svc := NewService(repo, markerTx{repo: repo})

	require.NoError(t, svc.RebuildBalances(context.Background(), nil))

	productID := id.New()
	require.NoError(t, svc.RebuildBalances(context.Background(), &productID))

	require.Len(t, repo.recalculated, 2)
	assert.Nil(t, repo.recalculated[0])
	require.NotNil(t, repo.recalculated[1])
	assert.Equal(t, productID, *repo.recalculated[1])
}

type rejectingRepo struct {
	Repository
	created []entity.StockMovement
}

func (r *rejectingRepo) CreateMovements(ctx context.Context, movements []entity.StockMovement) error {
	r.created = append(r.created, movements...)
	return nil
}

func TestRecordMovements_Validation(t *testing.T) {
	repo := &rejectingRepo{}
	svc := NewService(repo, markerTx{repo: &recalcRepo{}})
	ctx := context.Background()

	valid := entity.StockMovement{
		MovementBase: entity.MovementBase{
			RecorderID: id.New(),
			RecordType: entity.RecordTypeReceipt,
			Period:     time.Now(),
		},
		ProductID: id.New(),
		Quantity:  types.NewQuantityFromFloat64(3),
	}

	require.NoError(t, svc.RecordMovements(ctx, []entity.StockMovement{valid}))
	assert.Len(t, repo.created, 1)

	zeroQty := valid
	zeroQty.Quantity = 0
	assert.Error(t, svc.RecordMovements(ctx, []entity.StockMovement{zeroQty}))

	noRecorder := valid
	noRecorder.RecorderID = id.ID{}
	assert.Error(t, svc.RecordMovements(ctx, []entity.StockMovement{noRecorder}))

	// Empty batch is a no-op, not an error.
	assert.NoError(t, svc.RecordMovements(ctx, nil))
}
