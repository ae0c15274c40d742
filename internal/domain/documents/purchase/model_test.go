package purchase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aromapos/internal/core/entity"
	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
	"aromapos/internal/pricing"
)

func money(s string) types.Money {
	return types.MustMoney(s)
}

func gst18() *pricing.TaxRate {
	return &pricing.TaxRate{Name: "GST", Rate: money("18")}
}

func TestAddLine_ComputesTaxExclusiveAmounts(t *testing.T) {
	p := New(id.New(), PaymentCash)
	p.AddLine(id.New(), 2, money("100"), money("10"), pricing.TaxExclusive, gst18(), nil)

	require.Len(t, p.Lines, 1)
	line := p.Lines[0]

	// 100 - 10% = 90, +18% tax = 106.20 per unit, twice
	assert.True(t, money("212.40").Equal(line.Amount), "amount = %s", line.Amount)
	assert.True(t, money("32.40").Equal(line.TaxAmount), "tax = %s", line.TaxAmount)
	assert.True(t, money("212.40").Equal(p.TotalAmount))
	assert.True(t, money("32.40").Equal(p.TotalTax))
}

func TestAddLine_InclusiveTaxDoesNotInflateTotal(t *testing.T) {
	p := New(id.New(), PaymentCredit)
	p.AddLine(id.New(), 1, money("118"), money("0"), pricing.TaxInclusive, gst18(), nil)

	line := p.Lines[0]
	assert.True(t, money("118").Equal(line.Amount))
	assert.True(t, line.TaxAmount.IsZero())
}

func TestValidate(t *testing.T) {
	supplierID := id.New()

	t.Run("valid", func(t *testing.T) {
		p := New(supplierID, PaymentCash)
		p.AddLine(id.New(), 1, money("50"), money("0"), pricing.TaxExclusive, nil, nil)
		assert.NoError(t, p.Validate(context.Background()))
	})

	t.Run("missing supplier", func(t *testing.T) {
		p := New(id.Nil(), PaymentCash)
		p.AddLine(id.New(), 1, money("50"), money("0"), pricing.TaxExclusive, nil, nil)
		assert.Error(t, p.Validate(context.Background()))
	})

	t.Run("no lines", func(t *testing.T) {
		p := New(supplierID, PaymentCash)
		assert.Error(t, p.Validate(context.Background()))
	})

	t.Run("bad payment type", func(t *testing.T) {
		p := New(supplierID, PaymentType("BARTER"))
		p.AddLine(id.New(), 1, money("50"), money("0"), pricing.TaxExclusive, nil, nil)
		assert.Error(t, p.Validate(context.Background()))
	})

	t.Run("return without original reference", func(t *testing.T) {
		p := New(supplierID, PaymentCash)
		p.IsReturn = true
		p.AddLine(id.New(), 1, money("50"), money("0"), pricing.TaxExclusive, nil, nil)
		assert.Error(t, p.Validate(context.Background()))
	})
}

func TestGenerateMovements_ReceiptForPurchase(t *testing.T) {
	p := New(id.New(), PaymentCash)
	productID := id.New()
	p.AddLine(productID, 3, money("10"), money("0"), pricing.TaxExclusive, nil, nil)

	movements, err := p.GenerateMovements(context.Background())
	require.NoError(t, err)

	stockMoves := movements.Stock()
	require.Len(t, stockMoves, 1)
	assert.Equal(t, entity.RecordTypeReceipt, stockMoves[0].RecordType)
	assert.Equal(t, productID, stockMoves[0].ProductID)
	assert.Equal(t, types.NewQuantityFromFloat64(3), stockMoves[0].Quantity)
	assert.Equal(t, p.PostedVersion+1, stockMoves[0].RecorderVersion)
}

func TestGenerateMovements_ExpenseForReturn(t *testing.T) {
	origID := id.New()
	p := New(id.New(), PaymentCash)
	p.IsReturn = true
	p.OriginalID = &origID
	p.AddLine(id.New(), 2, money("10"), money("0"), pricing.TaxExclusive, nil, nil)

	movements, err := p.GenerateMovements(context.Background())
	require.NoError(t, err)
	require.Len(t, movements.Stock(), 1)
	assert.Equal(t, entity.RecordTypeExpense, movements.Stock()[0].RecordType)

	demands := p.StockDemands()
	require.Len(t, demands, 1)
	assert.Equal(t, types.NewQuantityFromFloat64(2), demands[0].RequiredQty)
}

func TestStockDemands_EmptyForRegularPurchase(t *testing.T) {
	p := New(id.New(), PaymentCash)
	p.AddLine(id.New(), 2, money("10"), money("0"), pricing.TaxExclusive, nil, nil)
	assert.Empty(t, p.StockDemands())
}

func TestLine_Returnable(t *testing.T) {
	l := Line{Quantity: 5, ReturnedQuantity: 2}
	assert.Equal(t, int64(3), l.Returnable())
}
