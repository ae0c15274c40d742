package sale

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

func TestReprice_CustomerDiscountAppliedAfterTax(t *testing.T) {
	customerID := id.New()
	s := New(&customerID, PaymentCash)
	s.CustomerDiscountPercent = money("20")
	s.AddLine(id.New(), 1, money("118"), money("0"), pricing.TaxInclusive, gst18(), nil)
	s.Reprice()

	line := s.Lines[0]
	// Inclusive price stays 118 before the privilege discount,
	// then 20% off the tax-inclusive total.
	assert.True(t, money("118").Equal(line.Amount), "amount = %s", line.Amount)
	assert.True(t, money("94.40").Equal(line.TotalAmount), "total = %s", line.TotalAmount)

	assert.True(t, money("118").Equal(s.TotalBeforeDiscount))
	assert.True(t, money("23.60").Equal(s.DiscountAmount), "discount = %s", s.DiscountAmount)
	assert.True(t, money("94.40").Equal(s.GrandTotal))
}

func TestReprice_NoCustomerDiscount(t *testing.T) {
	s := New(nil, PaymentCash)
	s.AddLine(id.New(), 1, money("100"), money("10"), pricing.TaxExclusive, gst18(), nil)
	s.Reprice()

	line := s.Lines[0]
	assert.True(t, money("106.20").Equal(line.Amount))
	assert.True(t, money("106.20").Equal(line.TotalAmount))
	assert.True(t, money("16.20").Equal(line.TaxAmount))

	// Subtotal excludes tax, grand total includes it
	assert.True(t, money("90").Equal(s.Subtotal), "subtotal = %s", s.Subtotal)
	assert.True(t, money("16.20").Equal(s.TotalTax))
	assert.True(t, s.DiscountAmount.IsZero())
	assert.True(t, money("106.20").Equal(s.GrandTotal))
}

func TestReprice_MixedLines(t *testing.T) {
	s := New(nil, PaymentOnline)
	s.AddLine(id.New(), 1, money("50"), money("0"), pricing.TaxExclusive, nil, nil)
	s.AddLine(id.New(), 1, money("75"), money("0"), pricing.TaxExclusive, nil, nil)
	s.Reprice()

	assert.True(t, money("125").Equal(s.Subtotal))
	assert.True(t, money("125").Equal(s.GrandTotal))
}

func TestValidate(t *testing.T) {
	t.Run("walk-in sale without customer is valid", func(t *testing.T) {
		s := New(nil, PaymentCash)
		s.AddLine(id.New(), 1, money("10"), money("0"), pricing.TaxExclusive, nil, nil)
		s.Reprice()
		assert.NoError(t, s.Validate(context.Background()))
	})

	t.Run("bad payment method", func(t *testing.T) {
		s := New(nil, PaymentMethod("IOU"))
		s.AddLine(id.New(), 1, money("10"), money("0"), pricing.TaxExclusive, nil, nil)
		assert.Error(t, s.Validate(context.Background()))
	})

	t.Run("zero quantity", func(t *testing.T) {
		s := New(nil, PaymentCash)
		s.Lines = append(s.Lines, Line{LineID: id.New(), LineNo: 1, ProductID: id.New(), Quantity: 0})
		assert.Error(t, s.Validate(context.Background()))
	})

	t.Run("return without original reference", func(t *testing.T) {
		s := New(nil, PaymentCash)
		s.IsReturn = true
		s.AddLine(id.New(), 1, money("10"), money("0"), pricing.TaxExclusive, nil, nil)
		assert.Error(t, s.Validate(context.Background()))
	})

	t.Run("original reference on a regular sale", func(t *testing.T) {
		s := New(nil, PaymentCash)
		origID := id.New()
		s.OriginalID = &origID
		s.AddLine(id.New(), 1, money("10"), money("0"), pricing.TaxExclusive, nil, nil)
		assert.Error(t, s.Validate(context.Background()))
	})

	t.Run("return with original reference", func(t *testing.T) {
		s := New(nil, PaymentCash)
		s.IsReturn = true
		origID := id.New()
		s.OriginalID = &origID
		s.AddLine(id.New(), 1, money("10"), money("0"), pricing.TaxExclusive, nil, nil)
		s.Reprice()
		assert.NoError(t, s.Validate(context.Background()))
	})
}

func TestGenerateMovements_ExpenseForSale(t *testing.T) {
	s := New(nil, PaymentCash)
	productID := id.New()
	s.AddLine(productID, 4, money("10"), money("0"), pricing.TaxExclusive, nil, nil)

	movements, err := s.GenerateMovements(context.Background())
	require.NoError(t, err)
	require.Len(t, movements.Stock(), 1)
	assert.Equal(t, entity.RecordTypeExpense, movements.Stock()[0].RecordType)
	assert.Equal(t, types.NewQuantityFromFloat64(4), movements.Stock()[0].Quantity)

	demands := s.StockDemands()
	require.Len(t, demands, 1)
	assert.Equal(t, productID, demands[0].ProductID)
}

func TestGenerateMovements_ReceiptForReturn(t *testing.T) {
	origID := id.New()
	s := New(nil, PaymentCash)
	s.IsReturn = true
	s.OriginalID = &origID
	s.AddLine(id.New(), 1, money("10"), money("0"), pricing.TaxExclusive, nil, nil)

	movements, err := s.GenerateMovements(context.Background())
	require.NoError(t, err)
	require.Len(t, movements.Stock(), 1)
	assert.Equal(t, entity.RecordTypeReceipt, movements.Stock()[0].RecordType)

	// Returns replenish stock, nothing to reserve
	assert.Empty(t, s.StockDemands())
}
