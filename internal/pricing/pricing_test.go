package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aromapos/internal/core/types"
)

func money(s string) types.Money {
	return types.MustMoney(s)
}

func gst18() *TaxRate {
	return &TaxRate{Name: "GST", Rate: money("18")}
}

func TestComputeLine_Exclusive(t *testing.T) {
	in := LineInput{
		BasePrice:       money("100"),
		DiscountPercent: money("10"),
		TaxMode:         TaxExclusive,
		Tax1:            gst18(),
		Tax2:            &TaxRate{Name: "Cess", Rate: money("0")},
		Quantity:        1,
	}

	got := ComputeLine(in)

	assert.True(t, got.DiscountAmount.Equal(money("10")), "discount = %s", got.DiscountAmount)
	assert.True(t, got.PriceAfterDiscount.Equal(money("90")), "after discount = %s", got.PriceAfterDiscount)
	assert.True(t, got.Tax1Amount.Equal(money("16.2")), "tax1 = %s", got.Tax1Amount)
	assert.True(t, got.Tax2Amount.IsZero())
	assert.True(t, got.TotalTaxAmount.Equal(money("16.2")))
	assert.True(t, got.UnitFinalPrice.Equal(money("106.2")), "unit final = %s", got.UnitFinalPrice)
	assert.True(t, got.LineAmount.Equal(money("106.2")))
	assert.True(t, got.LineTotalAmount.Equal(got.LineAmount))
}

func TestComputeLine_InclusiveTaxIsInformationalOnly(t *testing.T) {
	in := LineInput{
		BasePrice:       money("118"),
		DiscountPercent: money("0"),
		TaxMode:         TaxInclusive,
		Tax1:            gst18(),
		Quantity:        2,
	}

	got := ComputeLine(in)

	// Inclusive mode neither adds tax nor backs out a pre-tax base.
	assert.True(t, got.Tax1Amount.IsZero())
	assert.True(t, got.Tax2Amount.IsZero())
	assert.True(t, got.TotalTaxAmount.IsZero())
	assert.True(t, got.UnitFinalPrice.Equal(got.PriceAfterDiscount))
	assert.True(t, got.UnitFinalPrice.Equal(money("118")))
	assert.True(t, got.LineAmount.Equal(money("236")))
}

func TestComputeLine_Deterministic(t *testing.T) {
	in := LineInput{
		BasePrice:       money("19.99"),
		DiscountPercent: money("12.5"),
		TaxMode:         TaxExclusive,
		Tax1:            gst18(),
		Quantity:        3,
	}

	first := ComputeLine(in)
	second := ComputeLine(in)
	assert.Equal(t, first, second)
}

func TestComputeLine_DiscountBoundaries(t *testing.T) {
	base := money("49.50")

	zero := ComputeLine(LineInput{BasePrice: base, DiscountPercent: money("0"), TaxMode: TaxExclusive, Quantity: 1})
	assert.True(t, zero.PriceAfterDiscount.Equal(base))

	full := ComputeLine(LineInput{BasePrice: base, DiscountPercent: money("100"), TaxMode: TaxExclusive, Tax1: gst18(), Quantity: 1})
	assert.True(t, full.PriceAfterDiscount.IsZero())
	assert.True(t, full.UnitFinalPrice.IsZero())
	assert.True(t, full.LineAmount.IsZero())
}

func TestComputeLine_ClampsDegenerateInput(t *testing.T) {
	got := ComputeLine(LineInput{
		BasePrice:       money("-5"),
		DiscountPercent: money("150"),
		TaxMode:         TaxExclusive,
		Tax1:            &TaxRate{Name: "Bad", Rate: money("-18")},
		Quantity:        0,
	})

	assert.False(t, got.UnitFinalPrice.IsNegative())
	assert.False(t, got.LineAmount.IsNegative())
	assert.True(t, got.Tax1Amount.IsZero())
}

func TestComputeLine_QuantityRounding(t *testing.T) {
	// Extension happens before rounding, so a thousand units must match the
	// exact decimal product rather than a thousandfold per-unit rounding.
	in := LineInput{
		BasePrice:       money("19.99"),
		DiscountPercent: money("33.33"),
		TaxMode:         TaxInclusive,
		Quantity:        1000,
	}

	got := ComputeLine(in)

	// 19.99 * (1 - 0.3333) * 1000 = 13327.3333
	assert.True(t, got.LineAmount.Equal(money("13327.33")), "line amount = %s", got.LineAmount)
	assert.True(t, got.UnitFinalPrice.Equal(money("13.33")))
}

func TestApplyCustomerDiscount_AfterTax(t *testing.T) {
	line := ComputeLine(LineInput{
		BasePrice:       money("100"),
		DiscountPercent: money("0"),
		TaxMode:         TaxExclusive,
		Tax1:            gst18(),
		Quantity:        1,
	})
	require.True(t, line.LineAmount.Equal(money("118")), "pre-discount line = %s", line.LineAmount)

	got := ApplyCustomerDiscount(line, money("20"))

	// 118 * 0.8, applied to the tax-inclusive total.
	assert.True(t, got.LineTotalAmount.Equal(money("94.4")), "line total = %s", got.LineTotalAmount)
	assert.True(t, got.LineAmount.Equal(money("118")), "line amount untouched")
}

func TestApplyCustomerDiscount_ClampsPercent(t *testing.T) {
	line := ComputeLine(LineInput{BasePrice: money("50"), TaxMode: TaxInclusive, Quantity: 1})

	full := ApplyCustomerDiscount(line, money("250"))
	assert.True(t, full.LineTotalAmount.IsZero())

	none := ApplyCustomerDiscount(line, money("-5"))
	assert.True(t, none.LineTotalAmount.Equal(line.LineAmount))
}

func TestAggregateTotals_Empty(t *testing.T) {
	got := AggregateTotals(nil, money("10"))

	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.TotalTaxAmount.IsZero())
	assert.True(t, got.TotalBeforeDiscount.IsZero())
	assert.True(t, got.DiscountAmount.IsZero())
	assert.True(t, got.GrandTotal.IsZero())
}

func TestAggregateTotals_NoCustomerDiscount(t *testing.T) {
	lines := []LineResult{
		{LineAmount: money("50")},
		{LineAmount: money("75")},
	}

	got := AggregateTotals(lines, money("0"))

	assert.True(t, got.Subtotal.Equal(money("125")))
	assert.True(t, got.GrandTotal.Equal(money("125")))
}

func TestAggregateTotals_CustomerDiscountOnTaxInclusiveTotal(t *testing.T) {
	lines := []LineResult{
		ComputeLine(LineInput{BasePrice: money("100"), TaxMode: TaxExclusive, Tax1: gst18(), Quantity: 1}),
		ComputeLine(LineInput{BasePrice: money("200"), TaxMode: TaxInclusive, Quantity: 1}),
	}

	got := AggregateTotals(lines, money("10"))

	assert.True(t, got.Subtotal.Equal(money("300")), "subtotal = %s", got.Subtotal)
	assert.True(t, got.TotalTaxAmount.Equal(money("18")))
	assert.True(t, got.TotalBeforeDiscount.Equal(money("318")))
	assert.True(t, got.DiscountAmount.Equal(money("31.8")))
	assert.True(t, got.GrandTotal.Equal(money("286.2")))
}
