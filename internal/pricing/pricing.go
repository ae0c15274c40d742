// Package pricing implements the monetary computation pipeline shared by the
// product catalog, purchase entry and sales entry: base price -> product
// discount -> tax (inclusive or exclusive) -> quantity extension -> customer
// privilege discount. All functions are pure and deterministic; all amounts
// use decimal arithmetic and are rounded to 2 places only at result
// boundaries.
package pricing

import (
	"github.com/shopspring/decimal"

	"aromapos/internal/core/types"
)

// TaxMode controls whether tax is added on top of the discounted price.
type TaxMode string

const (
	// TaxInclusive means the listed price already contains tax. Tax amounts
	// are informational only: they are not added and the pre-tax base is not
	// back-calculated. Preserve this behavior; do not "fix" it to reverse-charge
	// semantics.
	TaxInclusive TaxMode = "INCLUSIVE"
	// TaxExclusive means tax is computed on the discounted base and added on top.
	TaxExclusive TaxMode = "EXCLUSIVE"
)

// Valid reports whether m is a known tax mode.
func (m TaxMode) Valid() bool {
	return m == TaxInclusive || m == TaxExclusive
}

// TaxRate is a named percentage rate in [0, 100]. Two independent slots may
// apply to a line; their amounts are additive and never compounded.
type TaxRate struct {
	Name string
	Rate types.Money
}

// LineInput is the immutable input of a single line computation. Callers
// validate raw input into this domain first; ComputeLine clamps defensively
// but never returns an error.
type LineInput struct {
	BasePrice       types.Money
	DiscountPercent types.Money
	TaxMode         TaxMode
	Tax1            *TaxRate
	Tax2            *TaxRate
	Quantity        int64
}

// LineResult is the fully resolved breakdown of one line. All fields are
// derived and rounded to 2 places; none are ever negative.
type LineResult struct {
	DiscountAmount     types.Money
	PriceAfterDiscount types.Money
	Tax1Amount         types.Money
	Tax2Amount         types.Money
	TotalTaxAmount     types.Money
	UnitFinalPrice     types.Money
	LineAmount         types.Money
	LineTaxAmount      types.Money
	LineTotalAmount    types.Money
}

// Totals is the document-level aggregation over a set of lines.
type Totals struct {
	Subtotal            types.Money
	TotalTaxAmount      types.Money
	TotalBeforeDiscount types.Money
	DiscountAmount      types.Money
	GrandTotal          types.Money
}

var hundred = decimal.NewFromInt(100)

// ComputeLine resolves a line's monetary breakdown. It is a total function:
// degenerate inputs are clamped (negative price to zero, discount into
// [0, 100], quantity below one to one, negative rates to zero) rather than
// rejected.
func ComputeLine(in LineInput) LineResult {
	base := clampNonNegative(in.BasePrice)
	pct := clampPercent(in.DiscountPercent)
	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}

	discount := base.Mul(pct).Div(hundred)
	afterDiscount := base.Sub(discount)

	var tax1, tax2 types.Money
	if in.TaxMode != TaxInclusive {
		tax1 = taxAmount(afterDiscount, in.Tax1)
		tax2 = taxAmount(afterDiscount, in.Tax2)
	}
	totalTax := tax1.Add(tax2)
	unitFinal := afterDiscount.Add(totalTax)

	// Extend by quantity before rounding so the line amount does not
	// accumulate per-unit rounding error.
	qtyDec := decimal.NewFromInt(qty)
	lineAmount := unitFinal.Mul(qtyDec)
	lineTax := totalTax.Mul(qtyDec)

	return LineResult{
		DiscountAmount:     round2(discount),
		PriceAfterDiscount: round2(afterDiscount),
		Tax1Amount:         round2(tax1),
		Tax2Amount:         round2(tax2),
		TotalTaxAmount:     round2(totalTax),
		UnitFinalPrice:     round2(unitFinal),
		LineAmount:         round2(lineAmount),
		LineTaxAmount:      round2(lineTax),
		LineTotalAmount:    round2(lineAmount),
	}
}

// ApplyCustomerDiscount layers a privilege-card percentage on top of an
// already computed line. The customer discount always applies to the post-tax
// line total, never to the pre-tax base; product discount and tax are resolved
// first. This ordering is a business rule: changing it changes the effective
// discount a customer receives.
func ApplyCustomerDiscount(r LineResult, customerDiscountPercent types.Money) LineResult {
	pct := clampPercent(customerDiscountPercent)
	factor := decimal.NewFromInt(1).Sub(pct.Div(hundred))
	r.LineTotalAmount = round2(r.LineAmount.Mul(factor))
	return r
}

// AggregateTotals sums line results into document totals. The customer-level
// discount percentage applies to the tax-inclusive total; pass zero for
// documents that carry no customer discount (purchases).
func AggregateTotals(lines []LineResult, customerDiscountPercent types.Money) Totals {
	subtotal := decimal.Zero
	totalTax := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineAmount.Sub(l.LineTaxAmount))
		totalTax = totalTax.Add(l.LineTaxAmount)
	}
	beforeDiscount := subtotal.Add(totalTax)

	pct := clampPercent(customerDiscountPercent)
	discount := beforeDiscount.Mul(pct).Div(hundred)

	return Totals{
		Subtotal:            round2(subtotal),
		TotalTaxAmount:      round2(totalTax),
		TotalBeforeDiscount: round2(beforeDiscount),
		DiscountAmount:      round2(discount),
		GrandTotal:          round2(beforeDiscount.Sub(discount)),
	}
}

func taxAmount(base types.Money, rate *TaxRate) types.Money {
	if rate == nil {
		return decimal.Zero
	}
	return base.Mul(clampNonNegative(rate.Rate)).Div(hundred)
}

func clampNonNegative(v types.Money) types.Money {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

func clampPercent(v types.Money) types.Money {
	if v.IsNegative() {
		return decimal.Zero
	}
	if v.GreaterThan(hundred) {
		return hundred
	}
	return v
}

func round2(v types.Money) types.Money {
	return v.Round(2)
}
