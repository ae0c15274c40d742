package dto

import (
	"strings"

	"aromapos/internal/core/types"
	"aromapos/internal/pricing"
)

// PricePreviewTax is one tax slot in a raw price preview.
type PricePreviewTax struct {
	Name string      `json:"name"`
	Rate types.Money `json:"rate"`
}

// PricePreviewRequest computes a line breakdown from raw inputs, without
// touching the product catalog. Used by entry screens before a product is
// saved. Tax slots may arrive structured (tax1) or as a pre-rendered
// "Name (NN%)" string (tax1Display); the structured form wins when both
// are present.
type PricePreviewRequest struct {
	BasePrice               types.Money      `json:"basePrice" binding:"required"`
	DiscountPercent         types.Money      `json:"discountPercent"`
	TaxMode                 pricing.TaxMode  `json:"taxMode"`
	Tax1                    *PricePreviewTax `json:"tax1"`
	Tax2                    *PricePreviewTax `json:"tax2"`
	Tax1Display             string           `json:"tax1Display"`
	Tax2Display             string           `json:"tax2Display"`
	Quantity                int64            `json:"quantity"`
	CustomerDiscountPercent types.Money      `json:"customerDiscountPercent"`
}

// ToLineInput converts the request into a pricing engine input.
func (r *PricePreviewRequest) ToLineInput() pricing.LineInput {
	mode := r.TaxMode
	if mode == "" {
		mode = pricing.TaxInclusive
	}
	qty := r.Quantity
	if qty < 1 {
		qty = 1
	}
	return pricing.LineInput{
		BasePrice:       r.BasePrice,
		DiscountPercent: r.DiscountPercent,
		TaxMode:         mode,
		Tax1:            toTaxRate(r.Tax1, r.Tax1Display),
		Tax2:            toTaxRate(r.Tax2, r.Tax2Display),
		Quantity:        qty,
	}
}

func toTaxRate(t *PricePreviewTax, display string) *pricing.TaxRate {
	if t != nil {
		return &pricing.TaxRate{Name: t.Name, Rate: t.Rate}
	}
	if display == "" || display == pricing.NoTaxDisplay {
		return nil
	}

	rate := pricing.ExtractTaxRate(nil, display)
	if rate.IsZero() {
		return nil
	}

	name := display
	if i := strings.LastIndex(display, " ("); i > 0 {
		name = display[:i]
	}
	return &pricing.TaxRate{Name: name, Rate: rate}
}
