// Package product provides the Product catalog.
// A product carries the pricing inputs (MRP, discount percent, two tax slots,
// tax mode) that feed the pricing engine on purchase and sale lines.
package product

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/entity"
	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
	"aromapos/internal/pricing"
)

// Product represents an item sold by the shop.
type Product struct {
	entity.Catalog

	// HSNCode is the tax-classification identifier for the goods
	HSNCode string `db:"hsn_code" json:"hsnCode"`

	// CategoryID references the product category
	CategoryID *id.ID `db:"category_id" json:"categoryId,omitempty"`

	// UnitID references the sale unit
	UnitID *id.ID `db:"unit_id" json:"unitId,omitempty"`

	// Description is a detailed description
	Description *string `db:"description" json:"description,omitempty"`

	// MRP is the undiscounted listed price
	MRP types.Money `db:"mrp" json:"mrp"`

	// DiscountPercent is the product-level discount in [0, 100]
	DiscountPercent types.Money `db:"discount_percent" json:"discountPercent"`

	// PurchaseRate is the default rate on purchase lines
	PurchaseRate types.Money `db:"purchase_rate" json:"purchaseRate"`

	// Tax slots; both optional, must reference distinct taxes
	Tax1ID *id.ID `db:"tax1_id" json:"tax1Id,omitempty"`
	Tax2ID *id.ID `db:"tax2_id" json:"tax2Id,omitempty"`

	// TaxMode controls whether tax is added on top of the discounted price
	TaxMode pricing.TaxMode `db:"tax_mode" json:"taxMode"`

	// OpeningStock is the quantity on hand when the product was first recorded
	OpeningStock types.Quantity `db:"opening_stock" json:"openingStock"`

	// Barcode is generated from the code and name when not supplied
	Barcode string `db:"barcode" json:"barcode"`

	// Active products appear in entry screens
	Active bool `db:"active" json:"active"`
}

// NewProduct creates a new Product with required fields.
func NewProduct(code, name string, mrp types.Money) *Product {
	return &Product{
		Catalog:         entity.NewCatalog(code, name),
		MRP:             mrp,
		TaxMode:         pricing.TaxInclusive,
		DiscountPercent: decimal.Zero,
		Active:          true,
	}
}

// Validate implements entity.Validatable interface.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.MRP.IsNegative() {
		return apperror.NewValidation("mrp cannot be negative").
			WithDetail("field", "mrp")
	}

	if p.DiscountPercent.IsNegative() || p.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return apperror.NewValidation("discount must be between 0 and 100").
			WithDetail("field", "discountPercent")
	}

	if !p.TaxMode.Valid() {
		return apperror.NewValidation("invalid tax mode").
			WithDetail("field", "taxMode").
			WithDetail("value", string(p.TaxMode))
	}

	// The same tax in both slots is guarded at input time; re-check here so a
	// raw API client cannot slip it past the form.
	if p.Tax1ID != nil && p.Tax2ID != nil && *p.Tax1ID == *p.Tax2ID {
		return apperror.NewValidation("tax slots must reference distinct taxes").
			WithDetail("field", "tax2Id")
	}

	if p.OpeningStock.IsNegative() {
		return apperror.NewValidation("opening stock cannot be negative").
			WithDetail("field", "openingStock")
	}

	return nil
}

// GenerateBarcode derives the display barcode from code and name.
// Pattern: COMP-<code>-<first five alphanumerics of the upper-cased name>.
func (p *Product) GenerateBarcode() string {
	var b strings.Builder
	for _, r := range strings.ToUpper(p.Name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() >= 5 {
				break
			}
		}
	}
	return "COMP-" + p.Code + "-" + b.String()
}
