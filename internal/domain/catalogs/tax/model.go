// Package tax provides the Tax catalog.
// Taxes are named GST-style percentage rates referenced by products and
// document lines (two independent slots per line, additive).
package tax

import (
	"context"

	"github.com/shopspring/decimal"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/entity"
	"aromapos/internal/core/types"
	"aromapos/internal/pricing"
)

// Tax represents a named tax rate.
type Tax struct {
	entity.Catalog

	// Rate is the percentage in [0, 100]
	Rate types.Money `db:"rate" json:"rate"`

	// Description is a free-form note
	Description *string `db:"description" json:"description,omitempty"`
}

// NewTax creates a new Tax with required fields.
func NewTax(code, name string, rate types.Money) *Tax {
	return &Tax{
		Catalog: entity.NewCatalog(code, name),
		Rate:    rate,
	}
}

// Validate implements entity.Validatable interface.
func (t *Tax) Validate(ctx context.Context) error {
	if err := t.Catalog.Validate(ctx); err != nil {
		return err
	}

	if t.Rate.IsNegative() {
		return apperror.NewValidation("rate cannot be negative").
			WithDetail("field", "rate")
	}
	if t.Rate.GreaterThan(decimal.NewFromInt(100)) {
		return apperror.NewValidation("rate cannot exceed 100").
			WithDetail("field", "rate")
	}

	return nil
}

// ToRate converts the catalog entry into the pricing engine's value type.
func (t *Tax) ToRate() *pricing.TaxRate {
	if t == nil {
		return nil
	}
	return &pricing.TaxRate{Name: t.Name, Rate: t.Rate}
}

// Display renders the human form, e.g. "GST (18%)".
func (t *Tax) Display() string {
	return pricing.FormatTaxDisplay(t.ToRate(), "")
}
