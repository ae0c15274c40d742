// Package unit provides the Unit catalog.
// Units describe how products are counted on purchase and sale lines.
package unit

import (
	"context"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/entity"
)

// UnitType defines which document side a unit applies to.
type UnitType string

const (
	TypeSale     UnitType = "SALE"
	TypePurchase UnitType = "PURCHASE"
	TypeBoth     UnitType = "BOTH"
)

// Unit represents a measurement unit.
type Unit struct {
	entity.Catalog

	// Type restricts where the unit may be used
	Type UnitType `db:"type" json:"type"`

	// Symbol is the short symbol (e.g., "ml", "pcs")
	Symbol string `db:"symbol" json:"symbol"`

	// Description is a free-form note
	Description *string `db:"description" json:"description,omitempty"`
}

// NewUnit creates a new Unit with required fields.
func NewUnit(code, name, symbol string, unitType UnitType) *Unit {
	return &Unit{
		Catalog: entity.NewCatalog(code, name),
		Type:    unitType,
		Symbol:  symbol,
	}
}

// Validate implements entity.Validatable interface.
func (u *Unit) Validate(ctx context.Context) error {
	if err := u.Catalog.Validate(ctx); err != nil {
		return err
	}

	if u.Symbol == "" {
		return apperror.NewValidation("symbol is required").
			WithDetail("field", "symbol")
	}

	switch u.Type {
	case TypeSale, TypePurchase, TypeBoth:
	default:
		return apperror.NewValidation("invalid unit type").
			WithDetail("field", "type").
			WithDetail("value", string(u.Type))
	}

	return nil
}

// UsableFor reports whether the unit may appear on the given document side.
func (u *Unit) UsableFor(t UnitType) bool {
	return u.Type == TypeBoth || u.Type == t
}
