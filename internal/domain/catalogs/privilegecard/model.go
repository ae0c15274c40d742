// Package privilegecard provides the PrivilegeCard catalog.
// A card is a loyalty tier carrying the flat percentage discount applied to a
// sale's tax-inclusive total at checkout.
package privilegecard

import (
	"context"

	"github.com/shopspring/decimal"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/entity"
	"aromapos/internal/core/types"
)

// Tier is the loyalty level of a card.
type Tier string

const (
	TierPremium  Tier = "PREMIUM"
	TierStandard Tier = "STANDARD"
	TierBasic    Tier = "BASIC"
)

// PrivilegeCard represents a loyalty card tier definition.
type PrivilegeCard struct {
	entity.Catalog

	// Tier is the loyalty level
	Tier Tier `db:"tier" json:"tier"`

	// DiscountPercent in (0, 100], applied after tax at sale time
	DiscountPercent types.Money `db:"discount_percent" json:"discountPercent"`

	// Active cards can be attached to customers
	Active bool `db:"active" json:"active"`
}

// NewPrivilegeCard creates a new card definition.
func NewPrivilegeCard(code, name string, tier Tier, discount types.Money) *PrivilegeCard {
	return &PrivilegeCard{
		Catalog:         entity.NewCatalog(code, name),
		Tier:            tier,
		DiscountPercent: discount,
		Active:          true,
	}
}

// Validate implements entity.Validatable interface.
func (p *PrivilegeCard) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	switch p.Tier {
	case TierPremium, TierStandard, TierBasic:
	default:
		return apperror.NewValidation("invalid tier").
			WithDetail("field", "tier").
			WithDetail("value", string(p.Tier))
	}

	if !p.DiscountPercent.IsPositive() {
		return apperror.NewValidation("discount must be positive").
			WithDetail("field", "discountPercent")
	}
	if p.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return apperror.NewValidation("discount cannot exceed 100").
			WithDetail("field", "discountPercent")
	}

	return nil
}
