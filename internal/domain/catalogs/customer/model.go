// Package customer provides the Customer catalog.
// Customers may hold a privilege card whose percentage is applied to the
// post-tax total when they check out.
package customer

import (
	"context"
	"strings"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/entity"
	"aromapos/internal/core/id"
)

// Customer represents a shop customer.
type Customer struct {
	entity.Catalog

	Address string `db:"address" json:"address"`
	Place   string `db:"place" json:"place"`
	PINCode string `db:"pin_code" json:"pinCode"`

	// Email and Phone are unique contact identifiers
	Email string `db:"email" json:"email"`
	Phone string `db:"phone" json:"phone"`

	// PrivilegeCardID references the loyalty card, if any
	PrivilegeCardID *id.ID `db:"privilege_card_id" json:"privilegeCardId,omitempty"`
}

// NewCustomer creates a new Customer.
func NewCustomer(code, name string) *Customer {
	return &Customer{Catalog: entity.NewCatalog(code, name)}
}

// Validate implements entity.Validatable interface.
func (c *Customer) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if c.Email != "" && !strings.Contains(c.Email, "@") {
		return apperror.NewValidation("invalid email").
			WithDetail("field", "email")
	}

	return nil
}
