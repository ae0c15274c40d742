// Package supplier provides the Supplier catalog and its transaction ledger.
// The ledger tracks what the shop owes each supplier: credit purchases push
// the balance up, payments (debits) bring it down.
package supplier

import (
	"context"
	"strings"
	"time"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/entity"
	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
)

// Supplier represents a goods supplier.
type Supplier struct {
	entity.Catalog

	Address string `db:"address" json:"address"`
	City    string `db:"city" json:"city"`
	Phone   string `db:"phone" json:"phone"`
	Email   string `db:"email" json:"email"`

	// GSTIN is the supplier's GST registration
	GSTIN string `db:"gstin" json:"gstin"`

	// Bank details for payments
	BankName    string `db:"bank_name" json:"bankName"`
	BankAccount string `db:"bank_account" json:"bankAccount"`
	IFSC        string `db:"ifsc" json:"ifsc"`

	// OpeningBalance is the amount owed when the supplier was first recorded
	OpeningBalance types.Money `db:"opening_balance" json:"openingBalance"`

	// CurrentBalance is the amount currently owed; maintained by the ledger
	CurrentBalance types.Money `db:"current_balance" json:"currentBalance"`
}

// NewSupplier creates a new Supplier.
func NewSupplier(code, name string) *Supplier {
	return &Supplier{Catalog: entity.NewCatalog(code, name)}
}

// Validate implements entity.Validatable interface.
func (s *Supplier) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}

	if s.Email != "" && !strings.Contains(s.Email, "@") {
		return apperror.NewValidation("invalid email").
			WithDetail("field", "email")
	}

	return nil
}

// TransactionKind is the ledger entry direction.
type TransactionKind string

const (
	// KindCredit increases the balance owed (goods received on credit)
	KindCredit TransactionKind = "credit"
	// KindDebit decreases the balance owed (payment made)
	KindDebit TransactionKind = "debit"
)

// Transaction is a single supplier ledger entry.
type Transaction struct {
	ID         id.ID           `db:"id" json:"id"`
	SupplierID id.ID           `db:"supplier_id" json:"supplierId"`
	Number     string          `db:"number" json:"number"`
	Date       time.Time       `db:"date" json:"date"`
	Kind       TransactionKind `db:"kind" json:"kind"`
	Amount     types.Money     `db:"amount" json:"amount"`

	// PaymentMode for debits: cash, bank, upi, cheque
	PaymentMode string `db:"payment_mode" json:"paymentMode,omitempty"`

	Remarks string `db:"remarks" json:"remarks,omitempty"`

	// BalanceAfter is the supplier balance after applying this entry
	BalanceAfter types.Money `db:"balance_after" json:"balanceAfter"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	CreatedBy string    `db:"created_by" json:"createdBy,omitempty"`
}

// Validate checks ledger entry invariants.
func (t *Transaction) Validate(ctx context.Context) error {
	if id.IsNil(t.SupplierID) {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "supplierId")
	}
	if !t.Amount.IsPositive() {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount")
	}
	switch t.Kind {
	case KindCredit, KindDebit:
	default:
		return apperror.NewValidation("invalid transaction kind").
			WithDetail("field", "kind").
			WithDetail("value", string(t.Kind))
	}
	return nil
}

// SignedAmount returns the balance delta this entry applies.
func (t *Transaction) SignedAmount() types.Money {
	if t.Kind == KindDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}
