package dto

import (
	"time"

	"aromapos/internal/core/types"
	"aromapos/internal/domain/catalogs/supplier"
)

// CreateSupplierRequest is the request body for creating a supplier.
type CreateSupplierRequest struct {
	Code           string      `json:"code"`
	Name           string      `json:"name" binding:"required"`
	Address        string      `json:"address"`
	City           string      `json:"city"`
	Phone          string      `json:"phone"`
	Email          string      `json:"email"`
	GSTIN          string      `json:"gstin"`
	BankName       string      `json:"bankName"`
	BankAccount    string      `json:"bankAccount"`
	IFSC           string      `json:"ifsc"`
	OpeningBalance types.Money `json:"openingBalance"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateSupplierRequest) ToEntity() *supplier.Supplier {
	s := supplier.NewSupplier(r.Code, r.Name)
	s.Address = r.Address
	s.City = r.City
	s.Phone = r.Phone
	s.Email = r.Email
	s.GSTIN = r.GSTIN
	s.BankName = r.BankName
	s.BankAccount = r.BankAccount
	s.IFSC = r.IFSC
	s.OpeningBalance = r.OpeningBalance
	s.CurrentBalance = r.OpeningBalance
	return s
}

// UpdateSupplierRequest is the request body for updating a supplier.
type UpdateSupplierRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	GSTIN       string `json:"gstin"`
	BankName    string `json:"bankName"`
	BankAccount string `json:"bankAccount"`
	IFSC        string `json:"ifsc"`
	Version     int    `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity. Balances are maintained by
// the ledger and cannot be edited directly.
func (r *UpdateSupplierRequest) ApplyTo(s *supplier.Supplier) {
	s.Code = r.Code
	s.Name = r.Name
	s.Address = r.Address
	s.City = r.City
	s.Phone = r.Phone
	s.Email = r.Email
	s.GSTIN = r.GSTIN
	s.BankName = r.BankName
	s.BankAccount = r.BankAccount
	s.IFSC = r.IFSC
	s.Version = r.Version
}

// SupplierResponse is the response body for a supplier.
type SupplierResponse struct {
	CatalogResponse
	Address        string      `json:"address,omitempty"`
	City           string      `json:"city,omitempty"`
	Phone          string      `json:"phone,omitempty"`
	Email          string      `json:"email,omitempty"`
	GSTIN          string      `json:"gstin,omitempty"`
	BankName       string      `json:"bankName,omitempty"`
	BankAccount    string      `json:"bankAccount,omitempty"`
	IFSC           string      `json:"ifsc,omitempty"`
	OpeningBalance types.Money `json:"openingBalance"`
	CurrentBalance types.Money `json:"currentBalance"`
}

// FromSupplier creates response DTO from domain entity.
func FromSupplier(s *supplier.Supplier) *SupplierResponse {
	return &SupplierResponse{
		CatalogResponse: FromCatalog(s.Catalog),
		Address:         s.Address,
		City:            s.City,
		Phone:           s.Phone,
		Email:           s.Email,
		GSTIN:           s.GSTIN,
		BankName:        s.BankName,
		BankAccount:     s.BankAccount,
		IFSC:            s.IFSC,
		OpeningBalance:  s.OpeningBalance,
		CurrentBalance:  s.CurrentBalance,
	}
}

// --- Ledger ---

// CreateSupplierPaymentRequest records a payment made to a supplier.
type CreateSupplierPaymentRequest struct {
	Amount      types.Money `json:"amount" binding:"required"`
	PaymentMode string      `json:"paymentMode"`
	Remarks     string      `json:"remarks"`
	Date        *time.Time  `json:"date"`
}

// SupplierTransactionResponse is the response body for a ledger entry.
type SupplierTransactionResponse struct {
	ID           string      `json:"id"`
	SupplierID   string      `json:"supplierId"`
	Number       string      `json:"number"`
	Date         time.Time   `json:"date"`
	Kind         string      `json:"kind"`
	Amount       types.Money `json:"amount"`
	PaymentMode  string      `json:"paymentMode,omitempty"`
	Remarks      string      `json:"remarks,omitempty"`
	BalanceAfter types.Money `json:"balanceAfter"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// FromSupplierTransaction creates response DTO from a ledger entry.
func FromSupplierTransaction(t *supplier.Transaction) *SupplierTransactionResponse {
	return &SupplierTransactionResponse{
		ID:           t.ID.String(),
		SupplierID:   t.SupplierID.String(),
		Number:       t.Number,
		Date:         t.Date,
		Kind:         string(t.Kind),
		Amount:       t.Amount,
		PaymentMode:  t.PaymentMode,
		Remarks:      t.Remarks,
		BalanceAfter: t.BalanceAfter,
		CreatedAt:    t.CreatedAt,
	}
}
