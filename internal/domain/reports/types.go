// Package reports provides report generation services.
package reports

import (
	"time"

	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
)

// --- Sales Report ---

// SalesReportFilter defines the filter for the sales report.
type SalesReportFilter struct {
	// Period (required)
	FromDate time.Time
	ToDate   time.Time

	// Filters
	CustomerID    *id.ID
	PaymentMethod *string

	// IncludeReturns folds sales returns into the figures as negatives
	IncludeReturns bool

	Limit  int
	Offset int
}

// SalesReportRow is a per-day summary line.
type SalesReportRow struct {
	Date         time.Time   `json:"date"`
	InvoiceCount int         `json:"invoiceCount"`
	Subtotal     types.Money `json:"subtotal"`
	TaxAmount    types.Money `json:"taxAmount"`
	Discount     types.Money `json:"discount"`
	Total        types.Money `json:"total"`
}

// PaymentMethodSummary groups sale totals by payment method.
type PaymentMethodSummary struct {
	PaymentMethod string      `json:"paymentMethod"`
	InvoiceCount  int         `json:"invoiceCount"`
	Total         types.Money `json:"total"`
}

// SalesReport is the full sales report.
type SalesReport struct {
	FromDate time.Time `json:"fromDate"`
	ToDate   time.Time `json:"toDate"`

	Rows       []SalesReportRow       `json:"rows"`
	ByPayment  []PaymentMethodSummary `json:"byPayment"`
	TotalItems int                    `json:"totalItems"`

	// Summary
	InvoiceCount  int         `json:"invoiceCount"`
	Subtotal      types.Money `json:"subtotal"`
	TotalTax      types.Money `json:"totalTax"`
	TotalDiscount types.Money `json:"totalDiscount"`
	GrandTotal    types.Money `json:"grandTotal"`
}

// --- Purchase Report ---

// PurchaseReportFilter defines the filter for the purchase report.
type PurchaseReportFilter struct {
	// Period (required)
	FromDate time.Time
	ToDate   time.Time

	SupplierID  *id.ID
	PaymentType *string

	IncludeReturns bool

	Limit  int
	Offset int
}

// PurchaseReportRow is a per-supplier summary line.
type PurchaseReportRow struct {
	SupplierID   id.ID       `json:"supplierId"`
	SupplierName string      `json:"supplierName"`
	EntryCount   int         `json:"entryCount"`
	TaxAmount    types.Money `json:"taxAmount"`
	Total        types.Money `json:"total"`
}

// PurchaseReport is the full purchase report.
type PurchaseReport struct {
	FromDate time.Time `json:"fromDate"`
	ToDate   time.Time `json:"toDate"`

	Rows       []PurchaseReportRow `json:"rows"`
	TotalItems int                 `json:"totalItems"`

	EntryCount int         `json:"entryCount"`
	TotalTax   types.Money `json:"totalTax"`
	GrandTotal types.Money `json:"grandTotal"`
}

// --- Stock Balance Report ---

// StockBalanceReportFilter defines the filter for the stock balance report.
type StockBalanceReportFilter struct {
	// AsOfDate - report date (defaults to now)
	AsOfDate *time.Time

	ProductIDs  []id.ID
	CategoryID  *id.ID
	ExcludeZero bool

	// LowStockLevel marks rows at or below this quantity
	LowStockLevel *types.Quantity

	Limit  int
	Offset int
}

// StockBalanceReportItem is a single row in the stock balance report.
type StockBalanceReportItem struct {
	ProductID   id.ID          `json:"productId"`
	ProductName string         `json:"productName"`
	ProductCode string         `json:"productCode"`
	Barcode     string         `json:"barcode,omitempty"`
	UnitSymbol  string         `json:"unitSymbol,omitempty"`
	Quantity    types.Quantity `json:"quantity"`
	LowStock    bool           `json:"lowStock"`
}

// StockBalanceReport is the full stock balance report.
type StockBalanceReport struct {
	AsOfDate   time.Time                `json:"asOfDate"`
	Items      []StockBalanceReportItem `json:"items"`
	TotalItems int                      `json:"totalItems"`

	TotalQuantity types.Quantity `json:"totalQuantity"`
	LowStockCount int            `json:"lowStockCount"`
}

// --- Document Journal ---

// DocumentJournalFilter defines the filter for the document journal.
type DocumentJournalFilter struct {
	FromDate *time.Time
	ToDate   *time.Time

	// DocumentTypes: "Sale", "Purchase"
	DocumentTypes []string

	Posted   *bool
	IsReturn *bool

	// Counterparty: customer for sales, supplier for purchases
	CounterpartyID *id.ID

	NumberContains string

	SortBy    string // "date", "number", "type", "amount"
	SortOrder string // "asc", "desc"

	Limit  int
	Offset int
}

// DocumentJournalItem is a document in the journal.
type DocumentJournalItem struct {
	ID           id.ID     `json:"id"`
	DocumentType string    `json:"documentType"`
	Number       string    `json:"number"`
	Date         time.Time `json:"date"`
	Posted       bool      `json:"posted"`
	IsReturn     bool      `json:"isReturn"`

	CounterpartyID   *id.ID `json:"counterpartyId,omitempty"`
	CounterpartyName string `json:"counterpartyName,omitempty"`

	TotalAmount types.Money `json:"totalAmount"`

	DeletionMark bool      `json:"deletionMark"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DocumentJournal is the journal result.
type DocumentJournal struct {
	Items      []DocumentJournalItem `json:"items"`
	TotalCount int                   `json:"totalCount"`
	Limit      int                   `json:"limit"`
	Offset     int                   `json:"offset"`

	Summary []DocumentTypeSummary `json:"summary,omitempty"`
}

// DocumentTypeSummary provides count and totals by document type.
type DocumentTypeSummary struct {
	DocumentType string      `json:"documentType"`
	Count        int         `json:"count"`
	PostedCount  int         `json:"postedCount"`
	TotalAmount  types.Money `json:"totalAmount"`
}
