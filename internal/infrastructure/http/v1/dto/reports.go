package dto

import "time"

// SalesReportRequest are the query parameters of the sales report.
type SalesReportRequest struct {
	FromDate       time.Time `form:"fromDate" time_format:"2006-01-02" binding:"required"`
	ToDate         time.Time `form:"toDate" time_format:"2006-01-02" binding:"required"`
	CustomerID     string    `form:"customerId"`
	PaymentMethod  string    `form:"paymentMethod"`
	IncludeReturns bool      `form:"includeReturns"`
	Limit          int       `form:"limit"`
	Offset         int       `form:"offset"`
}

// PurchaseReportRequest are the query parameters of the purchase report.
type PurchaseReportRequest struct {
	FromDate       time.Time `form:"fromDate" time_format:"2006-01-02" binding:"required"`
	ToDate         time.Time `form:"toDate" time_format:"2006-01-02" binding:"required"`
	SupplierID     string    `form:"supplierId"`
	PaymentType    string    `form:"paymentType"`
	IncludeReturns bool      `form:"includeReturns"`
	Limit          int       `form:"limit"`
	Offset         int       `form:"offset"`
}

// StockBalanceReportRequest are the query parameters of the stock report.
type StockBalanceReportRequest struct {
	AsOfDate      *time.Time `form:"asOfDate" time_format:"2006-01-02"`
	ProductIDs    []string   `form:"productIds"`
	CategoryID    string     `form:"categoryId"`
	ExcludeZero   bool       `form:"excludeZero"`
	LowStockLevel *float64   `form:"lowStockLevel"`
	Limit         int        `form:"limit"`
	Offset        int        `form:"offset"`
}

// DocumentJournalRequest are the query parameters of the document journal.
type DocumentJournalRequest struct {
	FromDate       *time.Time `form:"fromDate" time_format:"2006-01-02"`
	ToDate         *time.Time `form:"toDate" time_format:"2006-01-02"`
	DocumentTypes  []string   `form:"documentTypes"`
	Posted         *bool      `form:"posted"`
	IsReturn       *bool      `form:"isReturn"`
	CounterpartyID string     `form:"counterpartyId"`
	Number         string     `form:"number"`
	SortBy         string     `form:"sortBy"`
	SortOrder      string     `form:"sortOrder"`
	Limit          int        `form:"limit"`
	Offset         int        `form:"offset"`
}
