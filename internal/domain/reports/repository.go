package reports

import (
	"context"
)

// Repository defines report data access.
type Repository interface {
	GetSalesReport(ctx context.Context, filter SalesReportFilter) (*SalesReport, error)
	GetPurchaseReport(ctx context.Context, filter PurchaseReportFilter) (*PurchaseReport, error)
	GetStockBalanceReport(ctx context.Context, filter StockBalanceReportFilter) (*StockBalanceReport, error)

	GetDocumentJournal(ctx context.Context, filter DocumentJournalFilter) (*DocumentJournal, error)
	GetDocumentTypeSummary(ctx context.Context, filter DocumentJournalFilter) ([]DocumentTypeSummary, error)
}
