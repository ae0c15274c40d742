package reports

import (
	"context"
	"fmt"
	"time"

	"aromapos/internal/core/apperror"
)

// Service provides report generation operations.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func validatePeriod(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return apperror.NewValidation("fromDate and toDate are required")
	}
	if from.After(to) {
		return apperror.NewValidation("fromDate must be before toDate")
	}
	return nil
}

// GetSales generates the sales report for a period.
func (s *Service) GetSales(ctx context.Context, filter SalesReportFilter) (*SalesReport, error) {
	if err := validatePeriod(filter.FromDate, filter.ToDate); err != nil {
		return nil, err
	}
	filter.Limit = clampLimit(filter.Limit, 100, 1000)

	report, err := s.repo.GetSalesReport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get sales report: %w", err)
	}

	return report, nil
}

// GetPurchases generates the purchase report for a period.
func (s *Service) GetPurchases(ctx context.Context, filter PurchaseReportFilter) (*PurchaseReport, error) {
	if err := validatePeriod(filter.FromDate, filter.ToDate); err != nil {
		return nil, err
	}
	filter.Limit = clampLimit(filter.Limit, 100, 1000)

	report, err := s.repo.GetPurchaseReport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get purchase report: %w", err)
	}

	return report, nil
}

// GetStockBalance generates the stock balance report.
func (s *Service) GetStockBalance(ctx context.Context, filter StockBalanceReportFilter) (*StockBalanceReport, error) {
	if filter.AsOfDate == nil {
		now := time.Now()
		filter.AsOfDate = &now
	}
	filter.Limit = clampLimit(filter.Limit, 100, 1000)

	report, err := s.repo.GetStockBalanceReport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get stock balance report: %w", err)
	}

	return report, nil
}

// GetDocumentJournal returns the merged sales/purchases journal.
func (s *Service) GetDocumentJournal(ctx context.Context, filter DocumentJournalFilter) (*DocumentJournal, error) {
	filter.Limit = clampLimit(filter.Limit, 50, 500)

	if filter.SortBy == "" {
		filter.SortBy = "date"
	}
	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	journal, err := s.repo.GetDocumentJournal(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get document journal: %w", err)
	}

	// Summary only on the first page
	if filter.Offset == 0 {
		summary, err := s.repo.GetDocumentTypeSummary(ctx, filter)
		if err == nil {
			journal.Summary = summary
		}
	}

	return journal, nil
}
