// Package report_repo provides PostgreSQL implementations for report repositories.
package report_repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"aromapos/internal/core/types"
	"aromapos/internal/domain/reports"
	"aromapos/internal/infrastructure/storage/postgres"
)

// ReportRepo implements reports.Repository.
type ReportRepo struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txm *postgres.TxManager) *ReportRepo {
	return &ReportRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetSalesReport aggregates posted sales per day plus payment method totals.
func (r *ReportRepo) GetSalesReport(ctx context.Context, filter reports.SalesReportFilter) (*reports.SalesReport, error) {
	conditions := "s.posted = true AND s.deletion_mark = false AND s.date >= $1 AND s.date < $2"
	args := []any{filter.FromDate, filter.ToDate}
	argIndex := 3

	if !filter.IncludeReturns {
		conditions += " AND s.is_return = false"
	}
	if filter.CustomerID != nil {
		conditions += fmt.Sprintf(" AND s.customer_id = $%d", argIndex)
		args = append(args, *filter.CustomerID)
		argIndex++
	}
	if filter.PaymentMethod != nil {
		conditions += fmt.Sprintf(" AND s.payment_method = $%d", argIndex)
		args = append(args, *filter.PaymentMethod)
		argIndex++
	}

	// Returns count against the day with negated amounts.
	sign := "CASE WHEN s.is_return THEN -1 ELSE 1 END"

	query := fmt.Sprintf(`
		SELECT
			date_trunc('day', s.date) AS date,
			COUNT(*) AS invoice_count,
			COALESCE(SUM(s.subtotal * (%[1]s)), 0) AS subtotal,
			COALESCE(SUM(s.total_tax * (%[1]s)), 0) AS tax_amount,
			COALESCE(SUM(s.discount_amount * (%[1]s)), 0) AS discount,
			COALESCE(SUM(s.grand_total * (%[1]s)), 0) AS total
		FROM doc_sales s
		WHERE %[2]s
		GROUP BY date_trunc('day', s.date)
		ORDER BY date
	`, sign, conditions)

	querier := r.txm.GetQuerier(ctx)
	var rows []reports.SalesReportRow
	if err := pgxscan.Select(ctx, querier, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("sales report: %w", err)
	}

	paymentQuery := fmt.Sprintf(`
		SELECT
			s.payment_method AS payment_method,
			COUNT(*) AS invoice_count,
			COALESCE(SUM(s.grand_total * (%s)), 0) AS total
		FROM doc_sales s
		WHERE %s
		GROUP BY s.payment_method
		ORDER BY s.payment_method
	`, sign, conditions)

	var byPayment []reports.PaymentMethodSummary
	if err := pgxscan.Select(ctx, querier, &byPayment, paymentQuery, args...); err != nil {
		return nil, fmt.Errorf("sales report by payment: %w", err)
	}

	report := &reports.SalesReport{
		FromDate:   filter.FromDate,
		ToDate:     filter.ToDate,
		Rows:       rows,
		ByPayment:  byPayment,
		TotalItems: len(rows),
		Subtotal:   types.Zero(),
		TotalTax:   types.Zero(),
	}
	report.TotalDiscount = types.Zero()
	report.GrandTotal = types.Zero()
	for _, row := range rows {
		report.InvoiceCount += row.InvoiceCount
		report.Subtotal = report.Subtotal.Add(row.Subtotal)
		report.TotalTax = report.TotalTax.Add(row.TaxAmount)
		report.TotalDiscount = report.TotalDiscount.Add(row.Discount)
		report.GrandTotal = report.GrandTotal.Add(row.Total)
	}

	return report, nil
}

// GetPurchaseReport aggregates posted purchases per supplier.
func (r *ReportRepo) GetPurchaseReport(ctx context.Context, filter reports.PurchaseReportFilter) (*reports.PurchaseReport, error) {
	conditions := "p.posted = true AND p.deletion_mark = false AND p.date >= $1 AND p.date < $2"
	args := []any{filter.FromDate, filter.ToDate}
	argIndex := 3

	if !filter.IncludeReturns {
		conditions += " AND p.is_return = false"
	}
	if filter.SupplierID != nil {
		conditions += fmt.Sprintf(" AND p.supplier_id = $%d", argIndex)
		args = append(args, *filter.SupplierID)
		argIndex++
	}
	if filter.PaymentType != nil {
		conditions += fmt.Sprintf(" AND p.payment_type = $%d", argIndex)
		args = append(args, *filter.PaymentType)
		argIndex++
	}

	sign := "CASE WHEN p.is_return THEN -1 ELSE 1 END"

	query := fmt.Sprintf(`
		SELECT
			p.supplier_id AS supplier_id,
			sup.name AS supplier_name,
			COUNT(*) AS entry_count,
			COALESCE(SUM(p.total_tax * (%[1]s)), 0) AS tax_amount,
			COALESCE(SUM(p.total_amount * (%[1]s)), 0) AS total
		FROM doc_purchases p
		JOIN cat_suppliers sup ON p.supplier_id = sup.id
		WHERE %[2]s
		GROUP BY p.supplier_id, sup.name
		ORDER BY sup.name
	`, sign, conditions)

	querier := r.txm.GetQuerier(ctx)
	var rows []reports.PurchaseReportRow
	if err := pgxscan.Select(ctx, querier, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("purchase report: %w", err)
	}

	report := &reports.PurchaseReport{
		FromDate:   filter.FromDate,
		ToDate:     filter.ToDate,
		Rows:       rows,
		TotalItems: len(rows),
		TotalTax:   types.Zero(),
		GrandTotal: types.Zero(),
	}
	for _, row := range rows {
		report.EntryCount += row.EntryCount
		report.TotalTax = report.TotalTax.Add(row.TaxAmount)
		report.GrandTotal = report.GrandTotal.Add(row.Total)
	}

	return report, nil
}

// GetStockBalanceReport generates the stock balance report with product details.
func (r *ReportRepo) GetStockBalanceReport(ctx context.Context, filter reports.StockBalanceReportFilter) (*reports.StockBalanceReport, error) {
	asOfDate := time.Now()
	if filter.AsOfDate != nil {
		asOfDate = *filter.AsOfDate
	}

	query := `
		WITH balance_data AS (
			SELECT
				m.product_id,
				SUM(CASE WHEN m.record_type = 'receipt' THEN m.quantity ELSE -m.quantity END) AS quantity_scaled
			FROM reg_stock_movements m
			WHERE m.period <= $1
	`
	args := []any{asOfDate}
	argIndex := 2

	if len(filter.ProductIDs) > 0 {
		placeholders := make([]string, len(filter.ProductIDs))
		for i, pID := range filter.ProductIDs {
			placeholders[i] = fmt.Sprintf("$%d", argIndex)
			args = append(args, pID)
			argIndex++
		}
		query += fmt.Sprintf(" AND m.product_id IN (%s)", strings.Join(placeholders, ","))
	}

	havingClause := ""
	if filter.ExcludeZero {
		havingClause = "HAVING SUM(CASE WHEN m.record_type = 'receipt' THEN m.quantity ELSE -m.quantity END) != 0"
	}

	lowStockExpr := "false"
	if filter.LowStockLevel != nil {
		lowStockExpr = fmt.Sprintf("bd.quantity_scaled <= $%d", argIndex)
		args = append(args, filter.LowStockLevel.Int64Scaled())
		argIndex++
	}

	categoryCond := ""
	if filter.CategoryID != nil {
		categoryCond = fmt.Sprintf(" AND p.category_id = $%d", argIndex)
		args = append(args, *filter.CategoryID)
		argIndex++
	}

	query += fmt.Sprintf(`
			GROUP BY m.product_id
			%s
		)
		SELECT
			bd.product_id,
			p.name AS product_name,
			p.code AS product_code,
			COALESCE(p.barcode, '') AS barcode,
			COALESCE(u.symbol, '') AS unit_symbol,
			bd.quantity_scaled AS quantity,
			%s AS low_stock
		FROM balance_data bd
		JOIN cat_products p ON bd.product_id = p.id
		LEFT JOIN cat_units u ON p.unit_id = u.id
		WHERE p.deletion_mark = false%s
		ORDER BY p.name
	`, havingClause, lowStockExpr, categoryCond)

	var items []reports.StockBalanceReportItem
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &items, query, args...); err != nil {
		return nil, fmt.Errorf("stock balance report: %w", err)
	}

	report := &reports.StockBalanceReport{
		AsOfDate:   asOfDate,
		Items:      items,
		TotalItems: len(items),
	}
	for _, item := range items {
		report.TotalQuantity += item.Quantity
		if item.LowStock {
			report.LowStockCount++
		}
	}

	return report, nil
}

// journalConditions builds the WHERE tail shared by the journal queries.
// docAlias is the UNION subquery alias.
func journalConditions(filter reports.DocumentJournalFilter, startIndex int) (string, []any) {
	var conditions []string
	var args []any
	argIndex := startIndex

	if filter.FromDate != nil {
		conditions = append(conditions, fmt.Sprintf("d.date >= $%d", argIndex))
		args = append(args, *filter.FromDate)
		argIndex++
	}
	if filter.ToDate != nil {
		conditions = append(conditions, fmt.Sprintf("d.date < $%d", argIndex))
		args = append(args, *filter.ToDate)
		argIndex++
	}
	if len(filter.DocumentTypes) > 0 {
		placeholders := make([]string, len(filter.DocumentTypes))
		for i, dt := range filter.DocumentTypes {
			placeholders[i] = fmt.Sprintf("$%d", argIndex)
			args = append(args, dt)
			argIndex++
		}
		conditions = append(conditions, fmt.Sprintf("d.document_type IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.Posted != nil {
		conditions = append(conditions, fmt.Sprintf("d.posted = $%d", argIndex))
		args = append(args, *filter.Posted)
		argIndex++
	}
	if filter.IsReturn != nil {
		conditions = append(conditions, fmt.Sprintf("d.is_return = $%d", argIndex))
		args = append(args, *filter.IsReturn)
		argIndex++
	}
	if filter.CounterpartyID != nil {
		conditions = append(conditions, fmt.Sprintf("d.counterparty_id = $%d", argIndex))
		args = append(args, *filter.CounterpartyID)
		argIndex++
	}
	if filter.NumberContains != "" {
		conditions = append(conditions, fmt.Sprintf("d.number ILIKE $%d", argIndex))
		args = append(args, "%"+filter.NumberContains+"%")
		argIndex++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

const journalUnion = `
	SELECT
		s.id, 'Sale' AS document_type, s.number, s.date, s.posted, s.is_return,
		s.customer_id AS counterparty_id,
		c.name AS counterparty_name,
		s.grand_total AS total_amount,
		s.deletion_mark, s.created_at
	FROM doc_sales s
	LEFT JOIN cat_customers c ON s.customer_id = c.id
	WHERE s.deletion_mark = false
	UNION ALL
	SELECT
		p.id, 'Purchase' AS document_type, p.number, p.date, p.posted, p.is_return,
		p.supplier_id AS counterparty_id,
		sup.name AS counterparty_name,
		p.total_amount AS total_amount,
		p.deletion_mark, p.created_at
	FROM doc_purchases p
	LEFT JOIN cat_suppliers sup ON p.supplier_id = sup.id
	WHERE p.deletion_mark = false
`

// GetDocumentJournal returns the merged sales/purchases journal.
func (r *ReportRepo) GetDocumentJournal(ctx context.Context, filter reports.DocumentJournalFilter) (*reports.DocumentJournal, error) {
	where, args := journalConditions(filter, 1)

	sortCol := map[string]string{
		"date":   "d.date",
		"number": "d.number",
		"type":   "d.document_type",
		"amount": "d.total_amount",
	}[filter.SortBy]
	if sortCol == "" {
		sortCol = "d.date"
	}
	sortDir := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortDir = "ASC"
	}

	querier := r.txm.GetQuerier(ctx)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM (%s) d%s", journalUnion, where)
	var totalCount int
	if err := querier.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("journal count: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT d.* FROM (%s) d%s
		ORDER BY %s %s, d.number %s
		LIMIT %d OFFSET %d
	`, journalUnion, where, sortCol, sortDir, sortDir, filter.Limit, filter.Offset)

	var items []reports.DocumentJournalItem
	if err := pgxscan.Select(ctx, querier, &items, query, args...); err != nil {
		return nil, fmt.Errorf("journal select: %w", err)
	}

	return &reports.DocumentJournal{
		Items:      items,
		TotalCount: totalCount,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	}, nil
}

// GetDocumentTypeSummary provides counts and totals by document type.
func (r *ReportRepo) GetDocumentTypeSummary(ctx context.Context, filter reports.DocumentJournalFilter) ([]reports.DocumentTypeSummary, error) {
	where, args := journalConditions(filter, 1)

	query := fmt.Sprintf(`
		SELECT
			d.document_type,
			COUNT(*) AS count,
			COUNT(*) FILTER (WHERE d.posted) AS posted_count,
			COALESCE(SUM(d.total_amount), 0) AS total_amount
		FROM (%s) d%s
		GROUP BY d.document_type
		ORDER BY d.document_type
	`, journalUnion, where)

	var summary []reports.DocumentTypeSummary
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &summary, query, args...); err != nil {
		return nil, fmt.Errorf("journal summary: %w", err)
	}

	return summary, nil
}

// Ensure interface compliance.
var _ reports.Repository = (*ReportRepo)(nil)
