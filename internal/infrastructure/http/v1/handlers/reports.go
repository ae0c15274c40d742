package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
	"aromapos/internal/domain/reports"
	"aromapos/internal/infrastructure/http/v1/dto"
)

// ReportsHandler serves the reporting endpoints.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, service: service}
}

// Sales handles GET /reports/sales.
func (h *ReportsHandler) Sales(c *gin.Context) {
	var req dto.SalesReportRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter := reports.SalesReportFilter{
		FromDate:       req.FromDate,
		ToDate:         req.ToDate,
		IncludeReturns: req.IncludeReturns,
		Limit:          req.Limit,
		Offset:         req.Offset,
	}
	if req.CustomerID != "" {
		customerID, err := id.Parse(req.CustomerID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid customerId format"))
			return
		}
		filter.CustomerID = &customerID
	}
	if req.PaymentMethod != "" {
		filter.PaymentMethod = &req.PaymentMethod
	}

	report, err := h.service.GetSales(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Purchases handles GET /reports/purchases.
func (h *ReportsHandler) Purchases(c *gin.Context) {
	var req dto.PurchaseReportRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter := reports.PurchaseReportFilter{
		FromDate:       req.FromDate,
		ToDate:         req.ToDate,
		IncludeReturns: req.IncludeReturns,
		Limit:          req.Limit,
		Offset:         req.Offset,
	}
	if req.SupplierID != "" {
		supplierID, err := id.Parse(req.SupplierID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid supplierId format"))
			return
		}
		filter.SupplierID = &supplierID
	}
	if req.PaymentType != "" {
		filter.PaymentType = &req.PaymentType
	}

	report, err := h.service.GetPurchases(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// StockBalance handles GET /reports/stock-balance.
func (h *ReportsHandler) StockBalance(c *gin.Context) {
	var req dto.StockBalanceReportRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter := reports.StockBalanceReportFilter{
		AsOfDate:    req.AsOfDate,
		ExcludeZero: req.ExcludeZero,
		Limit:       req.Limit,
		Offset:      req.Offset,
	}
	for _, raw := range req.ProductIDs {
		productID, err := id.Parse(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid productIds entry").
				WithDetail("value", raw))
			return
		}
		filter.ProductIDs = append(filter.ProductIDs, productID)
	}
	if req.CategoryID != "" {
		categoryID, err := id.Parse(req.CategoryID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid categoryId format"))
			return
		}
		filter.CategoryID = &categoryID
	}
	if req.LowStockLevel != nil {
		level := types.NewQuantityFromFloat64(*req.LowStockLevel)
		filter.LowStockLevel = &level
	}

	report, err := h.service.GetStockBalance(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// DocumentJournal handles GET /reports/documents.
// A single chronological journal across sales and purchases.
func (h *ReportsHandler) DocumentJournal(c *gin.Context) {
	var req dto.DocumentJournalRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter := reports.DocumentJournalFilter{
		FromDate:       req.FromDate,
		ToDate:         req.ToDate,
		DocumentTypes:  req.DocumentTypes,
		Posted:         req.Posted,
		IsReturn:       req.IsReturn,
		NumberContains: req.Number,
		SortBy:         req.SortBy,
		SortOrder:      req.SortOrder,
		Limit:          req.Limit,
		Offset:         req.Offset,
	}
	if req.CounterpartyID != "" {
		counterpartyID, err := id.Parse(req.CounterpartyID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid counterpartyId format"))
			return
		}
		filter.CounterpartyID = &counterpartyID
	}

	journal, err := h.service.GetDocumentJournal(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, journal)
}
