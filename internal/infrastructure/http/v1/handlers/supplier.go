package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/id"
	"aromapos/internal/domain/catalogs/supplier"
	"aromapos/internal/infrastructure/http/v1/dto"
)

// SupplierHandler serves the suppliers catalog plus the payment ledger.
type SupplierHandler struct {
	*CatalogHandler[*supplier.Supplier, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]
	service *supplier.Service
}

// NewSupplierHandler wires the supplier handler.
func NewSupplierHandler(base *BaseHandler, service *supplier.Service) *SupplierHandler {
	inner := NewCatalogHandler(base, CatalogHandlerConfig[
		*supplier.Supplier,
		dto.CreateSupplierRequest,
		dto.UpdateSupplierRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "supplier",
		MapCreateDTO: func(req dto.CreateSupplierRequest) (*supplier.Supplier, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateSupplierRequest, existing *supplier.Supplier) (*supplier.Supplier, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
		MapToDTO: func(s *supplier.Supplier) any {
			return dto.FromSupplier(s)
		},
	})

	return &SupplierHandler{CatalogHandler: inner, service: service}
}

// ListTransactions handles GET /catalog/suppliers/:id/transactions.
func (h *SupplierHandler) ListTransactions(c *gin.Context) {
	supplierID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	limit := h.ParseIntQuery(c, "limit", 50)
	offset := h.ParseIntQuery(c, "offset", 0)

	entries, total, err := h.service.ListTransactions(c.Request.Context(), supplierID, limit, offset)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(entries))
	for i := range entries {
		items[i] = dto.FromSupplierTransaction(&entries[i])
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
	})
}

// RecordPayment handles POST /catalog/suppliers/:id/payments.
// A payment is a debit entry: it reduces the amount owed.
func (h *SupplierHandler) RecordPayment(c *gin.Context) {
	supplierID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.CreateSupplierPaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entry := &supplier.Transaction{
		SupplierID:  supplierID,
		Kind:        supplier.KindDebit,
		Amount:      req.Amount,
		PaymentMode: req.PaymentMode,
		Remarks:     req.Remarks,
	}
	if req.Date != nil {
		entry.Date = *req.Date
	} else {
		entry.Date = time.Now().UTC()
	}

	if err := h.service.RecordTransaction(c.Request.Context(), entry); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromSupplierTransaction(entry))
}

// Balance handles GET /catalog/suppliers/:id/balance.
func (h *SupplierHandler) Balance(c *gin.Context) {
	supplierID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	balance, err := h.service.Balance(c.Request.Context(), supplierID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"supplierId": supplierID.String(),
		"balance":    balance,
	})
}
