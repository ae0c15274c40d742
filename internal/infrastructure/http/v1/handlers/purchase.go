package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/id"
	"aromapos/internal/domain/catalogs/product"
	"aromapos/internal/domain/documents/purchase"
	"aromapos/internal/infrastructure/http/v1/dto"
)

// PurchaseHandler serves purchase entries and purchase returns.
type PurchaseHandler struct {
	*BaseDocumentHandler[*purchase.Purchase, dto.CreatePurchaseRequest, dto.UpdatePurchaseRequest]
	service  *purchase.Service
	products *product.Service
}

// NewPurchaseHandler wires the purchase handler. Line pricing inputs are
// resolved from the product catalog at entry time.
func NewPurchaseHandler(base *BaseHandler, service *purchase.Service, products *product.Service) *PurchaseHandler {
	h := &PurchaseHandler{service: service, products: products}

	h.BaseDocumentHandler = NewBaseDocumentHandler(base, BaseDocumentHandlerConfig[
		*purchase.Purchase,
		dto.CreatePurchaseRequest,
		dto.UpdatePurchaseRequest,
	]{
		Service:    service,
		EntityName: "purchase",
		MapToDTO: func(p *purchase.Purchase) any {
			return dto.FromPurchase(p)
		},
		IsPostImmediately: func(req dto.CreatePurchaseRequest) bool {
			return req.PostImmediately
		},
	})

	return h
}

// Create handles POST /documents/purchases. Lines carry product ids and
// quantities; rates and taxes default from the product card.
func (h *PurchaseHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreatePurchaseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.buildDocument(ctx, &req)
	if err != nil {
		h.Error(c, err)
		return
	}

	if req.PostImmediately {
		err = h.service.PostAndSave(ctx, doc)
	} else {
		err = h.service.Create(ctx, doc)
	}
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromPurchase(doc))
}

// Update handles PUT /documents/purchases/:id. Lines are replaced wholesale.
func (h *PurchaseHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdatePurchaseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	supplierID, err := id.Parse(req.SupplierID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid supplierId format"))
		return
	}

	doc.SupplierID = supplierID
	doc.PaymentType = req.PaymentType
	doc.SupplierInvoiceNumber = req.SupplierInvoiceNumber
	doc.SupplierInvoiceDate = req.SupplierInvoiceDate
	doc.Remarks = req.Remarks
	doc.Version = req.Version
	if req.Date != nil {
		doc.Date = *req.Date
	}

	doc.Lines = nil
	if err := h.appendLines(ctx, doc, req.Lines); err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Update(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromPurchase(doc))
}

// List handles GET /documents/purchases.
func (h *PurchaseHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := purchase.ListFilter{}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.Query("orderBy")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	if raw := c.Query("supplierId"); raw != "" {
		supplierID, err := id.Parse(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid supplierId format"))
			return
		}
		filter.SupplierID = &supplierID
	}
	if raw := c.Query("status"); raw != "" {
		status := purchase.Status(raw)
		filter.Status = &status
	}
	if raw := c.Query("posted"); raw != "" {
		posted := raw == "true"
		filter.Posted = &posted
	}
	if raw := c.Query("isReturn"); raw != "" {
		isReturn := raw == "true"
		filter.IsReturn = &isReturn
	}
	if from, ok := parseDateQuery(c, "dateFrom"); ok {
		filter.DateFrom = from
	}
	if to, ok := parseDateQuery(c, "dateTo"); ok {
		filter.DateTo = to
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, doc := range result.Items {
		items[i] = dto.FromPurchase(doc)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Return handles POST /documents/purchases/:id/return.
// Creates and posts a purchase return against the original entry.
func (h *PurchaseHandler) Return(c *gin.Context) {
	ctx := c.Request.Context()

	originalID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.CreatePurchaseReturnRequest
	if !h.BindJSON(c, &req) {
		return
	}

	items := make([]purchase.ReturnItem, len(req.Items))
	for i, item := range req.Items {
		lineID, err := id.Parse(item.LineID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid lineId format"))
			return
		}
		items[i] = purchase.ReturnItem{LineID: lineID, Quantity: item.Quantity}
	}

	ret, err := h.service.CreateReturn(ctx, originalID, items, req.Remarks)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromPurchase(ret))
}

func (h *PurchaseHandler) buildDocument(ctx context.Context, req *dto.CreatePurchaseRequest) (*purchase.Purchase, error) {
	supplierID, err := id.Parse(req.SupplierID)
	if err != nil {
		return nil, apperror.NewValidation("invalid supplierId format")
	}

	doc := purchase.New(supplierID, req.PaymentType)
	doc.SupplierInvoiceNumber = req.SupplierInvoiceNumber
	doc.SupplierInvoiceDate = req.SupplierInvoiceDate
	doc.Remarks = req.Remarks
	if req.Date != nil {
		doc.Date = *req.Date
	}

	if err := h.appendLines(ctx, doc, req.Lines); err != nil {
		return nil, err
	}
	return doc, nil
}

func (h *PurchaseHandler) appendLines(ctx context.Context, doc *purchase.Purchase, lines []dto.PurchaseLineRequest) error {
	for _, l := range lines {
		productID, err := id.Parse(l.ProductID)
		if err != nil {
			return apperror.NewValidation("invalid productId format").
				WithDetail("productId", l.ProductID)
		}

		p, err := h.products.GetByID(ctx, productID)
		if err != nil {
			return err
		}

		in, err := h.products.LineInput(ctx, p, l.Quantity)
		if err != nil {
			return err
		}

		rate := p.PurchaseRate
		if l.Rate != nil {
			rate = *l.Rate
		}
		discount := p.DiscountPercent
		if l.DiscountPercent != nil {
			discount = *l.DiscountPercent
		}

		doc.AddLine(productID, l.Quantity, rate, discount, p.TaxMode, in.Tax1, in.Tax2)
	}
	return nil
}

func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, false
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}
