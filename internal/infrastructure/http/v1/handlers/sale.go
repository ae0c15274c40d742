package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/id"
	"aromapos/internal/domain/catalogs/product"
	"aromapos/internal/domain/documents/sale"
	"aromapos/internal/infrastructure/http/v1/dto"
)

// SaleHandler serves sales and sales returns. This is the checkout surface:
// lines arrive as product ids or barcode scans, prices default from the
// product card and the privilege card discount is resolved server-side.
type SaleHandler struct {
	*BaseDocumentHandler[*sale.Sale, dto.CreateSaleRequest, dto.UpdateSaleRequest]
	service  *sale.Service
	products *product.Service
}

// NewSaleHandler wires the sale handler.
func NewSaleHandler(base *BaseHandler, service *sale.Service, products *product.Service) *SaleHandler {
	h := &SaleHandler{service: service, products: products}

	h.BaseDocumentHandler = NewBaseDocumentHandler(base, BaseDocumentHandlerConfig[
		*sale.Sale,
		dto.CreateSaleRequest,
		dto.UpdateSaleRequest,
	]{
		Service:    service,
		EntityName: "sale",
		MapToDTO: func(s *sale.Sale) any {
			return dto.FromSale(s)
		},
		IsPostImmediately: func(req dto.CreateSaleRequest) bool {
			return req.PostImmediately
		},
	})

	return h
}

// Create handles POST /documents/sales.
func (h *SaleHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateSaleRequest
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

	c.JSON(http.StatusCreated, dto.FromSale(doc))
}

// Update handles PUT /documents/sales/:id. Lines are replaced wholesale and
// the document is repriced by the service.
func (h *SaleHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	customerID, err := parseOptionalIDParam(req.CustomerID, "customerId")
	if err != nil {
		h.Error(c, err)
		return
	}

	doc.CustomerID = customerID
	doc.PaymentMethod = req.PaymentMethod
	doc.Notes = req.Notes
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

	c.JSON(http.StatusOK, dto.FromSale(doc))
}

// List handles GET /documents/sales.
func (h *SaleHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := sale.ListFilter{}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.Query("orderBy")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	if raw := c.Query("customerId"); raw != "" {
		customerID, err := id.Parse(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid customerId format"))
			return
		}
		filter.CustomerID = &customerID
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
		items[i] = dto.FromSale(doc)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Return handles POST /documents/sales/:id/return.
// A sale allows at most one return; the service enforces it.
func (h *SaleHandler) Return(c *gin.Context) {
	ctx := c.Request.Context()

	originalID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.CreateSaleReturnRequest
	if !h.BindJSON(c, &req) {
		return
	}

	items := make([]sale.ReturnItem, len(req.Items))
	for i, item := range req.Items {
		lineID, err := id.Parse(item.LineID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid lineId format"))
			return
		}
		items[i] = sale.ReturnItem{LineID: lineID, Quantity: item.Quantity}
	}

	ret, err := h.service.CreateReturn(ctx, originalID, items, req.Notes)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromSale(ret))
}

func (h *SaleHandler) buildDocument(ctx context.Context, req *dto.CreateSaleRequest) (*sale.Sale, error) {
	customerID, err := parseOptionalIDParam(req.CustomerID, "customerId")
	if err != nil {
		return nil, err
	}

	doc := sale.New(customerID, req.PaymentMethod)
	doc.Notes = req.Notes
	if req.Date != nil {
		doc.Date = *req.Date
	}

	if err := h.appendLines(ctx, doc, req.Lines); err != nil {
		return nil, err
	}
	return doc, nil
}

func (h *SaleHandler) appendLines(ctx context.Context, doc *sale.Sale, lines []dto.SaleLineRequest) error {
	for _, l := range lines {
		p, err := h.resolveProduct(ctx, l)
		if err != nil {
			return err
		}

		in, err := h.products.LineInput(ctx, p, l.Quantity)
		if err != nil {
			return err
		}

		price := p.MRP
		if l.Price != nil {
			price = *l.Price
		}
		discount := p.DiscountPercent
		if l.DiscountPercent != nil {
			discount = *l.DiscountPercent
		}

		doc.AddLine(p.ID, l.Quantity, price, discount, p.TaxMode, in.Tax1, in.Tax2)
	}
	return nil
}

func (h *SaleHandler) resolveProduct(ctx context.Context, l dto.SaleLineRequest) (*product.Product, error) {
	if l.ProductID != "" {
		productID, err := id.Parse(l.ProductID)
		if err != nil {
			return nil, apperror.NewValidation("invalid productId format").
				WithDetail("productId", l.ProductID)
		}
		return h.products.GetByID(ctx, productID)
	}
	if l.Barcode != "" {
		return h.products.FindByBarcode(ctx, l.Barcode)
	}
	return nil, apperror.NewValidation("line requires productId or barcode")
}

func parseOptionalIDParam(raw *string, field string) (*id.ID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := id.Parse(*raw)
	if err != nil {
		return nil, apperror.NewValidation("invalid id format").
			WithDetail("field", field)
	}
	return &parsed, nil
}
