package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
	"aromapos/internal/domain/catalogs/product"
	"aromapos/internal/infrastructure/http/v1/dto"
)

// ProductHandler serves the products catalog plus barcode lookup and the
// live price preview.
type ProductHandler struct {
	*CatalogHandler[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]
	service *product.Service
}

// NewProductHandler wires the product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	inner := NewCatalogHandler(base, CatalogHandlerConfig[
		*product.Product,
		dto.CreateProductRequest,
		dto.UpdateProductRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "product",
		MapCreateDTO: func(req dto.CreateProductRequest) (*product.Product, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateProductRequest, existing *product.Product) (*product.Product, error) {
			if err := req.ApplyTo(existing); err != nil {
				return nil, err
			}
			return existing, nil
		},
		MapToDTO: func(p *product.Product) any {
			return dto.FromProduct(p)
		},
	})

	return &ProductHandler{CatalogHandler: inner, service: service}
}

// FindByBarcode handles GET /catalog/products/barcode/:barcode.
// This is the scan path at the till.
func (h *ProductHandler) FindByBarcode(c *gin.Context) {
	p, err := h.service.FindByBarcode(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromProduct(p))
}

// Price handles GET /catalog/products/:id/price.
// Returns the monetary breakdown for a quantity and optional customer
// discount without creating any document.
func (h *ProductHandler) Price(c *gin.Context) {
	productID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	quantity := int64(h.ParseIntQuery(c, "quantity", 1))
	if quantity < 1 {
		quantity = 1
	}

	customerDiscount := types.Zero()
	if raw := c.Query("customerDiscount"); raw != "" {
		customerDiscount, err = decimal.NewFromString(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid customerDiscount").
				WithDetail("value", raw))
			return
		}
	}

	result, err := h.service.PriceBreakdown(c.Request.Context(), productID, quantity, customerDiscount)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromLineResult(result))
}
