package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aromapos/internal/infrastructure/http/v1/dto"
	"aromapos/internal/pricing"
)

// PricingHandler serves the stateless price preview. Entry screens call it
// on every keystroke, so it touches no storage.
type PricingHandler struct {
	*BaseHandler
}

// NewPricingHandler creates a pricing handler.
func NewPricingHandler(base *BaseHandler) *PricingHandler {
	return &PricingHandler{BaseHandler: base}
}

// Preview handles POST /pricing/preview.
func (h *PricingHandler) Preview(c *gin.Context) {
	var req dto.PricePreviewRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result := pricing.ComputeLine(req.ToLineInput())
	if req.CustomerDiscountPercent.IsPositive() {
		result = pricing.ApplyCustomerDiscount(result, req.CustomerDiscountPercent)
	}

	c.JSON(http.StatusOK, dto.FromLineResult(result))
}
