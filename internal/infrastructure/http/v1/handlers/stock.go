package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/entity"
	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
	"aromapos/internal/domain/registers/stock"
	"aromapos/internal/infrastructure/http/v1/dto"
)

// StockHandler serves the stock accumulation register.
type StockHandler struct {
	*BaseHandler
	service *stock.Service
}

// NewStockHandler creates a stock register handler.
func NewStockHandler(base *BaseHandler, service *stock.Service) *StockHandler {
	return &StockHandler{BaseHandler: base, service: service}
}

// GetBalances handles GET /registers/stock/balances.
// Returns non-zero on-hand quantities.
func (h *StockHandler) GetBalances(c *gin.Context) {
	balances, err := h.service.GetStockOnHand(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStockBalancesResponse(balances))
}

// GetBalance handles GET /registers/stock/balances/:productId.
func (h *StockHandler) GetBalance(c *gin.Context) {
	productID, err := id.Parse(c.Param("productId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid productId format"))
		return
	}

	qty, err := h.service.GetProductAvailability(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"productId": productID.String(),
		"quantity":  qty.Float64(),
	})
}

// GetLowStock handles GET /registers/stock/low?level=N.
// Lists products at or below the reorder level.
func (h *StockHandler) GetLowStock(c *gin.Context) {
	level := types.NewQuantityFromFloat64(float64(h.ParseIntQuery(c, "level", 5)))

	balances, err := h.service.GetLowStock(c.Request.Context(), level)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStockBalancesResponse(balances))
}

// GetMovements handles GET /registers/stock/movements/:productId.
func (h *StockHandler) GetMovements(c *gin.Context) {
	productID, err := id.Parse(c.Param("productId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid productId format"))
		return
	}

	filter := stock.MovementFilter{
		Limit:  h.ParseIntQuery(c, "limit", 100),
		Offset: h.ParseIntQuery(c, "offset", 0),
	}
	if raw := c.Query("recordType"); raw != "" {
		rt := entity.RecordType(raw)
		filter.RecordType = &rt
	}
	if from, ok := parseDateQuery(c, "fromDate"); ok {
		filter.FromDate = from
	}
	if to, ok := parseDateQuery(c, "toDate"); ok {
		filter.ToDate = to
	}

	movements, err := h.service.GetMovementHistory(c.Request.Context(), productID, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.StockMovementResponse, len(movements))
	for i, m := range movements {
		items[i] = dto.FromStockMovement(m)
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// RebuildBalances handles POST /registers/stock/rebuild.
// Recomputes the balance table from the movement log, either for a single
// product (?productId=) or for everything.
func (h *StockHandler) RebuildBalances(c *gin.Context) {
	var productID *id.ID
	if raw := c.Query("productId"); raw != "" {
		parsed, err := id.Parse(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid productId format"))
			return
		}
		productID = &parsed
	}

	if err := h.service.RebuildBalances(c.Request.Context(), productID); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "rebuilt"})
}

// GetTurnover handles GET /registers/stock/turnover.
// Per-product opening, receipt, expense and closing for a period.
func (h *StockHandler) GetTurnover(c *gin.Context) {
	from, ok := parseDateQuery(c, "fromDate")
	if !ok {
		h.Error(c, apperror.NewValidation("fromDate is required (YYYY-MM-DD)"))
		return
	}
	to, ok := parseDateQuery(c, "toDate")
	if !ok {
		now := time.Now().UTC()
		to = &now
	}

	filter := stock.TurnoverFilter{FromDate: *from, ToDate: *to}
	if raw := c.Query("productId"); raw != "" {
		productID, err := id.Parse(raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid productId format"))
			return
		}
		filter.ProductID = &productID
	}

	rows, err := h.service.GetTurnover(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.TurnoverResponse, len(rows))
	for i, r := range rows {
		items[i] = dto.FromTurnover(r)
	}

	c.JSON(http.StatusOK, gin.H{
		"fromDate": from,
		"toDate":   to,
		"items":    items,
	})
}
