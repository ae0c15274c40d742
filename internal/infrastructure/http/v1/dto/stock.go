package dto

import (
	"time"

	"aromapos/internal/core/entity"
	"aromapos/internal/domain/registers/stock"
)

// StockBalanceResponse is the on-hand quantity of one product.
type StockBalanceResponse struct {
	ProductID      string    `json:"productId"`
	Quantity       float64   `json:"quantity"`
	LastMovementAt time.Time `json:"lastMovementAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FromStockBalance creates response DTO from a register balance.
func FromStockBalance(b entity.StockBalance) StockBalanceResponse {
	return StockBalanceResponse{
		ProductID:      b.ProductID.String(),
		Quantity:       b.Quantity.Float64(),
		LastMovementAt: b.LastMovementAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// StockBalancesResponse wraps a balance listing.
type StockBalancesResponse struct {
	Items []StockBalanceResponse `json:"items"`
	Count int                    `json:"count"`
}

// NewStockBalancesResponse maps register balances into a listing.
func NewStockBalancesResponse(balances []entity.StockBalance) StockBalancesResponse {
	items := make([]StockBalanceResponse, len(balances))
	for i, b := range balances {
		items[i] = FromStockBalance(b)
	}
	return StockBalancesResponse{Items: items, Count: len(items)}
}

// StockMovementResponse is one register movement row.
type StockMovementResponse struct {
	LineID       string    `json:"lineId"`
	Period       time.Time `json:"period"`
	RecordType   string    `json:"recordType"`
	RecorderID   string    `json:"recorderId"`
	RecorderType string    `json:"recorderType"`
	ProductID    string    `json:"productId"`
	Quantity     float64   `json:"quantity"`
}

// FromStockMovement creates response DTO from a register movement.
func FromStockMovement(m entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		LineID:       m.LineID.String(),
		Period:       m.Period,
		RecordType:   string(m.RecordType),
		RecorderID:   m.RecorderID.String(),
		RecorderType: m.RecorderType,
		ProductID:    m.ProductID.String(),
		Quantity:     m.Quantity.Float64(),
	}
}

// TurnoverResponse is the per-product receipt/expense summary for a period.
type TurnoverResponse struct {
	ProductID      string  `json:"productId"`
	OpeningBalance float64 `json:"openingBalance"`
	Receipt        float64 `json:"receipt"`
	Expense        float64 `json:"expense"`
	ClosingBalance float64 `json:"closingBalance"`
}

// FromTurnover creates response DTO from a register turnover row.
func FromTurnover(t stock.Turnover) TurnoverResponse {
	return TurnoverResponse{
		ProductID:      t.ProductID.String(),
		OpeningBalance: t.OpeningBalance.Float64(),
		Receipt:        t.Receipt.Float64(),
		Expense:        t.Expense.Float64(),
		ClosingBalance: t.ClosingBalance.Float64(),
	}
}
