package dto

import (
	"time"

	"aromapos/internal/core/types"
	"aromapos/internal/domain/documents/sale"
	"aromapos/internal/pricing"
)

// SaleLineRequest is one line of a sale. Price and discount default to the
// product's MRP and discount when omitted; barcode may be used in place of
// the product id.
type SaleLineRequest struct {
	ProductID       string       `json:"productId"`
	Barcode         string       `json:"barcode"`
	Quantity        int64        `json:"quantity" binding:"required,min=1"`
	Price           *types.Money `json:"price"`
	DiscountPercent *types.Money `json:"discountPercent"`
}

// CreateSaleRequest is the request body for creating a sale.
type CreateSaleRequest struct {
	Date            *time.Time         `json:"date"`
	CustomerID      *string            `json:"customerId"`
	PaymentMethod   sale.PaymentMethod `json:"paymentMethod" binding:"required"`
	Notes           string             `json:"notes"`
	PostImmediately bool               `json:"postImmediately"`
	Lines           []SaleLineRequest  `json:"lines" binding:"required,min=1"`
}

// UpdateSaleRequest is the request body for updating a draft sale.
type UpdateSaleRequest struct {
	Date          *time.Time         `json:"date"`
	CustomerID    *string            `json:"customerId"`
	PaymentMethod sale.PaymentMethod `json:"paymentMethod" binding:"required"`
	Notes         string             `json:"notes"`
	Lines         []SaleLineRequest  `json:"lines" binding:"required,min=1"`
	Version       int                `json:"version" binding:"required"`
}

// CreateSaleReturnRequest is the request body for a sales return.
type CreateSaleReturnRequest struct {
	Items []ReturnItemRequest `json:"items" binding:"required,min=1"`
	Notes string              `json:"notes"`
}

// SaleLineResponse is one line of a sale in responses.
type SaleLineResponse struct {
	LineID           string          `json:"lineId"`
	LineNo           int             `json:"lineNo"`
	ProductID        string          `json:"productId"`
	Quantity         int64           `json:"quantity"`
	Price            types.Money     `json:"price"`
	DiscountPercent  types.Money     `json:"discountPercent"`
	TaxMode          pricing.TaxMode `json:"taxMode"`
	Tax1Name         string          `json:"tax1Name,omitempty"`
	Tax1Rate         types.Money     `json:"tax1Rate"`
	Tax2Name         string          `json:"tax2Name,omitempty"`
	Tax2Rate         types.Money     `json:"tax2Rate"`
	TaxAmount        types.Money     `json:"taxAmount"`
	Amount           types.Money     `json:"amount"`
	TotalAmount      types.Money     `json:"totalAmount"`
	ReturnedQuantity int64           `json:"returnedQuantity"`
}

// SaleResponse is the response body for a sale.
type SaleResponse struct {
	DocumentResponse
	IsReturn                bool               `json:"isReturn"`
	OriginalID              *string            `json:"originalId,omitempty"`
	CustomerID              *string            `json:"customerId,omitempty"`
	PaymentMethod           sale.PaymentMethod `json:"paymentMethod"`
	Notes                   string             `json:"notes,omitempty"`
	CustomerDiscountPercent types.Money        `json:"customerDiscountPercent"`
	Subtotal                types.Money        `json:"subtotal"`
	TotalTax                types.Money        `json:"totalTax"`
	TotalBeforeDiscount     types.Money        `json:"totalBeforeDiscount"`
	DiscountAmount          types.Money        `json:"discountAmount"`
	GrandTotal              types.Money        `json:"grandTotal"`
	Lines                   []SaleLineResponse `json:"lines"`
}

// FromSale creates response DTO from domain entity.
func FromSale(s *sale.Sale) *SaleResponse {
	lines := make([]SaleLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = SaleLineResponse{
			LineID:           l.LineID.String(),
			LineNo:           l.LineNo,
			ProductID:        l.ProductID.String(),
			Quantity:         l.Quantity,
			Price:            l.Price,
			DiscountPercent:  l.DiscountPercent,
			TaxMode:          l.TaxMode,
			Tax1Name:         l.Tax1Name,
			Tax1Rate:         l.Tax1Rate,
			Tax2Name:         l.Tax2Name,
			Tax2Rate:         l.Tax2Rate,
			TaxAmount:        l.TaxAmount,
			Amount:           l.Amount,
			TotalAmount:      l.TotalAmount,
			ReturnedQuantity: l.ReturnedQuantity,
		}
	}

	return &SaleResponse{
		DocumentResponse:        FromDocument(s.Document),
		IsReturn:                s.IsReturn,
		OriginalID:              idToString(s.OriginalID),
		CustomerID:              idToString(s.CustomerID),
		PaymentMethod:           s.PaymentMethod,
		Notes:                   s.Notes,
		CustomerDiscountPercent: s.CustomerDiscountPercent,
		Subtotal:                s.Subtotal,
		TotalTax:                s.TotalTax,
		TotalBeforeDiscount:     s.TotalBeforeDiscount,
		DiscountAmount:          s.DiscountAmount,
		GrandTotal:              s.GrandTotal,
		Lines:                   lines,
	}
}
