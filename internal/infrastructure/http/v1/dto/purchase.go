package dto

import (
	"time"

	"aromapos/internal/core/types"
	"aromapos/internal/domain/documents/purchase"
	"aromapos/internal/pricing"
)

// PurchaseLineRequest is one line of a purchase entry. Rate and discount
// default to the product's purchase rate and discount when omitted.
type PurchaseLineRequest struct {
	ProductID       string       `json:"productId" binding:"required"`
	Quantity        int64        `json:"quantity" binding:"required,min=1"`
	Rate            *types.Money `json:"rate"`
	DiscountPercent *types.Money `json:"discountPercent"`
}

// CreatePurchaseRequest is the request body for creating a purchase entry.
type CreatePurchaseRequest struct {
	Date                  *time.Time            `json:"date"`
	SupplierID            string                `json:"supplierId" binding:"required"`
	PaymentType           purchase.PaymentType  `json:"paymentType" binding:"required"`
	SupplierInvoiceNumber string                `json:"supplierInvoiceNumber"`
	SupplierInvoiceDate   *time.Time            `json:"supplierInvoiceDate"`
	Remarks               string                `json:"remarks"`
	PostImmediately       bool                  `json:"postImmediately"`
	Lines                 []PurchaseLineRequest `json:"lines" binding:"required,min=1"`
}

// UpdatePurchaseRequest is the request body for updating a draft purchase.
type UpdatePurchaseRequest struct {
	Date                  *time.Time            `json:"date"`
	SupplierID            string                `json:"supplierId" binding:"required"`
	PaymentType           purchase.PaymentType  `json:"paymentType" binding:"required"`
	SupplierInvoiceNumber string                `json:"supplierInvoiceNumber"`
	SupplierInvoiceDate   *time.Time            `json:"supplierInvoiceDate"`
	Remarks               string                `json:"remarks"`
	Lines                 []PurchaseLineRequest `json:"lines" binding:"required,min=1"`
	Version               int                   `json:"version" binding:"required"`
}

// ReturnItemRequest selects a line and quantity to return.
type ReturnItemRequest struct {
	LineID   string `json:"lineId" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required,min=1"`
}

// CreatePurchaseReturnRequest is the request body for a purchase return.
type CreatePurchaseReturnRequest struct {
	Items   []ReturnItemRequest `json:"items" binding:"required,min=1"`
	Remarks string              `json:"remarks"`
}

// PurchaseLineResponse is one line of a purchase in responses.
type PurchaseLineResponse struct {
	LineID           string          `json:"lineId"`
	LineNo           int             `json:"lineNo"`
	ProductID        string          `json:"productId"`
	Quantity         int64           `json:"quantity"`
	Rate             types.Money     `json:"rate"`
	DiscountPercent  types.Money     `json:"discountPercent"`
	TaxMode          pricing.TaxMode `json:"taxMode"`
	Tax1Name         string          `json:"tax1Name,omitempty"`
	Tax1Rate         types.Money     `json:"tax1Rate"`
	Tax2Name         string          `json:"tax2Name,omitempty"`
	Tax2Rate         types.Money     `json:"tax2Rate"`
	TaxAmount        types.Money     `json:"taxAmount"`
	Amount           types.Money     `json:"amount"`
	ReturnedQuantity int64           `json:"returnedQuantity"`
}

// PurchaseResponse is the response body for a purchase entry.
type PurchaseResponse struct {
	DocumentResponse
	IsReturn              bool                   `json:"isReturn"`
	OriginalID            *string                `json:"originalId,omitempty"`
	SupplierID            string                 `json:"supplierId"`
	PaymentType           purchase.PaymentType   `json:"paymentType"`
	Status                purchase.Status        `json:"status"`
	SupplierInvoiceNumber string                 `json:"supplierInvoiceNumber,omitempty"`
	SupplierInvoiceDate   *time.Time             `json:"supplierInvoiceDate,omitempty"`
	Remarks               string                 `json:"remarks,omitempty"`
	TotalAmount           types.Money            `json:"totalAmount"`
	TotalTax              types.Money            `json:"totalTax"`
	Lines                 []PurchaseLineResponse `json:"lines"`
}

// FromPurchase creates response DTO from domain entity.
func FromPurchase(p *purchase.Purchase) *PurchaseResponse {
	lines := make([]PurchaseLineResponse, len(p.Lines))
	for i, l := range p.Lines {
		lines[i] = PurchaseLineResponse{
			LineID:           l.LineID.String(),
			LineNo:           l.LineNo,
			ProductID:        l.ProductID.String(),
			Quantity:         l.Quantity,
			Rate:             l.Rate,
			DiscountPercent:  l.DiscountPercent,
			TaxMode:          l.TaxMode,
			Tax1Name:         l.Tax1Name,
			Tax1Rate:         l.Tax1Rate,
			Tax2Name:         l.Tax2Name,
			Tax2Rate:         l.Tax2Rate,
			TaxAmount:        l.TaxAmount,
			Amount:           l.Amount,
			ReturnedQuantity: l.ReturnedQuantity,
		}
	}

	return &PurchaseResponse{
		DocumentResponse:      FromDocument(p.Document),
		IsReturn:              p.IsReturn,
		OriginalID:            idToString(p.OriginalID),
		SupplierID:            p.SupplierID.String(),
		PaymentType:           p.PaymentType,
		Status:                p.Status,
		SupplierInvoiceNumber: p.SupplierInvoiceNumber,
		SupplierInvoiceDate:   p.SupplierInvoiceDate,
		Remarks:               p.Remarks,
		TotalAmount:           p.TotalAmount,
		TotalTax:              p.TotalTax,
		Lines:                 lines,
	}
}
