// Package purchase provides the purchase entry document.
package purchase

import (
	"context"
	"time"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/entity"
	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
	"aromapos/internal/domain/posting"
	"aromapos/internal/domain/registers/stock"
	"aromapos/internal/pricing"
)

// Status tracks the purchase lifecycle.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusCompleted Status = "completed"
	StatusReturned  Status = "returned"
)

// PaymentType is how the purchase is settled with the supplier.
type PaymentType string

const (
	PaymentCash   PaymentType = "CASH"
	PaymentCredit PaymentType = "CREDIT"
)

// Purchase records incoming goods from a supplier. A purchase with the
// return flag set reverses goods back to the supplier.
type Purchase struct {
	entity.Document
	entity.ReturnAware

	SupplierID  id.ID       `db:"supplier_id" json:"supplierId"`
	PaymentType PaymentType `db:"payment_type" json:"paymentType"`
	Status      Status      `db:"status" json:"status"`

	// Supplier's own invoice reference
	SupplierInvoiceNumber string     `db:"supplier_invoice_number" json:"supplierInvoiceNumber,omitempty"`
	SupplierInvoiceDate   *time.Time `db:"supplier_invoice_date" json:"supplierInvoiceDate,omitempty"`

	Remarks string `db:"remarks" json:"remarks,omitempty"`

	// Totals (calculated from lines)
	TotalAmount types.Money `db:"total_amount" json:"totalAmount"`
	TotalTax    types.Money `db:"total_tax" json:"totalTax"`

	// Table part: purchased goods
	Lines []Line `db:"-" json:"lines"`
}

// Line represents a purchased product.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ProductID id.ID `db:"product_id" json:"productId"`

	Quantity        int64           `db:"quantity" json:"quantity"`
	Rate            types.Money     `db:"rate" json:"rate"`
	DiscountPercent types.Money     `db:"discount_percent" json:"discountPercent"`
	TaxMode         pricing.TaxMode `db:"tax_mode" json:"taxMode"`

	// Tax rates captured at entry time so later rate changes do not
	// rewrite history.
	Tax1Name string      `db:"tax1_name" json:"tax1Name,omitempty"`
	Tax1Rate types.Money `db:"tax1_rate" json:"tax1Rate"`
	Tax2Name string      `db:"tax2_name" json:"tax2Name,omitempty"`
	Tax2Rate types.Money `db:"tax2_rate" json:"tax2Rate"`

	TaxAmount types.Money `db:"tax_amount" json:"taxAmount"`
	Amount    types.Money `db:"amount" json:"amount"`

	ReturnedQuantity int64 `db:"returned_quantity" json:"returnedQuantity"`
}

// Returnable returns the quantity still available for return.
func (l Line) Returnable() int64 {
	return l.Quantity - l.ReturnedQuantity
}

// Tax1 returns the captured first tax slot, nil when empty.
func (l Line) Tax1() *pricing.TaxRate {
	if l.Tax1Name == "" && l.Tax1Rate.IsZero() {
		return nil
	}
	return &pricing.TaxRate{Name: l.Tax1Name, Rate: l.Tax1Rate}
}

// Tax2 returns the captured second tax slot, nil when empty.
func (l Line) Tax2() *pricing.TaxRate {
	if l.Tax2Name == "" && l.Tax2Rate.IsZero() {
		return nil
	}
	return &pricing.TaxRate{Name: l.Tax2Name, Rate: l.Tax2Rate}
}

// New creates a draft purchase entry.
func New(supplierID id.ID, paymentType PaymentType) *Purchase {
	return &Purchase{
		Document:    entity.NewDocument(),
		SupplierID:  supplierID,
		PaymentType: paymentType,
		Status:      StatusDraft,
		Lines:       make([]Line, 0),
	}
}

// AddLine prices and appends a line, then recalculates totals.
func (p *Purchase) AddLine(productID id.ID, quantity int64, rate, discountPercent types.Money, mode pricing.TaxMode, tax1, tax2 *pricing.TaxRate) {
	res := pricing.ComputeLine(pricing.LineInput{
		BasePrice:       rate,
		DiscountPercent: discountPercent,
		TaxMode:         mode,
		Tax1:            tax1,
		Tax2:            tax2,
		Quantity:        quantity,
	})

	line := Line{
		LineID:          id.New(),
		LineNo:          len(p.Lines) + 1,
		ProductID:       productID,
		Quantity:        quantity,
		Rate:            rate,
		DiscountPercent: discountPercent,
		TaxMode:         mode,
		TaxAmount:       res.LineTaxAmount,
		Amount:          res.LineTotalAmount,
	}
	if tax1 != nil {
		line.Tax1Name = tax1.Name
		line.Tax1Rate = tax1.Rate
	}
	if tax2 != nil {
		line.Tax2Name = tax2.Name
		line.Tax2Rate = tax2.Rate
	}

	p.Lines = append(p.Lines, line)
	p.RecalculateTotals()
}

// RecalculateTotals updates document totals from lines.
func (p *Purchase) RecalculateTotals() {
	p.TotalAmount = types.Zero()
	p.TotalTax = types.Zero()

	for _, line := range p.Lines {
		p.TotalAmount = p.TotalAmount.Add(line.Amount)
		p.TotalTax = p.TotalTax.Add(line.TaxAmount)
	}
}

// Validate implements entity.Validatable.
func (p *Purchase) Validate(ctx context.Context) error {
	if err := p.Document.Validate(ctx); err != nil {
		return err
	}
	if err := p.ValidateReturn(ctx); err != nil {
		return err
	}

	if id.IsNil(p.SupplierID) {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "supplierId")
	}

	switch p.PaymentType {
	case PaymentCash, PaymentCredit:
	default:
		return apperror.NewValidation("invalid payment type").
			WithDetail("field", "paymentType").
			WithDetail("value", string(p.PaymentType))
	}

	if len(p.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range p.Lines {
		if id.IsNil(line.ProductID) {
			return apperror.NewValidation("product is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

// GetDocumentType returns the document type name.
func (p *Purchase) GetDocumentType() string {
	return "Purchase"
}

// GenerateMovements creates stock movements for this document.
// A purchase receives goods; a purchase return expends them.
func (p *Purchase) GenerateMovements(ctx context.Context) (*posting.MovementSet, error) {
	movements := posting.NewMovementSet()

	recordType := entity.RecordTypeReceipt
	if p.IsReturn {
		recordType = entity.RecordTypeExpense
	}

	newVersion := p.PostedVersion + 1
	for _, line := range p.Lines {
		movements.AddStock(entity.NewStockMovement(
			p.ID,
			p.GetDocumentType(),
			newVersion,
			p.Date,
			recordType,
			line.ProductID,
			types.NewQuantityFromFloat64(float64(line.Quantity)),
		))
	}

	return movements, nil
}

// StockDemands implements posting.StockDemander. Only returns consume stock.
func (p *Purchase) StockDemands() []stock.StockReservation {
	if !p.IsReturn {
		return nil
	}

	demands := make([]stock.StockReservation, 0, len(p.Lines))
	for _, line := range p.Lines {
		demands = append(demands, stock.StockReservation{
			ProductID:   line.ProductID,
			RequiredQty: types.NewQuantityFromFloat64(float64(line.Quantity)),
		})
	}
	return demands
}

var (
	_ posting.Postable      = (*Purchase)(nil)
	_ posting.StockDemander = (*Purchase)(nil)
)
