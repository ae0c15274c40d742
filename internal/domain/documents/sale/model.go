// Package sale provides the sales invoice document.
package sale

import (
	"context"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/entity"
	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
	"aromapos/internal/domain/posting"
	"aromapos/internal/domain/registers/stock"
	"aromapos/internal/pricing"
)

// PaymentMethod is how the customer settles the sale.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentOnline PaymentMethod = "ONLINE"
	PaymentCheque PaymentMethod = "CHEQUE"
	PaymentCredit PaymentMethod = "CREDIT"
)

// Sale records goods sold over the counter. A sale with the return flag
// set brings goods back into stock and reverses the amounts.
type Sale struct {
	entity.Document
	entity.ReturnAware

	// CustomerID is optional: walk-in sales have no customer.
	CustomerID    *id.ID        `db:"customer_id" json:"customerId,omitempty"`
	PaymentMethod PaymentMethod `db:"payment_method" json:"paymentMethod"`
	Notes         string        `db:"notes" json:"notes,omitempty"`

	// CustomerDiscountPercent is the privilege card discount captured at
	// sale time. Later card changes do not reprice history.
	CustomerDiscountPercent types.Money `db:"customer_discount_percent" json:"customerDiscountPercent"`

	// Totals (calculated from lines)
	Subtotal            types.Money `db:"subtotal" json:"subtotal"`
	TotalTax            types.Money `db:"total_tax" json:"totalTax"`
	TotalBeforeDiscount types.Money `db:"total_before_discount" json:"totalBeforeDiscount"`
	DiscountAmount      types.Money `db:"discount_amount" json:"discountAmount"`
	GrandTotal          types.Money `db:"grand_total" json:"grandTotal"`

	// Table part: sold goods
	Lines []Line `db:"-" json:"lines"`
}

// Line represents a sold product.
type Line struct {
	LineID id.ID `db:"line_id" json:"lineId"`
	LineNo int   `db:"line_no" json:"lineNo"`

	ProductID id.ID `db:"product_id" json:"productId"`

	Quantity        int64           `db:"quantity" json:"quantity"`
	Price           types.Money     `db:"price" json:"price"`
	DiscountPercent types.Money     `db:"discount_percent" json:"discountPercent"`
	TaxMode         pricing.TaxMode `db:"tax_mode" json:"taxMode"`

	// Tax rates captured at sale time
	Tax1Name string      `db:"tax1_name" json:"tax1Name,omitempty"`
	Tax1Rate types.Money `db:"tax1_rate" json:"tax1Rate"`
	Tax2Name string      `db:"tax2_name" json:"tax2Name,omitempty"`
	Tax2Rate types.Money `db:"tax2_rate" json:"tax2Rate"`

	// Amount is the line total before the customer discount,
	// TotalAmount after it. TaxAmount is informational for
	// tax-inclusive lines.
	TaxAmount   types.Money `db:"tax_amount" json:"taxAmount"`
	Amount      types.Money `db:"amount" json:"amount"`
	TotalAmount types.Money `db:"total_amount" json:"totalAmount"`

	ReturnedQuantity int64 `db:"returned_quantity" json:"returnedQuantity"`
}

// Returnable returns the quantity still available for return.
func (l Line) Returnable() int64 {
	return l.Quantity - l.ReturnedQuantity
}

func (l Line) tax1() *pricing.TaxRate {
	if l.Tax1Name == "" && l.Tax1Rate.IsZero() {
		return nil
	}
	return &pricing.TaxRate{Name: l.Tax1Name, Rate: l.Tax1Rate}
}

func (l Line) tax2() *pricing.TaxRate {
	if l.Tax2Name == "" && l.Tax2Rate.IsZero() {
		return nil
	}
	return &pricing.TaxRate{Name: l.Tax2Name, Rate: l.Tax2Rate}
}

func (l Line) input() pricing.LineInput {
	return pricing.LineInput{
		BasePrice:       l.Price,
		DiscountPercent: l.DiscountPercent,
		TaxMode:         l.TaxMode,
		Tax1:            l.tax1(),
		Tax2:            l.tax2(),
		Quantity:        l.Quantity,
	}
}

// New creates a draft sale.
func New(customerID *id.ID, method PaymentMethod) *Sale {
	return &Sale{
		Document:      entity.NewDocument(),
		CustomerID:    customerID,
		PaymentMethod: method,
		Lines:         make([]Line, 0),
	}
}

// AddLine appends an unpriced line. Call Reprice after all lines are added.
func (s *Sale) AddLine(productID id.ID, quantity int64, price, discountPercent types.Money, mode pricing.TaxMode, tax1, tax2 *pricing.TaxRate) {
	line := Line{
		LineID:          id.New(),
		LineNo:          len(s.Lines) + 1,
		ProductID:       productID,
		Quantity:        quantity,
		Price:           price,
		DiscountPercent: discountPercent,
		TaxMode:         mode,
	}
	if tax1 != nil {
		line.Tax1Name = tax1.Name
		line.Tax1Rate = tax1.Rate
	}
	if tax2 != nil {
		line.Tax2Name = tax2.Name
		line.Tax2Rate = tax2.Rate
	}
	s.Lines = append(s.Lines, line)
}

// Reprice recomputes every line and the document totals. The customer
// discount is applied to the tax-inclusive line totals, always last.
func (s *Sale) Reprice() {
	results := make([]pricing.LineResult, len(s.Lines))
	for i := range s.Lines {
		res := pricing.ComputeLine(s.Lines[i].input())
		res = pricing.ApplyCustomerDiscount(res, s.CustomerDiscountPercent)
		results[i] = res

		s.Lines[i].TaxAmount = res.LineTaxAmount
		s.Lines[i].Amount = res.LineAmount
		s.Lines[i].TotalAmount = res.LineTotalAmount
	}

	totals := pricing.AggregateTotals(results, s.CustomerDiscountPercent)
	s.Subtotal = totals.Subtotal
	s.TotalTax = totals.TotalTaxAmount
	s.TotalBeforeDiscount = totals.TotalBeforeDiscount
	s.DiscountAmount = totals.DiscountAmount
	s.GrandTotal = totals.GrandTotal
}

// Validate implements entity.Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if err := s.Document.Validate(ctx); err != nil {
		return err
	}
	if err := s.ValidateReturn(ctx); err != nil {
		return err
	}

	switch s.PaymentMethod {
	case PaymentCash, PaymentOnline, PaymentCheque, PaymentCredit:
	default:
		return apperror.NewValidation("invalid payment method").
			WithDetail("field", "paymentMethod").
			WithDetail("value", string(s.PaymentMethod))
	}

	if len(s.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	for i, line := range s.Lines {
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
func (s *Sale) GetDocumentType() string {
	return "Sale"
}

// GenerateMovements creates stock movements for this document.
// A sale expends goods; a sales return receives them back.
func (s *Sale) GenerateMovements(ctx context.Context) (*posting.MovementSet, error) {
	movements := posting.NewMovementSet()

	recordType := entity.RecordTypeExpense
	if s.IsReturn {
		recordType = entity.RecordTypeReceipt
	}

	newVersion := s.PostedVersion + 1
	for _, line := range s.Lines {
		movements.AddStock(entity.NewStockMovement(
			s.ID,
			s.GetDocumentType(),
			newVersion,
			s.Date,
			recordType,
			line.ProductID,
			types.NewQuantityFromFloat64(float64(line.Quantity)),
		))
	}

	return movements, nil
}

// StockDemands implements posting.StockDemander. Returns replenish stock,
// so only regular sales are checked.
func (s *Sale) StockDemands() []stock.StockReservation {
	if s.IsReturn {
		return nil
	}

	demands := make([]stock.StockReservation, 0, len(s.Lines))
	for _, line := range s.Lines {
		demands = append(demands, stock.StockReservation{
			ProductID:   line.ProductID,
			RequiredQty: types.NewQuantityFromFloat64(float64(line.Quantity)),
		})
	}
	return demands
}

var (
	_ posting.Postable      = (*Sale)(nil)
	_ posting.StockDemander = (*Sale)(nil)
)
