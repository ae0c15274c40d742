package dto

import (
	"aromapos/internal/core/apperror"
	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
	"aromapos/internal/domain/catalogs/product"
	"aromapos/internal/pricing"
)

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code            string          `json:"code"`
	Name            string          `json:"name" binding:"required"`
	HSNCode         string          `json:"hsnCode"`
	CategoryID      *string         `json:"categoryId"`
	UnitID          *string         `json:"unitId"`
	Description     *string         `json:"description"`
	MRP             types.Money     `json:"mrp"`
	DiscountPercent types.Money     `json:"discountPercent"`
	PurchaseRate    types.Money     `json:"purchaseRate"`
	Tax1ID          *string         `json:"tax1Id"`
	Tax2ID          *string         `json:"tax2Id"`
	TaxMode         pricing.TaxMode `json:"taxMode"`
	OpeningStock    float64         `json:"openingStock"`
	Barcode         string          `json:"barcode"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() (*product.Product, error) {
	p := product.NewProduct(r.Code, r.Name, r.MRP)
	p.HSNCode = r.HSNCode
	p.Description = r.Description
	p.DiscountPercent = r.DiscountPercent
	p.PurchaseRate = r.PurchaseRate
	if r.TaxMode != "" {
		p.TaxMode = r.TaxMode
	}
	p.OpeningStock = types.NewQuantityFromFloat64(r.OpeningStock)
	p.Barcode = r.Barcode

	var err error
	if p.CategoryID, err = parseOptionalID(r.CategoryID, "categoryId"); err != nil {
		return nil, err
	}
	if p.UnitID, err = parseOptionalID(r.UnitID, "unitId"); err != nil {
		return nil, err
	}
	if p.Tax1ID, err = parseOptionalID(r.Tax1ID, "tax1Id"); err != nil {
		return nil, err
	}
	if p.Tax2ID, err = parseOptionalID(r.Tax2ID, "tax2Id"); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProductRequest is the request body for updating a product.
type UpdateProductRequest struct {
	Code            string          `json:"code"`
	Name            string          `json:"name" binding:"required"`
	HSNCode         string          `json:"hsnCode"`
	CategoryID      *string         `json:"categoryId"`
	UnitID          *string         `json:"unitId"`
	Description     *string         `json:"description"`
	MRP             types.Money     `json:"mrp"`
	DiscountPercent types.Money     `json:"discountPercent"`
	PurchaseRate    types.Money     `json:"purchaseRate"`
	Tax1ID          *string         `json:"tax1Id"`
	Tax2ID          *string         `json:"tax2Id"`
	TaxMode         pricing.TaxMode `json:"taxMode"`
	Barcode         string          `json:"barcode"`
	Active          bool            `json:"active"`
	Version         int             `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) error {
	var err error
	var categoryID, unitID, tax1ID, tax2ID *id.ID
	if categoryID, err = parseOptionalID(r.CategoryID, "categoryId"); err != nil {
		return err
	}
	if unitID, err = parseOptionalID(r.UnitID, "unitId"); err != nil {
		return err
	}
	if tax1ID, err = parseOptionalID(r.Tax1ID, "tax1Id"); err != nil {
		return err
	}
	if tax2ID, err = parseOptionalID(r.Tax2ID, "tax2Id"); err != nil {
		return err
	}

	p.Code = r.Code
	p.Name = r.Name
	p.HSNCode = r.HSNCode
	p.CategoryID = categoryID
	p.UnitID = unitID
	p.Description = r.Description
	p.MRP = r.MRP
	p.DiscountPercent = r.DiscountPercent
	p.PurchaseRate = r.PurchaseRate
	p.Tax1ID = tax1ID
	p.Tax2ID = tax2ID
	if r.TaxMode != "" {
		p.TaxMode = r.TaxMode
	}
	p.Barcode = r.Barcode
	p.Active = r.Active
	p.Version = r.Version
	return nil
}

// ProductResponse is the response body for a product.
type ProductResponse struct {
	CatalogResponse
	HSNCode         string          `json:"hsnCode,omitempty"`
	CategoryID      *string         `json:"categoryId,omitempty"`
	UnitID          *string         `json:"unitId,omitempty"`
	Description     *string         `json:"description,omitempty"`
	MRP             types.Money     `json:"mrp"`
	DiscountPercent types.Money     `json:"discountPercent"`
	PurchaseRate    types.Money     `json:"purchaseRate"`
	Tax1ID          *string         `json:"tax1Id,omitempty"`
	Tax2ID          *string         `json:"tax2Id,omitempty"`
	TaxMode         pricing.TaxMode `json:"taxMode"`
	OpeningStock    float64         `json:"openingStock"`
	Barcode         string          `json:"barcode"`
	Active          bool            `json:"active"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		CatalogResponse: FromCatalog(p.Catalog),
		HSNCode:         p.HSNCode,
		CategoryID:      idToString(p.CategoryID),
		UnitID:          idToString(p.UnitID),
		Description:     p.Description,
		MRP:             p.MRP,
		DiscountPercent: p.DiscountPercent,
		PurchaseRate:    p.PurchaseRate,
		Tax1ID:          idToString(p.Tax1ID),
		Tax2ID:          idToString(p.Tax2ID),
		TaxMode:         p.TaxMode,
		OpeningStock:    p.OpeningStock.Float64(),
		Barcode:         p.Barcode,
		Active:          p.Active,
	}
}

// PriceBreakdownResponse is the response body for the price preview.
type PriceBreakdownResponse struct {
	DiscountAmount     types.Money `json:"discountAmount"`
	PriceAfterDiscount types.Money `json:"priceAfterDiscount"`
	Tax1Amount         types.Money `json:"tax1Amount"`
	Tax2Amount         types.Money `json:"tax2Amount"`
	TotalTaxAmount     types.Money `json:"totalTaxAmount"`
	UnitFinalPrice     types.Money `json:"unitFinalPrice"`
	LineAmount         types.Money `json:"lineAmount"`
	LineTaxAmount      types.Money `json:"lineTaxAmount"`
	LineTotalAmount    types.Money `json:"lineTotalAmount"`
}

// FromLineResult creates response DTO from a pricing result.
func FromLineResult(r pricing.LineResult) *PriceBreakdownResponse {
	return &PriceBreakdownResponse{
		DiscountAmount:     r.DiscountAmount,
		PriceAfterDiscount: r.PriceAfterDiscount,
		Tax1Amount:         r.Tax1Amount,
		Tax2Amount:         r.Tax2Amount,
		TotalTaxAmount:     r.TotalTaxAmount,
		UnitFinalPrice:     r.UnitFinalPrice,
		LineAmount:         r.LineAmount,
		LineTaxAmount:      r.LineTaxAmount,
		LineTotalAmount:    r.LineTotalAmount,
	}
}

func parseOptionalID(raw *string, field string) (*id.ID, error) {
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
