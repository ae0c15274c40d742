package dto

import (
	"aromapos/internal/core/types"
	"aromapos/internal/domain/catalogs/tax"
)

// CreateTaxRequest is the request body for creating a tax rate.
type CreateTaxRequest struct {
	Code        string      `json:"code"`
	Name        string      `json:"name" binding:"required"`
	Rate        types.Money `json:"rate"`
	Description *string     `json:"description"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateTaxRequest) ToEntity() *tax.Tax {
	t := tax.NewTax(r.Code, r.Name, r.Rate)
	t.Description = r.Description
	return t
}

// UpdateTaxRequest is the request body for updating a tax rate.
type UpdateTaxRequest struct {
	Code        string      `json:"code"`
	Name        string      `json:"name" binding:"required"`
	Rate        types.Money `json:"rate"`
	Description *string     `json:"description"`
	Version     int         `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateTaxRequest) ApplyTo(t *tax.Tax) {
	t.Code = r.Code
	t.Name = r.Name
	t.Rate = r.Rate
	t.Description = r.Description
	t.Version = r.Version
}

// TaxResponse is the response body for a tax rate.
type TaxResponse struct {
	CatalogResponse
	Rate        types.Money `json:"rate"`
	Display     string      `json:"display"`
	Description *string     `json:"description,omitempty"`
}

// FromTax creates response DTO from domain entity.
func FromTax(t *tax.Tax) *TaxResponse {
	return &TaxResponse{
		CatalogResponse: FromCatalog(t.Catalog),
		Rate:            t.Rate,
		Display:         t.Display(),
		Description:     t.Description,
	}
}
