package handlers

import (
	"aromapos/internal/domain/catalogs/tax"
	"aromapos/internal/infrastructure/http/v1/dto"
)

// TaxHTTPHandler serves the tax rates catalog.
type TaxHTTPHandler = CatalogHandler[
	*tax.Tax,
	dto.CreateTaxRequest,
	dto.UpdateTaxRequest,
]

// NewTaxHandler wires the generic catalog handler for taxes.
func NewTaxHandler(base *BaseHandler, service *tax.Service) *TaxHTTPHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[
		*tax.Tax,
		dto.CreateTaxRequest,
		dto.UpdateTaxRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "tax",
		MapCreateDTO: func(req dto.CreateTaxRequest) (*tax.Tax, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateTaxRequest, existing *tax.Tax) (*tax.Tax, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
		MapToDTO: func(t *tax.Tax) any {
			return dto.FromTax(t)
		},
	})
}
