package handlers

import (
	"aromapos/internal/domain/catalogs/privilegecard"
	"aromapos/internal/infrastructure/http/v1/dto"
)

// PrivilegeCardHTTPHandler serves the privilege card tiers catalog.
type PrivilegeCardHTTPHandler = CatalogHandler[
	*privilegecard.PrivilegeCard,
	dto.CreatePrivilegeCardRequest,
	dto.UpdatePrivilegeCardRequest,
]

// NewPrivilegeCardHandler wires the generic catalog handler for card tiers.
func NewPrivilegeCardHandler(base *BaseHandler, service *privilegecard.Service) *PrivilegeCardHTTPHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[
		*privilegecard.PrivilegeCard,
		dto.CreatePrivilegeCardRequest,
		dto.UpdatePrivilegeCardRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "privilege_card",
		MapCreateDTO: func(req dto.CreatePrivilegeCardRequest) (*privilegecard.PrivilegeCard, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdatePrivilegeCardRequest, existing *privilegecard.PrivilegeCard) (*privilegecard.PrivilegeCard, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
		MapToDTO: func(p *privilegecard.PrivilegeCard) any {
			return dto.FromPrivilegeCard(p)
		},
	})
}
