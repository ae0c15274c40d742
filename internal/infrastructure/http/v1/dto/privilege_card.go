package dto

import (
	"aromapos/internal/core/types"
	"aromapos/internal/domain/catalogs/privilegecard"
)

// CreatePrivilegeCardRequest is the request body for creating a card tier.
type CreatePrivilegeCardRequest struct {
	Code            string             `json:"code"`
	Name            string             `json:"name" binding:"required"`
	Tier            privilegecard.Tier `json:"tier" binding:"required"`
	DiscountPercent types.Money        `json:"discountPercent"`
}

// ToEntity converts DTO to domain entity.
func (r *CreatePrivilegeCardRequest) ToEntity() *privilegecard.PrivilegeCard {
	return privilegecard.NewPrivilegeCard(r.Code, r.Name, r.Tier, r.DiscountPercent)
}

// UpdatePrivilegeCardRequest is the request body for updating a card tier.
type UpdatePrivilegeCardRequest struct {
	Code            string             `json:"code"`
	Name            string             `json:"name" binding:"required"`
	Tier            privilegecard.Tier `json:"tier" binding:"required"`
	DiscountPercent types.Money        `json:"discountPercent"`
	Active          bool               `json:"active"`
	Version         int                `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdatePrivilegeCardRequest) ApplyTo(p *privilegecard.PrivilegeCard) {
	p.Code = r.Code
	p.Name = r.Name
	p.Tier = r.Tier
	p.DiscountPercent = r.DiscountPercent
	p.Active = r.Active
	p.Version = r.Version
}

// PrivilegeCardResponse is the response body for a card tier.
type PrivilegeCardResponse struct {
	CatalogResponse
	Tier            privilegecard.Tier `json:"tier"`
	DiscountPercent types.Money        `json:"discountPercent"`
	Active          bool               `json:"active"`
}

// FromPrivilegeCard creates response DTO from domain entity.
func FromPrivilegeCard(p *privilegecard.PrivilegeCard) *PrivilegeCardResponse {
	return &PrivilegeCardResponse{
		CatalogResponse: FromCatalog(p.Catalog),
		Tier:            p.Tier,
		DiscountPercent: p.DiscountPercent,
		Active:          p.Active,
	}
}
