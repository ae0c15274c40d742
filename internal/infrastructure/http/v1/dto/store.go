package dto

import (
	"aromapos/internal/domain/catalogs/store"
)

// CreateStoreRequest is the request body for creating the shop profile.
type CreateStoreRequest struct {
	Code      string `json:"code"`
	Name      string `json:"name" binding:"required"`
	Place     string `json:"place" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	GSTNumber string `json:"gstNumber"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateStoreRequest) ToEntity() *store.Store {
	s := store.NewStore(r.Code, r.Name, r.Place)
	s.Email = r.Email
	s.Phone = r.Phone
	s.GSTNumber = r.GSTNumber
	return s
}

// UpdateStoreRequest is the request body for updating the shop profile.
type UpdateStoreRequest struct {
	Code      string `json:"code"`
	Name      string `json:"name" binding:"required"`
	Place     string `json:"place" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	GSTNumber string `json:"gstNumber"`
	Version   int    `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateStoreRequest) ApplyTo(s *store.Store) {
	s.Code = r.Code
	s.Name = r.Name
	s.Place = r.Place
	s.Email = r.Email
	s.Phone = r.Phone
	s.GSTNumber = r.GSTNumber
	s.Version = r.Version
}

// StoreResponse is the response body for the shop profile.
type StoreResponse struct {
	CatalogResponse
	Place     string `json:"place"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	GSTNumber string `json:"gstNumber,omitempty"`
}

// FromStore creates response DTO from domain entity.
func FromStore(s *store.Store) *StoreResponse {
	return &StoreResponse{
		CatalogResponse: FromCatalog(s.Catalog),
		Place:           s.Place,
		Email:           s.Email,
		Phone:           s.Phone,
		GSTNumber:       s.GSTNumber,
	}
}
