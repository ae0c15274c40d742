package dto

import (
	"aromapos/internal/core/id"
	"aromapos/internal/domain/catalogs/customer"
)

// CreateCustomerRequest is the request body for creating a customer.
type CreateCustomerRequest struct {
	Code            string  `json:"code"`
	Name            string  `json:"name" binding:"required"`
	Address         string  `json:"address"`
	Place           string  `json:"place"`
	PINCode         string  `json:"pinCode"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	PrivilegeCardID *string `json:"privilegeCardId"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateCustomerRequest) ToEntity() (*customer.Customer, error) {
	c := customer.NewCustomer(r.Code, r.Name)
	c.Address = r.Address
	c.Place = r.Place
	c.PINCode = r.PINCode
	c.Email = r.Email
	c.Phone = r.Phone

	cardID, err := parseOptionalID(r.PrivilegeCardID, "privilegeCardId")
	if err != nil {
		return nil, err
	}
	c.PrivilegeCardID = cardID
	return c, nil
}

// UpdateCustomerRequest is the request body for updating a customer.
type UpdateCustomerRequest struct {
	Code            string  `json:"code"`
	Name            string  `json:"name" binding:"required"`
	Address         string  `json:"address"`
	Place           string  `json:"place"`
	PINCode         string  `json:"pinCode"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	PrivilegeCardID *string `json:"privilegeCardId"`
	Version         int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateCustomerRequest) ApplyTo(c *customer.Customer) error {
	cardID, err := parseOptionalID(r.PrivilegeCardID, "privilegeCardId")
	if err != nil {
		return err
	}

	c.Code = r.Code
	c.Name = r.Name
	c.Address = r.Address
	c.Place = r.Place
	c.PINCode = r.PINCode
	c.Email = r.Email
	c.Phone = r.Phone
	c.PrivilegeCardID = cardID
	c.Version = r.Version
	return nil
}

// CustomerResponse is the response body for a customer.
type CustomerResponse struct {
	CatalogResponse
	Address         string  `json:"address,omitempty"`
	Place           string  `json:"place,omitempty"`
	PINCode         string  `json:"pinCode,omitempty"`
	Email           string  `json:"email,omitempty"`
	Phone           string  `json:"phone,omitempty"`
	PrivilegeCardID *string `json:"privilegeCardId,omitempty"`
}

// FromCustomer creates response DTO from domain entity.
func FromCustomer(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		CatalogResponse: FromCatalog(c.Catalog),
		Address:         c.Address,
		Place:           c.Place,
		PINCode:         c.PINCode,
		Email:           c.Email,
		Phone:           c.Phone,
		PrivilegeCardID: idToString(c.PrivilegeCardID),
	}
}

func idToString(v *id.ID) *string {
	if v == nil {
		return nil
	}
	s := v.String()
	return &s
}
