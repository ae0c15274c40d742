package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aromapos/internal/domain/catalogs/customer"
	"aromapos/internal/infrastructure/http/v1/dto"
)

// CustomerHandler serves the customers catalog plus phone lookup.
type CustomerHandler struct {
	*CatalogHandler[*customer.Customer, dto.CreateCustomerRequest, dto.UpdateCustomerRequest]
	service *customer.Service
}

// NewCustomerHandler wires the customer handler.
func NewCustomerHandler(base *BaseHandler, service *customer.Service) *CustomerHandler {
	inner := NewCatalogHandler(base, CatalogHandlerConfig[
		*customer.Customer,
		dto.CreateCustomerRequest,
		dto.UpdateCustomerRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "customer",
		MapCreateDTO: func(req dto.CreateCustomerRequest) (*customer.Customer, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateCustomerRequest, existing *customer.Customer) (*customer.Customer, error) {
			if err := req.ApplyTo(existing); err != nil {
				return nil, err
			}
			return existing, nil
		},
		MapToDTO: func(cus *customer.Customer) any {
			return dto.FromCustomer(cus)
		},
	})

	return &CustomerHandler{CatalogHandler: inner, service: service}
}

// FindByPhone handles GET /catalog/customers/phone/:phone.
// Tills identify returning customers by phone number.
func (h *CustomerHandler) FindByPhone(c *gin.Context) {
	cus, err := h.service.FindByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCustomer(cus))
}
