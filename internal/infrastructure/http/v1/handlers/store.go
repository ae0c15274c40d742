package handlers

import (
	"aromapos/internal/domain/catalogs/store"
	"aromapos/internal/infrastructure/http/v1/dto"
)

// StoreHTTPHandler serves the shop profile catalog.
type StoreHTTPHandler = CatalogHandler[
	*store.Store,
	dto.CreateStoreRequest,
	dto.UpdateStoreRequest,
]

// NewStoreHandler wires the generic catalog handler for the shop profile.
func NewStoreHandler(base *BaseHandler, service *store.Service) *StoreHTTPHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[
		*store.Store,
		dto.CreateStoreRequest,
		dto.UpdateStoreRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "store",
		MapCreateDTO: func(req dto.CreateStoreRequest) (*store.Store, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateStoreRequest, existing *store.Store) (*store.Store, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
		MapToDTO: func(s *store.Store) any {
			return dto.FromStore(s)
		},
	})
}
