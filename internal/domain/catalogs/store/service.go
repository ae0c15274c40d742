package store

import (
	"context"
	"fmt"
	"time"

	"aromapos/internal/core/tx"
	"aromapos/internal/domain"
	"aromapos/pkg/numerator"
)

// Service provides business logic for the Store catalog.
type Service struct {
	*domain.CatalogService[*Store]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new Store service.
func NewService(repo Repository, txm tx.Manager, num *numerator.Service) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Store]{
		Repo:       repo,
		TxManager:  txm,
		Numerator:  num,
		EntityName: "store",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      num,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, st *Store) error {
	if st.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("STR"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		st.Code = code
	}
	return nil
}
