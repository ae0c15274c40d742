package tax

import (
	"context"
	"fmt"
	"time"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/id"
	"aromapos/internal/core/tx"
	"aromapos/internal/domain"
	"aromapos/internal/pricing"
	"aromapos/pkg/numerator"
)

// Service provides business logic for the Tax catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Tax]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new Tax service.
func NewService(repo Repository, txm tx.Manager, num *numerator.Service) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Tax]{
		Repo:       repo,
		TxManager:  txm,
		Numerator:  num,
		EntityName: "tax",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      num,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.checkNameUnique)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, t *Tax) error {
	if t.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("TX"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		t.Code = code
	}
	return s.checkNameUnique(ctx, t)
}

func (s *Service) checkNameUnique(ctx context.Context, t *Tax) error {
	existing, err := s.repo.FindByName(ctx, t.Name)
	if err != nil {
		return nil // not found is fine
	}
	if existing.ID != t.ID {
		return apperror.NewDuplicate("tax", "name", t.Name)
	}
	return nil
}

// ResolveRate loads a tax by ID and converts it for the pricing engine.
// Nil taxID resolves to no tax.
func (s *Service) ResolveRate(ctx context.Context, taxID *id.ID) (*pricing.TaxRate, error) {
	if taxID == nil || id.IsNil(*taxID) {
		return nil, nil
	}
	t, err := s.GetByID(ctx, *taxID)
	if err != nil {
		return nil, err
	}
	return t.ToRate(), nil
}
