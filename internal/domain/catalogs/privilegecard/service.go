package privilegecard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"aromapos/internal/core/id"
	"aromapos/internal/core/tx"
	"aromapos/internal/core/types"
	"aromapos/internal/domain"
	"aromapos/pkg/numerator"
)

// Service provides business logic for the PrivilegeCard catalog.
type Service struct {
	*domain.CatalogService[*PrivilegeCard]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new PrivilegeCard service.
func NewService(repo Repository, txm tx.Manager, num *numerator.Service) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*PrivilegeCard]{
		Repo:       repo,
		TxManager:  txm,
		Numerator:  num,
		EntityName: "privilege card",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      num,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, card *PrivilegeCard) error {
	if card.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("PC"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		card.Code = code
	}
	return nil
}

// DiscountFor resolves the discount percentage for a card reference.
// Nil, missing or inactive cards resolve to zero.
func (s *Service) DiscountFor(ctx context.Context, cardID *id.ID) (types.Money, error) {
	if cardID == nil || id.IsNil(*cardID) {
		return decimal.Zero, nil
	}
	card, err := s.GetByID(ctx, *cardID)
	if err != nil {
		return decimal.Zero, err
	}
	if !card.Active || card.DeletionMark {
		return decimal.Zero, nil
	}
	return card.DiscountPercent, nil
}
