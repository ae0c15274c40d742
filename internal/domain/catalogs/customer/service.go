package customer

import (
	"context"
	"fmt"
	"time"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/id"
	"aromapos/internal/core/tx"
	"aromapos/internal/domain"
	"aromapos/pkg/numerator"
)

// Service provides business logic for the Customer catalog.
type Service struct {
	*domain.CatalogService[*Customer]
	repo      Repository
	numerator *numerator.Service
}

// NewService creates a new Customer service.
func NewService(repo Repository, txm tx.Manager, num *numerator.Service) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Customer]{
		Repo:       repo,
		TxManager:  txm,
		Numerator:  num,
		EntityName: "customer",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      num,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.checkContactsUnique)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, c *Customer) error {
	if c.Code == "" {
		// Customer numbers run CIN-001, CIN-002, ... without a year segment.
		cfg := numerator.Config{Prefix: "CIN", PadWidth: 3, ResetPeriod: "never"}
		code, err := s.numerator.GetNextNumber(ctx, cfg, nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		c.Code = code
	}
	return s.checkContactsUnique(ctx, c)
}

func (s *Service) checkContactsUnique(ctx context.Context, c *Customer) error {
	if c.Phone != "" {
		if existing, err := s.repo.FindByPhone(ctx, c.Phone); err == nil && existing.ID != c.ID {
			return apperror.NewDuplicate("customer", "phone", c.Phone)
		}
	}
	if c.Email != "" {
		if existing, err := s.repo.FindByEmail(ctx, c.Email); err == nil && existing.ID != c.ID {
			return apperror.NewDuplicate("customer", "email", c.Email)
		}
	}
	return nil
}

// FindByPhone retrieves a customer by phone number.
func (s *Service) FindByPhone(ctx context.Context, phone string) (*Customer, error) {
	return s.repo.FindByPhone(ctx, phone)
}

// CardID returns the customer's privilege card reference, or nil.
func (s *Service) CardID(ctx context.Context, customerID id.ID) (*id.ID, error) {
	c, err := s.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return c.PrivilegeCardID, nil
}
