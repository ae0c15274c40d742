package product

import (
	"context"
	"fmt"
	"time"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/id"
	"aromapos/internal/core/tx"
	"aromapos/internal/core/types"
	"aromapos/internal/domain"
	"aromapos/internal/domain/catalogs/tax"
	"aromapos/internal/pricing"
	"aromapos/pkg/numerator"
)

// Service provides business logic for the Product catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Product]
	repo      Repository
	taxes     tax.Repository
	numerator *numerator.Service
}

// NewService creates a new Product service.
func NewService(repo Repository, taxes tax.Repository, txm tx.Manager, num *numerator.Service) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txm,
		Numerator:  num,
		EntityName: "product",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		taxes:          taxes,
		numerator:      num,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.prepareForUpdate)

	return svc
}

// prepareForCreate handles code and barcode generation.
func (s *Service) prepareForCreate(ctx context.Context, p *Product) error {
	if p.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("P"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		p.Code = code
	}

	if p.Barcode == "" {
		p.Barcode = p.GenerateBarcode()
	}

	if exists, _ := s.checkBarcodeExists(ctx, p.Barcode, p.ID); exists {
		return apperror.NewDuplicate("product", "barcode", p.Barcode)
	}

	return nil
}

func (s *Service) prepareForUpdate(ctx context.Context, p *Product) error {
	if p.Barcode == "" {
		p.Barcode = p.GenerateBarcode()
	}
	if exists, _ := s.checkBarcodeExists(ctx, p.Barcode, p.ID); exists {
		return apperror.NewDuplicate("product", "barcode", p.Barcode)
	}
	return nil
}

// FindByBarcode retrieves a product by barcode.
func (s *Service) FindByBarcode(ctx context.Context, barcode string) (*Product, error) {
	return s.repo.FindByBarcode(ctx, barcode)
}

func (s *Service) checkBarcodeExists(ctx context.Context, barcode string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		return false, nil
	}
	return existing.ID != excludeID, nil
}

// LineInput resolves the product's tax references and builds the pricing
// engine input for the given quantity.
func (s *Service) LineInput(ctx context.Context, p *Product, quantity int64) (pricing.LineInput, error) {
	tax1, err := s.resolveRate(ctx, p.Tax1ID)
	if err != nil {
		return pricing.LineInput{}, err
	}
	tax2, err := s.resolveRate(ctx, p.Tax2ID)
	if err != nil {
		return pricing.LineInput{}, err
	}

	return pricing.LineInput{
		BasePrice:       p.MRP,
		DiscountPercent: p.DiscountPercent,
		TaxMode:         p.TaxMode,
		Tax1:            tax1,
		Tax2:            tax2,
		Quantity:        quantity,
	}, nil
}

// PriceBreakdown computes the full monetary breakdown for a product at the
// given quantity and customer discount. Used by the live price preview.
func (s *Service) PriceBreakdown(ctx context.Context, productID id.ID, quantity int64, customerDiscount types.Money) (pricing.LineResult, error) {
	p, err := s.GetByID(ctx, productID)
	if err != nil {
		return pricing.LineResult{}, err
	}

	in, err := s.LineInput(ctx, p, quantity)
	if err != nil {
		return pricing.LineResult{}, err
	}

	result := pricing.ComputeLine(in)
	if customerDiscount.IsPositive() {
		result = pricing.ApplyCustomerDiscount(result, customerDiscount)
	}
	return result, nil
}

// SalePrice returns the per-unit selling price with product discount and
// exclusive tax applied.
func (s *Service) SalePrice(ctx context.Context, p *Product) (types.Money, error) {
	in, err := s.LineInput(ctx, p, 1)
	if err != nil {
		return types.Zero(), err
	}
	return pricing.ComputeLine(in).UnitFinalPrice, nil
}

func (s *Service) resolveRate(ctx context.Context, taxID *id.ID) (*pricing.TaxRate, error) {
	if taxID == nil || id.IsNil(*taxID) {
		return nil, nil
	}
	t, err := s.taxes.GetByID(ctx, *taxID)
	if err != nil {
		if apperror.IsNotFound(err) {
			// Dangling tax reference degrades to "no tax" rather than
			// blocking a sale at the till.
			return nil, nil
		}
		return nil, err
	}
	return t.ToRate(), nil
}
