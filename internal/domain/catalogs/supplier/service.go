package supplier

import (
	"context"
	"fmt"
	"time"

	appctx "aromapos/internal/core/context"
	"aromapos/internal/core/id"
	"aromapos/internal/core/tx"
	"aromapos/internal/core/types"
	"aromapos/internal/domain"
	"aromapos/pkg/numerator"
)

// Service provides business logic for the Supplier catalog and its ledger.
type Service struct {
	*domain.CatalogService[*Supplier]
	repo      Repository
	txManager tx.Manager
	numerator *numerator.Service
}

// NewService creates a new Supplier service.
func NewService(repo Repository, txm tx.Manager, num *numerator.Service) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Supplier]{
		Repo:       repo,
		TxManager:  txm,
		Numerator:  num,
		EntityName: "supplier",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		txManager:      txm,
		numerator:      num,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, sup *Supplier) error {
	if sup.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig("SUP"), nil, time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		sup.Code = code
	}
	// A new supplier starts at its opening balance.
	sup.CurrentBalance = sup.OpeningBalance
	return nil
}

// RecordTransaction appends a ledger entry and moves the supplier balance.
// Runs in one transaction with a row lock on the supplier, so concurrent
// entries cannot produce a stale running balance.
func (s *Service) RecordTransaction(ctx context.Context, t *Transaction) error {
	if err := t.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		sup, err := s.repo.GetForUpdate(ctx, t.SupplierID)
		if err != nil {
			return err
		}

		if t.ID == id.Nil() {
			t.ID = id.New()
		}
		if t.Number == "" {
			cfg := numerator.Config{Prefix: "ST", PadWidth: 4, ResetPeriod: "never"}
			number, err := s.numerator.GetNextNumber(ctx, cfg, nil, t.Date)
			if err != nil {
				return fmt.Errorf("generate transaction number: %w", err)
			}
			t.Number = number
		}
		if t.Date.IsZero() {
			t.Date = time.Now().UTC()
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = time.Now().UTC()
		}
		if t.CreatedBy == "" {
			t.CreatedBy = appctx.GetUsername(ctx)
		}

		newBalance := sup.CurrentBalance.Add(t.SignedAmount())
		t.BalanceAfter = newBalance

		if err := s.repo.CreateTransaction(ctx, t); err != nil {
			return fmt.Errorf("create supplier transaction: %w", err)
		}
		if err := s.repo.UpdateBalance(ctx, sup.ID, newBalance); err != nil {
			return fmt.Errorf("update supplier balance: %w", err)
		}
		return nil
	})
}

// ListTransactions returns the supplier's ledger, newest first.
func (s *Service) ListTransactions(ctx context.Context, supplierID id.ID, limit, offset int) ([]Transaction, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.ListTransactions(ctx, supplierID, limit, offset)
}

// Balance returns the current amount owed to a supplier.
func (s *Service) Balance(ctx context.Context, supplierID id.ID) (types.Money, error) {
	sup, err := s.GetByID(ctx, supplierID)
	if err != nil {
		return types.Zero(), err
	}
	return sup.CurrentBalance, nil
}
