// Package purchase provides the purchase document service.
package purchase

import (
	"context"
	"fmt"
	"time"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/id"
	"aromapos/internal/core/tx"
	"aromapos/internal/domain"
	"aromapos/internal/domain/catalogs/supplier"
	"aromapos/internal/domain/posting"
	"aromapos/pkg/logger"
	"aromapos/pkg/numerator"
)

// Service provides business operations for purchase documents.
type Service struct {
	repo          Repository
	suppliers     *supplier.Service
	postingEngine *posting.Engine
	numerator     *numerator.Service
	txManager     tx.Manager
	hooks         *domain.HookRegistry[*Purchase]
}

// NewService creates a new purchase service.
func NewService(
	repo Repository,
	suppliers *supplier.Service,
	postingEngine *posting.Engine,
	num *numerator.Service,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:          repo,
		suppliers:     suppliers,
		postingEngine: postingEngine,
		numerator:     num,
		txManager:     txManager,
		hooks:         domain.NewHookRegistry[*Purchase](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Purchase] {
	return s.hooks
}

func (s *Service) assignNumber(ctx context.Context, doc *Purchase) error {
	if doc.Number != "" {
		return nil
	}

	prefix := EntryPrefix
	if doc.IsReturn {
		prefix = ReturnPrefix
	}

	cfg := numerator.DefaultConfig(prefix)
	number, err := s.numerator.GetNextNumber(ctx, cfg, &numerator.Options{Strategy: NumeratorStrategy}, time.Now())
	if err != nil {
		return fmt.Errorf("generate number: %w", err)
	}
	doc.Number = number
	return nil
}

// Create creates a new purchase document in draft state.
func (s *Service) Create(ctx context.Context, doc *Purchase) error {
	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	doc.RecalculateTotals()
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if err := s.assignNumber(ctx, doc); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterCreate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "purchase created",
		"id", doc.ID,
		"number", doc.Number,
		"is_return", doc.IsReturn)

	return nil
}

// GetByID retrieves a purchase with lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Purchase, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	doc.Lines = lines

	return doc, nil
}

// Update updates an unposted purchase document.
func (s *Service) Update(ctx context.Context, doc *Purchase) error {
	if err := s.hooks.RunBeforeUpdate(ctx, doc); err != nil {
		return err
	}

	if err := doc.CanModify(); err != nil {
		return err
	}

	doc.RecalculateTotals()
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return nil
	})
}

// Delete soft-deletes an unposted purchase.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if doc.Posted {
		return doc.CanModify()
	}

	return s.repo.Delete(ctx, docID)
}

// Post records stock movements and, for credit purchases, writes the
// supplier ledger entry. Everything runs in one transaction.
func (s *Service) Post(ctx context.Context, docID id.ID) error {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return err
	}
	return s.post(ctx, doc, false)
}

func (s *Service) post(ctx context.Context, doc *Purchase, createFirst bool) error {
	updateDoc := func(ctx context.Context) error {
		doc.Status = StatusCompleted
		if doc.IsReturn {
			doc.Status = StatusReturned
		}

		if createFirst {
			if err := s.repo.Create(ctx, doc); err != nil {
				return err
			}
			if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
				return err
			}
		} else {
			if err := s.repo.Update(ctx, doc); err != nil {
				return err
			}
		}

		return s.recordLedger(ctx, doc, false)
	}

	return s.postingEngine.Post(ctx, doc, updateDoc)
}

// recordLedger writes the supplier ledger entry for credit purchases.
// reverse flips the direction for unposting.
func (s *Service) recordLedger(ctx context.Context, doc *Purchase, reverse bool) error {
	if doc.PaymentType != PaymentCredit {
		return nil
	}

	// A credit purchase increases what we owe; a credit return (or an
	// unpost) decreases it.
	kind := supplier.KindCredit
	if doc.IsReturn != reverse {
		kind = supplier.KindDebit
	}

	remarks := "purchase " + doc.Number
	if reverse {
		remarks = "reversal of purchase " + doc.Number
	}

	t := &supplier.Transaction{
		SupplierID: doc.SupplierID,
		Date:       doc.Date,
		Kind:       kind,
		Amount:     doc.TotalAmount,
		Remarks:    remarks,
	}
	if err := s.suppliers.RecordTransaction(ctx, t); err != nil {
		return fmt.Errorf("supplier ledger: %w", err)
	}
	return nil
}

// Unpost reverses stock movements and the supplier ledger entry.
func (s *Service) Unpost(ctx context.Context, docID id.ID) error {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	updateDoc := func(ctx context.Context) error {
		doc.Status = StatusDraft
		if err := s.repo.Update(ctx, doc); err != nil {
			return err
		}
		return s.recordLedger(ctx, doc, true)
	}

	return s.postingEngine.Unpost(ctx, doc, updateDoc)
}

// PostAndSave creates (if new) and posts the document in one transaction.
func (s *Service) PostAndSave(ctx context.Context, doc *Purchase) error {
	doc.RecalculateTotals()
	if err := doc.Validate(ctx); err != nil {
		return err
	}
	if err := s.assignNumber(ctx, doc); err != nil {
		return err
	}

	return s.post(ctx, doc, doc.Version == 1)
}

// ReturnItem requests a quantity of an original line to be returned.
type ReturnItem struct {
	LineID   id.ID
	Quantity int64
}

// CreateReturn builds and posts a purchase return against the original
// purchase, validating returnable quantities and marking the original.
func (s *Service) CreateReturn(ctx context.Context, originalID id.ID, items []ReturnItem, remarks string) (*Purchase, error) {
	if len(items) == 0 {
		return nil, apperror.NewValidation("at least one return item is required")
	}

	var ret *Purchase
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		original, err := s.repo.GetForUpdate(ctx, originalID)
		if err != nil {
			return err
		}
		lines, err := s.repo.GetLines(ctx, originalID)
		if err != nil {
			return fmt.Errorf("get lines: %w", err)
		}
		original.Lines = lines

		if !original.Posted {
			return apperror.NewValidation("cannot return an unposted purchase").
				WithDetail("document_id", originalID.String())
		}
		if original.IsReturn {
			return apperror.NewValidation("cannot return a return").
				WithDetail("document_id", originalID.String())
		}

		byLine := make(map[id.ID]*Line, len(original.Lines))
		for i := range original.Lines {
			byLine[original.Lines[i].LineID] = &original.Lines[i]
		}

		ret = New(original.SupplierID, original.PaymentType)
		ret.IsReturn = true
		origID := originalID
		ret.OriginalID = &origID
		ret.Remarks = remarks

		for _, item := range items {
			src, ok := byLine[item.LineID]
			if !ok {
				return apperror.NewValidation("unknown line").
					WithDetail("lineId", item.LineID.String())
			}
			if item.Quantity <= 0 || item.Quantity > src.Returnable() {
				return apperror.NewValidation("return quantity exceeds returnable quantity").
					WithDetail("lineId", item.LineID.String()).
					WithDetail("returnable", src.Returnable())
			}

			ret.AddLine(src.ProductID, item.Quantity, src.Rate, src.DiscountPercent, src.TaxMode,
				src.Tax1(), src.Tax2())

			src.ReturnedQuantity += item.Quantity
		}

		if err := s.assignNumber(ctx, ret); err != nil {
			return err
		}
		if err := s.post(ctx, ret, true); err != nil {
			return err
		}

		// Mark the original as returned and persist its counters.
		original.Status = StatusReturned
		if err := s.repo.Update(ctx, original); err != nil {
			return fmt.Errorf("update original: %w", err)
		}
		if err := s.repo.SaveLines(ctx, original.ID, original.Lines); err != nil {
			return fmt.Errorf("save original lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "purchase return created",
		"original_id", originalID,
		"return_id", ret.ID,
		"number", ret.Number)

	return ret, nil
}

// List retrieves purchases with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Purchase], error) {
	return s.repo.List(ctx, filter)
}
