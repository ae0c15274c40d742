// Package sale provides the sale document service.
package sale

import (
	"context"
	"fmt"
	"time"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/id"
	"aromapos/internal/core/tx"
	"aromapos/internal/domain"
	"aromapos/internal/domain/catalogs/customer"
	"aromapos/internal/domain/catalogs/privilegecard"
	"aromapos/internal/domain/posting"
	"aromapos/pkg/logger"
	"aromapos/pkg/numerator"
)

// Service provides business operations for sale documents.
type Service struct {
	repo          Repository
	customers     *customer.Service
	cards         *privilegecard.Service
	postingEngine *posting.Engine
	numerator     *numerator.Service
	txManager     tx.Manager
	hooks         *domain.HookRegistry[*Sale]
}

// NewService creates a new sale service.
func NewService(
	repo Repository,
	customers *customer.Service,
	cards *privilegecard.Service,
	postingEngine *posting.Engine,
	num *numerator.Service,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:          repo,
		customers:     customers,
		cards:         cards,
		postingEngine: postingEngine,
		numerator:     num,
		txManager:     txManager,
		hooks:         domain.NewHookRegistry[*Sale](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Sale] {
	return s.hooks
}

func (s *Service) assignNumber(ctx context.Context, doc *Sale) error {
	if doc.Number != "" {
		return nil
	}

	prefix := InvoicePrefix
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

// resolveDiscount captures the customer's privilege discount on the
// document. Walk-in sales and returns keep whatever is already set.
func (s *Service) resolveDiscount(ctx context.Context, doc *Sale) error {
	if doc.IsReturn || doc.CustomerID == nil {
		return nil
	}

	cardID, err := s.customers.CardID(ctx, *doc.CustomerID)
	if err != nil {
		return fmt.Errorf("resolve customer card: %w", err)
	}

	pct, err := s.cards.DiscountFor(ctx, cardID)
	if err != nil {
		return fmt.Errorf("resolve card discount: %w", err)
	}

	doc.CustomerDiscountPercent = pct
	return nil
}

// Create prices and creates a new sale in draft state.
func (s *Service) Create(ctx context.Context, doc *Sale) error {
	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	if err := s.resolveDiscount(ctx, doc); err != nil {
		return err
	}
	doc.Reprice()

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

	logger.Info(ctx, "sale created",
		"id", doc.ID,
		"number", doc.Number,
		"is_return", doc.IsReturn)

	return nil
}

// GetByID retrieves a sale with lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Sale, error) {
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

// Update reprices and updates an unposted sale.
func (s *Service) Update(ctx context.Context, doc *Sale) error {
	if err := s.hooks.RunBeforeUpdate(ctx, doc); err != nil {
		return err
	}

	if err := doc.CanModify(); err != nil {
		return err
	}

	if err := s.resolveDiscount(ctx, doc); err != nil {
		return err
	}
	doc.Reprice()

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

// Delete soft-deletes an unposted sale.
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

// Post records expense movements after a stock availability check.
func (s *Service) Post(ctx context.Context, docID id.ID) error {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return err
	}
	return s.post(ctx, doc, false)
}

func (s *Service) post(ctx context.Context, doc *Sale, createFirst bool) error {
	updateDoc := func(ctx context.Context) error {
		if createFirst {
			if err := s.repo.Create(ctx, doc); err != nil {
				return err
			}
			return s.repo.SaveLines(ctx, doc.ID, doc.Lines)
		}
		return s.repo.Update(ctx, doc)
	}

	return s.postingEngine.Post(ctx, doc, updateDoc)
}

// Unpost reverses the sale's stock movements.
func (s *Service) Unpost(ctx context.Context, docID id.ID) error {
	doc, err := s.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	updateDoc := func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	}

	return s.postingEngine.Unpost(ctx, doc, updateDoc)
}

// PostAndSave prices, creates (if new) and posts the sale in one
// transaction. This is the normal checkout path.
func (s *Service) PostAndSave(ctx context.Context, doc *Sale) error {
	if err := s.resolveDiscount(ctx, doc); err != nil {
		return err
	}
	doc.Reprice()

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

// CreateReturn builds and posts a sales return against the original sale.
// Only one return per sale is allowed.
func (s *Service) CreateReturn(ctx context.Context, originalID id.ID, items []ReturnItem, notes string) (*Sale, error) {
	if len(items) == 0 {
		return nil, apperror.NewValidation("at least one return item is required")
	}

	var ret *Sale
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
			return apperror.NewValidation("cannot return an unposted sale").
				WithDetail("document_id", originalID.String())
		}
		if original.IsReturn {
			return apperror.NewValidation("cannot return a return").
				WithDetail("document_id", originalID.String())
		}

		if existing, err := s.repo.FindReturnFor(ctx, originalID); err != nil {
			if !apperror.IsNotFound(err) {
				return err
			}
		} else if existing != nil {
			return apperror.NewReturnExists("sale", originalID.String())
		}

		byLine := make(map[id.ID]*Line, len(original.Lines))
		for i := range original.Lines {
			byLine[original.Lines[i].LineID] = &original.Lines[i]
		}

		ret = New(original.CustomerID, original.PaymentMethod)
		ret.IsReturn = true
		origID := originalID
		ret.OriginalID = &origID
		ret.Notes = notes
		// The return reverses at the original's discount, not the
		// customer's current one.
		ret.CustomerDiscountPercent = original.CustomerDiscountPercent

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

			ret.AddLine(src.ProductID, item.Quantity, src.Price, src.DiscountPercent, src.TaxMode,
				src.tax1(), src.tax2())

			src.ReturnedQuantity += item.Quantity
		}

		ret.Reprice()
		if err := s.assignNumber(ctx, ret); err != nil {
			return err
		}
		if err := s.post(ctx, ret, true); err != nil {
			return err
		}

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

	logger.Info(ctx, "sales return created",
		"original_id", originalID,
		"return_id", ret.ID,
		"number", ret.Number)

	return ret, nil
}

// List retrieves sales with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Sale], error) {
	return s.repo.List(ctx, filter)
}
