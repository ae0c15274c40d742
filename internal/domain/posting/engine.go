// Package posting implements the document posting engine.
//
// Posting turns a draft document into accounting fact: the engine asks the
// document to generate its register movements, records them atomically and
// flips the document's posted flag. Unposting reverses the movements and
// clears the flag. Re-posting an already posted document replaces its
// movements under a new posted version.
package posting

import (
	"context"
	"fmt"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/entity"
	"aromapos/internal/core/id"
	"aromapos/internal/core/tx"
	"aromapos/internal/domain/registers/stock"
	"aromapos/pkg/logger"
)

// Postable is implemented by documents that produce register movements.
// entity.Document provides defaults for everything except GetDocumentType
// and GenerateMovements.
type Postable interface {
	GetID() id.ID
	GetDocumentType() string
	GetPostedVersion() int
	IsPosted() bool
	CanPost(ctx context.Context) error
	MarkPosted()
	MarkUnposted()
	GenerateMovements(ctx context.Context) (*MovementSet, error)
}

// StockDemander is implemented by documents whose posting consumes stock.
// The engine verifies availability under row locks before recording the
// expense movements.
type StockDemander interface {
	StockDemands() []stock.StockReservation
}

// MovementSet collects the movements a document writes to registers.
type MovementSet struct {
	stock []entity.StockMovement
}

// NewMovementSet creates an empty movement set.
func NewMovementSet() *MovementSet {
	return &MovementSet{}
}

// AddStock appends a stock movement.
func (m *MovementSet) AddStock(movement entity.StockMovement) {
	m.stock = append(m.stock, movement)
}

// Stock returns the collected stock movements.
func (m *MovementSet) Stock() []entity.StockMovement {
	return m.stock
}

// IsEmpty reports whether the set contains no movements.
func (m *MovementSet) IsEmpty() bool {
	return len(m.stock) == 0
}

// Auditor records posting actions in the audit trail. Optional.
type Auditor interface {
	LogChange(ctx context.Context, entityType string, entityID id.ID, action string, changes map[string]any) error
}

// Engine coordinates document posting and unposting.
type Engine struct {
	stockSvc  *stock.Service
	txManager tx.Manager
	auditor   Auditor
}

// NewEngine creates a posting engine. auditor may be nil.
func NewEngine(stockSvc *stock.Service, txManager tx.Manager, auditor Auditor) *Engine {
	return &Engine{
		stockSvc:  stockSvc,
		txManager: txManager,
		auditor:   auditor,
	}
}

func (e *Engine) audit(ctx context.Context, doc Postable, action string, changes map[string]any) {
	if e.auditor == nil {
		return
	}
	if err := e.auditor.LogChange(ctx, doc.GetDocumentType(), doc.GetID(), action, changes); err != nil {
		logger.Warn(ctx, "audit log failed", "error", err, "action", action)
	}
}

// Post records the document's movements and marks it posted.
// updateDoc persists the document itself and runs inside the same
// transaction as the movements.
func (e *Engine) Post(ctx context.Context, doc Postable, updateDoc func(ctx context.Context) error) error {
	if err := doc.CanPost(ctx); err != nil {
		return err
	}

	priorVersion := doc.GetPostedVersion()
	wasPosted := doc.IsPosted()

	movements, err := doc.GenerateMovements(ctx)
	if err != nil {
		return fmt.Errorf("generate movements: %w", err)
	}
	if movements.IsEmpty() {
		return apperror.NewValidation("document produces no movements").
			WithDetail("document_type", doc.GetDocumentType())
	}

	err = e.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		// Re-posting replaces the previous version's movements.
		if wasPosted {
			if err := e.stockSvc.ReverseMovements(ctx, doc.GetID(), priorVersion+1); err != nil {
				return err
			}
		}

		if demander, ok := doc.(StockDemander); ok {
			if err := e.stockSvc.CheckAndReserveStock(ctx, demander.StockDemands()); err != nil {
				return err
			}
		}

		if err := e.stockSvc.RecordMovements(ctx, movements.Stock()); err != nil {
			return err
		}

		doc.MarkPosted()
		if err := updateDoc(ctx); err != nil {
			return fmt.Errorf("update document: %w", err)
		}

		e.audit(ctx, doc, "post", map[string]any{
			"posted_version": doc.GetPostedVersion(),
			"movements":      len(movements.Stock()),
		})

		return nil
	})
	if err != nil {
		// Roll back the in-memory flag so the caller's copy stays consistent.
		if doc.IsPosted() && !wasPosted {
			doc.MarkUnposted()
		}
		return err
	}

	logger.Info(ctx, "document posted",
		"document_type", doc.GetDocumentType(),
		"document_id", doc.GetID(),
		"posted_version", doc.GetPostedVersion(),
	)

	return nil
}

// Unpost reverses the document's movements and clears the posted flag.
func (e *Engine) Unpost(ctx context.Context, doc Postable, updateDoc func(ctx context.Context) error) error {
	if !doc.IsPosted() {
		return apperror.NewValidation("document is not posted").
			WithDetail("document_type", doc.GetDocumentType()).
			WithDetail("document_id", doc.GetID().String())
	}

	err := e.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := e.stockSvc.ReverseMovements(ctx, doc.GetID(), doc.GetPostedVersion()+1); err != nil {
			return err
		}

		doc.MarkUnposted()
		if err := updateDoc(ctx); err != nil {
			return fmt.Errorf("update document: %w", err)
		}

		e.audit(ctx, doc, "unpost", nil)

		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "document unposted",
		"document_type", doc.GetDocumentType(),
		"document_id", doc.GetID(),
	)

	return nil
}
