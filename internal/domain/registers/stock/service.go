// Package stock provides the stock accumulation register service.
package stock

import (
	"context"
	"fmt"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/entity"
	"aromapos/internal/core/id"
	"aromapos/internal/core/tx"
	"aromapos/internal/core/types"
	"aromapos/pkg/logger"
)

// Service provides business operations for the stock register.
// Movement writes run inside the caller's transaction (posting engine);
// only RebuildBalances opens its own.
type Service struct {
	repo Repository
	txm  tx.Manager
}

// NewService creates a new stock register service.
func NewService(repo Repository, txm tx.Manager) *Service {
	return &Service{
		repo: repo,
		txm:  txm,
	}
}

// RecordMovements records stock movements from a document posting.
// This is called during document posting within a transaction.
func (s *Service) RecordMovements(ctx context.Context, movements []entity.StockMovement) error {
	if len(movements) == 0 {
		return nil
	}

	for i, m := range movements {
		if !m.Quantity.IsPositive() {
			return apperror.NewValidation(fmt.Sprintf("movement %d: quantity must be positive", i))
		}
		if id.IsNil(m.RecorderID) {
			return apperror.NewValidation(fmt.Sprintf("movement %d: recorder_id is required", i))
		}
	}

	if err := s.repo.CreateMovements(ctx, movements); err != nil {
		return fmt.Errorf("create movements: %w", err)
	}

	logger.Info(ctx, "recorded stock movements",
		"count", len(movements),
		"recorder_id", movements[0].RecorderID,
	)

	return nil
}

// ReverseMovements removes movements for a document (used during unposting).
func (s *Service) ReverseMovements(ctx context.Context, recorderID id.ID, beforeVersion int) error {
	if err := s.repo.DeleteMovementsByRecorder(ctx, recorderID, beforeVersion); err != nil {
		return fmt.Errorf("delete movements: %w", err)
	}

	logger.Info(ctx, "reversed stock movements",
		"recorder_id", recorderID,
		"before_version", beforeVersion,
	)

	return nil
}

// StockReservation represents a stock check request.
type StockReservation struct {
	ProductID   id.ID
	RequiredQty types.Quantity
}

// CheckAndReserveStock validates stock availability with pessimistic locking.
// Should be called within a transaction before creating expense movements.
func (s *Service) CheckAndReserveStock(ctx context.Context, items []StockReservation) error {
	for _, item := range items {
		balance, err := s.repo.GetBalanceForUpdate(ctx, item.ProductID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewInsufficientStock(
					item.ProductID.String(),
					item.RequiredQty.Float64(),
					0,
				)
			}
			return fmt.Errorf("get balance for %s: %w", item.ProductID, err)
		}

		if balance.Quantity < item.RequiredQty {
			return apperror.NewInsufficientStock(
				item.ProductID.String(),
				item.RequiredQty.Float64(),
				balance.Quantity.Float64(),
			)
		}
	}

	return nil
}

// GetProductAvailability returns the available quantity for a product.
func (s *Service) GetProductAvailability(ctx context.Context, productID id.ID) (types.Quantity, error) {
	balance, err := s.repo.GetBalance(ctx, productID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("get balance: %w", err)
	}

	return balance.Quantity, nil
}

// GetStockOnHand returns all products with a non-zero balance.
func (s *Service) GetStockOnHand(ctx context.Context) ([]entity.StockBalance, error) {
	return s.repo.GetBalances(ctx, BalanceFilter{ExcludeZero: true})
}

// GetLowStock returns products whose balance is below the given level.
func (s *Service) GetLowStock(ctx context.Context, level types.Quantity) ([]entity.StockBalance, error) {
	return s.repo.GetBalances(ctx, BalanceFilter{BelowLevel: &level})
}

// GetMovementHistory returns movement history for a product.
func (s *Service) GetMovementHistory(ctx context.Context, productID id.ID, filter MovementFilter) ([]entity.StockMovement, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	return s.repo.GetMovementHistory(ctx, productID, filter)
}

// RebuildBalances recomputes balances from the movement log, for the one
// product given or for all products. Recovery tool for when the balance
// table drifts after manual data fixes or a partial restore.
func (s *Service) RebuildBalances(ctx context.Context, productID *id.ID) error {
	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.RecalculateBalances(ctx, productID)
	})
	if err != nil {
		return fmt.Errorf("recalculate balances: %w", err)
	}

	logger.Info(ctx, "stock balances rebuilt")
	return nil
}

// GetTurnover generates a turnover report for the period.
func (s *Service) GetTurnover(ctx context.Context, filter TurnoverFilter) ([]Turnover, error) {
	return s.repo.GetTurnover(ctx, filter)
}
