// Package ledger implements the stock ledger: the single authoritative
// mutator of product quantity, with an append-only audit trail.
package ledger

import (
	"context"
	"time"

	"github.com/TanmayElinje/inventory-pro/internal/application/dto"
	"github.com/TanmayElinje/inventory-pro/internal/domain"
	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
	"github.com/TanmayElinje/inventory-pro/internal/domain/repository"
	"github.com/rs/zerolog/log"
)

// AdjustStockInput input for ApplyAdjustment.
type AdjustStockInput struct {
	ProductID      string
	QuantityChange int64
	Reason         string
	UserID         string // empty when the actor is unknown
}

// ApplyAdjustmentUseCase applies stock adjustments transactionally with row
// locking (SELECT FOR UPDATE) and broadcasts the committed product state.
type ApplyAdjustmentUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	publisher   Publisher
}

// NewApplyAdjustmentUseCase builds the use case. productRepo is the
// pool-bound repository used to load the response snapshot after commit;
// publisher may be nil to disable broadcasting (tests, seed tooling).
func NewApplyAdjustmentUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	publisher Publisher,
) *ApplyAdjustmentUseCase {
	return &ApplyAdjustmentUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// ApplyAdjustment validates the delta, then in one transaction: locks the
// product row, enforces quantity + delta >= 0, appends the immutable
// movement and updates the cached quantity. Zero deltas are rejected; a
// movement that records no change is noise in an audit log.
//
// Returns ErrInvalidInput, ErrNotFound or ErrInsufficientStock; on
// ErrInsufficientStock no movement row and no quantity change are left
// behind. After a successful commit the updated product (with nested
// category and supplier) is published to the broadcast channel and returned.
func (uc *ApplyAdjustmentUseCase) ApplyAdjustment(ctx context.Context, in AdjustStockInput) (*dto.ProductResponse, error) {
	if in.ProductID == "" || in.QuantityChange == 0 {
		return nil, domain.ErrInvalidInput
	}
	reason := in.Reason
	if reason == "" {
		reason = entity.DefaultMovementReason
	}
	var userID *string
	if in.UserID != "" {
		userID = &in.UserID
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Quantity+in.QuantityChange < 0 {
			return domain.ErrInsufficientStock
		}

		movement := &entity.StockMovement{
			ProductID:      product.ID,
			QuantityChange: in.QuantityChange,
			Reason:         reason,
			UserID:         userID,
			Timestamp:      time.Now(),
		}
		if err := movementRepo.Create(ctx, movement); err != nil {
			return err
		}
		return productRepo.UpdateQuantity(ctx, product.ID, product.Quantity+in.QuantityChange)
	})
	if err != nil {
		return nil, err
	}

	detail, err := uc.productRepo.GetDetail(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewProductResponse(detail)

	// Publish only after the transaction committed; a broadcast failure
	// must not fail the adjustment.
	if uc.publisher != nil {
		if err := uc.publisher.PublishProductUpdate(ctx, resp); err != nil {
			log.Warn().Err(err).Str("product_id", resp.ID).Msg("product update broadcast failed")
		}
	}
	return &resp, nil
}
