package ledger

import (
	"context"

	"github.com/TanmayElinje/inventory-pro/internal/application/dto"
	"github.com/TanmayElinje/inventory-pro/internal/domain"
	"github.com/TanmayElinje/inventory-pro/internal/domain/repository"
)

// HistoryUseCase reads the movement ledger.
type HistoryUseCase struct {
	movementRepo repository.StockMovementRepository
	productRepo  repository.ProductRepository
}

// NewHistoryUseCase builds the use case.
func NewHistoryUseCase(
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) *HistoryUseCase {
	return &HistoryUseCase{movementRepo: movementRepo, productRepo: productRepo}
}

// ListMovements returns movement history, newest first. With a productID it
// is scoped to that product and returns ErrNotFound when the product does
// not exist; empty productID lists across all products.
func (uc *HistoryUseCase) ListMovements(ctx context.Context, productID string, limit, offset int) (*dto.StockMovementListResponse, error) {
	if productID != "" {
		product, err := uc.productRepo.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
	}
	movements, err := uc.movementRepo.List(ctx, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.StockMovementResponse{
			ID:             m.ID,
			ProductID:      m.ProductID,
			QuantityChange: m.QuantityChange,
			Reason:         m.Reason,
			UserID:         m.UserID,
			Timestamp:      m.Timestamp,
		})
	}
	return &dto.StockMovementListResponse{Movements: out, Limit: limit, Offset: offset}, nil
}
