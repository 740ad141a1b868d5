package repository

import (
	"context"

	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
)

// StockMovementRepository defines the persistence port for the append-only
// movement ledger. There is no Update or Delete at any layer.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListOutflowsByProduct returns movements with quantity_change < 0 for
	// one product, ordered by timestamp ascending. Feed for the forecast
	// engine.
	ListOutflowsByProduct(ctx context.Context, productID string) ([]*entity.StockMovement, error)
	// List returns movement history ordered by timestamp descending.
	// productID may be empty to list across all products.
	List(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error)
}
