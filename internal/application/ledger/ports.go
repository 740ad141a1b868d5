package ledger

import (
	"context"

	"github.com/TanmayElinje/inventory-pro/internal/application/dto"
	"github.com/TanmayElinje/inventory-pro/internal/domain/repository"
)

// TxRunner executes a function inside a database transaction, passing
// repositories bound to that transaction. Guarantees the movement append and
// the quantity update commit or roll back as a unit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

// Publisher delivers committed product snapshots to connected observers.
// Called only after the adjustment transaction commits, never before.
type Publisher interface {
	PublishProductUpdate(ctx context.Context, product dto.ProductResponse) error
}
