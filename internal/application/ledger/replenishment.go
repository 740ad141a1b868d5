package ledger

import (
	"context"

	"github.com/TanmayElinje/inventory-pro/internal/application/dto"
	"github.com/TanmayElinje/inventory-pro/internal/domain/repository"
)

// replenishmentFactor sizes the target stock level relative to the reorder
// point when suggesting an order quantity.
const replenishmentFactor = 2

// ReplenishmentUseCase lists products at or below their reorder point with a
// suggested order quantity.
type ReplenishmentUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewReplenishmentUseCase builds the use case.
func NewReplenishmentUseCase(analyticsRepo repository.AnalyticsRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{analyticsRepo: analyticsRepo}
}

// GenerateReplenishmentList suggests ordering up to replenishmentFactor times
// the reorder point for every low-stock product. Most depleted products come
// first (repository ordering).
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestion, error) {
	products, err := uc.analyticsRepo.GetProductsBelowReorderPoint(ctx)
	if err != nil {
		return nil, err
	}
	suggestions := make([]dto.ReplenishmentSuggestion, 0, len(products))
	for _, p := range products {
		target := p.ReorderPoint * replenishmentFactor
		qty := target - p.Quantity
		if qty < 1 {
			qty = 1
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestion{
			ProductID:         p.ID,
			SKU:               p.SKU,
			Name:              p.Name,
			Quantity:          p.Quantity,
			ReorderPoint:      p.ReorderPoint,
			SuggestedOrderQty: qty,
		})
	}
	return suggestions, nil
}
