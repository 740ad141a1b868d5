package repository

import (
	"context"

	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CategoryCountResult is one row of the category distribution widget.
type CategoryCountResult struct {
	Category string
	Count    int64
}

// TopProductResult ranks a product by total units sold (sum of outflow
// magnitudes).
type TopProductResult struct {
	ProductID string
	SKU       string
	Name      string
	UnitsSold int64
}

// AnalyticsRepository groups the read-only dashboard queries.
type AnalyticsRepository interface {
	// GetInventoryValue returns the sum of quantity * sale_price over all
	// products (zero when the catalog is empty).
	GetInventoryValue(ctx context.Context) (decimal.Decimal, error)
	CountProducts(ctx context.Context) (int64, error)
	// CountLowStock counts products with quantity <= reorder_point.
	CountLowStock(ctx context.Context) (int64, error)
	GetCategoryDistribution(ctx context.Context) ([]CategoryCountResult, error)
	GetTopSellers(ctx context.Context, limit int) ([]TopProductResult, error)
	// GetProductsBelowReorderPoint lists products needing replenishment,
	// most depleted first.
	GetProductsBelowReorderPoint(ctx context.Context) ([]*entity.Product, error)
}
