package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
	"github.com/TanmayElinje/inventory-pro/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo implements the read-only dashboard queries over PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the analytics adapter.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetInventoryValue sums quantity * sale_price over the catalog.
func (r *AnalyticsRepo) GetInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var value decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity * sale_price), 0) FROM products`,
	).Scan(&value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("inventory value: %w", err)
	}
	return value, nil
}

func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountLowStock counts products at or below their reorder point.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM products WHERE quantity <= reorder_point`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}

// GetCategoryDistribution counts products per category. Categories with no
// products are included with a zero count.
func (r *AnalyticsRepo) GetCategoryDistribution(ctx context.Context) ([]repository.CategoryCountResult, error) {
	query := `
		SELECT c.name, count(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.name
		ORDER BY count(p.id) DESC, c.name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("category distribution: %w", err)
	}
	defer rows.Close()
	var list []repository.CategoryCountResult
	for rows.Next() {
		var c repository.CategoryCountResult
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetTopSellers ranks products by total units sold, derived from the
// ledger's outflow rows.
func (r *AnalyticsRepo) GetTopSellers(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT p.id, p.sku, p.name, SUM(-m.quantity_change) AS units_sold
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.quantity_change < 0
		GROUP BY p.id, p.sku, p.name
		ORDER BY units_sold DESC, p.sku ASC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top sellers: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.SKU, &t.Name, &t.UnitsSold); err != nil {
			return nil, fmt.Errorf("scan top seller: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// GetProductsBelowReorderPoint lists products needing replenishment, most
// depleted relative to their reorder point first.
func (r *AnalyticsRepo) GetProductsBelowReorderPoint(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE quantity <= reorder_point
		ORDER BY (reorder_point - quantity) DESC, sku ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("products below reorder point: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.CategoryID, &p.SupplierID,
			&p.CostPrice, &p.SalePrice, &p.Quantity, &p.ReorderPoint,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
