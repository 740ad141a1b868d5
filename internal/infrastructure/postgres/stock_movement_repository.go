package postgres

import (
	"context"
	"fmt"

	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
	"github.com/TanmayElinje/inventory-pro/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implements the append-only movement ledger over
// PostgreSQL. No Update or Delete exists at any layer.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository builds the ledger persistence adapter.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create appends a movement and fills in its assigned ID.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (product_id, quantity_change, reason, user_id, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		movement.ProductID, movement.QuantityChange, movement.Reason, movement.UserID, movement.Timestamp,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListOutflowsByProduct returns the product's negative movements, oldest
// first. Feed for the forecast engine.
func (r *StockMovementRepo) ListOutflowsByProduct(ctx context.Context, productID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, quantity_change, reason, user_id, timestamp
		FROM stock_movements
		WHERE product_id = $1 AND quantity_change < 0
		ORDER BY timestamp ASC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list outflows: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.QuantityChange, &m.Reason, &m.UserID, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// List returns movement history, newest first. productID may be empty to
// list across all products.
func (r *StockMovementRepo) List(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, quantity_change, reason, user_id, timestamp
		FROM stock_movements
		WHERE ($1 = '' OR product_id = $1)
		ORDER BY timestamp DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.QuantityChange, &m.Reason, &m.UserID, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
