package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/TanmayElinje/inventory-pro/internal/domain"
	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
	"github.com/TanmayElinje/inventory-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, category_id, supplier_id, cost_price, sale_price, quantity, reorder_point, created_at, updated_at`

// ProductRepo implements ProductRepository over PostgreSQL. Usable with a
// pool or a transaction (Querier).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the product persistence adapter.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new product. A duplicate SKU returns ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.SKU, product.Name, product.CategoryID, product.SupplierID,
		product.CostPrice, product.SalePrice, product.Quantity, product.ReorderPoint,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID returns a product by ID, or nil when it does not exist.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get product")
}

// GetBySKU returns a product by SKU, or nil when it does not exist.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, sku), "get product by sku")
}

// GetForUpdate locks the product row so concurrent adjustments to the same
// product serialize. Only meaningful inside a transaction.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "lock product")
}

// GetDetail returns the product joined with its category and supplier, or
// nil when it does not exist.
func (r *ProductRepo) GetDetail(ctx context.Context, id string) (*repository.ProductDetail, error) {
	query := detailQuery + ` WHERE p.id = $1`
	var d repository.ProductDetail
	if err := scanDetail(r.q.QueryRow(ctx, query, id), &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product detail: %w", err)
	}
	return &d, nil
}

// ListDetail returns a page of products joined with category and supplier,
// newest first.
func (r *ProductRepo) ListDetail(ctx context.Context, limit, offset int) ([]*repository.ProductDetail, error) {
	query := detailQuery + ` ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*repository.ProductDetail
	for rows.Next() {
		var d repository.ProductDetail
		if err := scanDetail(rows, &d); err != nil {
			return nil, fmt.Errorf("scan product detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update modifies catalog attributes. Quantity is deliberately absent; only
// UpdateQuantity touches it.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category_id = $3, supplier_id = $4, cost_price = $5, sale_price = $6, reorder_point = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.CategoryID, product.SupplierID,
		product.CostPrice, product.SalePrice, product.ReorderPoint, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity sets the cached stock level. Called only by the ledger
// inside its transaction, after the movement insert.
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// Delete removes a product by ID; its movements cascade.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.CategoryID, &p.SupplierID,
		&p.CostPrice, &p.SalePrice, &p.Quantity, &p.ReorderPoint,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

const detailQuery = `
	SELECT p.id, p.sku, p.name, p.category_id, p.supplier_id, p.cost_price, p.sale_price,
	       p.quantity, p.reorder_point, p.created_at, p.updated_at,
	       c.name, s.name, s.contact_info
	FROM products p
	JOIN categories c ON c.id = p.category_id
	JOIN suppliers s ON s.id = p.supplier_id`

func scanDetail(row pgx.Row, d *repository.ProductDetail) error {
	return row.Scan(
		&d.Product.ID, &d.Product.SKU, &d.Product.Name, &d.Product.CategoryID, &d.Product.SupplierID,
		&d.Product.CostPrice, &d.Product.SalePrice, &d.Product.Quantity, &d.Product.ReorderPoint,
		&d.Product.CreatedAt, &d.Product.UpdatedAt,
		&d.CategoryName, &d.SupplierName, &d.SupplierContact,
	)
}
