package repository

import (
	"context"

	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
)

// ProductDetail is a read model: a product joined with the category and
// supplier it references, for API responses.
type ProductDetail struct {
	Product         entity.Product
	CategoryName    string
	SupplierName    string
	SupplierContact string
}

// ProductRepository defines the persistence port for Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// GetForUpdate locks the product row (SELECT FOR UPDATE) so concurrent
	// stock adjustments to the same product serialize. Only meaningful
	// inside a transaction.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	GetDetail(ctx context.Context, id string) (*ProductDetail, error)
	ListDetail(ctx context.Context, limit, offset int) ([]*ProductDetail, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateQuantity sets the cached quantity. Called only by the stock
	// ledger inside its transaction.
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
	Delete(ctx context.Context, id string) error
}
