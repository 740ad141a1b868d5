package dto

import (
	"time"

	"github.com/TanmayElinje/inventory-pro/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// CreateProductRequest body for POST /api/products. Quantity is not
// accepted: products start at zero and change only through the ledger.
type CreateProductRequest struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	CategoryID   string          `json:"category_id"`
	SupplierID   string          `json:"supplier_id"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	ReorderPoint *int64          `json:"reorder_point,omitempty"`
}

// UpdateProductRequest body for PUT /api/products/{id}. Quantity is absent
// for the same reason as on create.
type UpdateProductRequest struct {
	Name         string          `json:"name"`
	CategoryID   string          `json:"category_id,omitempty"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	ReorderPoint *int64          `json:"reorder_point,omitempty"`
}

// ProductResponse public view of a product with nested category and
// supplier. Forecast is populated only on detail retrieval; on listings it
// is null.
type ProductResponse struct {
	ID           string            `json:"id"`
	SKU          string            `json:"sku"`
	Name         string            `json:"name"`
	Category     CategoryResponse  `json:"category"`
	Supplier     SupplierResponse  `json:"supplier"`
	CostPrice    decimal.Decimal   `json:"cost_price"`
	SalePrice    decimal.Decimal   `json:"sale_price"`
	Quantity     int64             `json:"quantity"`
	ReorderPoint int64             `json:"reorder_point"`
	Forecast     *ForecastResponse `json:"forecast"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// NewProductResponse maps a product read model to its API shape. Forecast
// stays nil; callers attach one explicitly on detail retrieval.
func NewProductResponse(d *repository.ProductDetail) ProductResponse {
	return ProductResponse{
		ID:   d.Product.ID,
		SKU:  d.Product.SKU,
		Name: d.Product.Name,
		Category: CategoryResponse{
			ID:   d.Product.CategoryID,
			Name: d.CategoryName,
		},
		Supplier: SupplierResponse{
			ID:          d.Product.SupplierID,
			Name:        d.SupplierName,
			ContactInfo: d.SupplierContact,
		},
		CostPrice:    d.Product.CostPrice,
		SalePrice:    d.Product.SalePrice,
		Quantity:     d.Product.Quantity,
		ReorderPoint: d.Product.ReorderPoint,
		CreatedAt:    d.Product.CreatedAt,
		UpdatedAt:    d.Product.UpdatedAt,
	}
}

// ProductListResponse paged product listing.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}
