package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a SKU in the catalog.
//
// Quantity is a cached aggregate: it always equals the sum of the
// quantity_change of every stock movement for the product, and is mutated
// exclusively by the stock ledger. Clients can never set it directly.
type Product struct {
	ID           string
	SKU          string // stock keeping unit, unique
	Name         string
	CategoryID   string
	SupplierID   string
	CostPrice    decimal.Decimal
	SalePrice    decimal.Decimal
	Quantity     int64
	ReorderPoint int64 // quantity at which to reorder
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock reports whether the product is at or below its reorder point.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.ReorderPoint
}
