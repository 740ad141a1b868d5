package entity

import "time"

// DefaultMovementReason is recorded when the caller gives no reason.
const DefaultMovementReason = "Manual adjustment"

// StockMovement is one immutable ledger entry: a signed quantity delta for a
// product, with provenance. Rows are append-only; they are never updated or
// deleted, and together they are the source of truth for Product.Quantity
// and for demand forecasting.
type StockMovement struct {
	ID             int64 // sequence number assigned by the store
	ProductID      string
	QuantityChange int64 // positive = inbound/restock, negative = outbound/sale
	Reason         string
	UserID         *string // acting user; nil when the actor was removed or unknown
	Timestamp      time.Time
}

// IsOutflow reports whether the movement is a sale/demand signal.
func (m *StockMovement) IsOutflow() bool {
	return m.QuantityChange < 0
}
