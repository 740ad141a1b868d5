package dto

import "time"

// AdjustStockRequest body for POST /api/products/{id}/adjust-stock.
// QuantityChange is a pointer so a missing field can be told apart from an
// explicit zero; both are rejected, with distinct messages.
type AdjustStockRequest struct {
	QuantityChange *int64 `json:"quantity_change"`
	Reason         string `json:"reason,omitempty"`
}

// StockMovementResponse one ledger entry.
type StockMovementResponse struct {
	ID             int64     `json:"id"`
	ProductID      string    `json:"product_id"`
	QuantityChange int64     `json:"quantity_change"`
	Reason         string    `json:"reason"`
	UserID         *string   `json:"user_id"`
	Timestamp      time.Time `json:"timestamp"`
}

// StockMovementListResponse paged movement history.
type StockMovementListResponse struct {
	Movements []StockMovementResponse `json:"movements"`
	Limit     int                     `json:"limit"`
	Offset    int                     `json:"offset"`
}

// ReplenishmentSuggestion one product below its reorder point with the
// suggested order quantity.
type ReplenishmentSuggestion struct {
	ProductID         string `json:"product_id"`
	SKU               string `json:"sku"`
	Name              string `json:"name"`
	Quantity          int64  `json:"quantity"`
	ReorderPoint      int64  `json:"reorder_point"`
	SuggestedOrderQty int64  `json:"suggested_order_qty"`
}
