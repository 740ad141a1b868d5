package dto

import "github.com/shopspring/decimal"

// CategoryCount one slice of the category distribution chart.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// DashboardResponse the sales dashboard summary.
type DashboardResponse struct {
	TotalInventoryValue  decimal.Decimal `json:"total_inventory_value"`
	TotalProducts        int64           `json:"total_products"`
	LowStockItems        int64           `json:"low_stock_items"`
	CategoryDistribution []CategoryCount `json:"category_distribution"`
}

// TopProduct one row of the top-selling products report.
type TopProduct struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	UnitsSold int64  `json:"units_sold"`
}
