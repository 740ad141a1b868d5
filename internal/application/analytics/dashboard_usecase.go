// Package analytics assembles the sales dashboard from read-only queries.
package analytics

import (
	"context"
	"fmt"

	"github.com/TanmayElinje/inventory-pro/internal/application/dto"
	"github.com/TanmayElinje/inventory-pro/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const (
	defaultTopN = 5
	maxTopN     = 50
)

// DashboardUseCase orchestrates the dashboard widgets: total inventory
// value, product counts, low-stock count and category distribution.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetDashboard runs the four widget queries in parallel (independent reads)
// and assembles the response. Counts reflect live data; two widgets computed
// during a concurrent adjustment may straddle it, which is acceptable for a
// dashboard.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	type valueResult struct {
		value decimal.Decimal
		err   error
	}
	type countResult struct {
		count int64
		err   error
	}
	type distResult struct {
		rows []repository.CategoryCountResult
		err  error
	}

	valueChan := make(chan valueResult, 1)
	productsChan := make(chan countResult, 1)
	lowStockChan := make(chan countResult, 1)
	distChan := make(chan distResult, 1)

	go func() {
		v, err := uc.analyticsRepo.GetInventoryValue(ctx)
		valueChan <- valueResult{v, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountProducts(ctx)
		productsChan <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountLowStock(ctx)
		lowStockChan <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetCategoryDistribution(ctx)
		distChan <- distResult{rows, err}
	}()

	valueRes := <-valueChan
	productsRes := <-productsChan
	lowStockRes := <-lowStockChan
	distRes := <-distChan

	if valueRes.err != nil {
		return nil, fmt.Errorf("dashboard: inventory value: %w", valueRes.err)
	}
	if productsRes.err != nil {
		return nil, fmt.Errorf("dashboard: product count: %w", productsRes.err)
	}
	if lowStockRes.err != nil {
		return nil, fmt.Errorf("dashboard: low stock count: %w", lowStockRes.err)
	}
	if distRes.err != nil {
		return nil, fmt.Errorf("dashboard: category distribution: %w", distRes.err)
	}

	distribution := make([]dto.CategoryCount, 0, len(distRes.rows))
	for _, r := range distRes.rows {
		distribution = append(distribution, dto.CategoryCount{Category: r.Category, Count: r.Count})
	}

	return &dto.DashboardResponse{
		TotalInventoryValue:  valueRes.value,
		TotalProducts:        productsRes.count,
		LowStockItems:        lowStockRes.count,
		CategoryDistribution: distribution,
	}, nil
}

// GetTopSellers ranks products by total units sold (sum of outflow
// magnitudes in the ledger).
func (uc *DashboardUseCase) GetTopSellers(ctx context.Context, limit int) ([]dto.TopProduct, error) {
	if limit <= 0 {
		limit = defaultTopN
	}
	if limit > maxTopN {
		limit = maxTopN
	}
	rows, err := uc.analyticsRepo.GetTopSellers(ctx, limit)
	if err != nil {
		return nil, err
	}
	top := make([]dto.TopProduct, 0, len(rows))
	for _, r := range rows {
		top = append(top, dto.TopProduct{
			ProductID: r.ProductID,
			SKU:       r.SKU,
			Name:      r.Name,
			UnitsSold: r.UnitsSold,
		})
	}
	return top, nil
}
