package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanmayElinje/inventory-pro/internal/application/analytics"
	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
	"github.com/TanmayElinje/inventory-pro/internal/domain/repository"
)

type stubAnalyticsRepo struct {
	value        decimal.Decimal
	products     int64
	lowStock     int64
	distribution []repository.CategoryCountResult
	topSellers   []repository.TopProductResult
	failLowStock bool

	topSellersLimit int
}

func (s *stubAnalyticsRepo) GetInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	return s.value, nil
}

func (s *stubAnalyticsRepo) CountProducts(ctx context.Context) (int64, error) {
	return s.products, nil
}

func (s *stubAnalyticsRepo) CountLowStock(ctx context.Context) (int64, error) {
	if s.failLowStock {
		return 0, errors.New("query failed")
	}
	return s.lowStock, nil
}

func (s *stubAnalyticsRepo) GetCategoryDistribution(ctx context.Context) ([]repository.CategoryCountResult, error) {
	return s.distribution, nil
}

func (s *stubAnalyticsRepo) GetTopSellers(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	s.topSellersLimit = limit
	return s.topSellers, nil
}

func (s *stubAnalyticsRepo) GetProductsBelowReorderPoint(ctx context.Context) ([]*entity.Product, error) {
	return nil, nil
}

func TestGetDashboard_AssemblesWidgets(t *testing.T) {
	repo := &stubAnalyticsRepo{
		value:    decimal.RequireFromString("12345.67"),
		products: 42,
		lowStock: 3,
		distribution: []repository.CategoryCountResult{
			{Category: "Electronics", Count: 25},
			{Category: "Office", Count: 17},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.True(t, out.TotalInventoryValue.Equal(decimal.RequireFromString("12345.67")))
	assert.Equal(t, int64(42), out.TotalProducts)
	assert.Equal(t, int64(3), out.LowStockItems)
	require.Len(t, out.CategoryDistribution, 2)
	assert.Equal(t, "Electronics", out.CategoryDistribution[0].Category)
	assert.Equal(t, int64(25), out.CategoryDistribution[0].Count)
}

func TestGetDashboard_PropagatesQueryError(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&stubAnalyticsRepo{failLowStock: true})
	_, err := uc.GetDashboard(context.Background())
	assert.Error(t, err)
}

func TestGetTopSellers_ClampsLimit(t *testing.T) {
	repo := &stubAnalyticsRepo{topSellers: []repository.TopProductResult{
		{ProductID: "p1", SKU: "ELEC-001", Name: "USB-C Dock", UnitsSold: 147},
	}}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetTopSellers(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 5, repo.topSellersLimit)
	require.Len(t, out, 1)
	assert.Equal(t, int64(147), out[0].UnitsSold)

	_, err = uc.GetTopSellers(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, 50, repo.topSellersLimit)
}
