package forecast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanmayElinje/inventory-pro/internal/application/forecast"
	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
)

// stubMovementRepo serves a canned outflow list.
type stubMovementRepo struct {
	outflows []*entity.StockMovement
}

func (s *stubMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error { return nil }

func (s *stubMovementRepo) ListOutflowsByProduct(ctx context.Context, productID string) ([]*entity.StockMovement, error) {
	return s.outflows, nil
}

func (s *stubMovementRepo) List(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	return nil, nil
}

func outflow(y int, m time.Month, d int, sold int64) *entity.StockMovement {
	return &entity.StockMovement{
		ProductID:      "p1",
		QuantityChange: -sold,
		Reason:         "Monthly sales",
		Timestamp:      time.Date(y, m, d, 10, 0, 0, 0, time.UTC),
	}
}

func TestForecast_TooFewMovements(t *testing.T) {
	uc := forecast.NewUseCase(&stubMovementRepo{outflows: []*entity.StockMovement{
		outflow(2025, time.May, 1, 10),
		outflow(2025, time.June, 1, 12),
	}})
	out, err := uc.Forecast(context.Background(), "p1")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestForecast_TooFewMonths(t *testing.T) {
	// Three movements but only two calendar months of history.
	uc := forecast.NewUseCase(&stubMovementRepo{outflows: []*entity.StockMovement{
		outflow(2025, time.May, 1, 10),
		outflow(2025, time.May, 20, 8),
		outflow(2025, time.June, 1, 12),
	}})
	out, err := uc.Forecast(context.Background(), "p1")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestForecast_NoOutflows(t *testing.T) {
	uc := forecast.NewUseCase(&stubMovementRepo{})
	out, err := uc.Forecast(context.Background(), "p1")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestForecast_ProjectsFourMonths(t *testing.T) {
	uc := forecast.NewUseCase(&stubMovementRepo{outflows: []*entity.StockMovement{
		outflow(2025, time.January, 5, 18),
		outflow(2025, time.February, 7, 25),
		outflow(2025, time.March, 3, 22),
		outflow(2025, time.April, 11, 31),
		outflow(2025, time.May, 9, 27),
		outflow(2025, time.June, 2, 24),
	}})
	out, err := uc.Forecast(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, []string{"2025-01", "2025-02", "2025-03", "2025-04", "2025-05", "2025-06"}, out.Historical.Labels)
	assert.Equal(t, []int64{18, 25, 22, 31, 27, 24}, out.Historical.Data)

	require.Len(t, out.Forecast, 4)
	for _, v := range out.Forecast {
		assert.GreaterOrEqual(t, v, int64(0))
	}
}

func TestForecast_GapMonthAppearsAsZeroDemand(t *testing.T) {
	uc := forecast.NewUseCase(&stubMovementRepo{outflows: []*entity.StockMovement{
		outflow(2025, time.January, 5, 18),
		outflow(2025, time.February, 7, 25),
		// no sales in March
		outflow(2025, time.April, 11, 31),
	}})
	out, err := uc.Forecast(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, []string{"2025-01", "2025-02", "2025-03", "2025-04"}, out.Historical.Labels)
	assert.Equal(t, []int64{18, 25, 0, 31}, out.Historical.Data)
}

func TestForecast_DecliningDemandBottomsOutAtZero(t *testing.T) {
	// Demand falls by 20 units every month; the raw projection crosses zero
	// within the horizon and must come back as 0, never negative.
	uc := forecast.NewUseCase(&stubMovementRepo{outflows: []*entity.StockMovement{
		outflow(2025, time.January, 5, 100),
		outflow(2025, time.February, 7, 80),
		outflow(2025, time.March, 3, 60),
		outflow(2025, time.April, 11, 40),
		outflow(2025, time.May, 9, 20),
	}})
	out, err := uc.Forecast(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, out)

	require.Len(t, out.Forecast, 4)
	for _, v := range out.Forecast {
		assert.GreaterOrEqual(t, v, int64(0))
	}
	assert.Equal(t, int64(0), out.Forecast[1])
	assert.Equal(t, int64(0), out.Forecast[2])
	assert.Equal(t, int64(0), out.Forecast[3])
}

func TestForecast_Deterministic(t *testing.T) {
	repo := &stubMovementRepo{outflows: []*entity.StockMovement{
		outflow(2025, time.January, 5, 40),
		outflow(2025, time.February, 7, 52),
		outflow(2025, time.March, 3, 47),
		outflow(2025, time.April, 11, 61),
		outflow(2025, time.May, 9, 55),
	}}
	uc := forecast.NewUseCase(repo)
	a, err := uc.Forecast(context.Background(), "p1")
	require.NoError(t, err)
	b, err := uc.Forecast(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
