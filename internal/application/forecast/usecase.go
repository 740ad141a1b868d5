// Package forecast derives a demand forecast for one product from its
// historical outflow movements.
package forecast

import (
	"context"
	"math"

	"github.com/TanmayElinje/inventory-pro/internal/application/dto"
	"github.com/TanmayElinje/inventory-pro/internal/domain/repository"
	"github.com/TanmayElinje/inventory-pro/pkg/timeseries"
	"github.com/rs/zerolog/log"
)

const (
	// minObservations is the minimum number of outflow movements, and also
	// of monthly buckets, before a fit is attempted.
	minObservations = 3
	// forecastPeriods is how many months ahead are projected.
	forecastPeriods = 4
)

// UseCase computes demand forecasts from the movement ledger. It only reads;
// the append-only ledger needs no locking and a forecast computed alongside
// concurrent writers simply reflects data as of read time.
type UseCase struct {
	movementRepo repository.StockMovementRepository
}

// NewUseCase builds the forecast engine over the ledger's read interface.
func NewUseCase(movementRepo repository.StockMovementRepository) *UseCase {
	return &UseCase{movementRepo: movementRepo}
}

// Forecast aggregates the product's outflows into monthly buckets, fits an
// ARIMA(1,1,1) model and projects the next four months of demand.
//
// (nil, nil) means "no forecast available" and is an expected outcome, not a
// failure: fewer than three outflows, fewer than three monthly buckets, or a
// numerically failed fit (logged) all produce it. Only repository errors are
// returned as errors.
func (uc *UseCase) Forecast(ctx context.Context, productID string) (*dto.ForecastResponse, error) {
	outflows, err := uc.movementRepo.ListOutflowsByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(outflows) < minObservations {
		return nil, nil
	}

	points := make([]timeseries.Point, 0, len(outflows))
	for _, m := range outflows {
		points = append(points, timeseries.Point{
			T:     m.Timestamp,
			Value: -m.QuantityChange, // outflow magnitude = units sold
		})
	}
	buckets := timeseries.ResampleMonthly(points)
	if len(buckets) < minObservations {
		return nil, nil
	}

	series := make([]float64, len(buckets))
	labels := make([]string, len(buckets))
	data := make([]int64, len(buckets))
	for i, b := range buckets {
		series[i] = float64(b.Total)
		labels[i] = b.Label
		data[i] = b.Total
	}

	model, err := timeseries.Fit(series)
	if err != nil {
		log.Warn().Err(err).Str("product_id", productID).Msg("demand model fit failed")
		return nil, nil
	}

	projected := model.Forecast(forecastPeriods)
	forecast := make([]int64, len(projected))
	for i, p := range projected {
		// Demand is never negative or fractional.
		forecast[i] = int64(math.Trunc(math.Max(0, p)))
	}

	return &dto.ForecastResponse{
		Historical: dto.HistoricalSeries{Labels: labels, Data: data},
		Forecast:   forecast,
	}, nil
}
