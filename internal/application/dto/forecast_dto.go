package dto

// HistoricalSeries is the aggregated monthly demand history: parallel label
// and value slices, ready for charting.
type HistoricalSeries struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
}

// ForecastResponse pairs the historical monthly series with the projected
// unit counts for the next periods. Recomputed on every request, never
// persisted.
type ForecastResponse struct {
	Historical HistoricalSeries `json:"historical"`
	Forecast   []int64          `json:"forecast"`
}
