package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestResampleMonthly_SumsWithinMonth(t *testing.T) {
	buckets := ResampleMonthly([]Point{
		{T: day(2025, time.March, 1), Value: 5},
		{T: day(2025, time.March, 20), Value: 7},
		{T: day(2025, time.April, 2), Value: 3},
	})
	require.Len(t, buckets, 2)
	assert.Equal(t, Bucket{Label: "2025-03", Total: 12}, buckets[0])
	assert.Equal(t, Bucket{Label: "2025-04", Total: 3}, buckets[1])
}

func TestResampleMonthly_FillsGapsWithZero(t *testing.T) {
	buckets := ResampleMonthly([]Point{
		{T: day(2025, time.January, 15), Value: 10},
		{T: day(2025, time.April, 15), Value: 20},
	})
	require.Len(t, buckets, 4)
	assert.Equal(t, "2025-01", buckets[0].Label)
	assert.Equal(t, int64(0), buckets[1].Total)
	assert.Equal(t, "2025-02", buckets[1].Label)
	assert.Equal(t, int64(0), buckets[2].Total)
	assert.Equal(t, "2025-03", buckets[2].Label)
	assert.Equal(t, int64(20), buckets[3].Total)
}

func TestResampleMonthly_UnorderedInput(t *testing.T) {
	buckets := ResampleMonthly([]Point{
		{T: day(2025, time.June, 3), Value: 2},
		{T: day(2025, time.May, 3), Value: 1},
	})
	require.Len(t, buckets, 2)
	assert.Equal(t, "2025-05", buckets[0].Label)
	assert.Equal(t, "2025-06", buckets[1].Label)
}

func TestResampleMonthly_YearBoundary(t *testing.T) {
	buckets := ResampleMonthly([]Point{
		{T: day(2024, time.December, 30), Value: 4},
		{T: day(2025, time.January, 2), Value: 6},
	})
	require.Len(t, buckets, 2)
	assert.Equal(t, "2024-12", buckets[0].Label)
	assert.Equal(t, "2025-01", buckets[1].Label)
}

func TestResampleMonthly_Empty(t *testing.T) {
	assert.Nil(t, ResampleMonthly(nil))
}
