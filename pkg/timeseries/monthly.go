package timeseries

import "time"

// MonthLabelLayout formats bucket labels, e.g. "2025-07".
const MonthLabelLayout = "2006-01"

// Point is one observation to be bucketed.
type Point struct {
	T     time.Time
	Value int64
}

// Bucket is one calendar month of aggregated observations.
type Bucket struct {
	Label string
	Total int64
}

// ResampleMonthly sums point values per calendar month and returns one bucket
// per month over the continuous range from the earliest to the latest
// observation. Months with no observations appear with a zero total, so the
// series is evenly spaced for model fitting.
func ResampleMonthly(points []Point) []Bucket {
	if len(points) == 0 {
		return nil
	}

	first := monthOf(points[0].T)
	last := first
	totals := make(map[string]int64, len(points))
	for _, p := range points {
		m := monthOf(p.T)
		if m.Before(first) {
			first = m
		}
		if m.After(last) {
			last = m
		}
		totals[m.Format(MonthLabelLayout)] += p.Value
	}

	var buckets []Bucket
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		label := m.Format(MonthLabelLayout)
		buckets = append(buckets, Bucket{Label: label, Total: totals[label]})
	}
	return buckets
}

func monthOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}
