package analytics

import (
	"errors"
	"sort"
	"time"
)

// ErrNoConstituents is reported when no series qualifies for the index.
var ErrNoConstituents = errors.New("portfolio: no qualifying series")

// PortfolioIndex is the equal-weighted synthetic index built from a set
// of index-100 rebased series, plus its aggregate return.
type PortfolioIndex struct {
	Points      []Point
	TotalReturn float64
}

// BuildIndex averages the given index-100 series per date. Only series
// holding a value on a date contribute to that date's mean, so the early
// part of the index may average fewer constituents than the later part
// when start dates differ. Callers are expected to have filtered out
// non-price instruments (yields, FX) before invoking.
func BuildIndex(set []RebasedSeries) (*PortfolioIndex, error) {
	if len(set) == 0 {
		return nil, ErrNoConstituents
	}

	type bucket struct {
		date  time.Time
		sum   float64
		count int
	}
	buckets := make(map[int64]*bucket)
	for _, rs := range set {
		for _, p := range rs.Points {
			k := p.Date.Unix()
			b := buckets[k]
			if b == nil {
				b = &bucket{date: p.Date}
				buckets[k] = b
			}
			b.sum += p.Value
			b.count++
		}
	}
	if len(buckets) == 0 {
		return nil, ErrNoConstituents
	}

	keys := make([]int64, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	points := make([]Point, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		points = append(points, Point{Date: b.date, Value: b.sum / float64(b.count)})
	}

	return &PortfolioIndex{
		Points:      points,
		TotalReturn: points[len(points)-1].Value - 100,
	}, nil
}
