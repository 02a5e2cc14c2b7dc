package analytics

import (
	"time"

	"MarketWatch/internal/model"
)

// Mode selects the normalization applied by Rebase.
type Mode int

const (
	// PercentReturn expresses each value as percent gained or lost since
	// the series' first valid observation.
	PercentReturn Mode = iota
	// Index100 expresses each value as an index based at 100. Input mode
	// for the equal-weight portfolio.
	Index100
)

// Point is one dated value of a normalized series.
type Point struct {
	Date  time.Time
	Value float64
}

// RebasedSeries is one instrument's close series normalized to its own
// first valid observation.
type RebasedSeries struct {
	Symbol string
	Points []Point
}

// Rebase normalizes a close series against its first valid observation.
// Observations before that point are omitted, not zero-filled; missing
// observations after it are omitted as well. Returns false when the
// series has no valid observation or its base is not positive; such
// series are excluded from comparison rather than reported as errors.
func Rebase(symbol string, closes model.Series, mode Mode) (RebasedSeries, bool) {
	first := closes.FirstValid()
	if first < 0 {
		return RebasedSeries{}, false
	}
	base := closes[first].Value
	if base <= 0 {
		return RebasedSeries{}, false
	}

	out := RebasedSeries{
		Symbol: symbol,
		Points: make([]Point, 0, len(closes)-first),
	}
	for _, obs := range closes[first:] {
		if !obs.Valid {
			continue
		}
		v := obs.Value / base * 100
		if mode == PercentReturn {
			v = (obs.Value/base - 1) * 100
		}
		out.Points = append(out.Points, Point{Date: obs.Date, Value: v})
	}
	return out, true
}

// RebaseAll rebases each requested symbol's close series independently.
// No calendar alignment is performed across series: each one is rebased
// to its own first valid date, which may differ from the others'. Symbols
// missing from the dataset or with a non-positive base are skipped;
// input order is preserved otherwise.
func RebaseAll(ds *model.Dataset, symbols []string, mode Mode) []RebasedSeries {
	out := make([]RebasedSeries, 0, len(symbols))
	for _, sym := range symbols {
		closes := ds.Closes(sym)
		if closes == nil {
			continue
		}
		if rs, ok := Rebase(sym, closes, mode); ok {
			out = append(out, rs)
		}
	}
	return out
}
