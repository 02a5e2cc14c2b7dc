package analytics

import "MarketWatch/internal/model"

// ComputeMetrics derives the latest price and change versus the previous
// valid close from an instrument's close series. Missing observations are
// dropped first. Fewer than two valid closes yields the zero value
// ("no signal", not an error). A zero previous close makes the percentage
// change undefined; it is reported as 0 rather than faulting.
func ComputeMetrics(closes model.Series) model.Metrics {
	vals := closes.ValidValues()
	if len(vals) < 2 {
		return model.Metrics{}
	}
	latest := vals[len(vals)-1]
	prev := vals[len(vals)-2]
	m := model.Metrics{
		Price: latest,
		Delta: latest - prev,
	}
	if prev != 0 {
		m.DeltaPct = m.Delta / prev * 100
	}
	return m
}
