package analytics

import (
	"math"
	"testing"
	"time"

	"MarketWatch/internal/model"
)

var testBase = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

// closes builds a daily close series; NaN marks a missing observation.
func closes(vals ...float64) model.Series {
	s := make(model.Series, len(vals))
	for i, v := range vals {
		s[i] = model.Observation{Date: testBase.AddDate(0, 0, i)}
		if !math.IsNaN(v) {
			s[i].Value = v
			s[i].Valid = true
		}
	}
	return s
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeMetrics_InsufficientData(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name   string
		series model.Series
	}{
		{"empty", closes()},
		{"single point", closes(10)},
		{"all missing", closes(nan, nan, nan)},
		{"one valid among missing", closes(nan, 100, nan)},
	}
	for _, tt := range tests {
		m := ComputeMetrics(tt.series)
		if m.Price != 0 || m.Delta != 0 || m.DeltaPct != 0 {
			t.Errorf("%s: expected zero metrics, got %+v", tt.name, m)
		}
	}
}

func TestComputeMetrics_TwoPoints(t *testing.T) {
	m := ComputeMetrics(closes(10, 12))
	if !approx(m.Price, 12) {
		t.Errorf("Price = %v, want 12", m.Price)
	}
	if !approx(m.Delta, 2) {
		t.Errorf("Delta = %v, want 2", m.Delta)
	}
	if !approx(m.DeltaPct, 20) {
		t.Errorf("DeltaPct = %v, want 20", m.DeltaPct)
	}
}

func TestComputeMetrics_DropsMissing(t *testing.T) {
	nan := math.NaN()

	// Last two valid closes are 12 and 11, regardless of gaps.
	m := ComputeMetrics(closes(10, 12, nan, 11))
	if !approx(m.Price, 11) || !approx(m.Delta, -1) {
		t.Fatalf("got %+v, want price 11 delta -1", m)
	}
	if !approx(m.DeltaPct, -100.0/12.0) {
		t.Errorf("DeltaPct = %v, want %v", m.DeltaPct, -100.0/12.0)
	}

	// Leading missing value, as for a late-listed instrument.
	m = ComputeMetrics(closes(nan, 100, 110))
	if !approx(m.Price, 110) || !approx(m.Delta, 10) || !approx(m.DeltaPct, 10) {
		t.Errorf("got %+v, want {110 10 10}", m)
	}
}

func TestComputeMetrics_ZeroPrevClose(t *testing.T) {
	// Percentage change is undefined against a zero base; reported as 0.
	m := ComputeMetrics(closes(0, 5))
	if !approx(m.Price, 5) || !approx(m.Delta, 5) {
		t.Fatalf("got %+v, want price 5 delta 5", m)
	}
	if m.DeltaPct != 0 {
		t.Errorf("DeltaPct = %v, want 0", m.DeltaPct)
	}
}
