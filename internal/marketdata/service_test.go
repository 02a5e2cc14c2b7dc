package marketdata

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"MarketWatch/internal/analytics"
	"MarketWatch/internal/model"
	"MarketWatch/internal/provider"
)

var testBase = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

func closeSeries(vals ...float64) model.Series {
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

func histories(bySymbol map[string]model.Series) map[string]map[model.Field]model.Series {
	out := make(map[string]map[model.Field]model.Series, len(bySymbol))
	for sym, s := range bySymbol {
		out[sym] = map[model.Field]model.Series{model.FieldClose: s}
	}
	return out
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestService_EndToEnd(t *testing.T) {
	nan := math.NaN()
	mock := &provider.MockFetcher{
		Histories: histories(map[string]model.Series{
			"A": closeSeries(10, 12, 11),
			"B": closeSeries(nan, 100, 110),
		}),
	}
	svc := NewService(mock, NewCache(300*time.Second, nil))

	ds := svc.GetMarketData(context.Background(), []string{"A", "B"}, model.Period1Y)
	if ds.Empty() {
		t.Fatal("expected data for both symbols")
	}

	mA := analytics.ComputeMetrics(ds.Closes("A"))
	if !approx(mA.Price, 11) || !approx(mA.Delta, -1) || !approx(mA.DeltaPct, -100.0/12.0) {
		t.Errorf("metrics A = %+v", mA)
	}

	mB := analytics.ComputeMetrics(ds.Closes("B"))
	if !approx(mB.Price, 110) || !approx(mB.Delta, 10) || !approx(mB.DeltaPct, 10) {
		t.Errorf("metrics B = %+v", mB)
	}

	// B rebases from its own first valid point (base 100).
	rb, ok := analytics.Rebase("B", ds.Closes("B"), analytics.PercentReturn)
	if !ok {
		t.Fatal("expected B to qualify for rebasing")
	}
	if len(rb.Points) != 2 || !approx(rb.Points[0].Value, 0) || !approx(rb.Points[1].Value, 10) {
		t.Errorf("rebased B = %v, want [0 10]", rb.Points)
	}
}

func TestService_CacheAndRefresh(t *testing.T) {
	mock := &provider.MockFetcher{
		Histories: histories(map[string]model.Series{
			"A": closeSeries(10, 12),
			"B": closeSeries(20, 22),
		}),
	}
	svc := NewService(mock, NewCache(300*time.Second, nil))
	ctx := context.Background()

	first := svc.GetMarketData(ctx, []string{"A", "B"}, model.Period1Y)
	second := svc.GetMarketData(ctx, []string{"B", "A"}, model.Period1Y)
	if mock.Calls() != 2 {
		t.Fatalf("expected 2 provider calls (one per symbol), got %d", mock.Calls())
	}
	if first != second {
		t.Error("expected equivalent requests to share the cached dataset")
	}

	// A different period is a different cache key.
	svc.GetMarketData(ctx, []string{"A", "B"}, model.Period5Y)
	if mock.Calls() != 4 {
		t.Fatalf("expected 4 provider calls after period change, got %d", mock.Calls())
	}

	svc.Refresh()
	svc.GetMarketData(ctx, []string{"A", "B"}, model.Period1Y)
	if mock.Calls() != 6 {
		t.Fatalf("expected refetch after manual refresh, got %d calls", mock.Calls())
	}
}

func TestService_DedupsRequestedSymbols(t *testing.T) {
	mock := &provider.MockFetcher{
		Histories: histories(map[string]model.Series{
			"A": closeSeries(10, 12),
		}),
	}
	svc := NewService(mock, NewCache(300*time.Second, nil))

	svc.GetMarketData(context.Background(), []string{"A", "A", "", "A"}, model.Period1Y)
	if mock.Calls() != 1 {
		t.Fatalf("expected 1 provider call for deduped request, got %d", mock.Calls())
	}
}

func TestService_PartialFailure(t *testing.T) {
	mock := &provider.MockFetcher{
		Histories: histories(map[string]model.Series{
			"A": closeSeries(10, 12),
		}),
		Errs: map[string]error{"B": errors.New("unknown symbol")},
	}
	svc := NewService(mock, NewCache(300*time.Second, nil))

	ds := svc.GetMarketData(context.Background(), []string{"A", "B"}, model.Period1Y)
	if !ds.Has("A") {
		t.Error("expected A to survive a sibling failure")
	}
	if ds.Has("B") {
		t.Error("expected failed symbol B to be absent")
	}
}

func TestService_TotalFailureReturnsEmptyDataset(t *testing.T) {
	mock := &provider.MockFetcher{Err: errors.New("network down")}
	svc := NewService(mock, NewCache(300*time.Second, nil))

	ds := svc.GetMarketData(context.Background(), []string{"A", "B"}, model.Period1Y)
	if ds == nil {
		t.Fatal("expected an empty dataset, not nil")
	}
	if !ds.Empty() {
		t.Errorf("expected empty dataset, got symbols %v", ds.Symbols())
	}
}
