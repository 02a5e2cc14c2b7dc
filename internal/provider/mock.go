package provider

import (
	"context"
	"sync"
	"time"

	"MarketWatch/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// With no canned histories it generates a deterministic synthetic walk per
// symbol, so the dashboard is runnable offline via data_source: mock.
type MockFetcher struct {
	mu        sync.Mutex
	Histories map[string]map[model.Field]model.Series
	Errs      map[string]error
	Err       error
	calls     int
}

func (m *MockFetcher) Name() string { return "mock" }

// Calls returns how many fetches were issued, across all symbols.
func (m *MockFetcher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockFetcher) FetchHistory(_ context.Context, symbol string, period model.Period) (map[model.Field]model.Series, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if err, ok := m.Errs[symbol]; ok {
		return nil, err
	}
	if h, ok := m.Histories[symbol]; ok {
		return h, nil
	}
	closes := generateMockCloses(symbol, barsFor(period))
	return map[model.Field]model.Series{model.FieldClose: closes}, nil
}

// barsFor approximates the number of trading days in a period.
func barsFor(period model.Period) int {
	switch period {
	case model.Period1Mo:
		return 22
	case model.Period3Mo:
		return 66
	case model.Period6Mo:
		return 126
	case model.Period2Y:
		return 504
	case model.Period5Y:
		return 1260
	default:
		return 252
	}
}

func generateMockCloses(symbol string, count int) model.Series {
	// Deterministic base price per symbol so runs are reproducible.
	base := 50.0
	for _, r := range symbol {
		base += float64(r)
	}
	series := make(model.Series, count)
	for i := 0; i < count; i++ {
		p := base * (1 + float64(i-count/2)*0.001)
		series[i] = model.Observation{
			Date:  time.Now().UTC().AddDate(0, 0, -(count - i)),
			Value: p,
			Valid: true,
		}
	}
	return series
}
