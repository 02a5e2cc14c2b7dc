package provider

import (
	"context"

	"MarketWatch/internal/model"
)

// Fetcher defines the interface for retrieving daily-resolution price
// history for a single instrument. Implementations may fail per symbol;
// the orchestration layer tolerates partial results.
type Fetcher interface {
	FetchHistory(ctx context.Context, symbol string, period model.Period) (map[model.Field]model.Series, error)
	Name() string
}
