package marketdata

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"

	"MarketWatch/internal/model"
	"MarketWatch/internal/provider"
)

// Service is the cache-guarded market data access layer. Per-symbol
// fetches run in parallel; failures are contained at the symbol boundary.
type Service struct {
	fetcher provider.Fetcher
	cache   *Cache
}

// NewService creates a Service around a fetcher and cache.
func NewService(fetcher provider.Fetcher, cache *Cache) *Service {
	return &Service{fetcher: fetcher, cache: cache}
}

// GetMarketData returns the dataset for the requested symbols and period,
// serving from cache within the TTL window. A total provider outage
// yields an empty dataset rather than an error; symbols that fail
// individually are simply absent from the result.
func (s *Service) GetMarketData(ctx context.Context, symbols []string, period model.Period) *model.Dataset {
	norm := normalizeSymbols(symbols)
	if len(norm) == 0 {
		return model.NewDataset()
	}
	key := strings.Join(norm, ",") + "|" + string(period)
	return s.cache.GetOrFetch(key, func() *model.Dataset {
		return s.fetchAll(ctx, norm, period)
	})
}

// Refresh clears the cache so the next access refetches regardless of TTL.
func (s *Service) Refresh() {
	s.cache.Invalidate()
	log.Println("[INFO] market data cache invalidated")
}

func (s *Service) fetchAll(ctx context.Context, symbols []string, period model.Period) *model.Dataset {
	ds := model.NewDataset()
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, sym := range symbols {
		wg.Add(1)
		go func(sym string) {
			defer wg.Done()
			fields, err := s.fetcher.FetchHistory(ctx, sym, period)
			if err != nil {
				log.Printf("[WARN] fetch %s: %v", sym, err)
				return
			}
			mu.Lock()
			for field, series := range fields {
				ds.Put(sym, field, series)
			}
			mu.Unlock()
		}(sym)
	}
	wg.Wait()

	if ds.Empty() {
		log.Printf("[WARN] provider returned no data for %d symbols (period %s)", len(symbols), period)
	}
	return ds
}

// normalizeSymbols dedups and sorts so equivalent requests share a cache key.
func normalizeSymbols(symbols []string) []string {
	seen := make(map[string]bool, len(symbols))
	norm := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		norm = append(norm, s)
	}
	sort.Strings(norm)
	return norm
}
