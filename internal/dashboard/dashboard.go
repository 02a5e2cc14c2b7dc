package dashboard

import (
	"context"
	"log"
	"time"

	"MarketWatch/internal/analytics"
	"MarketWatch/internal/config"
	"MarketWatch/internal/marketdata"
	"MarketWatch/internal/model"
)

// InstrumentView is one metric tile: an instrument with its derived
// metrics and the raw close series handed to the charting layer.
type InstrumentView struct {
	Label     string
	Symbol    string
	Metrics   model.Metrics
	Closes    model.Series
	Available bool
}

// CategoryView groups instrument tiles under their catalog category.
type CategoryView struct {
	Name        string
	Instruments []InstrumentView
}

// PortfolioView carries the equal-weight index, or Available=false when
// no constituent qualified.
type PortfolioView struct {
	Index        *analytics.PortfolioIndex
	Constituents int
	Available    bool
}

// Snapshot is everything one render cycle needs, derived from a single
// cached dataset. Available is false when the provider returned nothing
// at all, the dashboard-wide degraded state.
type Snapshot struct {
	Taken      time.Time
	Period     model.Period
	Available  bool
	Categories []CategoryView
	Comparison []analytics.RebasedSeries
	Portfolio  PortfolioView
}

// Dashboard assembles render-ready views from the cached market dataset.
type Dashboard struct {
	Market  *marketdata.Service
	Catalog config.Catalog
	Period  model.Period
}

// New creates a Dashboard over the given market data service and catalog.
func New(market *marketdata.Service, catalog config.Catalog, period model.Period) *Dashboard {
	return &Dashboard{Market: market, Catalog: catalog, Period: period}
}

// Snapshot fetches (or reuses) the dataset for the whole catalog and
// derives all views. Per-instrument gaps degrade to N/A tiles; sibling
// instruments are unaffected.
func (d *Dashboard) Snapshot(ctx context.Context) *Snapshot {
	ds := d.Market.GetMarketData(ctx, d.Catalog.Symbols(), d.Period)

	snap := &Snapshot{Taken: time.Now(), Period: d.Period}
	if ds.Empty() {
		return snap
	}
	snap.Available = true

	for _, cat := range d.Catalog {
		cv := CategoryView{Name: cat.Name}
		for _, a := range cat.Assets {
			iv := InstrumentView{Label: a.Label, Symbol: a.Symbol}
			closes := ds.Closes(a.Symbol)
			if closes.FirstValid() >= 0 {
				iv.Available = true
				iv.Closes = closes
				iv.Metrics = analytics.ComputeMetrics(closes)
			}
			cv.Instruments = append(cv.Instruments, iv)
		}
		snap.Categories = append(snap.Categories, cv)
	}

	snap.Comparison = analytics.RebaseAll(ds, d.Catalog.Symbols(), analytics.PercentReturn)

	rebased := analytics.RebaseAll(ds, d.Catalog.PortfolioSymbols(), analytics.Index100)
	index, err := analytics.BuildIndex(rebased)
	if err != nil {
		log.Printf("[WARN] portfolio index: %v", err)
	} else {
		snap.Portfolio = PortfolioView{Index: index, Constituents: len(rebased), Available: true}
	}

	return snap
}
