package config

// Asset is one tracked instrument: a display label and its provider symbol.
type Asset struct {
	Label  string `yaml:"label"`
	Symbol string `yaml:"symbol"`
}

// Category groups assets for display. NonPrice marks categories whose
// quotes are not prices (yields, FX rates); they are shown on the
// dashboard but excluded from the synthetic portfolio.
type Category struct {
	Name     string  `yaml:"name"`
	NonPrice bool    `yaml:"non_price,omitempty"`
	Assets   []Asset `yaml:"assets"`
}

// Catalog is the fixed universe of tracked instruments, in display order.
type Catalog []Category

// Symbols flattens the catalog into a deduplicated symbol list,
// preserving first-seen order.
func (c Catalog) Symbols() []string {
	seen := make(map[string]bool)
	var syms []string
	for _, cat := range c {
		for _, a := range cat.Assets {
			if seen[a.Symbol] {
				continue
			}
			seen[a.Symbol] = true
			syms = append(syms, a.Symbol)
		}
	}
	return syms
}

// PortfolioSymbols returns the symbols eligible for the equal-weight
// portfolio: everything except non-price categories.
func (c Catalog) PortfolioSymbols() []string {
	seen := make(map[string]bool)
	var syms []string
	for _, cat := range c {
		if cat.NonPrice {
			continue
		}
		for _, a := range cat.Assets {
			if seen[a.Symbol] {
				continue
			}
			seen[a.Symbol] = true
			syms = append(syms, a.Symbol)
		}
	}
	return syms
}

// DefaultCatalog is the built-in cross-asset universe used when the
// config file defines none.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Name: "Equities - US",
			Assets: []Asset{
				{Label: "S&P 500", Symbol: "^GSPC"},
				{Label: "Nasdaq 100", Symbol: "^NDX"},
				{Label: "Dow Jones", Symbol: "^DJI"},
			},
		},
		{
			Name: "Equities - Europe",
			Assets: []Asset{
				{Label: "Euro Stoxx 50", Symbol: "^STOXX50E"},
				{Label: "DAX (Germany)", Symbol: "^GDAXI"},
				{Label: "CAC 40 (France)", Symbol: "^FCHI"},
			},
		},
		{
			Name: "Equities - Asia",
			Assets: []Asset{
				{Label: "Nikkei 225 (Japan)", Symbol: "^N225"},
				{Label: "Hang Seng (HK)", Symbol: "^HSI"},
				{Label: "Nifty 50 (India)", Symbol: "^NSEI"},
			},
		},
		{
			Name:     "Currencies (vs USD)",
			NonPrice: true,
			Assets: []Asset{
				{Label: "EUR/USD", Symbol: "EURUSD=X"},
				{Label: "GBP/USD", Symbol: "GBPUSD=X"},
				{Label: "USD/JPY", Symbol: "JPY=X"},
				{Label: "BTC/USD", Symbol: "BTC-USD"},
			},
		},
		{
			Name: "Commodities",
			Assets: []Asset{
				{Label: "Gold", Symbol: "GC=F"},
				{Label: "Crude Oil (WTI)", Symbol: "CL=F"},
				{Label: "Corn", Symbol: "ZC=F"},
				{Label: "Copper", Symbol: "HG=F"},
			},
		},
		{
			Name:     "Fixed Income (Yields)",
			NonPrice: true,
			Assets: []Asset{
				{Label: "US 10Y Treasury", Symbol: "^TNX"},
				{Label: "US 2Y Treasury", Symbol: "^IRX"},
				{Label: "German Bund 10Y", Symbol: "TMBMKDE-10Y"},
			},
		},
	}
}
