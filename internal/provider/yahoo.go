package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"golang.org/x/time/rate"

	"MarketWatch/internal/model"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using the Yahoo Finance chart API.
type YahooFetcher struct {
	BaseURL string
	Client  *http.Client
	limiter *rate.Limiter
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy
// support. Requests are throttled so a whole-catalog batch fetch does not
// hammer the endpoint.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		BaseURL: defaultYahooBaseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Limit(5), 5),
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
// Quote arrays use null for dates without data, hence []interface{}.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// at returns the i-th entry of a quote array, nil when the array is
// shorter than the timestamp list.
func at(vals []interface{}, i int) interface{} {
	if i >= len(vals) {
		return nil
	}
	return vals[i]
}

func toObservation(date time.Time, v interface{}) model.Observation {
	obs := model.Observation{Date: date}
	switch n := v.(type) {
	case float64:
		obs.Value = n
		obs.Valid = true
	case int:
		obs.Value = float64(n)
		obs.Valid = true
	}
	return obs
}

// FetchHistory retrieves daily bars for the given period. Null entries in
// the response are kept as missing observations so downstream series keep
// their calendar positions.
func (f *YahooFetcher) FetchHistory(ctx context.Context, symbol string, period model.Period) (map[model.Field]model.Series, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
		f.BaseURL, url.PathEscape(symbol), period)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned for %s", symbol)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data for %s", symbol)
	}
	quote := result.Indicators.Quote[0]

	// Ensure chronological order before building the per-field series.
	order := make([]int, len(result.Timestamp))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return result.Timestamp[order[a]] < result.Timestamp[order[b]]
	})

	columns := []struct {
		field model.Field
		vals  []interface{}
	}{
		{model.FieldOpen, quote.Open},
		{model.FieldHigh, quote.High},
		{model.FieldLow, quote.Low},
		{model.FieldClose, quote.Close},
		{model.FieldVolume, quote.Volume},
	}

	fields := make(map[model.Field]model.Series, len(columns))
	for _, col := range columns {
		series := make(model.Series, 0, len(order))
		for _, i := range order {
			date := time.Unix(result.Timestamp[i], 0).UTC()
			series = append(series, toObservation(date, at(col.vals, i)))
		}
		fields[col.field] = series
	}
	return fields, nil
}
