package model

import (
	"sort"
	"time"
)

// Field identifies one OHLCV column in a fetched table.
type Field string

const (
	FieldOpen   Field = "Open"
	FieldHigh   Field = "High"
	FieldLow    Field = "Low"
	FieldClose  Field = "Close"
	FieldVolume Field = "Volume"
)

// Observation is a single dated value. Valid is false when the provider
// reported no data for that date (holiday, short listing history, gap).
type Observation struct {
	Date  time.Time
	Value float64
	Valid bool
}

// Series is an ordered sequence of observations, ascending by date.
type Series []Observation

// ValidValues returns the non-missing values in chronological order.
func (s Series) ValidValues() []float64 {
	vals := make([]float64, 0, len(s))
	for _, obs := range s {
		if obs.Valid {
			vals = append(vals, obs.Value)
		}
	}
	return vals
}

// FirstValid returns the index of the first non-missing observation,
// or -1 when the series is entirely empty.
func (s Series) FirstValid() int {
	for i, obs := range s {
		if obs.Valid {
			return i
		}
	}
	return -1
}

// Dataset is the result of one batch fetch: a table addressable by
// (symbol, field) regardless of how many symbols were requested.
// A symbol that failed to fetch is simply absent. The dataset is
// treated as immutable once returned from the fetch layer.
type Dataset struct {
	tables map[string]map[Field]Series
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{tables: make(map[string]map[Field]Series)}
}

// Put stores one field's series for a symbol. Only the fetch layer
// writes to a dataset; downstream consumers read only.
func (d *Dataset) Put(symbol string, field Field, s Series) {
	t, ok := d.tables[symbol]
	if !ok {
		t = make(map[Field]Series)
		d.tables[symbol] = t
	}
	t[field] = s
}

// Series returns the series for (symbol, field), or nil when the symbol
// or field is missing from the fetch result.
func (d *Dataset) Series(symbol string, field Field) Series {
	return d.tables[symbol][field]
}

// Closes returns the close-price series for a symbol, or nil.
func (d *Dataset) Closes(symbol string) Series {
	return d.Series(symbol, FieldClose)
}

// Has reports whether the symbol appeared in the fetch result.
func (d *Dataset) Has(symbol string) bool {
	_, ok := d.tables[symbol]
	return ok
}

// Symbols returns the fetched symbols in sorted order.
func (d *Dataset) Symbols() []string {
	syms := make([]string, 0, len(d.tables))
	for s := range d.tables {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	return syms
}

// Empty reports whether the fetch produced no data at all. Callers must
// treat an empty dataset as "provider unavailable", distinct from
// per-symbol gaps.
func (d *Dataset) Empty() bool {
	return len(d.tables) == 0
}
