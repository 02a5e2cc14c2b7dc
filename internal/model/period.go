package model

// Period is the lookback window for a history fetch.
type Period string

const (
	Period1Mo Period = "1mo"
	Period3Mo Period = "3mo"
	Period6Mo Period = "6mo"
	Period1Y  Period = "1y"
	Period2Y  Period = "2y"
	Period5Y  Period = "5y"
)

// Periods lists all supported lookback windows, shortest first.
func Periods() []Period {
	return []Period{Period1Mo, Period3Mo, Period6Mo, Period1Y, Period2Y, Period5Y}
}

// Valid reports whether p is one of the supported periods.
func (p Period) Valid() bool {
	for _, q := range Periods() {
		if p == q {
			return true
		}
	}
	return false
}
