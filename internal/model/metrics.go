package model

// Metrics is the per-instrument summary derived from a close series:
// latest price and change versus the previous valid close. The zero
// value means "no signal" (insufficient data).
type Metrics struct {
	Price    float64
	Delta    float64
	DeltaPct float64
}
