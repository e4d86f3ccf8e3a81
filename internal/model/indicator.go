package model

// MAValue is an optional moving-average value. Valid is false for the
// leading bars that do not yet span a full window, so "insufficient data"
// is a type-level distinction instead of a NaN sentinel.
type MAValue struct {
	Value float64
	Valid bool
}

// SomeMA wraps a defined moving-average value.
func SomeMA(v float64) MAValue { return MAValue{Value: v, Valid: true} }

// Ptr returns the value as a nullable pointer for JSON rendering.
func (v MAValue) Ptr() *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Value
	return &f
}

// IndicatorSeries is a PriceSeries with two aligned moving-average columns.
// Read-only once derived.
type IndicatorSeries struct {
	Series     *PriceSeries
	FastWindow int
	SlowWindow int
	FastMA     []MAValue
	SlowMA     []MAValue
}

// LatestFast returns the fast moving average at the most recent bar.
func (s *IndicatorSeries) LatestFast() MAValue { return s.FastMA[len(s.FastMA)-1] }

// LatestSlow returns the slow moving average at the most recent bar.
func (s *IndicatorSeries) LatestSlow() MAValue { return s.SlowMA[len(s.SlowMA)-1] }
