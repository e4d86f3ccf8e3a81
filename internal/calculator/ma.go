package calculator

import (
	"fmt"

	"TradingAdvisor/internal/model"
)

// ComputeIndicators derives the fast and slow simple moving averages over a
// price series. The value at index i is the arithmetic mean of the closes
// over the trailing window ending at i, so no bar ever looks ahead of its
// own date. The first window-1 entries of each column are undefined.
func ComputeIndicators(series *model.PriceSeries, fastWindow, slowWindow int) (*model.IndicatorSeries, error) {
	if series == nil || series.Len() == 0 {
		return nil, fmt.Errorf("%w: empty price series", model.ErrInvalidInput)
	}
	if fastWindow <= 0 {
		return nil, fmt.Errorf("%w: fast window must be positive, got %d", model.ErrInvalidInput, fastWindow)
	}
	if slowWindow <= fastWindow {
		return nil, fmt.Errorf("%w: slow window %d must exceed fast window %d", model.ErrInvalidInput, slowWindow, fastWindow)
	}

	closes := series.Closes()
	return &model.IndicatorSeries{
		Series:     series,
		FastWindow: fastWindow,
		SlowWindow: slowWindow,
		FastMA:     rollingMean(closes, fastWindow),
		SlowMA:     rollingMean(closes, slowWindow),
	}, nil
}

// rollingMean computes a trailing simple moving average with a running sum.
func rollingMean(values []float64, window int) []model.MAValue {
	out := make([]model.MAValue, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = model.SomeMA(sum / float64(window))
		}
	}
	return out
}
