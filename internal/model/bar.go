package model

import (
	"fmt"
	"time"
)

// Bar represents a single daily OHLCV observation.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// PriceSeries holds daily bars sorted ascending by date, one per calendar day.
// It owns its bars exclusively and is never mutated after construction;
// derived views attach columns, they do not alter history.
type PriceSeries struct {
	symbol string
	bars   []Bar
}

// NewPriceSeries validates and copies the given bars into an immutable series.
// Bars must carry positive prices, non-negative volume and strictly
// increasing dates.
func NewPriceSeries(symbol string, bars []Bar) (*PriceSeries, error) {
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", ErrInvalidInput)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: empty price series", ErrInvalidInput)
	}

	owned := make([]Bar, len(bars))
	copy(owned, bars)

	for i, b := range owned {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return nil, fmt.Errorf("%w: non-positive price at %s", ErrInvalidInput, b.Date.Format("2006-01-02"))
		}
		if b.Volume < 0 {
			return nil, fmt.Errorf("%w: negative volume at %s", ErrInvalidInput, b.Date.Format("2006-01-02"))
		}
		if i > 0 && !owned[i-1].Date.Before(b.Date) {
			return nil, fmt.Errorf("%w: bar dates must be strictly increasing (%s then %s)",
				ErrInvalidInput,
				owned[i-1].Date.Format("2006-01-02"), b.Date.Format("2006-01-02"))
		}
	}

	return &PriceSeries{symbol: symbol, bars: owned}, nil
}

// Symbol returns the security symbol the series belongs to.
func (s *PriceSeries) Symbol() string { return s.symbol }

// Len returns the number of bars.
func (s *PriceSeries) Len() int { return len(s.bars) }

// Bar returns the bar at index i.
func (s *PriceSeries) Bar(i int) Bar { return s.bars[i] }

// Last returns the most recent bar.
func (s *PriceSeries) Last() Bar { return s.bars[len(s.bars)-1] }

// Closes returns a copy of the closing prices in date order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.bars))
	for i, b := range s.bars {
		closes[i] = b.Close
	}
	return closes
}
