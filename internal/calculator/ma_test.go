package calculator

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"TradingAdvisor/internal/model"
)

func newSeries(t *testing.T, closes ...float64) *model.PriceSeries {
	t.Helper()
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		bars[i] = model.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c * 1.01,
			Low:    c * 0.99,
			Close:  c,
			Volume: 1000,
		}
	}
	series, err := model.NewPriceSeries("TEST", bars)
	if err != nil {
		t.Fatalf("build series: %v", err)
	}
	return series
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeIndicators_KnownValues(t *testing.T) {
	series := newSeries(t, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28)

	ind, err := ComputeIndicators(series, 3, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ind.FastMA[4]; !got.Valid || !almostEqual(got.Value, 16.0) {
		t.Errorf("fast MA at index 4: got %+v, want 16.0", got)
	}
	if got := ind.FastMA[2]; !got.Valid || !almostEqual(got.Value, 12.0) {
		t.Errorf("fast MA at index 2: got %+v, want 12.0", got)
	}
	if got := ind.SlowMA[4]; !got.Valid || !almostEqual(got.Value, 14.0) {
		t.Errorf("slow MA at index 4: got %+v, want 14.0", got)
	}
	if got := ind.SlowMA[9]; !got.Valid || !almostEqual(got.Value, 24.0) {
		t.Errorf("slow MA at index 9: got %+v, want 24.0", got)
	}
}

// A value must be defined exactly from index window-1 onward.
func TestComputeIndicators_WindowDefinition(t *testing.T) {
	series := newSeries(t, 5, 6, 7, 8, 9, 10, 11, 12, 13)

	for _, windows := range []struct{ fast, slow int }{{2, 3}, {3, 7}, {5, 9}} {
		ind, err := ComputeIndicators(series, windows.fast, windows.slow)
		if err != nil {
			t.Fatalf("windows %d/%d: %v", windows.fast, windows.slow, err)
		}
		for i := 0; i < series.Len(); i++ {
			if got, want := ind.FastMA[i].Valid, i >= windows.fast-1; got != want {
				t.Errorf("fast window %d index %d: valid=%v, want %v", windows.fast, i, got, want)
			}
			if got, want := ind.SlowMA[i].Valid, i >= windows.slow-1; got != want {
				t.Errorf("slow window %d index %d: valid=%v, want %v", windows.slow, i, got, want)
			}
		}
	}
}

func TestComputeIndicators_WindowLongerThanSeries(t *testing.T) {
	series := newSeries(t, 10, 11, 12)

	ind, err := ComputeIndicators(series, 20, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range ind.SlowMA {
		if v.Valid {
			t.Errorf("slow MA at index %d should be undefined", i)
		}
	}
	if fast := ind.LatestFast(); fast.Valid {
		t.Errorf("latest fast MA should be undefined, got %v", fast.Value)
	}
}

func TestComputeIndicators_Invalid(t *testing.T) {
	series := newSeries(t, 10, 11, 12)

	tests := []struct {
		name   string
		series *model.PriceSeries
		fast   int
		slow   int
	}{
		{"nil series", nil, 20, 50},
		{"zero fast window", series, 0, 50},
		{"negative fast window", series, -3, 50},
		{"slow equals fast", series, 20, 20},
		{"slow below fast", series, 50, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ComputeIndicators(tt.series, tt.fast, tt.slow); !errors.Is(err, model.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestComputeIndicators_Deterministic(t *testing.T) {
	series := newSeries(t, 10, 12, 9, 15, 14, 18, 17, 21)

	first, err := ComputeIndicators(series, 2, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeIndicators(series, 2, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first.FastMA, second.FastMA) || !reflect.DeepEqual(first.SlowMA, second.SlowMA) {
		t.Error("repeated computation over the same series diverged")
	}
}
