package cache

import (
	"path/filepath"
	"testing"
	"time"

	"TradingAdvisor/internal/model"
)

func newStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func storedSeries(t *testing.T, closes ...float64) *model.PriceSeries {
	t.Helper()
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		bars[i] = model.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: int64(1000 + i),
		}
	}
	series, err := model.NewPriceSeries("AAPL", bars)
	if err != nil {
		t.Fatalf("build series: %v", err)
	}
	return series
}

func TestSQLiteStore_MissReturnsNil(t *testing.T) {
	store := newStore(t)

	bars, fetchedAt, err := store.Get("AAPL", "6mo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bars != nil {
		t.Errorf("miss must return nil bars, got %d", len(bars))
	}
	if !fetchedAt.IsZero() {
		t.Errorf("miss must return zero time, got %s", fetchedAt)
	}
}

func TestSQLiteStore_PutGetRoundTrip(t *testing.T) {
	store := newStore(t)
	series := storedSeries(t, 100, 101.5, 99.25)

	if err := store.Put("AAPL", "6mo", series); err != nil {
		t.Fatalf("put: %v", err)
	}

	bars, fetchedAt, err := store.Get("AAPL", "6mo")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(bars) != series.Len() {
		t.Fatalf("bars: got %d, want %d", len(bars), series.Len())
	}
	for i, b := range bars {
		want := series.Bar(i)
		if !b.Date.Equal(want.Date) || b.Close != want.Close || b.Volume != want.Volume {
			t.Errorf("bar %d: got %+v, want %+v", i, b, want)
		}
	}
	if time.Since(fetchedAt) > time.Minute {
		t.Errorf("fetched-at not recent: %s", fetchedAt)
	}
}

func TestSQLiteStore_PutReplaces(t *testing.T) {
	store := newStore(t)

	if err := store.Put("AAPL", "6mo", storedSeries(t, 100, 101, 102, 103)); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := store.Put("AAPL", "6mo", storedSeries(t, 200, 201)); err != nil {
		t.Fatalf("second put: %v", err)
	}

	bars, _, err := store.Get("AAPL", "6mo")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("bars after replace: got %d, want 2", len(bars))
	}
	if bars[0].Close != 200 {
		t.Errorf("first close after replace: got %v, want 200", bars[0].Close)
	}
}

func TestSQLiteStore_KeysAreIndependent(t *testing.T) {
	store := newStore(t)

	if err := store.Put("AAPL", "6mo", storedSeries(t, 100)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put("AAPL", "1y", storedSeries(t, 300, 301)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put("MSFT", "6mo", storedSeries(t, 400)); err != nil {
		t.Fatalf("put: %v", err)
	}

	bars, _, err := store.Get("AAPL", "6mo")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(bars) != 1 || bars[0].Close != 100 {
		t.Errorf("AAPL/6mo: got %+v", bars)
	}

	bars, _, err = store.Get("AAPL", "1y")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(bars) != 2 {
		t.Errorf("AAPL/1y: got %d bars, want 2", len(bars))
	}
}
