package collector

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"TradingAdvisor/internal/cache"
	"TradingAdvisor/internal/model"
)

// CachedFetcher serves recent history from the cache store before hitting
// the upstream source. Cache problems degrade to a direct fetch.
type CachedFetcher struct {
	source Fetcher
	store  cache.Store
	maxAge time.Duration
}

// NewCachedFetcher wraps a fetcher with a read-through price cache.
func NewCachedFetcher(source Fetcher, store cache.Store, maxAge time.Duration) *CachedFetcher {
	return &CachedFetcher{source: source, store: store, maxAge: maxAge}
}

func (f *CachedFetcher) Name() string { return f.source.Name() + "+cache" }

func (f *CachedFetcher) FetchHistory(ctx context.Context, symbol string, period model.Period) (*model.PriceSeries, error) {
	bars, fetchedAt, err := f.store.Get(symbol, string(period))
	if err != nil {
		logrus.WithError(err).WithField("symbol", symbol).Warn("price cache read failed")
	} else if len(bars) > 0 && time.Since(fetchedAt) < f.maxAge {
		series, err := model.NewPriceSeries(symbol, bars)
		if err == nil {
			return series, nil
		}
		logrus.WithError(err).WithField("symbol", symbol).Warn("discarding invalid cached history")
	}

	series, err := f.source.FetchHistory(ctx, symbol, period)
	if err != nil {
		return nil, err
	}
	if err := f.store.Put(symbol, string(period), series); err != nil {
		logrus.WithError(err).WithField("symbol", symbol).Warn("price cache write failed")
	}
	return series, nil
}
