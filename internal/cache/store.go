package cache

import (
	"time"

	"TradingAdvisor/internal/model"
)

// Store caches fetched price history keyed by symbol and period, so repeated
// analyses of the same security do not hammer the upstream data source.
// Only raw bars are stored, never derived signals.
type Store interface {
	// Get returns the cached bars and the time they were fetched. A miss
	// returns nil bars and no error.
	Get(symbol, period string) ([]model.Bar, time.Time, error)
	Put(symbol, period string, series *model.PriceSeries) error
	Close() error
}
