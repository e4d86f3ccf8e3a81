package collector

import (
	"context"
	"errors"

	"TradingAdvisor/internal/model"
)

// ErrNotFound is returned when the data source has no price history for a
// symbol. It short-circuits the analysis before any computation runs.
var ErrNotFound = errors.New("symbol not found")

// Fetcher retrieves validated daily price history from a market data source.
type Fetcher interface {
	FetchHistory(ctx context.Context, symbol string, period model.Period) (*model.PriceSeries, error)
	Name() string
}
