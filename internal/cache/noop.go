package cache

import (
	"time"

	"TradingAdvisor/internal/model"
)

// NoopStore is a no-op implementation used when SQLite is not available.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) Get(_, _ string) ([]model.Bar, time.Time, error) { return nil, time.Time{}, nil }
func (n *NoopStore) Put(_, _ string, _ *model.PriceSeries) error     { return nil }
func (n *NoopStore) Close() error                                    { return nil }
