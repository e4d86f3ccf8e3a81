package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"TradingAdvisor/internal/model"
)

// VendorFetcher implements Fetcher against a self-hosted market data REST
// API, used instead of Yahoo when a base URL is configured.
type VendorFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewVendorFetcher creates a new fetcher with optional proxy support.
func NewVendorFetcher(baseURL, apiKey, proxyURL string) *VendorFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &VendorFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *VendorFetcher) Name() string { return "vendor" }

// vendorBar is the expected JSON shape from the vendor API.
type vendorBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    int64   `json:"volume"`
}

// FetchHistory pulls daily bars for the requested period.
func (f *VendorFetcher) FetchHistory(ctx context.Context, symbol string, period model.Period) (*model.PriceSeries, error) {
	endpoint := fmt.Sprintf("%s/api/v1/history?symbol=%s&period=%s",
		f.BaseURL, url.QueryEscape(symbol), period)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch history: status %d, body: %s", resp.StatusCode, string(body))
	}

	var vendorBars []vendorBar
	if err := json.NewDecoder(resp.Body).Decode(&vendorBars); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	if len(vendorBars) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}

	bars := make([]model.Bar, len(vendorBars))
	for i, vb := range vendorBars {
		bars[i] = model.Bar{
			Date:   time.Unix(vb.Timestamp, 0).UTC().Truncate(24 * time.Hour),
			Open:   vb.Open,
			High:   vb.High,
			Low:    vb.Low,
			Close:  vb.Close,
			Volume: vb.Volume,
		}
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })

	series, err := model.NewPriceSeries(symbol, bars)
	if err != nil {
		return nil, fmt.Errorf("vendor: invalid history for %s: %w", symbol, err)
	}
	return series, nil
}
