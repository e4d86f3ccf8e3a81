package advisor

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"TradingAdvisor/internal/calculator"
	"TradingAdvisor/internal/collector"
	"TradingAdvisor/internal/model"
	"TradingAdvisor/internal/strategy"
)

// Service runs the full analysis pipeline: fetch, indicators, trend,
// crossover signals, latest-signal performance, recommendation. Each call
// is independent and side-effect-free, so concurrent calls are safe.
type Service struct {
	fetcher    collector.Fetcher
	detector   *strategy.Detector
	fastWindow int
	slowWindow int
}

// NewService validates the analysis parameters up front.
func NewService(fetcher collector.Fetcher, fastWindow, slowWindow int, stopLossPct, takeProfitPct float64) (*Service, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("%w: nil fetcher", model.ErrInvalidInput)
	}
	if fastWindow <= 0 {
		return nil, fmt.Errorf("%w: fast window must be positive, got %d", model.ErrInvalidInput, fastWindow)
	}
	if slowWindow <= fastWindow {
		return nil, fmt.Errorf("%w: slow window %d must exceed fast window %d", model.ErrInvalidInput, slowWindow, fastWindow)
	}
	detector, err := strategy.NewDetector(stopLossPct, takeProfitPct)
	if err != nil {
		return nil, err
	}
	return &Service{
		fetcher:    fetcher,
		detector:   detector,
		fastWindow: fastWindow,
		slowWindow: slowWindow,
	}, nil
}

// Analyze fetches the price history for one symbol and period and derives
// the complete analysis. Fetch failures are reported upward untouched; a
// history too short for the slow window still produces a result with an
// INSUFFICIENT_DATA trend and no signals.
func (s *Service) Analyze(ctx context.Context, symbol string, period model.Period) (*Analysis, error) {
	series, err := s.fetcher.FetchHistory(ctx, symbol, period)
	if err != nil {
		return nil, fmt.Errorf("fetch %s history: %w", symbol, err)
	}

	ind, err := calculator.ComputeIndicators(series, s.fastWindow, s.slowWindow)
	if err != nil {
		return nil, err
	}

	latest := series.Last()
	fast, slow := ind.LatestFast(), ind.LatestSlow()
	trend, strength := strategy.ClassifyTrend(latest.Close, fast, slow)
	signals := s.detector.DetectCrossovers(ind)

	analysis := &Analysis{
		Symbol:           series.Symbol(),
		Period:           period.String(),
		CurrentPrice:     latest.Close,
		FastMA:           fast.Ptr(),
		SlowMA:           slow.Ptr(),
		Trend:            trend,
		TrendStrengthPct: strength,
		DataPoints:       series.Len(),
		Recommendation:   strategy.Recommend(signals, fast, slow, latest.Date),
		Signals:          make([]SignalView, 0, len(signals)),
		ChartSeries:      chartSeries(ind),
		AnalyzedAt:       time.Now().UTC(),
	}

	for _, sig := range signals {
		analysis.Signals = append(analysis.Signals, signalView(series.Symbol(), sig))
		switch sig.Kind {
		case model.SignalBuy:
			analysis.SignalCounts.Buy++
		case model.SignalSell:
			analysis.SignalCounts.Sell++
		}
	}
	analysis.SignalCounts.Total = analysis.SignalCounts.Buy + analysis.SignalCounts.Sell

	if n := len(signals); n > 0 {
		last := signals[n-1]
		view := signalView(series.Symbol(), last)
		analysis.LatestSignal = &view

		if last.Kind == model.SignalBuy {
			perf, err := strategy.EvaluatePerformance(last, latest.Close, latest.Date)
			if err != nil {
				return nil, err
			}
			analysis.Performance = perf
		}
	}

	logrus.WithFields(logrus.Fields{
		"symbol":  analysis.Symbol,
		"period":  analysis.Period,
		"bars":    analysis.DataPoints,
		"signals": analysis.SignalCounts.Total,
		"trend":   analysis.Trend,
	}).Info("analysis complete")

	return analysis, nil
}

// FastWindow returns the configured fast moving-average window.
func (s *Service) FastWindow() int { return s.fastWindow }

// SlowWindow returns the configured slow moving-average window.
func (s *Service) SlowWindow() int { return s.slowWindow }

func chartSeries(ind *model.IndicatorSeries) []ChartPoint {
	points := make([]ChartPoint, ind.Series.Len())
	for i := range points {
		bar := ind.Series.Bar(i)
		points[i] = ChartPoint{
			Date:   bar.Date,
			Close:  bar.Close,
			Volume: bar.Volume,
			FastMA: ind.FastMA[i].Ptr(),
			SlowMA: ind.SlowMA[i].Ptr(),
		}
	}
	return points
}
