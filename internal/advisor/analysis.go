package advisor

import (
	"time"

	"TradingAdvisor/internal/model"
)

// Analysis is the complete, presentation-ready result for one symbol and
// period. Any front end can render it without further computation.
type Analysis struct {
	Symbol           string                   `json:"symbol"`
	Period           string                   `json:"period"`
	CurrentPrice     float64                  `json:"current_price"`
	FastMA           *float64                 `json:"fast_ma"`
	SlowMA           *float64                 `json:"slow_ma"`
	Trend            model.TrendLabel         `json:"trend_label"`
	TrendStrengthPct float64                  `json:"trend_strength_pct"`
	DataPoints       int                      `json:"data_points"`
	Recommendation   model.Recommendation     `json:"recommendation"`
	Signals          []SignalView             `json:"signals"`
	SignalCounts     SignalCounts             `json:"signal_counts"`
	LatestSignal     *SignalView              `json:"latest_signal,omitempty"`
	Performance      *model.PerformanceReport `json:"performance,omitempty"`
	ChartSeries      []ChartPoint             `json:"chart_series"`
	AnalyzedAt       time.Time                `json:"analyzed_at"`
}

// SignalView renders one signal. Risk fields are present on BUY only.
type SignalView struct {
	ID              string           `json:"id"`
	Date            time.Time        `json:"date"`
	Kind            model.SignalKind `json:"kind"`
	Price           float64          `json:"price"`
	Reason          string           `json:"reason"`
	StopLoss        *float64         `json:"stop_loss,omitempty"`
	TakeProfit      *float64         `json:"take_profit,omitempty"`
	RiskRewardRatio *float64         `json:"risk_reward_ratio,omitempty"`
}

// SignalCounts summarizes the signal list. Total is always Buy + Sell.
type SignalCounts struct {
	Total int `json:"total"`
	Buy   int `json:"buy"`
	Sell  int `json:"sell"`
}

// ChartPoint is one bar of the chart series, with moving averages where
// they are defined.
type ChartPoint struct {
	Date   time.Time `json:"date"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
	FastMA *float64  `json:"fast_ma,omitempty"`
	SlowMA *float64  `json:"slow_ma,omitempty"`
}

func signalView(symbol string, sig model.Signal) SignalView {
	view := SignalView{
		ID:     sig.ID(symbol),
		Date:   sig.Date,
		Kind:   sig.Kind,
		Price:  sig.Price,
		Reason: sig.Reason,
	}
	if sig.Risk != nil {
		view.StopLoss = ptr(sig.Risk.StopLoss)
		view.TakeProfit = ptr(sig.Risk.TakeProfit)
		view.RiskRewardRatio = ptr(sig.Risk.RiskReward)
	}
	return view
}

func ptr(f float64) *float64 { return &f }
