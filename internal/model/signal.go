package model

import (
	"fmt"
	"time"
)

// SignalKind indicates the direction of a crossover signal.
type SignalKind string

const (
	SignalBuy  SignalKind = "BUY"
	SignalSell SignalKind = "SELL"
)

// RiskLevels carries the protective levels attached to a BUY signal.
// Invariant: StopLoss < entry price < TakeProfit.
type RiskLevels struct {
	StopLoss   float64
	TakeProfit float64
	RiskReward float64
}

// Signal is a crossover event at a specific date. Risk is set for BUY
// signals only. Immutable once created.
type Signal struct {
	Date   time.Time
	Kind   SignalKind
	Price  float64
	Reason string
	Risk   *RiskLevels
}

// ID derives a stable identifier for the signal within a symbol's history.
func (s Signal) ID(symbol string) string {
	return fmt.Sprintf("%s_%s_%s", symbol, s.Date.Format("20060102"), s.Kind)
}

// TrendLabel classifies the latest bar relative to its moving averages.
type TrendLabel string

const (
	TrendStrongBullish    TrendLabel = "STRONG_BULLISH"
	TrendMixedBullish     TrendLabel = "MIXED_BULLISH"
	TrendStrongBearish    TrendLabel = "STRONG_BEARISH"
	TrendMixedBearish     TrendLabel = "MIXED_BEARISH"
	TrendInsufficientData TrendLabel = "INSUFFICIENT_DATA"
)

// PositionStatus describes where the current price sits relative to the
// protective levels of an open BUY position.
type PositionStatus string

const (
	StatusTargetHit  PositionStatus = "TARGET_HIT"
	StatusStoppedOut PositionStatus = "STOPPED_OUT"
	StatusActive     PositionStatus = "ACTIVE"
)

// Outcome is the win/loss resolution of a position, PENDING while open.
type Outcome string

const (
	OutcomeWin     Outcome = "WIN"
	OutcomeLoss    Outcome = "LOSS"
	OutcomePending Outcome = "PENDING"
)

// PerformanceReport is the live evaluation of a BUY signal against a
// current price. Derived on demand, never stored.
type PerformanceReport struct {
	EntryPrice   float64        `json:"entry_price"`
	CurrentPrice float64        `json:"current_price"`
	ReturnPct    float64        `json:"return_pct"`
	StopLoss     float64        `json:"stop_loss"`
	TakeProfit   float64        `json:"take_profit"`
	RiskReward   float64        `json:"risk_reward_ratio"`
	Status       PositionStatus `json:"status"`
	Outcome      Outcome        `json:"outcome"`
	DaysHolding  int            `json:"days_holding"`
}

// Recommendation is one of the fixed advisory outcomes.
type Recommendation string

const (
	RecWatchForPullback Recommendation = "WATCH_FOR_PULLBACK"
	RecStayAway         Recommendation = "STAY_AWAY"
	RecRecentBuySignal  Recommendation = "RECENT_BUY_SIGNAL"
	RecReassessOldBuy   Recommendation = "REASSESS_OLD_BUY"
	RecRecentSellSignal Recommendation = "RECENT_SELL_SIGNAL"
	RecMonitorOldSell   Recommendation = "MONITOR_OLD_SELL"
)
