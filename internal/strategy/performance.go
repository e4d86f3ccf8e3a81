package strategy

import (
	"fmt"
	"time"

	"TradingAdvisor/internal/model"
)

// EvaluatePerformance reports how a BUY position opened by the given signal
// is doing at currentPrice. The as-of date is passed explicitly so the
// holding duration never depends on the wall clock.
//
// Target and stop are checked in that order: at or above the take-profit is
// a WIN even if the price also crossed the stop at some point in between.
func EvaluatePerformance(sig model.Signal, currentPrice float64, asOf time.Time) (*model.PerformanceReport, error) {
	if sig.Kind != model.SignalBuy || sig.Risk == nil {
		return nil, fmt.Errorf("%w: performance evaluation needs a BUY signal, got %s", model.ErrUnsupportedSignalKind, sig.Kind)
	}
	if currentPrice <= 0 {
		return nil, fmt.Errorf("%w: current price must be positive, got %v", model.ErrInvalidInput, currentPrice)
	}

	days := daysBetween(sig.Date, asOf)
	if days < 0 {
		return nil, fmt.Errorf("%w: as-of date %s precedes signal date %s",
			model.ErrInvalidInput, asOf.Format("2006-01-02"), sig.Date.Format("2006-01-02"))
	}

	report := &model.PerformanceReport{
		EntryPrice:   sig.Price,
		CurrentPrice: currentPrice,
		ReturnPct:    (currentPrice - sig.Price) / sig.Price * 100,
		StopLoss:     sig.Risk.StopLoss,
		TakeProfit:   sig.Risk.TakeProfit,
		RiskReward:   sig.Risk.RiskReward,
		DaysHolding:  days,
	}

	switch {
	case currentPrice >= sig.Risk.TakeProfit:
		report.Status, report.Outcome = model.StatusTargetHit, model.OutcomeWin
	case currentPrice <= sig.Risk.StopLoss:
		report.Status, report.Outcome = model.StatusStoppedOut, model.OutcomeLoss
	default:
		report.Status, report.Outcome = model.StatusActive, model.OutcomePending
	}

	return report, nil
}

// daysBetween counts whole calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
