package strategy

import (
	"fmt"

	"TradingAdvisor/internal/model"
)

// Default risk parameters attached to BUY signals.
const (
	DefaultStopLossPct   = 0.05
	DefaultTakeProfitPct = 0.10
)

const (
	buyReason  = "fast average crossed above slow average"
	sellReason = "fast average crossed below slow average"
)

// Detector scans an indicator series for moving-average crossovers and
// attaches protective levels to entries.
type Detector struct {
	stopLossPct   float64
	takeProfitPct float64
}

// NewDetector validates the risk percentages; both must be strictly positive.
func NewDetector(stopLossPct, takeProfitPct float64) (*Detector, error) {
	if stopLossPct <= 0 {
		return nil, fmt.Errorf("%w: stop loss pct must be positive, got %v", model.ErrInvalidInput, stopLossPct)
	}
	if takeProfitPct <= 0 {
		return nil, fmt.Errorf("%w: take profit pct must be positive, got %v", model.ErrInvalidInput, takeProfitPct)
	}
	return &Detector{stopLossPct: stopLossPct, takeProfitPct: takeProfitPct}, nil
}

// StopLossPct returns the configured stop-loss percentage.
func (d *Detector) StopLossPct() float64 { return d.stopLossPct }

// TakeProfitPct returns the configured take-profit percentage.
func (d *Detector) TakeProfitPct() float64 { return d.takeProfitPct }

// DetectCrossovers returns BUY/SELL signals in ascending date order.
//
// A BUY fires when the fast average moves from at-or-below to strictly above
// the slow average between consecutive bars; a SELL fires on the opposite
// transition. Day pairs with an undefined average on either side are skipped.
// A series shorter than slowWindow+1 bars yields an empty result, not an
// error: partial histories are an expected input.
func (d *Detector) DetectCrossovers(ind *model.IndicatorSeries) []model.Signal {
	if ind == nil || ind.Series.Len() < ind.SlowWindow+1 {
		return nil
	}

	var signals []model.Signal
	for i := 1; i < ind.Series.Len(); i++ {
		prevFast, prevSlow := ind.FastMA[i-1], ind.SlowMA[i-1]
		curFast, curSlow := ind.FastMA[i], ind.SlowMA[i]
		if !prevFast.Valid || !prevSlow.Valid || !curFast.Valid || !curSlow.Valid {
			continue
		}

		bar := ind.Series.Bar(i)
		switch {
		case prevFast.Value <= prevSlow.Value && curFast.Value > curSlow.Value:
			signals = append(signals, d.buySignal(bar))
		case prevFast.Value >= prevSlow.Value && curFast.Value < curSlow.Value:
			signals = append(signals, model.Signal{
				Date:   bar.Date,
				Kind:   model.SignalSell,
				Price:  bar.Close,
				Reason: sellReason,
			})
		}
	}
	return signals
}

func (d *Detector) buySignal(bar model.Bar) model.Signal {
	return model.Signal{
		Date:   bar.Date,
		Kind:   model.SignalBuy,
		Price:  bar.Close,
		Reason: buyReason,
		Risk: &model.RiskLevels{
			StopLoss:   bar.Close * (1 - d.stopLossPct),
			TakeProfit: bar.Close * (1 + d.takeProfitPct),
			RiskReward: d.takeProfitPct / d.stopLossPct,
		},
	}
}
