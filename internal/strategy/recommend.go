package strategy

import (
	"time"

	"TradingAdvisor/internal/model"
)

// recentSignalDays is the window within which a signal still counts as fresh.
const recentSignalDays = 5

// Recommend combines the latest signal with the current moving-average
// relationship into a single advisory. The as-of date is passed explicitly.
//
// With no signals the current averages decide: fast above slow means wait
// for a pullback, anything else (including undefined averages) stays away.
func Recommend(signals []model.Signal, fast, slow model.MAValue, asOf time.Time) model.Recommendation {
	if len(signals) == 0 {
		if fast.Valid && slow.Valid && fast.Value > slow.Value {
			return model.RecWatchForPullback
		}
		return model.RecStayAway
	}

	latest := signals[len(signals)-1]
	recent := daysBetween(latest.Date, asOf) <= recentSignalDays

	if latest.Kind == model.SignalBuy {
		if recent {
			return model.RecRecentBuySignal
		}
		return model.RecReassessOldBuy
	}
	if recent {
		return model.RecRecentSellSignal
	}
	return model.RecMonitorOldSell
}
