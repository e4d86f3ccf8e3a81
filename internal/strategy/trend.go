package strategy

import "TradingAdvisor/internal/model"

// ClassifyTrend labels the latest bar from its close and the two moving
// averages, and reports a signed strength percentage relative to the slow
// average. Undefined averages yield INSUFFICIENT_DATA with zero strength.
//
// The partition is ordered; the first matching rule wins:
//
//	price > fast > slow           -> STRONG_BULLISH
//	price > fast, fast < slow     -> MIXED_BULLISH
//	price < fast < slow           -> STRONG_BEARISH
//	anything else                 -> MIXED_BEARISH
func ClassifyTrend(closePrice float64, fast, slow model.MAValue) (model.TrendLabel, float64) {
	if !fast.Valid || !slow.Valid {
		return model.TrendInsufficientData, 0
	}

	p, f, s := closePrice, fast.Value, slow.Value
	switch {
	case p > f && f > s:
		return model.TrendStrongBullish, (f - s) / s * 100
	case p > f && f < s:
		return model.TrendMixedBullish, (s - f) / s * 100
	case p < f && f < s:
		return model.TrendStrongBearish, (s - f) / s * 100
	default:
		return model.TrendMixedBearish, (f - s) / s * 100
	}
}
