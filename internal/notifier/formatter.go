package notifier

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"TradingAdvisor/internal/advisor"
	"TradingAdvisor/internal/model"
)

// FormatAnalysisReport formats an analysis into a Telegram HTML message.
func FormatAnalysisReport(a *advisor.Analysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s | %s\n\n", a.Symbol, a.Period, a.AnalyzedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Price: %.2f\n", a.CurrentPrice))
	b.WriteString(fmt.Sprintf("Fast MA: %s | Slow MA: %s\n", formatMA(a.FastMA), formatMA(a.SlowMA)))
	b.WriteString(fmt.Sprintf("Trend: %s (%+.2f%%)\n", a.Trend, a.TrendStrengthPct))
	b.WriteString(fmt.Sprintf("Bars analyzed: %s\n\n", humanize.Comma(int64(a.DataPoints))))

	b.WriteString(fmt.Sprintf("🚦 Signals: %d total (%d buy, %d sell)\n",
		a.SignalCounts.Total, a.SignalCounts.Buy, a.SignalCounts.Sell))

	if sig := a.LatestSignal; sig != nil {
		icon := "📉"
		if sig.Kind == model.SignalBuy {
			icon = "📈"
		}
		b.WriteString(fmt.Sprintf("%s Latest: %s on %s at %.2f\n", icon, sig.Kind, sig.Date.Format("2006-01-02"), sig.Price))
		if sig.StopLoss != nil && sig.TakeProfit != nil {
			b.WriteString(fmt.Sprintf("   Stop: %.2f | Target: %.2f\n", *sig.StopLoss, *sig.TakeProfit))
		}
	}

	if p := a.Performance; p != nil {
		b.WriteString(fmt.Sprintf("\n📊 Position: %s / %s (%+.1f%%, %d days)\n",
			p.Status, p.Outcome, p.ReturnPct, p.DaysHolding))
	}

	b.WriteString(fmt.Sprintf("\n🎯 <b>%s</b>\n", recommendationText(a.Recommendation)))

	return b.String()
}

// FormatSignalAlert formats the short push message for a fresh signal.
func FormatSignalAlert(symbol string, sig *advisor.SignalView) string {
	var b strings.Builder
	if sig.Kind == model.SignalBuy {
		b.WriteString(fmt.Sprintf("📈 <b>BUY signal</b> | %s\n\n", symbol))
	} else {
		b.WriteString(fmt.Sprintf("📉 <b>SELL signal</b> | %s\n\n", symbol))
	}
	b.WriteString(fmt.Sprintf("Date: %s\n", sig.Date.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Price: %.2f\n", sig.Price))
	b.WriteString(fmt.Sprintf("Reason: %s\n", sig.Reason))
	if sig.StopLoss != nil && sig.TakeProfit != nil && sig.RiskRewardRatio != nil {
		b.WriteString(fmt.Sprintf("Stop: %.2f | Target: %.2f | R/R: 1:%.1f\n",
			*sig.StopLoss, *sig.TakeProfit, *sig.RiskRewardRatio))
	}
	return b.String()
}

func formatMA(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}

func recommendationText(r model.Recommendation) string {
	switch r {
	case model.RecWatchForPullback:
		return "WATCH FOR PULLBACK - currently bullish, wait for a better entry"
	case model.RecStayAway:
		return "STAY AWAY - currently bearish trend"
	case model.RecRecentBuySignal:
		return "RECENT BUY SIGNAL - consider entry or monitor position"
	case model.RecReassessOldBuy:
		return "OLD BUY SIGNAL - reassess current conditions"
	case model.RecRecentSellSignal:
		return "RECENT SELL SIGNAL - avoid buying, consider exit"
	case model.RecMonitorOldSell:
		return "OLD SELL SIGNAL - monitor for trend change"
	default:
		return string(r)
	}
}
