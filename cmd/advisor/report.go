package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"TradingAdvisor/internal/advisor"
	"TradingAdvisor/internal/model"
)

// printAnalysis renders the terminal report for a one-shot analysis.
func printAnalysis(w io.Writer, a *advisor.Analysis) {
	fmt.Fprintf(w, "\n%s - %s analysis (%d trading days)\n", a.Symbol, a.Period, a.DataPoints)
	fmt.Fprintln(w, "----------------------------------------")

	fmt.Fprintf(w, "Current price:  %.2f\n", a.CurrentPrice)
	fmt.Fprintf(w, "Fast MA:        %s\n", maText(a.FastMA))
	fmt.Fprintf(w, "Slow MA:        %s\n", maText(a.SlowMA))
	fmt.Fprintf(w, "Trend:          %s (%+.2f%%)\n", a.Trend, a.TrendStrengthPct)

	if n := len(a.ChartSeries); n > 0 {
		last := a.ChartSeries[n-1]
		fmt.Fprintf(w, "Last session:   %s, volume %s\n",
			last.Date.Format("2006-01-02"), humanize.Comma(last.Volume))
	}

	fmt.Fprintf(w, "\nSignals: %d total (%d buy, %d sell)\n",
		a.SignalCounts.Total, a.SignalCounts.Buy, a.SignalCounts.Sell)

	// Show the last three signals, oldest first.
	start := len(a.Signals) - 3
	if start < 0 {
		start = 0
	}
	for _, sig := range a.Signals[start:] {
		fmt.Fprintf(w, "  %s %s at %.2f (%s)\n",
			sig.Date.Format("2006-01-02"), sig.Kind, sig.Price, sig.Reason)
	}

	if sig := a.LatestSignal; sig != nil && sig.Kind == model.SignalBuy && sig.StopLoss != nil {
		fmt.Fprintf(w, "\nLatest BUY levels: stop %.2f, target %.2f, risk/reward 1:%.1f\n",
			*sig.StopLoss, *sig.TakeProfit, *sig.RiskRewardRatio)
	}

	if p := a.Performance; p != nil {
		fmt.Fprintf(w, "\nPosition performance:\n")
		fmt.Fprintf(w, "  Entry %.2f -> current %.2f (%+.1f%%)\n", p.EntryPrice, p.CurrentPrice, p.ReturnPct)
		fmt.Fprintf(w, "  Status: %s / %s, holding %d days\n", p.Status, p.Outcome, p.DaysHolding)
	}

	fmt.Fprintf(w, "\nRecommendation: %s\n", a.Recommendation)
}

func maText(v *float64) string {
	if v == nil {
		return "not enough data yet"
	}
	return fmt.Sprintf("%.2f", *v)
}
