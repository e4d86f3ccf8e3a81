package strategy

import (
	"testing"
	"time"

	"TradingAdvisor/internal/model"
)

func TestRecommend(t *testing.T) {
	asOf := time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC)
	recentDate := asOf.AddDate(0, 0, -recentSignalDays)
	oldDate := asOf.AddDate(0, 0, -(recentSignalDays + 1))

	buy := func(date time.Time) model.Signal {
		return model.Signal{Date: date, Kind: model.SignalBuy, Price: 100,
			Risk: &model.RiskLevels{StopLoss: 95, TakeProfit: 110, RiskReward: 2.0}}
	}
	sell := func(date time.Time) model.Signal {
		return model.Signal{Date: date, Kind: model.SignalSell, Price: 100}
	}

	tests := []struct {
		name       string
		signals    []model.Signal
		fast, slow model.MAValue
		want       model.Recommendation
	}{
		{
			name: "no signals, fast above slow",
			fast: model.SomeMA(110), slow: model.SomeMA(100),
			want: model.RecWatchForPullback,
		},
		{
			name: "no signals, fast below slow",
			fast: model.SomeMA(90), slow: model.SomeMA(100),
			want: model.RecStayAway,
		},
		{
			name: "no signals, undefined averages",
			fast: model.MAValue{}, slow: model.MAValue{},
			want: model.RecStayAway,
		},
		{
			name:    "recent buy",
			signals: []model.Signal{sell(oldDate), buy(recentDate)},
			fast:    model.SomeMA(110), slow: model.SomeMA(100),
			want: model.RecRecentBuySignal,
		},
		{
			name:    "old buy",
			signals: []model.Signal{buy(oldDate)},
			fast:    model.SomeMA(110), slow: model.SomeMA(100),
			want: model.RecReassessOldBuy,
		},
		{
			name:    "recent sell",
			signals: []model.Signal{buy(oldDate), sell(recentDate)},
			fast:    model.SomeMA(90), slow: model.SomeMA(100),
			want: model.RecRecentSellSignal,
		},
		{
			name:    "old sell",
			signals: []model.Signal{sell(oldDate)},
			fast:    model.SomeMA(90), slow: model.SomeMA(100),
			want: model.RecMonitorOldSell,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Recommend(tt.signals, tt.fast, tt.slow, asOf); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

// A signal exactly recentSignalDays old is still recent; one day older is not.
func TestRecommend_RecencyBoundary(t *testing.T) {
	asOf := time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC)
	buy := model.Signal{Kind: model.SignalBuy, Price: 100,
		Risk: &model.RiskLevels{StopLoss: 95, TakeProfit: 110, RiskReward: 2.0}}

	buy.Date = asOf.AddDate(0, 0, -recentSignalDays)
	if got := Recommend([]model.Signal{buy}, model.SomeMA(1), model.SomeMA(2), asOf); got != model.RecRecentBuySignal {
		t.Errorf("at boundary: got %s, want RECENT_BUY_SIGNAL", got)
	}

	buy.Date = asOf.AddDate(0, 0, -(recentSignalDays + 1))
	if got := Recommend([]model.Signal{buy}, model.SomeMA(1), model.SomeMA(2), asOf); got != model.RecReassessOldBuy {
		t.Errorf("past boundary: got %s, want REASSESS_OLD_BUY", got)
	}
}
