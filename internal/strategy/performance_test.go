package strategy

import (
	"errors"
	"testing"
	"time"

	"TradingAdvisor/internal/model"
)

func buySignalAt(date time.Time) model.Signal {
	return model.Signal{
		Date:  date,
		Kind:  model.SignalBuy,
		Price: 100,
		Risk:  &model.RiskLevels{StopLoss: 95, TakeProfit: 110, RiskReward: 2.0},
	}
}

func TestEvaluatePerformance_Outcomes(t *testing.T) {
	entry := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	asOf := entry.AddDate(0, 0, 10)

	tests := []struct {
		name         string
		currentPrice float64
		wantStatus   model.PositionStatus
		wantOutcome  model.Outcome
		wantReturn   float64
	}{
		{"target hit", 110, model.StatusTargetHit, model.OutcomeWin, 10},
		{"above target", 125, model.StatusTargetHit, model.OutcomeWin, 25},
		{"stopped out", 95, model.StatusStoppedOut, model.OutcomeLoss, -5},
		{"below stop", 90, model.StatusStoppedOut, model.OutcomeLoss, -10},
		{"still active", 102, model.StatusActive, model.OutcomePending, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := EvaluatePerformance(buySignalAt(entry), tt.currentPrice, asOf)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if report.Status != tt.wantStatus {
				t.Errorf("status: got %s, want %s", report.Status, tt.wantStatus)
			}
			if report.Outcome != tt.wantOutcome {
				t.Errorf("outcome: got %s, want %s", report.Outcome, tt.wantOutcome)
			}
			if !almostEqual(report.ReturnPct, tt.wantReturn) {
				t.Errorf("return pct: got %v, want %v", report.ReturnPct, tt.wantReturn)
			}
			if report.DaysHolding != 10 {
				t.Errorf("days holding: got %d, want 10", report.DaysHolding)
			}
			if report.EntryPrice != 100 || report.StopLoss != 95 || report.TakeProfit != 110 {
				t.Errorf("levels not carried over: %+v", report)
			}
		})
	}
}

// The target check precedes the stop check, so a price at or beyond both
// resolves as a win.
func TestEvaluatePerformance_CheckOrder(t *testing.T) {
	entry := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	sig := buySignalAt(entry)
	sig.Risk = &model.RiskLevels{StopLoss: 120, TakeProfit: 110, RiskReward: 2.0}

	report, err := EvaluatePerformance(sig, 115, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Status != model.StatusTargetHit || report.Outcome != model.OutcomeWin {
		t.Errorf("got %s/%s, want TARGET_HIT/WIN", report.Status, report.Outcome)
	}
}

func TestEvaluatePerformance_HoldingIgnoresTimeOfDay(t *testing.T) {
	entry := time.Date(2024, time.March, 1, 23, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, time.March, 2, 1, 0, 0, 0, time.UTC)

	report, err := EvaluatePerformance(buySignalAt(entry), 102, asOf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.DaysHolding != 1 {
		t.Errorf("days holding: got %d, want 1", report.DaysHolding)
	}
}

func TestEvaluatePerformance_Errors(t *testing.T) {
	entry := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	sell := model.Signal{Date: entry, Kind: model.SignalSell, Price: 100}
	if _, err := EvaluatePerformance(sell, 102, entry); !errors.Is(err, model.ErrUnsupportedSignalKind) {
		t.Errorf("SELL signal: expected ErrUnsupportedSignalKind, got %v", err)
	}

	if _, err := EvaluatePerformance(buySignalAt(entry), 0, entry); !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("zero price: expected ErrInvalidInput, got %v", err)
	}

	if _, err := EvaluatePerformance(buySignalAt(entry), 102, entry.AddDate(0, 0, -1)); !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("as-of before entry: expected ErrInvalidInput, got %v", err)
	}
}
