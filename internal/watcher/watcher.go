package watcher

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"TradingAdvisor/internal/advisor"
	"TradingAdvisor/internal/model"
	"TradingAdvisor/internal/notifier"
)

// Watcher re-analyzes the configured symbols on a cron schedule and pushes a
// Telegram alert when the latest analysis produced a signal that was not seen
// on a previous run. Every tick is an ordinary finite-series analysis; no
// state beyond the last-seen signal dates is kept, and only in memory.
type Watcher struct {
	cron     *cron.Cron
	svc      *advisor.Service
	notifier *notifier.TelegramNotifier
	symbols  []string
	period   model.Period
	ctx      context.Context

	mu       sync.Mutex
	lastSeen map[string]time.Time
}

// NewWatcher creates a watcher over the given symbols.
func NewWatcher(ctx context.Context, svc *advisor.Service, tn *notifier.TelegramNotifier, symbols []string, period model.Period) *Watcher {
	return &Watcher{
		cron:     cron.New(cron.WithSeconds()),
		svc:      svc,
		notifier: tn,
		symbols:  symbols,
		period:   period,
		ctx:      ctx,
		lastSeen: make(map[string]time.Time),
	}
}

// Register schedules the periodic check.
func (w *Watcher) Register(cronSpec string) error {
	if _, err := w.cron.AddFunc(cronSpec, w.RunAll); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (w *Watcher) Start() {
	w.cron.Start()
	logrus.WithField("symbols", w.symbols).Info("watcher started")
}

// Stop stops the cron scheduler gracefully.
func (w *Watcher) Stop() {
	w.cron.Stop()
	logrus.Info("watcher stopped")
}

// RunAll checks every configured symbol once.
func (w *Watcher) RunAll() {
	for _, symbol := range w.symbols {
		if w.ctx.Err() != nil {
			return
		}
		w.check(symbol)
	}
}

func (w *Watcher) check(symbol string) {
	analysis, err := w.svc.Analyze(w.ctx, symbol, w.period)
	if err != nil {
		logrus.WithError(err).WithField("symbol", symbol).Error("watch analysis failed")
		return
	}
	if analysis.LatestSignal == nil {
		return
	}

	sig := analysis.LatestSignal

	w.mu.Lock()
	seen, known := w.lastSeen[symbol]
	w.lastSeen[symbol] = sig.Date
	w.mu.Unlock()

	// First run: only alert when the signal fired on the newest bar, so
	// starting the watcher does not replay months-old crossovers.
	if !known {
		if n := len(analysis.ChartSeries); n == 0 || !analysis.ChartSeries[n-1].Date.Equal(sig.Date) {
			return
		}
	} else if !sig.Date.After(seen) {
		return
	}

	msg := notifier.FormatSignalAlert(symbol, sig)
	if err := w.notifier.SendWithRetry(w.ctx, msg, 3); err != nil {
		logrus.WithError(err).WithField("symbol", symbol).Error("send signal alert")
	}
}

// HandleCommand processes a Telegram command and returns the reply.
func (w *Watcher) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}

	switch fields[0] {
	case "/analyze":
		if len(fields) < 2 {
			return "usage: /analyze SYMBOL [period]"
		}
		symbol := strings.ToUpper(fields[1])
		period := w.period
		if len(fields) > 2 {
			parsed, err := model.ParsePeriod(fields[2])
			if err != nil {
				return err.Error()
			}
			period = parsed
		}
		analysis, err := w.svc.Analyze(w.ctx, symbol, period)
		if err != nil {
			return fmt.Sprintf("analysis failed: %v", err)
		}
		return notifier.FormatAnalysisReport(analysis)
	case "/watch":
		return "watching: " + strings.Join(w.symbols, ", ")
	default:
		return "commands:\n/analyze SYMBOL [period]\n/watch"
	}
}
