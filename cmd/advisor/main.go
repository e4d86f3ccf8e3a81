package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"TradingAdvisor/internal/advisor"
	"TradingAdvisor/internal/api"
	"TradingAdvisor/internal/cache"
	"TradingAdvisor/internal/collector"
	"TradingAdvisor/internal/config"
	"TradingAdvisor/internal/model"
	"TradingAdvisor/internal/notifier"
	"TradingAdvisor/internal/watcher"
)

var version = "1.0.0"

var (
	cfgPath string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "advisor",
		Short: "Moving-average crossover trading advisor",
		Long: `advisor analyzes daily price history for a security, detects
fast/slow moving-average crossovers, attaches risk levels to entries and
produces an actionable recommendation. Run it as a one-shot CLI analysis,
an HTTP API, or a scheduled watcher with Telegram alerts.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", defaultConfigPath(), "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "configs/config.yaml"
}

// buildService assembles the fetcher chain and the analysis service from
// config. The returned cleanup closes the cache store, if any.
func buildService(cfg *config.Config) (*advisor.Service, func(), error) {
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewVendorFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}

	cleanup := func() {}
	if cfg.Cache.SQLitePath != "" {
		var store cache.Store
		store, err := cache.NewSQLiteStore(cfg.Cache.SQLitePath)
		if err != nil {
			logrus.WithError(err).Warn("init sqlite price cache failed, using noop store")
			store = cache.NewNoopStore()
		}
		maxAge := time.Duration(cfg.Cache.MaxAgeMinutes) * time.Minute
		fetcher = collector.NewCachedFetcher(fetcher, store, maxAge)
		cleanup = func() { store.Close() }
	}
	logrus.WithField("source", fetcher.Name()).Info("data source ready")

	svc, err := advisor.NewService(
		fetcher,
		cfg.Analysis.FastWindow,
		cfg.Analysis.SlowWindow,
		cfg.Analysis.StopLossPct,
		cfg.Analysis.TakeProfitPct,
	)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			svc, cleanup, err := buildService(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			defaultPeriod, _ := model.ParsePeriod(cfg.Analysis.DefaultPeriod)
			router := api.NewRouter(svc, defaultPeriod, cfg.Server.CORSOrigin)
			srv := &http.Server{
				Addr:    cfg.Server.Address,
				Handler: router,
			}

			errCh := make(chan error, 1)
			go func() {
				logrus.WithField("address", cfg.Server.Address).Info("http server starting")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case err := <-errCh:
				return err
			case <-sigCh:
			}

			logrus.Info("shutdown signal received, stopping")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

func analyzeCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "analyze SYMBOL",
		Short: "Run a one-shot analysis and print the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if period == "" {
				period = cfg.Analysis.DefaultPeriod
			}
			p, err := model.ParsePeriod(period)
			if err != nil {
				return err
			}

			svc, cleanup, err := buildService(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			analysis, err := svc.Analyze(cmd.Context(), args[0], p)
			if err != nil {
				return err
			}
			printAnalysis(cmd.OutOrStdout(), analysis)
			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", "", "history period (1mo, 3mo, 6mo, 1y, 2y, 5y)")
	return cmd
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch configured symbols on a schedule and alert via Telegram",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.ValidateWatch(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}

			svc, cleanup, err := buildService(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
			period, _ := model.ParsePeriod(cfg.Watch.Period)

			w := watcher.NewWatcher(ctx, svc, tn, cfg.Watch.Symbols, period)
			if err := w.Register(cfg.Watch.Cron); err != nil {
				return err
			}
			w.Start()
			defer w.Stop()

			go tn.StartPolling(ctx, w.HandleCommand)
			logrus.Info("telegram polling started")

			if os.Getenv("RUN_ON_START") == "true" {
				logrus.Info("RUN_ON_START enabled, checking all symbols now")
				go w.RunAll()
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh

			logrus.Info("shutdown signal received, stopping")
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "advisor version %s\n", version)
		},
	}
}
