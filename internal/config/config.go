package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"TradingAdvisor/internal/model"
	"TradingAdvisor/internal/strategy"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Address    string `yaml:"address"`
		CORSOrigin string `yaml:"cors_origin"`
	} `yaml:"server"`
	Analysis struct {
		FastWindow    int     `yaml:"fast_window"`
		SlowWindow    int     `yaml:"slow_window"`
		StopLossPct   float64 `yaml:"stop_loss_pct"`
		TakeProfitPct float64 `yaml:"take_profit_pct"`
		DefaultPeriod string  `yaml:"default_period"`
	} `yaml:"analysis"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Cache struct {
		SQLitePath    string `yaml:"sqlite_path"`
		MaxAgeMinutes int    `yaml:"max_age_minutes"`
	} `yaml:"cache"`
	Watch struct {
		Symbols []string `yaml:"symbols"`
		Cron    string   `yaml:"cron"`
		Period  string   `yaml:"period"`
	} `yaml:"watch"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		cfg.Server.CORSOrigin = v
	}
	if v := os.Getenv("VENDOR_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("VENDOR_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Cache.SQLitePath = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}
	if v := os.Getenv("FAST_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.FastWindow = n
		}
	}
	if v := os.Getenv("SLOW_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.SlowWindow = n
		}
	}

	// Defaults
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8000"
	}
	if cfg.Analysis.FastWindow == 0 {
		cfg.Analysis.FastWindow = 20
	}
	if cfg.Analysis.SlowWindow == 0 {
		cfg.Analysis.SlowWindow = 50
	}
	if cfg.Analysis.StopLossPct == 0 {
		cfg.Analysis.StopLossPct = strategy.DefaultStopLossPct
	}
	if cfg.Analysis.TakeProfitPct == 0 {
		cfg.Analysis.TakeProfitPct = strategy.DefaultTakeProfitPct
	}
	if cfg.Analysis.DefaultPeriod == "" {
		cfg.Analysis.DefaultPeriod = string(model.Period6Mo)
	}
	if cfg.Cache.MaxAgeMinutes == 0 {
		cfg.Cache.MaxAgeMinutes = 15
	}
	if cfg.Watch.Cron == "" {
		// Weekday evenings, after US market close.
		cfg.Watch.Cron = "0 30 22 * * 1-5"
	}
	if cfg.Watch.Period == "" {
		cfg.Watch.Period = string(model.Period1Y)
	}

	return cfg, nil
}

// Validate checks the analysis parameters shared by every command.
func (c *Config) Validate() error {
	if c.Analysis.FastWindow <= 0 {
		return fmt.Errorf("analysis.fast_window must be positive")
	}
	if c.Analysis.SlowWindow <= c.Analysis.FastWindow {
		return fmt.Errorf("analysis.slow_window must exceed analysis.fast_window")
	}
	if c.Analysis.StopLossPct <= 0 {
		return fmt.Errorf("analysis.stop_loss_pct must be positive")
	}
	if c.Analysis.TakeProfitPct <= 0 {
		return fmt.Errorf("analysis.take_profit_pct must be positive")
	}
	if _, err := model.ParsePeriod(c.Analysis.DefaultPeriod); err != nil {
		return fmt.Errorf("analysis.default_period: %w", err)
	}
	return nil
}

// ValidateWatch checks the extra fields watch mode requires.
func (c *Config) ValidateWatch() error {
	if len(c.Watch.Symbols) == 0 {
		return fmt.Errorf("watch.symbols is required")
	}
	if _, err := model.ParsePeriod(c.Watch.Period); err != nil {
		return fmt.Errorf("watch.period: %w", err)
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required for watch mode")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required for watch mode")
	}
	return nil
}
