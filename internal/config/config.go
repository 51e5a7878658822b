package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Symbol          string `yaml:"symbol"`
		Days            int    `yaml:"days"`
		CSVPath         string `yaml:"csv_path"` // when set, load bars from file instead of Yahoo
		CacheFile       string `yaml:"cache_file"`
		CacheTTLMinutes int    `yaml:"cache_ttl_minutes"`
	} `yaml:"data_source"`
	Strategy struct {
		FastWindow int `yaml:"fast_window"`
		SlowWindow int `yaml:"slow_window"`
	} `yaml:"strategy"`
	Backtest struct {
		InitialCash float64 `yaml:"initial_cash"`
		OrderQty    int64   `yaml:"order_qty"`
		Fee         float64 `yaml:"fee"`
	} `yaml:"backtest"`
	Report struct {
		VaRConfidence float64 `yaml:"var_confidence"`
	} `yaml:"report"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		Watch bool   `yaml:"watch"`
		Cron  string `yaml:"cron"`
	} `yaml:"schedule"`
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
	if v := os.Getenv("LUXOR_SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("LUXOR_CSV_PATH"); v != "" {
		cfg.DataSource.CSVPath = v
	}
	if v := os.Getenv("LUXOR_FAST_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Strategy.FastWindow = n
		}
	}
	if v := os.Getenv("LUXOR_SLOW_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Strategy.SlowWindow = n
		}
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "GOLD"
	}
	if cfg.DataSource.Days == 0 {
		cfg.DataSource.Days = 500
	}
	if cfg.DataSource.CacheTTLMinutes == 0 {
		cfg.DataSource.CacheTTLMinutes = 360
	}
	if cfg.Strategy.FastWindow == 0 {
		cfg.Strategy.FastWindow = 10
	}
	if cfg.Strategy.SlowWindow == 0 {
		cfg.Strategy.SlowWindow = 30
	}
	if cfg.Backtest.InitialCash == 0 {
		cfg.Backtest.InitialCash = 100000
	}
	if cfg.Backtest.OrderQty == 0 {
		cfg.Backtest.OrderQty = 100
	}
	if cfg.Backtest.Fee == 0 {
		cfg.Backtest.Fee = 10
	}
	if cfg.Report.VaRConfidence == 0 {
		cfg.Report.VaRConfidence = 0.95
	}
	if cfg.Schedule.Cron == "" {
		// daily after futures settlement
		cfg.Schedule.Cron = "0 0 18 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.DataSource.Symbol == "" {
		return fmt.Errorf("data_source.symbol is required")
	}
	if c.DataSource.Days < c.Strategy.SlowWindow {
		return fmt.Errorf("data_source.days (%d) must cover the slow window (%d)",
			c.DataSource.Days, c.Strategy.SlowWindow)
	}
	if c.Strategy.FastWindow <= 0 || c.Strategy.SlowWindow <= 0 {
		return fmt.Errorf("strategy windows must be positive")
	}
	if c.Backtest.InitialCash <= 0 {
		return fmt.Errorf("backtest.initial_cash must be positive")
	}
	if c.Backtest.OrderQty <= 0 {
		return fmt.Errorf("backtest.order_qty must be positive")
	}
	if c.Backtest.Fee < 0 {
		return fmt.Errorf("backtest.fee must not be negative")
	}
	if c.Report.VaRConfidence <= 0 || c.Report.VaRConfidence >= 1 {
		return fmt.Errorf("report.var_confidence must be in (0, 1)")
	}
	return nil
}
