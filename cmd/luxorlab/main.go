package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"LuxorLab/internal/backtest"
	"LuxorLab/internal/collector"
	"LuxorLab/internal/config"
	"LuxorLab/internal/notifier"
	"LuxorLab/internal/recorder"
	"LuxorLab/internal/scheduler"
	"LuxorLab/internal/strategy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] LuxorLab starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.CSVPath != "" {
		fetcher = collector.NewCSVFetcher(cfg.DataSource.CSVPath)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector with optional disk cache
	var cache *collector.SeriesCache
	if cfg.DataSource.CacheFile != "" {
		ttl := time.Duration(cfg.DataSource.CacheTTLMinutes) * time.Minute
		cache = collector.NewSeriesCache(cfg.DataSource.CacheFile, ttl)
	}
	col := collector.NewCollector(fetcher, cfg.DataSource.Symbol, cfg.DataSource.Days, cache)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	luxor := strategy.Luxor{
		FastWindow: cfg.Strategy.FastWindow,
		SlowWindow: cfg.Strategy.SlowWindow,
	}
	runner := &scheduler.Runner{
		Collector: col,
		Strategy:  luxor,
		SimConfig: backtest.Config{
			InitialCash: decimal.NewFromFloat(cfg.Backtest.InitialCash),
			OrderQty:    cfg.Backtest.OrderQty,
			Fee:         decimal.NewFromFloat(cfg.Backtest.Fee),
		},
		VaRConfidence: cfg.Report.VaRConfidence,
		Recorder:      rec,
	}

	if !cfg.Schedule.Watch {
		// One-shot mode: run once, print the report, exit.
		res, err := runner.Run()
		if err != nil {
			log.Fatalf("[FATAL] run: %v", err)
		}
		fmt.Println(notifier.FormatMarketSummary(&res.Summary))
		fmt.Println(notifier.FormatBacktestReport(luxor.Name(), res))
		fmt.Println(notifier.FormatTradeLog(res.Trades))
		return
	}

	// Watch mode: re-run on a cron schedule and push summaries.
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, runner, tn)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing now")
		go sched.RunNow()
	}

	log.Println("[INFO] LuxorLab is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] LuxorLab stopped")
}
