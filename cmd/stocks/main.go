package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Yang0427/stocks/internal/analyzer"
	"github.com/Yang0427/stocks/internal/cache"
	"github.com/Yang0427/stocks/internal/collector"
	"github.com/Yang0427/stocks/internal/config"
	"github.com/Yang0427/stocks/internal/reporter"
	"github.com/Yang0427/stocks/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] stocks screener starting...")

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
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}

	// Init bar cache
	var barCache cache.Cache
	if cfg.Cache.SQLitePath != "" {
		sc, err := cache.NewSQLiteCache(cfg.Cache.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite cache failed, using noop: %v", err)
			barCache = cache.NewNoopCache()
		} else {
			barCache = sc
			defer sc.Close()
		}
	} else {
		barCache = cache.NewNoopCache()
	}
	fetcher = collector.NewCachedFetcher(fetcher, barCache, time.Duration(cfg.Cache.TTLHours)*time.Hour)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	an := analyzer.New(fetcher, cfg.LookbackDays, time.Duration(cfg.FetchDelayMS)*time.Millisecond)

	// Reports go to stdout unless Telegram is configured.
	var notify reporter.Notifier = reporter.NewConsoleNotifier(os.Stdout)
	var tn *reporter.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn = reporter.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		notify = tn
		log.Println("[INFO] Telegram delivery enabled")
	}

	// Default mode: one scan, print, exit.
	if os.Getenv("WATCH") != "true" {
		reports := an.AnalyzeAll(cfg.Tickers)
		text := reporter.FormatReport(reports)
		if err := notify.Notify(context.Background(), text); err != nil {
			log.Fatalf("[FATAL] deliver report: %v", err)
		}
		log.Printf("[INFO] analysis complete: %d/%d tickers reported", len(reports), len(cfg.Tickers))
		return
	}

	// Watch mode: keep running and rescan on the cron schedule.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, an, cfg.Tickers, notify)
	if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing scan now")
		go sched.RunScanNow()
	}

	log.Println("[INFO] watch mode running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] stopped")
}
