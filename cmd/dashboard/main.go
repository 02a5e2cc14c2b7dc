package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"MarketWatch/internal/config"
	"MarketWatch/internal/dashboard"
	"MarketWatch/internal/marketdata"
	"MarketWatch/internal/model"
	"MarketWatch/internal/provider"
	"MarketWatch/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] MarketWatch starting...")

	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

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
	var fetcher provider.Fetcher
	if cfg.DataSource.Kind == "mock" {
		fetcher = &provider.MockFetcher{}
	} else {
		fetcher = provider.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init cache-guarded market data service
	cache := marketdata.NewCache(time.Duration(cfg.Cache.TTLSeconds)*time.Second, nil)
	market := marketdata.NewService(fetcher, cache)

	// Init dashboard
	dash := dashboard.New(market, cfg.Catalog, model.Period(cfg.Dashboard.Period))

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, dash, market, os.Stdout)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// First render without waiting for the schedule
	sched.RunNow()

	log.Println("[INFO] MarketWatch is running. Press Ctrl+C to stop.")

	// SIGHUP forces a refresh; SIGINT/SIGTERM shut down.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	for sig := range sigCh {
		if sig == syscall.SIGHUP {
			log.Println("[INFO] SIGHUP received, refreshing market data")
			go sched.Refresh()
			continue
		}
		break
	}

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] MarketWatch stopped")
}
