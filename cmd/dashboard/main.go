package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StockBoard/internal/board"
	"StockBoard/internal/config"
	"StockBoard/internal/provider"
	"StockBoard/internal/recorder"
	"StockBoard/internal/scheduler"
	"StockBoard/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockBoard starting...")

	// Optional .env for local development
	_ = godotenv.Load()

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
	if cfg.DataSource.BaseURL != "" {
		fetcher = provider.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = provider.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init board
	ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
	b := board.New(fetcher, cfg.Watchlist, ttl)
	log.Printf("[INFO] watchlist: %d tickers, cache TTL %s", len(cfg.Watchlist), ttl)

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

	// Init refresh scheduler
	sched := scheduler.NewScheduler(b, rec)
	if cfg.Refresh.Enabled {
		if err := sched.Register(cfg.Refresh.Cron); err != nil {
			log.Fatalf("[FATAL] register refresh task: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	// Optional: warm the watchlist immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing watchlist now")
		go sched.RunNow()
	}

	// Init HTTP server
	srv := server.New(b, cfg.DefaultLookback())
	httpSrv := &http.Server{
		Addr:    cfg.Server.Listen,
		Handler: srv.Router(),
	}
	go func() {
		log.Printf("[INFO] listening on %s", cfg.Server.Listen)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Println("[INFO] StockBoard is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	log.Println("[INFO] StockBoard stopped")
}
