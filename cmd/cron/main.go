package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"agrilink-api/internal/cli"
	"agrilink-api/internal/config"
	"agrilink-api/internal/svc"
	"agrilink-api/pkg/catalog"
)

const (
	priceInterval   = 1 * time.Hour    // Price board refresh interval
	weatherInterval = 10 * time.Minute // Weather refresh interval
	opTimeout       = 30 * time.Second // Timeout for individual refresh passes
	shutdownTimeout = 10 * time.Second // Grace period for shutdown
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Println("[main] Starting refresh cron...")

	configPath := "etc/agrilink.yaml"
	appCfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("[main] Failed to load app config: %v", err)
	}

	log.Printf("[main] Configuration loaded:")
	for _, line := range cli.ConfigSummaryLines(appCfg) {
		log.Printf("  - %s", line)
	}
	log.Printf("  - Refresh intervals: prices=%s, weather=%s", priceInterval, weatherInterval)

	svcCtx := svc.NewServiceContext(*appCfg)
	if svcCtx.Engine == nil || svcCtx.Weather == nil {
		log.Fatal("[main] Postgres DSN is required for the refresh cron")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		runPriceRefresh(ctx, svcCtx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		runWeatherRefresh(ctx, svcCtx)
	}()

	log.Println("[main] Refresh cron started. Press Ctrl+C to stop.")

	<-ctx.Done()
	log.Println("[main] Shutdown signal received, stopping tasks...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("[main] All tasks stopped cleanly")
	case <-shutdownCtx.Done():
		log.Println("[main] Shutdown timeout exceeded, forcing exit")
	}

	log.Println("[main] Refresh cron stopped")
}

// runPriceRefresh keeps the market price board warm so user requests rarely
// pay the regeneration cost themselves. GetQuotes is a no-op while the
// stored board is still fresh.
func runPriceRefresh(ctx context.Context, svcCtx *svc.ServiceContext) {
	ticker := time.NewTicker(priceInterval)
	defer ticker.Stop()

	refreshPrices(ctx, svcCtx)

	for {
		select {
		case <-ctx.Done():
			log.Println("[prices] Stopping price refresh")
			return
		case <-ticker.C:
			refreshPrices(ctx, svcCtx)
		}
	}
}

func refreshPrices(parentCtx context.Context, svcCtx *svc.ServiceContext) {
	if parentCtx.Err() != nil {
		return
	}

	ctx, cancel := context.WithTimeout(parentCtx, opTimeout)
	defer cancel()

	start := time.Now()
	quotes, err := svcCtx.Engine.GetQuotes(ctx, catalog.AllRegions)
	elapsed := time.Since(start)

	if err != nil {
		log.Printf("[prices.refresh] [ERROR] %v, took %dms", err, elapsed.Milliseconds())
		return
	}
	log.Printf("[prices.refresh] [OK] %d quotes on the board, took %dms", len(quotes), elapsed.Milliseconds())
}

// runWeatherRefresh keeps a forecast warm for every region so the display
// never waits on generation.
func runWeatherRefresh(ctx context.Context, svcCtx *svc.ServiceContext) {
	ticker := time.NewTicker(weatherInterval)
	defer ticker.Stop()

	refreshWeather(ctx, svcCtx)

	for {
		select {
		case <-ctx.Done():
			log.Println("[weather] Stopping weather refresh")
			return
		case <-ticker.C:
			refreshWeather(ctx, svcCtx)
		}
	}
}

func refreshWeather(parentCtx context.Context, svcCtx *svc.ServiceContext) {
	if parentCtx.Err() != nil {
		return
	}

	for _, region := range svcCtx.Catalog.Regions() {
		ctx, cancel := context.WithTimeout(parentCtx, opTimeout)

		start := time.Now()
		forecast, err := svcCtx.Weather.Current(ctx, region)
		elapsed := time.Since(start)
		cancel()

		if err != nil {
			log.Printf("[weather.%s] [ERROR] %v, took %dms", region, err, elapsed.Milliseconds())
			continue
		}
		log.Printf("[weather.%s] [OK] %s %d°C %d%%, took %dms",
			region, forecast.Condition, forecast.TemperatureC, forecast.Humidity, elapsed.Milliseconds())
	}
}
