package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"agrilink-api/pkg/catalog"
	"agrilink-api/pkg/pricefeed"
	_ "agrilink-api/pkg/pricefeed/alphavantage"
	_ "agrilink-api/pkg/pricefeed/nasdaqdatalink"
)

// Diagnostic for the external feed setup: loads etc/pricefeed.yaml, reports
// which providers are usable, and fetches one round of commodity quotes.
// Run with: go run scripts/check_feed.go
func main() {
	cfg := pricefeed.MustLoad()

	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("Configured chain: %v\n", cfg.Chain)
	for name, p := range cfg.Providers {
		keyState := "api_key set"
		if p.APIKey == "" {
			keyState = "NO api_key (provider will be skipped)"
		}
		fmt.Printf("  %s: type=%s base_url=%s %s\n", name, p.Type, p.BaseURL, keyState)
	}
	fmt.Println("═══════════════════════════════════════════════════════════════")

	chain, err := cfg.BuildChain()
	if err != nil {
		fmt.Printf("build chain error: %v\n", err)
		os.Exit(1)
	}
	if chain.Len() == 0 {
		fmt.Println("No usable providers. Set ALPHA_VANTAGE_API_KEY or NASDAQ_DATA_LINK_API_KEY in env/.env.")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	prices := chain.Prices(ctx)
	if len(prices) == 0 {
		fmt.Println("Chain returned no prices; every provider failed or returned nothing.")
		os.Exit(1)
	}

	cat, err := catalog.Load("")
	if err != nil {
		fmt.Printf("load catalog error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nFeed prices (%d commodities):\n", len(prices))
	for _, crop := range cat.TradedCrops() {
		code, ok := cat.CommodityCode(crop)
		if !ok {
			continue
		}
		if usd, ok := prices[code]; ok {
			fmt.Printf("  %-12s %-8s %.2f USD (feed unit)\n", crop, code, usd)
		} else {
			fmt.Printf("  %-12s %-8s (no feed data)\n", crop, code)
		}
	}
}
