package priceengine

import (
	"context"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"agrilink-api/pkg/catalog"
)

const recentPriceScan = 100

// Engine is the public entry point for the market price board. It serves
// stored quotes while they are fresh and regenerates them from blended
// sources once stale.
//
// Two concurrent invocations that both observe a stale board will both
// regenerate and insert overlapping rows; the store keeps history and
// "current" is defined by recency, so this duplicate-write race is accepted
// rather than locked away.
type Engine struct {
	store    Store
	catalog  *catalog.Catalog
	blender  *Blender
	feed     FeedSource
	regional RegionalSource
	notifier Notifier
	rng      Rand
	freshFor time.Duration
	nowFn    func() time.Time
}

// Config enumerates engine dependencies. Store and Catalog are required;
// everything else has a working default.
type Config struct {
	Store    Store
	Catalog  *catalog.Catalog
	Feed     FeedSource
	Regional RegionalSource
	Notifier Notifier
	Rand     Rand
	// FreshFor overrides the staleness threshold; zero means FreshFor.
	FreshFor time.Duration
}

// New wires a price engine.
func New(cfg Config) (*Engine, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("priceengine: missing store")
	}
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("priceengine: missing catalog")
	}
	rng := cfg.Rand
	if rng == nil {
		rng = NewRand()
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}
	freshFor := cfg.FreshFor
	if freshFor <= 0 {
		freshFor = FreshFor
	}
	return &Engine{
		store:    cfg.Store,
		catalog:  cfg.Catalog,
		blender:  NewBlender(cfg.Catalog, rng),
		feed:     cfg.Feed,
		regional: cfg.Regional,
		notifier: notifier,
		rng:      rng,
		freshFor: freshFor,
		nowFn:    time.Now,
	}, nil
}

// GetQuotes returns the current quote set for the region filter,
// regenerating it first when the stored set is stale or absent. An empty
// region is treated as the catalog.AllRegions sentinel. Store failures alert
// the user channel and surface as errors with no partial rows.
func (e *Engine) GetQuotes(ctx context.Context, region string) ([]Quote, error) {
	if region == "" {
		region = catalog.AllRegions
	}

	rows, err := e.store.LatestQuotes(ctx, region)
	if err != nil {
		e.notifier.Alert(ctx, "Could not update market prices")
		return nil, fmt.Errorf("priceengine: load quotes: %w", err)
	}
	if len(rows) > 0 && e.nowFn().Sub(rows[0].UpdatedAt) < e.freshFor {
		return rows, nil
	}

	return e.regenerate(ctx, region)
}

// regenerate derives a fresh quote set for every region in scope, replaces
// expired rows in the store and returns the rows matching the filter.
func (e *Engine) regenerate(ctx context.Context, region string) ([]Quote, error) {
	now := e.nowFn()

	var feedPrices map[string]float64
	if e.feed != nil {
		feedPrices = e.feed.Prices(ctx)
	}

	prev, err := e.store.RecentPrices(ctx, recentPriceScan)
	if err != nil {
		// History only feeds the change column; regeneration proceeds with
		// placeholder deltas.
		logx.WithContext(ctx).Errorf("priceengine: load recent prices: %v", err)
		prev = map[string]float64{}
	}

	quotes := make([]Quote, 0, 4*len(e.catalog.Regions()))
	for _, r := range e.catalog.Regions() {
		if region != catalog.AllRegions && r != region {
			continue
		}
		regionalPrices := e.regionalPrices(ctx, r)
		for _, crop := range e.sampleCrops() {
			quote, ok := e.blender.Derive(crop, r, feedPrices, regionalPrices, prev)
			if !ok {
				continue
			}
			quote.UpdatedAt = now
			quotes = append(quotes, quote)
		}
	}

	if err := e.store.DeleteOlderThan(ctx, now.Add(-e.freshFor)); err != nil {
		// Stale rows lingering must not block fresh data.
		logx.WithContext(ctx).Errorf("priceengine: delete expired quotes: %v", err)
	}
	if err := e.store.InsertQuotes(ctx, quotes); err != nil {
		e.notifier.Alert(ctx, "Failed to update market prices")
		return nil, fmt.Errorf("priceengine: insert quotes: %w", err)
	}
	return quotes, nil
}

// sampleCrops picks 2-4 distinct traded crops at random.
func (e *Engine) sampleCrops() []string {
	crops := e.catalog.TradedCrops()
	e.rng.Shuffle(len(crops), func(i, j int) {
		crops[i], crops[j] = crops[j], crops[i]
	})
	n := e.rng.Intn(3) + 2
	if n > len(crops) {
		n = len(crops)
	}
	return crops[:n]
}

func (e *Engine) regionalPrices(ctx context.Context, region string) map[string]float64 {
	if e.regional == nil {
		return nil
	}
	prices, err := e.regional.FetchRegion(ctx, region)
	if err != nil {
		logx.WithContext(ctx).Errorf("priceengine: regional prices for %s: %v", region, err)
		return nil
	}
	return prices
}
