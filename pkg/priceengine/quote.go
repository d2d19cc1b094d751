// Package priceengine derives the market price board: blended, regionally
// adjusted commodity quotes served from a staleness-gated durable store.
package priceengine

import (
	"context"
	"time"
)

// FreshFor is how long a stored quote set is served as-is before it must be
// regenerated.
const FreshFor = 24 * time.Hour

// Quote is one commodity price in one region at one point in time.
type Quote struct {
	Crop      string
	Price     float64 // GHS per Unit, rounded to 2 decimals, always > 0
	Unit      string
	Change    float64 // percent vs previous quote, rounded to 1 decimal
	Region    string
	UpdatedAt time.Time
}

// PriceKey builds the lookup key used for previous-price matching.
func PriceKey(crop, region string) string {
	return crop + "|" + region
}

// Store is the durable quote store. Implementations live in internal/repo.
type Store interface {
	// LatestQuotes returns stored quotes matching the region filter, newest
	// first. The AllRegions sentinel matches everything.
	LatestQuotes(ctx context.Context, region string) ([]Quote, error)
	// RecentPrices returns the most recent stored price per (crop, region)
	// pair, keyed by PriceKey, scanning at most limit rows.
	RecentPrices(ctx context.Context, limit int) (map[string]float64, error)
	// DeleteOlderThan removes quotes last updated before cutoff.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) error
	// InsertQuotes persists a freshly derived quote set.
	InsertQuotes(ctx context.Context, quotes []Quote) error
}

// FeedSource yields external commodity prices keyed by commodity code. It
// never fails; an empty map means no signal. *pricefeed.Chain satisfies it.
type FeedSource interface {
	Prices(ctx context.Context) map[string]float64
}

// RegionalSource yields local market prices keyed by crop for one region.
type RegionalSource interface {
	FetchRegion(ctx context.Context, region string) (map[string]float64, error)
}

// Notifier surfaces engine-level failures to the end user. Fire and forget.
type Notifier interface {
	Alert(ctx context.Context, message string)
}

// NopNotifier discards alerts.
type NopNotifier struct{}

// Alert implements Notifier.
func (NopNotifier) Alert(context.Context, string) {}
