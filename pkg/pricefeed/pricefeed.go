// Package pricefeed provides best-effort adapters for external commodity
// price feeds. Providers are configured through a YAML file and consulted in
// priority order; any provider failure degrades to "no data" rather than
// surfacing to callers.
package pricefeed

import "context"

// Provider fetches current commodity prices from one external feed. The
// returned map is keyed by commodity code (e.g. "CORN", "COCOA") in the
// feed's native quotation. An empty map is a valid outcome.
type Provider interface {
	// Name identifies the provider for logging.
	Name() string
	// Fetch performs a single best-effort retrieval. No retries.
	Fetch(ctx context.Context) (map[string]float64, error)
}

// Regional supplies local market prices keyed by crop name rather than
// commodity code. No implementation ships by default; deployments with a
// local market data source can register one.
type Regional interface {
	Name() string
	// FetchRegion returns crop name -> GHS price for the given region.
	FetchRegion(ctx context.Context, region string) (map[string]float64, error)
}
