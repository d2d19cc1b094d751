package pricefeed

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
)

// Chain is a priority-ordered fallback sequence of feed providers. It is not
// a merge: the first provider that yields data wins.
type Chain struct {
	providers []Provider
}

// NewChain builds a chain over the given providers in priority order.
func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// Len reports the number of usable providers in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.providers)
}

// Prices returns commodity prices from the first provider that yields any,
// or an empty map when every provider fails or returns nothing. Provider
// errors are logged and swallowed; this method never fails.
func (c *Chain) Prices(ctx context.Context) map[string]float64 {
	if c == nil {
		return map[string]float64{}
	}
	for _, provider := range c.providers {
		prices, err := provider.Fetch(ctx)
		if err != nil {
			logx.WithContext(ctx).Errorf("pricefeed: provider %s fetch failed: %v", provider.Name(), err)
			continue
		}
		if len(prices) > 0 {
			return prices
		}
	}
	return map[string]float64{}
}
