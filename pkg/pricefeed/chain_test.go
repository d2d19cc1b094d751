package pricefeed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	pricefeed "agrilink-api/pkg/pricefeed"
)

type stubProvider struct {
	name   string
	prices map[string]float64
	err    error
	calls  int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Fetch(context.Context) (map[string]float64, error) {
	p.calls++
	return p.prices, p.err
}

func TestChainFirstProviderWithDataWins(t *testing.T) {
	first := &stubProvider{name: "first", prices: map[string]float64{"CORN": 430}}
	second := &stubProvider{name: "second", prices: map[string]float64{"CORN": 999}}
	chain := pricefeed.NewChain(first, second)

	prices := chain.Prices(context.Background())
	assert.Equal(t, 430.0, prices["CORN"])
	assert.Equal(t, 0, second.calls, "fallback must not run when the primary yields data")
}

func TestChainFallsBackOnEmptyResult(t *testing.T) {
	first := &stubProvider{name: "first", prices: map[string]float64{}}
	second := &stubProvider{name: "second", prices: map[string]float64{"COCOA": 2400}}
	chain := pricefeed.NewChain(first, second)

	prices := chain.Prices(context.Background())
	assert.Equal(t, 2400.0, prices["COCOA"])
}

func TestChainSwallowsProviderErrors(t *testing.T) {
	first := &stubProvider{name: "first", err: errors.New("quota exceeded")}
	second := &stubProvider{name: "second", prices: map[string]float64{"RICE": 17.2}}
	chain := pricefeed.NewChain(first, second)

	prices := chain.Prices(context.Background())
	assert.Equal(t, 17.2, prices["RICE"])
}

func TestChainNeverReturnsNil(t *testing.T) {
	failing := &stubProvider{name: "only", err: errors.New("down")}
	chain := pricefeed.NewChain(failing)

	prices := chain.Prices(context.Background())
	assert.NotNil(t, prices)
	assert.Empty(t, prices)

	var nilChain *pricefeed.Chain
	assert.NotNil(t, nilChain.Prices(context.Background()))
	assert.Equal(t, 0, nilChain.Len())
}
