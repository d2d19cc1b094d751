package priceengine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrilink-api/pkg/catalog"
)

// fixedRand pins every random draw so derived prices are exact.
type fixedRand struct {
	f float64
}

func (r fixedRand) Float64() float64            { return r.f }
func (r fixedRand) Intn(n int) int              { return 0 }
func (r fixedRand) Shuffle(int, func(int, int)) {}

func mustCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load("")
	require.NoError(t, err)
	return c
}

// Float64()=0.5 makes the jitter multiplier exactly 1.0.
const neutralJitter = 0.5

func TestDeriveAnchorTimesMultiplier(t *testing.T) {
	b := NewBlender(mustCatalog(t), fixedRand{f: neutralJitter})

	// No feed signal: Maize 8.50 anchor x 1.15 Greater Accra = 9.775 -> 9.78.
	q, ok := b.Derive("Maize", "Greater Accra", nil, nil, nil)
	require.True(t, ok)
	assert.Equal(t, 9.78, q.Price)
	assert.Equal(t, "Maize", q.Crop)
	assert.Equal(t, "Greater Accra", q.Region)
	assert.NotEmpty(t, q.Unit)
}

func TestDeriveBlendsConvertedFeed(t *testing.T) {
	b := NewBlender(mustCatalog(t), fixedRand{f: neutralJitter})

	// Pick a feed value that converts to exactly 20 GHS/kg for CORN:
	// (usd/100) * 12.5 / 25.4 = 20  =>  usd = 4064.
	feed := map[string]float64{"CORN": 4064}
	q, ok := b.Derive("Maize", "Central Region", feed, nil, nil)
	require.True(t, ok)

	// 0.7*20 + 0.3*8.50 = 16.55, Central Region multiplier 1.00.
	assert.Equal(t, 16.55, q.Price)
}

func TestDeriveRegionalFiftyFifty(t *testing.T) {
	b := NewBlender(mustCatalog(t), fixedRand{f: neutralJitter})

	regional := map[string]float64{"Maize": 12.00}
	q, ok := b.Derive("Maize", "Central Region", nil, regional, nil)
	require.True(t, ok)

	// 0.5*12.00 + 0.5*8.50 = 10.25.
	assert.Equal(t, 10.25, q.Price)
}

func TestDeriveChangeAgainstPrevious(t *testing.T) {
	b := NewBlender(mustCatalog(t), fixedRand{f: neutralJitter})

	prev := map[string]float64{PriceKey("Maize", "Central Region"): 8.00}
	q, ok := b.Derive("Maize", "Central Region", nil, nil, prev)
	require.True(t, ok)

	// (8.50 - 8.00) / 8.00 * 100 = 6.25 -> 6.3 at one decimal.
	assert.Equal(t, 6.3, q.Change)
}

func TestDerivePlaceholderChangeRange(t *testing.T) {
	c := mustCatalog(t)

	for _, f := range []float64{0, 0.25, 0.5, 0.75, 0.999} {
		b := NewBlender(c, fixedRand{f: f})
		q, ok := b.Derive("Maize", "Central Region", nil, nil, nil)
		require.True(t, ok)
		assert.GreaterOrEqual(t, q.Change, -2.0)
		assert.LessOrEqual(t, q.Change, 2.0)
	}
}

func TestDeriveSkipsUnknownCrop(t *testing.T) {
	b := NewBlender(mustCatalog(t), fixedRand{f: neutralJitter})

	_, ok := b.Derive("Dragonfruit", "Central Region", nil, nil, nil)
	assert.False(t, ok)
}

func TestDeriveJitterStaysInBand(t *testing.T) {
	c := mustCatalog(t)

	// 8.50 anchor, multiplier 1.0: jitter bounds are 7.65 and 9.35.
	for _, f := range []float64{0, 1} {
		b := NewBlender(c, fixedRand{f: f})
		q, ok := b.Derive("Maize", "Central Region", nil, nil, nil)
		require.True(t, ok)
		assert.GreaterOrEqual(t, q.Price, 8.50*0.90-1e-9)
		assert.LessOrEqual(t, q.Price, 8.50*1.10+1e-9)
	}
}

func TestDeriveRoundsToTwoDecimals(t *testing.T) {
	b := NewBlender(mustCatalog(t), NewSeededRand(42))

	for i := 0; i < 50; i++ {
		q, ok := b.Derive("Cassava", "Ashanti Region", nil, nil, nil)
		require.True(t, ok)
		scaled := q.Price * 100
		assert.InDelta(t, math.Round(scaled), scaled, 1e-6)
		assert.Greater(t, q.Price, 0.0)
	}
}

func TestRoundingLandsHalfStepsAwayFromZero(t *testing.T) {
	// 8.50*1.15 is 9.774999... in float64; the scaled value must still
	// round to 9.78, and symmetrically for negative inputs.
	assert.Equal(t, 9.78, round2(8.50*1.15))
	assert.Equal(t, -9.78, round2(-8.50*1.15))
	assert.Equal(t, 6.3, round1(0.50/8.00*100))
	assert.Equal(t, -6.3, round1(-0.50/8.00*100))
}

func TestConvertToLocalBases(t *testing.T) {
	tests := []struct {
		code string
		usd  float64
		want float64
	}{
		{"CORN", 4064, 20},   // cents/bushel
		{"RICE", 3628.8, 10}, // cents/cwt
		{"COCOA", 1600, 20},  // USD/ton
	}
	for _, tc := range tests {
		got, ok := convertToLocal(tc.code, tc.usd)
		require.True(t, ok, tc.code)
		assert.InDelta(t, tc.want, got, 1e-9, tc.code)
	}

	_, ok := convertToLocal("WHEAT", 100)
	assert.False(t, ok)
}
