package priceengine

import (
	"math"

	"agrilink-api/pkg/catalog"
)

// Blending and conversion constants. Weights favour the external signal
// while a stable local anchor damps its volatility; when feeds return
// nothing the anchor carries the full weight.
const (
	feedWeight     = 0.7
	anchorWeight   = 0.3
	regionalWeight = 0.5

	usdToGHS = 12.5 // approximate USD -> GHS rate

	kgPerBushel    = 25.4
	kgPerCwt       = 45.36
	kgPerMetricTon = 1000.0

	jitterSpan = 0.20 // multiplicative jitter drawn from [0.90, 1.10]
)

// Blender derives one displayed price from the static anchors, external
// feed signals and regional adjustments.
type Blender struct {
	catalog *catalog.Catalog
	rng     Rand
}

// NewBlender builds a blender over the given catalog and randomness source.
func NewBlender(cat *catalog.Catalog, rng Rand) *Blender {
	if rng == nil {
		rng = NewRand()
	}
	return &Blender{catalog: cat, rng: rng}
}

// Derive computes the quote for a crop in a region. feed maps commodity code
// to the external futures price, regional maps crop to a local GHS price,
// prev maps PriceKey to the most recent stored price. Crops without a base
// price are skipped (ok=false), never an error.
func (b *Blender) Derive(crop, region string, feed, regional, prev map[string]float64) (Quote, bool) {
	base, ok := b.catalog.BasePrice(crop)
	if !ok {
		return Quote{}, false
	}

	price := base
	if code, ok := b.catalog.CommodityCode(crop); ok {
		if raw, ok := feed[code]; ok && raw > 0 {
			if converted, ok := convertToLocal(code, raw); ok {
				price = feedWeight*converted + anchorWeight*base
			}
		}
	}

	if local, ok := regional[crop]; ok && local > 0 {
		price = regionalWeight*local + regionalWeight*price
	}

	price *= b.catalog.Multiplier(region)
	price *= 1 + (b.rng.Float64()*jitterSpan - jitterSpan/2)
	price = round2(price)

	change := b.placeholderChange()
	if old, ok := prev[PriceKey(crop, region)]; ok && old > 0 {
		change = round1((price - old) / old * 100)
	}

	return Quote{
		Crop:   crop,
		Price:  price,
		Unit:   b.catalog.QuoteUnit(crop),
		Change: change,
		Region: region,
	}, true
}

// convertToLocal converts a futures quotation to GHS per kg. Only the three
// commodities with a known quotation basis can be converted.
func convertToLocal(code string, usd float64) (float64, bool) {
	switch code {
	case "CORN": // cents per bushel
		return (usd / 100) * usdToGHS / kgPerBushel, true
	case "RICE": // cents per hundredweight
		return (usd / 100) * usdToGHS / kgPerCwt, true
	case "COCOA": // USD per metric ton
		return usd * usdToGHS / kgPerMetricTon, true
	default:
		return 0, false
	}
}

// placeholderChange draws a change value in [-2.0, +2.0] for pairs with no
// stored history.
func (b *Blender) placeholderChange() float64 {
	return round1(b.rng.Float64()*4 - 2)
}

// roundEps lifts scaled values sitting a few ulps below a half step (e.g.
// 8.50*1.15*100 = 977.4999...) onto the half so they round away from zero.
const roundEps = 1e-9

func round2(v float64) float64 {
	return math.Round(v*100+math.Copysign(roundEps, v)) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10+math.Copysign(roundEps, v)) / 10
}
