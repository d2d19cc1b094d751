// Package catalog holds the immutable crop and region reference data used to
// derive market prices: measurement units, local base prices, commodity feed
// codes and regional price multipliers. A Catalog is built once at startup
// and shared read-only.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// AllRegions is the sentinel region filter meaning "no filter". It is a
	// query value only and never stored on a quote.
	AllRegions = "all"

	// DefaultUnit is the fallback measurement unit for unknown crops.
	DefaultUnit = "kg"
)

// genericUnits is the unit list offered for crops missing from the catalog.
var genericUnits = []string{"kg", "bag", "ton"}

// CropInfo describes one crop's units and pricing anchors.
type CropInfo struct {
	PrimaryUnit string
	AltUnits    []string
	// BasePrice is the local anchor price in GHS per quote unit. Zero means
	// the crop is not quoted on the market board.
	BasePrice float64
	// UnitOverride forces a quote unit different from PrimaryUnit.
	UnitOverride string
	// CommodityCode maps the crop to an external futures feed symbol.
	CommodityCode string
}

// Catalog is the immutable reference data set.
type Catalog struct {
	crops       map[string]CropInfo
	traded      []string
	regions     []string
	multipliers map[string]float64
}

// Overlay is the optional YAML tuning file applied on top of the built-in
// data, letting deployments adjust anchors without a rebuild.
type Overlay struct {
	BasePrices  map[string]float64 `yaml:"base_prices"`
	Multipliers map[string]float64 `yaml:"multipliers"`
}

// Load builds the catalog, applying the overlay file at path when it exists.
// An empty or missing path yields the built-in catalog.
func Load(path string) (*Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("read catalog overlay %s: %w", path, err)
	}
	var overlay Overlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("unmarshal catalog overlay %s: %w", path, err)
	}
	c.apply(overlay)
	return c, nil
}

func (c *Catalog) apply(overlay Overlay) {
	for crop, price := range overlay.BasePrices {
		if price <= 0 {
			continue
		}
		info, ok := c.crops[crop]
		if !ok {
			continue
		}
		info.BasePrice = price
		c.crops[crop] = info
	}
	for region, mult := range overlay.Multipliers {
		if mult <= 0 {
			continue
		}
		if _, ok := c.multipliers[region]; ok {
			c.multipliers[region] = mult
		}
	}
}

// PrimaryUnit returns the crop's primary measurement unit, falling back to
// DefaultUnit for unknown crops. Total function, never fails.
func (c *Catalog) PrimaryUnit(crop string) string {
	if info, ok := c.crops[crop]; ok && info.PrimaryUnit != "" {
		return info.PrimaryUnit
	}
	return DefaultUnit
}

// Units returns the crop's units ordered primary first. Unknown crops get
// the generic list.
func (c *Catalog) Units(crop string) []string {
	info, ok := c.crops[crop]
	if !ok {
		out := make([]string, len(genericUnits))
		copy(out, genericUnits)
		return out
	}
	out := make([]string, 0, 1+len(info.AltUnits))
	out = append(out, info.PrimaryUnit)
	out = append(out, info.AltUnits...)
	return out
}

// QuoteUnit returns the unit market quotes use for the crop: the per-crop
// override when present, otherwise the primary unit.
func (c *Catalog) QuoteUnit(crop string) string {
	if info, ok := c.crops[crop]; ok && info.UnitOverride != "" {
		return info.UnitOverride
	}
	return c.PrimaryUnit(crop)
}

// BasePrice returns the local anchor price for a traded crop.
func (c *Catalog) BasePrice(crop string) (float64, bool) {
	info, ok := c.crops[crop]
	if !ok || info.BasePrice <= 0 {
		return 0, false
	}
	return info.BasePrice, true
}

// CommodityCode returns the external feed symbol for the crop.
func (c *Catalog) CommodityCode(crop string) (string, bool) {
	info, ok := c.crops[crop]
	if !ok || info.CommodityCode == "" {
		return "", false
	}
	return info.CommodityCode, true
}

// Multiplier returns the region's price adjustment factor, 1.0 when the
// region is unknown.
func (c *Catalog) Multiplier(region string) float64 {
	if m, ok := c.multipliers[region]; ok {
		return m
	}
	return 1.0
}

// TradedCrops returns the crops quoted on the market board, in catalog order.
func (c *Catalog) TradedCrops() []string {
	out := make([]string, len(c.traded))
	copy(out, c.traded)
	return out
}

// Regions returns all administrative regions in catalog order.
func (c *Catalog) Regions() []string {
	out := make([]string, len(c.regions))
	copy(out, c.regions)
	return out
}

// HasRegion reports whether region is a known administrative region.
func (c *Catalog) HasRegion(region string) bool {
	_, ok := c.multipliers[region]
	return ok
}
