package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	catalog "agrilink-api/pkg/catalog"
)

func TestDefaultCatalogShape(t *testing.T) {
	c, err := catalog.Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got := len(c.Regions()); got != 16 {
		t.Fatalf("expected 16 regions, got %d", got)
	}
	if got := len(c.TradedCrops()); got != 10 {
		t.Fatalf("expected 10 traded crops, got %d", got)
	}
	for _, crop := range c.TradedCrops() {
		price, ok := c.BasePrice(crop)
		if !ok || price <= 0 {
			t.Fatalf("traded crop %s has no positive base price", crop)
		}
		if c.QuoteUnit(crop) == "" {
			t.Fatalf("traded crop %s has empty quote unit", crop)
		}
	}
}

func TestUnitsFallBackForUnknownCrop(t *testing.T) {
	c, err := catalog.Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got := c.PrimaryUnit("Dragonfruit"); got != catalog.DefaultUnit {
		t.Fatalf("unknown crop primary unit = %s, want %s", got, catalog.DefaultUnit)
	}
	units := c.Units("Dragonfruit")
	if len(units) != 3 || units[0] != "kg" {
		t.Fatalf("unknown crop units = %v", units)
	}
}

func TestUnitsPrimaryFirstNoDuplicates(t *testing.T) {
	c, err := catalog.Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	units := c.Units("Maize")
	if len(units) == 0 || units[0] != c.PrimaryUnit("Maize") {
		t.Fatalf("primary unit not first: %v", units)
	}
	seen := map[string]bool{}
	for _, u := range units {
		if seen[u] {
			t.Fatalf("duplicate unit %s in %v", u, units)
		}
		seen[u] = true
	}
}

func TestMultiplierDefaultsToOne(t *testing.T) {
	c, err := catalog.Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got := c.Multiplier("Atlantis"); got != 1.0 {
		t.Fatalf("unknown region multiplier = %v, want 1.0", got)
	}
	if got := c.Multiplier("Greater Accra"); got != 1.15 {
		t.Fatalf("Greater Accra multiplier = %v, want 1.15", got)
	}
}

func TestOverlayAdjustsAnchors(t *testing.T) {
	dir := t.TempDir()
	overlayYAML := `
base_prices:
  Maize: 9.25
  Dragonfruit: 4.00
multipliers:
  Northern: 0.85
  Atlantis: 2.00
`
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte(overlayYAML), 0o600); err != nil {
		t.Fatalf("write overlay: %v", err)
	}

	c, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	price, ok := c.BasePrice("Maize")
	if !ok || price != 9.25 {
		t.Fatalf("Maize base price = %v, want 9.25", price)
	}
	// Unknown crops and regions in the overlay are ignored.
	if _, ok := c.BasePrice("Dragonfruit"); ok {
		t.Fatal("overlay should not invent crops")
	}
	if got := c.Multiplier("Northern"); got != 0.85 {
		t.Fatalf("Northern multiplier = %v, want 0.85", got)
	}
	if got := c.Multiplier("Atlantis"); got != 1.0 {
		t.Fatalf("overlay should not invent regions, got %v", got)
	}
}

func TestMissingOverlayFileIsFine(t *testing.T) {
	c, err := catalog.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(c.Regions()) == 0 {
		t.Fatal("expected built-in regions")
	}
}

func TestHasRegionExcludesSentinel(t *testing.T) {
	c, err := catalog.Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if c.HasRegion(catalog.AllRegions) {
		t.Fatal("sentinel must not be a real region")
	}
	if !c.HasRegion("Ashanti") {
		t.Fatal("Ashanti should exist")
	}
}
