package catalog

// Built-in reference data. Base prices are GHS per quote unit, realistic for
// Ghana markets; regional multipliers reflect urban-demand and
// production-area skew.

// Default returns the built-in catalog.
func Default() *Catalog {
	crops := map[string]CropInfo{
		// Grains and cereals
		"Maize":   {PrimaryUnit: "kg", AltUnits: []string{"bag", "ton", "crate"}, BasePrice: 8.50, CommodityCode: "CORN"},
		"Rice":    {PrimaryUnit: "kg", AltUnits: []string{"bag", "ton", "crate"}, BasePrice: 12.00, CommodityCode: "RICE"},
		"Millet":  {PrimaryUnit: "kg", AltUnits: []string{"bag", "ton"}},
		"Sorghum": {PrimaryUnit: "kg", AltUnits: []string{"bag", "ton"}},

		// Root crops
		"Cassava":      {PrimaryUnit: "kg", AltUnits: []string{"bag", "tuber", "bundle"}, BasePrice: 3.50, CommodityCode: "CASSVA"},
		"Yam":          {PrimaryUnit: "tuber", AltUnits: []string{"kg", "bag", "bundle"}, BasePrice: 15.00, UnitOverride: "tuber", CommodityCode: "YAM"},
		"Sweet Potato": {PrimaryUnit: "kg", AltUnits: []string{"bag", "tuber", "bundle"}},
		"Cocoyam":      {PrimaryUnit: "kg", AltUnits: []string{"bag", "tuber", "bundle"}},

		// Fruits
		"Plantain":  {PrimaryUnit: "bunch", AltUnits: []string{"kg", "finger", "hand"}, BasePrice: 5.00, UnitOverride: "bunch", CommodityCode: "PLANTAIN"},
		"Banana":    {PrimaryUnit: "bunch", AltUnits: []string{"kg", "finger", "hand"}},
		"Orange":    {PrimaryUnit: "kg", AltUnits: []string{"piece", "bag", "crate", "dozen"}},
		"Pineapple": {PrimaryUnit: "piece", AltUnits: []string{"kg", "dozen", "crate"}},
		"Mango":     {PrimaryUnit: "kg", AltUnits: []string{"piece", "bag", "crate", "dozen"}},

		// Vegetables
		"Tomatoes":    {PrimaryUnit: "kg", AltUnits: []string{"crate", "box", "basket", "dozen"}, BasePrice: 10.00, CommodityCode: "TOMATO"},
		"Onions":      {PrimaryUnit: "kg", AltUnits: []string{"bag", "bundle", "dozen"}, BasePrice: 8.00, CommodityCode: "ONION"},
		"Peppers":     {PrimaryUnit: "kg", AltUnits: []string{"bag", "basket", "dozen"}, BasePrice: 12.00, CommodityCode: "PEPPER"},
		"Okra":        {PrimaryUnit: "kg", AltUnits: []string{"bag", "basket", "bundle"}},
		"Garden Eggs": {PrimaryUnit: "kg", AltUnits: []string{"bag", "basket", "dozen"}},
		"Cabbage":     {PrimaryUnit: "piece", AltUnits: []string{"kg", "head"}},

		// Legumes
		"Beans":     {PrimaryUnit: "kg", AltUnits: []string{"bag", "ton"}},
		"Groundnut": {PrimaryUnit: "kg", AltUnits: []string{"bag", "basket"}},
		"Cowpea":    {PrimaryUnit: "kg", AltUnits: []string{"bag", "basket"}},

		// Cash crops
		"Cocoa":       {PrimaryUnit: "kg", AltUnits: []string{"bag", "ton"}, BasePrice: 25.00, CommodityCode: "COCOA"},
		"Palm Oil":    {PrimaryUnit: "liter", AltUnits: []string{"kg", "gallon", "bottle", "jerrycan"}, BasePrice: 18.00, UnitOverride: "liter", CommodityCode: "PALMOIL"},
		"Shea Butter": {PrimaryUnit: "kg", AltUnits: []string{"liter", "bottle", "bag"}},
	}

	traded := []string{
		"Maize", "Rice", "Cassava", "Yam", "Plantain",
		"Tomatoes", "Onions", "Peppers", "Cocoa", "Palm Oil",
	}

	regions := []string{
		"Greater Accra", "Ashanti Region", "Northern Region", "Central Region",
		"Western Region", "Eastern Region", "Volta Region", "Upper East Region",
		"Upper West Region", "Bono Region", "Ahafo Region", "Bono East Region",
		"North East Region", "Oti Region", "Savannah Region", "Western North Region",
	}

	multipliers := map[string]float64{
		"Greater Accra":        1.15, // urban demand
		"Ashanti Region":       1.05,
		"Northern Region":      0.90, // production area
		"Central Region":       1.00,
		"Western Region":       0.95,
		"Eastern Region":       1.00,
		"Volta Region":         0.95,
		"Upper East Region":    0.90,
		"Upper West Region":    0.90,
		"Bono Region":          0.95,
		"Ahafo Region":         0.95,
		"Bono East Region":     0.95,
		"North East Region":    0.90,
		"Oti Region":           0.95,
		"Savannah Region":      0.90,
		"Western North Region": 0.95,
	}

	return &Catalog{
		crops:       crops,
		traded:      traded,
		regions:     regions,
		multipliers: multipliers,
	}
}
