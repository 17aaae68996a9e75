package catalog

// Default returns the built-in pricing catalog. Prices are trade supply
// prices in pence, reviewed against merchant price lists; deployments that
// need different numbers load a JSON catalog or a stored snapshot instead.
func Default() *Catalog {
	return &Catalog{
		Boilers: []BoilerEntry{
			// Combi
			{Make: "Baxi", Model: "800 Combi 824", Type: BoilerCombi, Tier: TierBudget, OutputKw: 24, FlowRateLpm: 10.2, WarrantyYears: 7, EfficiencyRating: "A", SupplyPricePence: 89500},
			{Make: "Baxi", Model: "800 Combi 830", Type: BoilerCombi, Tier: TierBudget, OutputKw: 30, FlowRateLpm: 12.2, WarrantyYears: 7, EfficiencyRating: "A", SupplyPricePence: 99500},
			{Make: "Main", Model: "Eco Compact 35", Type: BoilerCombi, Tier: TierBudget, OutputKw: 35, FlowRateLpm: 14.0, WarrantyYears: 5, EfficiencyRating: "A", SupplyPricePence: 104500},
			{Make: "Ideal", Model: "Logic Max Combi2 C24", Type: BoilerCombi, Tier: TierMidRange, OutputKw: 24, FlowRateLpm: 9.9, WarrantyYears: 10, EfficiencyRating: "A", SupplyPricePence: 114500},
			{Make: "Ideal", Model: "Logic Max Combi2 C30", Type: BoilerCombi, Tier: TierMidRange, OutputKw: 30, FlowRateLpm: 12.4, WarrantyYears: 10, EfficiencyRating: "A", SupplyPricePence: 124500},
			{Make: "Vaillant", Model: "ecoTEC pro 32", Type: BoilerCombi, Tier: TierMidRange, OutputKw: 32, FlowRateLpm: 13.0, WarrantyYears: 10, EfficiencyRating: "A", SupplyPricePence: 134500},
			{Make: "Ideal", Model: "Vogue Max Combi C36", Type: BoilerCombi, Tier: TierMidRange, OutputKw: 36, FlowRateLpm: 14.6, WarrantyYears: 12, EfficiencyRating: "A", SupplyPricePence: 144500},
			{Make: "Worcester Bosch", Model: "Greenstar 8000 Life 25", Type: BoilerCombi, Tier: TierPremium, OutputKw: 25, FlowRateLpm: 10.6, WarrantyYears: 12, EfficiencyRating: "A", SupplyPricePence: 154500},
			{Make: "Worcester Bosch", Model: "Greenstar 8000 Life 30", Type: BoilerCombi, Tier: TierPremium, OutputKw: 30, FlowRateLpm: 12.6, WarrantyYears: 12, EfficiencyRating: "A", SupplyPricePence: 169500},
			{Make: "Viessmann", Model: "Vitodens 200-W 32", Type: BoilerCombi, Tier: TierPremium, OutputKw: 32, FlowRateLpm: 13.5, WarrantyYears: 12, EfficiencyRating: "A+", SupplyPricePence: 179500},
			{Make: "Worcester Bosch", Model: "Greenstar 8000 Life 35", Type: BoilerCombi, Tier: TierPremium, OutputKw: 35, FlowRateLpm: 14.3, WarrantyYears: 12, EfficiencyRating: "A", SupplyPricePence: 189500},
			{Make: "Viessmann", Model: "Vitodens 200-W 42", Type: BoilerCombi, Tier: TierPremium, OutputKw: 42, FlowRateLpm: 17.2, WarrantyYears: 12, EfficiencyRating: "A+", SupplyPricePence: 214500},

			// System
			{Make: "Baxi", Model: "800 System 824", Type: BoilerSystem, Tier: TierBudget, OutputKw: 24, WarrantyYears: 7, EfficiencyRating: "A", SupplyPricePence: 94500},
			{Make: "Baxi", Model: "800 System 830", Type: BoilerSystem, Tier: TierBudget, OutputKw: 30, WarrantyYears: 7, EfficiencyRating: "A", SupplyPricePence: 104500},
			{Make: "Main", Model: "Eco Elite System 35", Type: BoilerSystem, Tier: TierBudget, OutputKw: 35, WarrantyYears: 5, EfficiencyRating: "A", SupplyPricePence: 112500},
			{Make: "Ideal", Model: "Logic Max System2 S24", Type: BoilerSystem, Tier: TierMidRange, OutputKw: 24, WarrantyYears: 10, EfficiencyRating: "A", SupplyPricePence: 119500},
			{Make: "Ideal", Model: "Logic Max System2 S30", Type: BoilerSystem, Tier: TierMidRange, OutputKw: 30, WarrantyYears: 10, EfficiencyRating: "A", SupplyPricePence: 129500},
			{Make: "Vaillant", Model: "ecoTEC pro System 32", Type: BoilerSystem, Tier: TierMidRange, OutputKw: 32, WarrantyYears: 10, EfficiencyRating: "A", SupplyPricePence: 139500},
			{Make: "Vaillant", Model: "ecoTEC plus System 637", Type: BoilerSystem, Tier: TierMidRange, OutputKw: 37, WarrantyYears: 10, EfficiencyRating: "A", SupplyPricePence: 154500},
			{Make: "Worcester Bosch", Model: "Greenstar 8000 Life System 30", Type: BoilerSystem, Tier: TierPremium, OutputKw: 30, WarrantyYears: 12, EfficiencyRating: "A", SupplyPricePence: 174500},
			{Make: "Viessmann", Model: "Vitodens 200-W System 35", Type: BoilerSystem, Tier: TierPremium, OutputKw: 35, WarrantyYears: 12, EfficiencyRating: "A+", SupplyPricePence: 189500},
			{Make: "Worcester Bosch", Model: "Greenstar 8000 Life System 42", Type: BoilerSystem, Tier: TierPremium, OutputKw: 42, WarrantyYears: 12, EfficiencyRating: "A", SupplyPricePence: 219500},

			// Regular
			{Make: "Baxi", Model: "800 Heat 824", Type: BoilerRegular, Tier: TierBudget, OutputKw: 24, WarrantyYears: 7, EfficiencyRating: "A", SupplyPricePence: 89500},
			{Make: "Baxi", Model: "800 Heat 830", Type: BoilerRegular, Tier: TierBudget, OutputKw: 30, WarrantyYears: 7, EfficiencyRating: "A", SupplyPricePence: 98500},
			{Make: "Ideal", Model: "Logic Max Heat2 H30", Type: BoilerRegular, Tier: TierMidRange, OutputKw: 30, WarrantyYears: 10, EfficiencyRating: "A", SupplyPricePence: 119500},
			{Make: "Vaillant", Model: "ecoTEC plus Heat 635", Type: BoilerRegular, Tier: TierMidRange, OutputKw: 35, WarrantyYears: 10, EfficiencyRating: "A", SupplyPricePence: 139500},
			{Make: "Worcester Bosch", Model: "Greenstar 8000 Life Regular 30", Type: BoilerRegular, Tier: TierPremium, OutputKw: 30, WarrantyYears: 12, EfficiencyRating: "A", SupplyPricePence: 164500},
			{Make: "Worcester Bosch", Model: "Greenstar 8000 Life Regular 40", Type: BoilerRegular, Tier: TierPremium, OutputKw: 40, WarrantyYears: 12, EfficiencyRating: "A", SupplyPricePence: 194500},
		},
		Sundries: SundrySet{
			MagneticFilterPence: 15000,
			PowerFlushPence:     45000,
			ThermostatPence:     20000,
			ChemicalsPence:      5000,
		},
		Labour: LabourTable{
			BoilerCombi: {
				ComplexitySimple:  120000,
				ComplexityMedium:  150000,
				ComplexityComplex: 185000,
			},
			BoilerSystem: {
				ComplexitySimple:  140000,
				ComplexityMedium:  175000,
				ComplexityComplex: 215000,
			},
			BoilerRegular: {
				ComplexitySimple:  160000,
				ComplexityMedium:  195000,
				ComplexityComplex: 240000,
			},
		},
		CylinderPrices: map[int]int64{
			120: 70000,
			150: 80000,
			170: 90000,
			210: 105000,
			250: 120000,
			300: 140000,
		},
		FlueExtension: FlueExtensionFees{
			Short:  20000,
			Medium: 35000,
			Long:   50000,
		},
		Parking: ParkingFees{
			Mid: 2500,
			Far: 4500,
		},
		CondensatePump:   35000,
		BoilerRelocation: 60000,
		LeadCosts: []LeadCost{
			{JobType: "boiler-installation", PricePence: 4000},
			{JobType: "boiler-repair", PricePence: 1500},
			{JobType: "boiler-service", PricePence: 800},
			{JobType: "cylinder-installation", PricePence: 2500},
		},
		LocationMultiplier: []LocationMultiplier{
			{AreaPrefix: "N", Multiplier: 1.15},
			{AreaPrefix: "E", Multiplier: 1.15},
			{AreaPrefix: "SE", Multiplier: 1.15},
			{AreaPrefix: "SW", Multiplier: 1.20},
			{AreaPrefix: "W", Multiplier: 1.20},
			{AreaPrefix: "NW", Multiplier: 1.15},
			{AreaPrefix: "EC", Multiplier: 1.25},
			{AreaPrefix: "WC", Multiplier: 1.25},
			{AreaPrefix: "M", Multiplier: 1.05},
			{AreaPrefix: "B", Multiplier: 1.05},
		},
	}
}
