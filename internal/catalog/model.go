package catalog

import (
	"fmt"
	"sort"
)

// BoilerType is the heating system category a boiler belongs to.
type BoilerType string

const (
	BoilerCombi   BoilerType = "combi"
	BoilerSystem  BoilerType = "system"
	BoilerRegular BoilerType = "regular"
)

// Tier is one of the three product/price bands offered to customers.
type Tier string

const (
	TierBudget   Tier = "budget"
	TierMidRange Tier = "mid-range"
	TierPremium  Tier = "premium"
)

// Complexity grades how involved an installation is. It selects the labour
// cost row.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// BoilerTypes lists all boiler types the catalog must cover.
func BoilerTypes() []BoilerType {
	return []BoilerType{BoilerCombi, BoilerSystem, BoilerRegular}
}

// Tiers lists the product tiers in ascending price-band order.
func Tiers() []Tier {
	return []Tier{TierBudget, TierMidRange, TierPremium}
}

// BoilerEntry is a single catalog boiler. Supply prices are integer pence
// and the entry is never mutated at runtime.
type BoilerEntry struct {
	Make             string     `json:"make"`
	Model            string     `json:"model"`
	Type             BoilerType `json:"type"`
	Tier             Tier       `json:"tier"`
	OutputKw         float64    `json:"output_kw"`
	FlowRateLpm      float64    `json:"flow_rate_lpm"`
	WarrantyYears    int        `json:"warranty_years"`
	EfficiencyRating string     `json:"efficiency_rating"`
	SupplyPricePence int64      `json:"supply_price_pence"`
}

// SundrySet is the fixed set of consumables fitted with every installation.
type SundrySet struct {
	MagneticFilterPence int64 `json:"magnetic_filter_pence"`
	PowerFlushPence     int64 `json:"power_flush_pence"`
	ThermostatPence     int64 `json:"thermostat_pence"`
	ChemicalsPence      int64 `json:"chemicals_pence"`
}

// Total returns the combined sundry cost.
func (s SundrySet) Total() int64 {
	return s.MagneticFilterPence + s.PowerFlushPence + s.ThermostatPence + s.ChemicalsPence
}

// LabourTable maps boiler type and installation complexity to a labour
// price in pence.
type LabourTable map[BoilerType]map[Complexity]int64

// FlueExtensionFees are the flat fees per extension length bracket.
type FlueExtensionFees struct {
	Short  int64 `json:"short_pence"`  // 1-2m
	Medium int64 `json:"medium_pence"` // 3-4m
	Long   int64 `json:"long_pence"`   // 5m+
}

// ParkingFees are the flat fees charged when the customer has paid-only
// parking, tiered by carry distance.
type ParkingFees struct {
	Mid int64 `json:"mid_pence"` // 20-50m from the property
	Far int64 `json:"far_pence"` // over 50m
}

// LeadCost is the price an engineer pays to unlock a customer request of a
// given job type. Reference data only; the marketplace consuming it is
// external to this service.
type LeadCost struct {
	JobType    string `json:"job_type"`
	PricePence int64  `json:"price_pence"`
}

// LocationMultiplier scales lead prices for a postcode area prefix.
type LocationMultiplier struct {
	AreaPrefix string  `json:"area_prefix"`
	Multiplier float64 `json:"multiplier"`
}

// Catalog is the full immutable pricing reference data set. It is built once
// at process start and handed to the quote engine by reference; nothing in
// it is written after load.
type Catalog struct {
	Boilers            []BoilerEntry        `json:"boilers"`
	Sundries           SundrySet            `json:"sundries"`
	Labour             LabourTable          `json:"labour"`
	CylinderPrices     map[int]int64        `json:"cylinder_prices"` // litres -> pence
	FlueExtension      FlueExtensionFees    `json:"flue_extension"`
	Parking            ParkingFees          `json:"parking"`
	CondensatePump     int64                `json:"condensate_pump_pence"`
	BoilerRelocation   int64                `json:"boiler_relocation_pence"`
	LeadCosts          []LeadCost           `json:"lead_costs"`
	LocationMultiplier []LocationMultiplier `json:"location_multipliers"`
}

// BoilersOfType returns catalog entries of the given type, in stable order.
func (c *Catalog) BoilersOfType(t BoilerType) []BoilerEntry {
	var out []BoilerEntry
	for _, b := range c.Boilers {
		if b.Type == t {
			out = append(out, b)
		}
	}
	return out
}

// CylinderPrice returns the price for a cylinder capacity, snapping up to
// the next stocked size when the exact capacity is not priced.
func (c *Catalog) CylinderPrice(litres int) (int64, bool) {
	if p, ok := c.CylinderPrices[litres]; ok {
		return p, true
	}
	sizes := make([]int, 0, len(c.CylinderPrices))
	for l := range c.CylinderPrices {
		sizes = append(sizes, l)
	}
	sort.Ints(sizes)
	for _, l := range sizes {
		if l >= litres {
			return c.CylinderPrices[l], true
		}
	}
	if len(sizes) > 0 {
		return c.CylinderPrices[sizes[len(sizes)-1]], true
	}
	return 0, false
}

// LeadPrice returns the lead cost for a job type with the postcode-area
// multiplier applied, rounded half up to the nearest penny.
func (c *Catalog) LeadPrice(jobType, postcodeArea string) (int64, bool) {
	var base int64
	found := false
	for _, lc := range c.LeadCosts {
		if lc.JobType == jobType {
			base = lc.PricePence
			found = true
			break
		}
	}
	if !found {
		return 0, false
	}
	mult := 1.0
	for _, lm := range c.LocationMultiplier {
		if lm.AreaPrefix == postcodeArea {
			mult = lm.Multiplier
			break
		}
	}
	return int64(float64(base)*mult + 0.5), true
}

// Validate checks the catalog for data-completeness faults: a quote cannot
// be priced unless every boiler type has at least one entry and a labour row
// for every complexity grade. Returns nil when complete.
func (c *Catalog) Validate() error {
	for _, t := range BoilerTypes() {
		if len(c.BoilersOfType(t)) == 0 {
			return fmt.Errorf("catalog incomplete: no %s boilers", t)
		}
		row, ok := c.Labour[t]
		if !ok {
			return fmt.Errorf("catalog incomplete: no labour row for %s", t)
		}
		for _, cx := range []Complexity{ComplexitySimple, ComplexityMedium, ComplexityComplex} {
			if _, ok := row[cx]; !ok {
				return fmt.Errorf("catalog incomplete: no %s labour price for %s", cx, t)
			}
		}
	}
	if len(c.CylinderPrices) == 0 {
		return fmt.Errorf("catalog incomplete: no cylinder prices")
	}
	if c.Sundries.Total() <= 0 {
		return fmt.Errorf("catalog incomplete: sundry prices not set")
	}
	return nil
}
