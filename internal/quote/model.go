package quote

import (
	"github.com/bher20/boilerquote/internal/catalog"
)

// PropertyType distinguishes houses from flats; flats add floor access to
// the complexity score.
type PropertyType string

const (
	PropertyHouse PropertyType = "house"
	PropertyFlat  PropertyType = "flat"
)

// CurrentBoiler is the system already installed at the property.
type CurrentBoiler string

const (
	CurrentCombi    CurrentBoiler = "combi"
	CurrentSystem   CurrentBoiler = "system"
	CurrentRegular  CurrentBoiler = "regular"
	CurrentElectric CurrentBoiler = "electric"
	CurrentUnknown  CurrentBoiler = "unknown"
)

// FlueLocation is where the exhaust flue exits the building.
type FlueLocation string

const (
	FlueExternalWall FlueLocation = "external-wall"
	FlueThroughRoof  FlueLocation = "through-roof"
)

// FlueExtension is the length bracket of flue extension required.
type FlueExtension string

const (
	ExtensionNone   FlueExtension = "none"
	ExtensionShort  FlueExtension = "1-2m"
	ExtensionMedium FlueExtension = "3-4m"
	ExtensionLong   FlueExtension = "5m+"
)

// ParkingSituation is what parking the engineer can expect at the property.
type ParkingSituation string

const (
	ParkingFree   ParkingSituation = "free"
	ParkingPermit ParkingSituation = "permit"
	ParkingPaid   ParkingSituation = "paid"
	ParkingNone   ParkingSituation = "none"
)

// ParkingDistance is the carry distance bracket from parking to the
// property.
type ParkingDistance string

const (
	DistanceNear ParkingDistance = "<20m"
	DistanceMid  ParkingDistance = "20-50m"
	DistanceFar  ParkingDistance = ">50m"
)

// PropertyProfile is the cleaned, typed questionnaire result the engine
// operates on. Free-form wizard labels are converted by ParseProfile before
// anything here is read; the engine itself performs no input-shape
// validation.
type PropertyProfile struct {
	PropertyType    PropertyType     `json:"property_type"`
	Bedrooms        int              `json:"bedrooms"`
	Bathrooms       int              `json:"bathrooms"`
	Occupants       int              `json:"occupants"`
	CurrentBoiler   CurrentBoiler    `json:"current_boiler"`
	FlueLocation    FlueLocation     `json:"flue_location"`
	FlueExtension   FlueExtension    `json:"flue_extension"`
	Parking         ParkingSituation `json:"parking"`
	ParkingDistance ParkingDistance  `json:"parking_distance"`
	DrainNearby     bool             `json:"drain_nearby"`
	MoveBoiler      bool             `json:"move_boiler"`
	FloorLevel      int              `json:"floor_level,omitempty"` // flats only
	HasLift         bool             `json:"has_lift,omitempty"`    // flats only
	Postcode        string           `json:"postcode,omitempty"`
}

// SundryBreakdown itemizes the fixed consumables in a quote.
type SundryBreakdown struct {
	MagneticFilter int64 `json:"magnetic_filter"`
	PowerFlush     int64 `json:"power_flush"`
	Thermostat     int64 `json:"thermostat"`
	Chemicals      int64 `json:"chemicals"`
}

// PriceBreakdown itemizes one tier's installation price. Every field is
// integer pence; totals hold exactly (Total = Subtotal + VAT) and nothing
// here is ever negative.
type PriceBreakdown struct {
	BoilerCost       int64           `json:"boiler_cost"`
	CylinderCost     int64           `json:"cylinder_cost,omitempty"`
	LabourCost       int64           `json:"labour_cost"`
	FlueExtension    int64           `json:"flue_extension_cost"`
	Sundries         SundryBreakdown `json:"sundries"`
	ParkingCost      int64           `json:"parking_cost"`
	CondensatePump   int64           `json:"condensate_pump_cost"`
	BoilerRelocation int64           `json:"boiler_relocation_cost"`
	Subtotal         int64           `json:"subtotal"`
	VATAmount        int64           `json:"vat_amount"`
	TotalPrice       int64           `json:"total_price"`
}

// BoilerRecommendation pairs a catalog boiler with its full price breakdown
// for one tier.
type BoilerRecommendation struct {
	Tier          catalog.Tier        `json:"tier"`
	Boiler        catalog.BoilerEntry `json:"boiler"`
	Breakdown     PriceBreakdown      `json:"breakdown"`
	IsRecommended bool                `json:"is_recommended"`
}

// ConversionScenario is a curated, field-validated property configuration.
// A match grounds the explanation text; it never overrides the rules
// engine's own numbers.
type ConversionScenario struct {
	ID           string             `json:"id"`
	Bedrooms     int                `json:"bedrooms"`
	Bathrooms    int                `json:"bathrooms"`
	Occupants    int                `json:"occupants"`
	PropertyType PropertyType       `json:"property_type,omitempty"` // empty = any
	BoilerType   catalog.BoilerType `json:"boiler_type"`
	BoilerSizeKw int                `json:"boiler_size_kw"`
	CylinderSize int                `json:"cylinder_size,omitempty"` // litres, 0 = none
	Description  string             `json:"description"`
}

// QuoteResult is the full engine output: computed fresh per request, never
// persisted by the engine itself, and byte-identical for identical inputs
// against an unchanged catalog.
type QuoteResult struct {
	RecommendedBoilerType  catalog.BoilerType     `json:"recommended_boiler_type"`
	RecommendedBoilerSize  int                    `json:"recommended_boiler_size"`
	CylinderSize           *int                   `json:"cylinder_size,omitempty"`
	InstallationComplexity catalog.Complexity     `json:"installation_complexity"`
	Quotes                 []BoilerRecommendation `json:"quotes"` // budget, mid-range, premium
	Explanation            string                 `json:"explanation"`
	ScenarioMatch          *ConversionScenario    `json:"scenario_match,omitempty"`
}

// RecommendedTier is the tier flagged isRecommended on every quote. A fixed
// business decision, not computed.
const RecommendedTier = catalog.TierMidRange

// VAT is charged at a flat 20% on the installation subtotal.
const VATRateBps = 2000

// vatHalfUp computes VAT in pence, rounding half up. The same rule is used
// everywhere money is rounded in this service.
func vatHalfUp(subtotal int64) int64 {
	return (subtotal*VATRateBps + 5000) / 10000
}
