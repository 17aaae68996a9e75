package quote

import "github.com/bher20/boilerquote/internal/catalog"

// scenarios is the curated reference table of property configurations our
// surveyors have validated on real installations. Matches only ground the
// explanation text; the rules engine's numeric output always stands.
var scenarios = []ConversionScenario{
	{ID: "S-1-1-1", Bedrooms: 1, Bathrooms: 1, Occupants: 1, BoilerType: catalog.BoilerCombi, BoilerSizeKw: 24, Description: "one-bed single occupant"},
	{ID: "S-1-1-2", Bedrooms: 1, Bathrooms: 1, Occupants: 2, BoilerType: catalog.BoilerCombi, BoilerSizeKw: 24, Description: "one-bed couple"},
	{ID: "S-2-1-2", Bedrooms: 2, Bathrooms: 1, Occupants: 2, BoilerType: catalog.BoilerCombi, BoilerSizeKw: 30, Description: "two-bed couple"},
	{ID: "S-2-1-3", Bedrooms: 2, Bathrooms: 1, Occupants: 3, BoilerType: catalog.BoilerCombi, BoilerSizeKw: 30, Description: "two-bed young family"},
	{ID: "S-3-1-3", Bedrooms: 3, Bathrooms: 1, Occupants: 3, PropertyType: PropertyHouse, BoilerType: catalog.BoilerCombi, BoilerSizeKw: 32, Description: "three-bed house, single bathroom"},
	{ID: "S-3-1-3F", Bedrooms: 3, Bathrooms: 1, Occupants: 3, PropertyType: PropertyFlat, BoilerType: catalog.BoilerSystem, BoilerSizeKw: 32, CylinderSize: 150, Description: "three-bed flat, single bathroom"},
	{ID: "S-3-2-4", Bedrooms: 3, Bathrooms: 2, Occupants: 4, BoilerType: catalog.BoilerSystem, BoilerSizeKw: 35, CylinderSize: 170, Description: "three-bed family home with en-suite"},
	{ID: "S-4-2-4", Bedrooms: 4, Bathrooms: 2, Occupants: 4, BoilerType: catalog.BoilerSystem, BoilerSizeKw: 36, CylinderSize: 210, Description: "four-bed family home"},
	{ID: "S-4-2-5", Bedrooms: 4, Bathrooms: 2, Occupants: 5, BoilerType: catalog.BoilerSystem, BoilerSizeKw: 36, CylinderSize: 210, Description: "four-bed larger family"},
	{ID: "S-4-3-6", Bedrooms: 4, Bathrooms: 3, Occupants: 6, BoilerType: catalog.BoilerSystem, BoilerSizeKw: 42, CylinderSize: 300, Description: "four-bed, three bathrooms"},
	{ID: "S-5-2-5", Bedrooms: 5, Bathrooms: 2, Occupants: 5, BoilerType: catalog.BoilerSystem, BoilerSizeKw: 42, CylinderSize: 250, Description: "five-bed home"},
	{ID: "S-5-3-6", Bedrooms: 5, Bathrooms: 3, Occupants: 6, BoilerType: catalog.BoilerSystem, BoilerSizeKw: 42, CylinderSize: 300, Description: "five-bed, three bathrooms"},
}

// FindMatchingScenario looks the profile up in the reference table by exact
// bedroom/bathroom/occupant signature. Scenarios pinned to a property type
// only match that type. No match is not an error; the quote simply carries
// no validation note.
func FindMatchingScenario(p PropertyProfile) *ConversionScenario {
	for i := range scenarios {
		s := &scenarios[i]
		if s.Bedrooms != p.Bedrooms || s.Bathrooms != p.Bathrooms || s.Occupants != p.Occupants {
			continue
		}
		if s.PropertyType != "" && s.PropertyType != p.PropertyType {
			continue
		}
		cp := *s
		return &cp
	}
	return nil
}

// Scenarios returns a copy of the reference conversion table.
func Scenarios() []ConversionScenario {
	out := make([]ConversionScenario, len(scenarios))
	copy(out, scenarios)
	return out
}
