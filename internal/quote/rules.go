package quote

import (
	"math"

	"github.com/bher20/boilerquote/internal/catalog"
)

// DetermineBoilerType picks the boiler category for a property. The rules
// are priority-ordered and the first match wins; they follow UK domestic
// sizing convention, where high simultaneous hot-water demand needs stored
// hot water (System) rather than an instantaneous Combi.
func DetermineBoilerType(p PropertyProfile) catalog.BoilerType {
	switch {
	case p.Bathrooms >= 3:
		return catalog.BoilerSystem
	case p.Bedrooms >= 5:
		return catalog.BoilerSystem
	case p.Bedrooms >= 4 && p.Bathrooms >= 2:
		return catalog.BoilerSystem
	case p.Bedrooms == 3 && p.Bathrooms == 2 && p.Occupants >= 4:
		return catalog.BoilerSystem
	case p.Bedrooms == 3 && p.Bathrooms == 1 && p.PropertyType == PropertyFlat:
		return catalog.BoilerSystem
	case p.CurrentBoiler == CurrentRegular:
		// Like-for-like replacement preserves the vented cylinder and tank.
		return catalog.BoilerRegular
	default:
		return catalog.BoilerCombi
	}
}

// CalculateBoilerSize returns the target output in kW. Known
// bedroom/bathroom pairs use the validated lookup table; anything else
// falls back to a linear heat-load estimate rounded up to the nearest even
// integer and clamped to the 24-42 kW domestic range.
func CalculateBoilerSize(p PropertyProfile) int {
	switch {
	case p.Bedrooms >= 5 || p.Bathrooms >= 3:
		return 42
	case p.Bedrooms == 4:
		return 36
	case p.Bedrooms == 3 && p.Bathrooms >= 2:
		return 35
	case p.Bedrooms == 3 && p.Bathrooms == 1:
		return 32
	case p.Bedrooms == 2 && p.Bathrooms == 1:
		return 30
	case p.Bedrooms == 1 && p.Bathrooms == 1:
		return 24
	}

	heatLoad := 2.5*float64(p.Bedrooms) + 3.5*float64(p.Bathrooms) + 1.5*float64(p.Occupants)
	kw := int(math.Ceil(heatLoad))
	if kw%2 != 0 {
		kw++
	}
	if kw < 24 {
		kw = 24
	}
	if kw > 42 {
		kw = 42
	}
	return kw
}

// cylinderTiers are the stocked cylinder capacities in litres, ascending.
var cylinderTiers = []int{120, 150, 170, 210, 250, 300}

// CalculateCylinderSize returns the hot-water cylinder capacity in litres
// for System and Regular installations. The bathroom rule takes priority
// over the bedroom rule when both could apply. Callers must not invoke this
// for Combi recommendations; Combi installations carry no cylinder.
func CalculateCylinderSize(p PropertyProfile) int {
	switch {
	case p.Bathrooms >= 3:
		return 300
	case p.Bedrooms >= 5:
		return 250
	case p.Bedrooms == 4 && p.Bathrooms >= 2:
		return 210
	case p.Bedrooms == 3 && p.Bathrooms == 2:
		return 170
	case (p.Bedrooms == 3 && p.Bathrooms == 1) || p.Bedrooms == 2:
		return 150
	}

	capacity := 35*p.Occupants + 25*p.Bathrooms + 15*p.Bedrooms
	for _, t := range cylinderTiers {
		if capacity <= t {
			return t
		}
	}
	return cylinderTiers[len(cylinderTiers)-1]
}

// ComplexityScore is the additive installation-difficulty score before
// banding. Exposed for tests; use CalculateInstallationComplexity for the
// banded grade.
func ComplexityScore(p PropertyProfile, recommended catalog.BoilerType) int {
	score := 0
	if p.MoveBoiler {
		score += 2
	}
	if p.FlueExtension != ExtensionNone {
		score++
		if p.FlueExtension == ExtensionMedium || p.FlueExtension == ExtensionLong {
			score++
		}
	}
	if p.PropertyType == PropertyFlat && !p.HasLift {
		if p.FloorLevel >= 3 {
			score += 2
		} else if p.FloorLevel >= 1 {
			score++
		}
	}
	switch recommended {
	case catalog.BoilerSystem:
		score++
	case catalog.BoilerRegular:
		score += 2
	}
	if !p.DrainNearby {
		score++
	}
	return score
}

// CalculateInstallationComplexity bands the complexity score into the grade
// that selects the labour cost row.
func CalculateInstallationComplexity(p PropertyProfile, recommended catalog.BoilerType) catalog.Complexity {
	score := ComplexityScore(p, recommended)
	switch {
	case score <= 2:
		return catalog.ComplexitySimple
	case score <= 4:
		return catalog.ComplexityMedium
	default:
		return catalog.ComplexityComplex
	}
}
