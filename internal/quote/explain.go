package quote

import (
	"fmt"
	"strings"

	"github.com/bher20/boilerquote/internal/catalog"
)

// BuildExplanation renders the human-readable justification shown with a
// quote: property summary, the recommendation with its rationale, a
// validation note when a reference scenario matched, and, for complex
// installations, the specific contributing factors in a fixed order.
func BuildExplanation(p PropertyProfile, t catalog.BoilerType, sizeKw int, cylinder int, cx catalog.Complexity, scenario *ConversionScenario) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Based on your %d-bedroom, %d-bathroom %s with %d occupants, we recommend a %d kW %s boiler. ",
		p.Bedrooms, p.Bathrooms, propertyNoun(p.PropertyType), p.Occupants, sizeKw, typeNoun(t))

	switch t {
	case catalog.BoilerCombi:
		sb.WriteString("A combi boiler heats water on demand, saves space and needs no hot-water cylinder. ")
	case catalog.BoilerSystem:
		fmt.Fprintf(&sb, "A system boiler with a %d litre cylinder supports several bathrooms being used at the same time. ", cylinder)
	case catalog.BoilerRegular:
		sb.WriteString("A regular boiler preserves your existing cylinder and tank configuration for a like-for-like replacement. ")
	}

	if scenario != nil {
		sb.WriteString("This recommendation has been validated against similar installations. ")
	}

	if cx == catalog.ComplexityComplex {
		factors := complexityFactors(p)
		if len(factors) > 0 {
			fmt.Fprintf(&sb, "This is a more involved installation due to %s.", strings.Join(factors, ", "))
		}
	}

	return strings.TrimSpace(sb.String())
}

// complexityFactors lists the contributing factors for a complex job, in
// fixed order: relocation, extended flue, condensate pump, high-floor
// access.
func complexityFactors(p PropertyProfile) []string {
	var out []string
	if p.MoveBoiler {
		out = append(out, "relocating the boiler")
	}
	if p.FlueExtension != ExtensionNone {
		out = append(out, "an extended flue run")
	}
	if !p.DrainNearby {
		out = append(out, "fitting a condensate pump")
	}
	if p.PropertyType == PropertyFlat && !p.HasLift && p.FloorLevel >= 1 {
		out = append(out, "access above ground floor without a lift")
	}
	return out
}

func propertyNoun(t PropertyType) string {
	if t == PropertyFlat {
		return "flat"
	}
	return "house"
}

func typeNoun(t catalog.BoilerType) string {
	switch t {
	case catalog.BoilerSystem:
		return "system"
	case catalog.BoilerRegular:
		return "regular"
	default:
		return "combi"
	}
}
