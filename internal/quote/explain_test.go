package quote

import (
	"strings"
	"testing"

	"github.com/bher20/boilerquote/internal/catalog"
)

func TestBuildExplanationCombi(t *testing.T) {
	p := PropertyProfile{PropertyType: PropertyHouse, Bedrooms: 2, Bathrooms: 1, Occupants: 2, DrainNearby: true}
	got := BuildExplanation(p, catalog.BoilerCombi, 30, 0, catalog.ComplexitySimple, nil)

	for _, want := range []string{"2-bedroom", "1-bathroom", "house", "30 kW", "combi", "heats water on demand"} {
		if !strings.Contains(got, want) {
			t.Errorf("explanation missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "validated against similar installations") {
		t.Error("validation note present without a scenario match")
	}
	if strings.Contains(got, "more involved installation") {
		t.Error("complexity clause present on a simple job")
	}
}

func TestBuildExplanationSystemMentionsCylinder(t *testing.T) {
	p := PropertyProfile{PropertyType: PropertyHouse, Bedrooms: 4, Bathrooms: 3, Occupants: 6, DrainNearby: true}
	s := &ConversionScenario{ID: "S-4-3-6"}
	got := BuildExplanation(p, catalog.BoilerSystem, 42, 300, catalog.ComplexitySimple, s)

	if !strings.Contains(got, "300 litre cylinder") {
		t.Errorf("explanation missing cylinder size:\n%s", got)
	}
	if !strings.Contains(got, "validated against similar installations") {
		t.Errorf("explanation missing validation note:\n%s", got)
	}
}

func TestBuildExplanationComplexFactorsInOrder(t *testing.T) {
	p := PropertyProfile{
		PropertyType:  PropertyFlat,
		Bedrooms:      3,
		Bathrooms:     1,
		Occupants:     3,
		FlueExtension: ExtensionLong,
		MoveBoiler:    true,
		DrainNearby:   false,
		FloorLevel:    3,
	}
	got := BuildExplanation(p, catalog.BoilerSystem, 32, 150, catalog.ComplexityComplex, nil)

	if !strings.Contains(got, "more involved installation") {
		t.Fatalf("complexity clause missing:\n%s", got)
	}
	order := []string{
		"relocating the boiler",
		"an extended flue run",
		"fitting a condensate pump",
		"access above ground floor without a lift",
	}
	last := -1
	for _, factor := range order {
		idx := strings.Index(got, factor)
		if idx < 0 {
			t.Errorf("explanation missing factor %q:\n%s", factor, got)
			continue
		}
		if idx < last {
			t.Errorf("factor %q out of order", factor)
		}
		last = idx
	}
}
