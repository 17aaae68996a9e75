package quote

import (
	"testing"

	"github.com/bher20/boilerquote/internal/catalog"
)

func TestFindMatchingScenarioExactSignature(t *testing.T) {
	s := FindMatchingScenario(PropertyProfile{Bedrooms: 3, Bathrooms: 2, Occupants: 4})
	if s == nil || s.ID != "S-3-2-4" {
		t.Fatalf("match = %+v, want S-3-2-4", s)
	}
	if s.BoilerType != catalog.BoilerSystem || s.CylinderSize != 170 {
		t.Errorf("scenario data drifted: %+v", s)
	}
}

func TestFindMatchingScenarioPropertyTypePin(t *testing.T) {
	house := FindMatchingScenario(PropertyProfile{PropertyType: PropertyHouse, Bedrooms: 3, Bathrooms: 1, Occupants: 3})
	if house == nil || house.ID != "S-3-1-3" {
		t.Fatalf("house match = %+v, want S-3-1-3", house)
	}
	flat := FindMatchingScenario(PropertyProfile{PropertyType: PropertyFlat, Bedrooms: 3, Bathrooms: 1, Occupants: 3})
	if flat == nil || flat.ID != "S-3-1-3F" {
		t.Fatalf("flat match = %+v, want S-3-1-3F", flat)
	}
	if flat.BoilerType != catalog.BoilerSystem {
		t.Errorf("flat variant must recommend system, got %s", flat.BoilerType)
	}
}

func TestFindMatchingScenarioNoMatch(t *testing.T) {
	if s := FindMatchingScenario(PropertyProfile{Bedrooms: 7, Bathrooms: 1, Occupants: 1}); s != nil {
		t.Errorf("expected no match, got %+v", s)
	}
}

func TestFindMatchingScenarioReturnsCopy(t *testing.T) {
	a := FindMatchingScenario(PropertyProfile{Bedrooms: 2, Bathrooms: 1, Occupants: 2})
	if a == nil {
		t.Fatal("expected a match")
	}
	a.Description = "mutated"
	b := FindMatchingScenario(PropertyProfile{Bedrooms: 2, Bathrooms: 1, Occupants: 2})
	if b.Description == "mutated" {
		t.Error("FindMatchingScenario must not expose the table entries")
	}
}

func TestScenarioTableAgreesWithRules(t *testing.T) {
	// Every curated scenario must agree with what the rules engine would
	// decide for the same signature; the table validates, never overrides.
	for _, s := range Scenarios() {
		p := PropertyProfile{
			PropertyType: s.PropertyType,
			Bedrooms:     s.Bedrooms,
			Bathrooms:    s.Bathrooms,
			Occupants:    s.Occupants,
		}
		if got := DetermineBoilerType(p); got != s.BoilerType {
			t.Errorf("%s: rules give type %s, table says %s", s.ID, got, s.BoilerType)
		}
		if got := CalculateBoilerSize(p); got != s.BoilerSizeKw {
			t.Errorf("%s: rules give %d kW, table says %d", s.ID, got, s.BoilerSizeKw)
		}
		if s.BoilerType != catalog.BoilerCombi {
			if got := CalculateCylinderSize(p); got != s.CylinderSize {
				t.Errorf("%s: rules give %dL cylinder, table says %d", s.ID, got, s.CylinderSize)
			}
		}
	}
}
