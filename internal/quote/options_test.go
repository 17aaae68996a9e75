package quote

import (
	"errors"
	"testing"

	"github.com/bher20/boilerquote/internal/catalog"
)

func TestFindBoilerOptionsPicksCheapestInWindow(t *testing.T) {
	cat := catalog.Default()

	options, err := FindBoilerOptions(cat, catalog.BoilerCombi, 24)
	if err != nil {
		t.Fatalf("FindBoilerOptions failed: %v", err)
	}
	if len(options) != 3 {
		t.Fatalf("expected 3 tiers, got %d", len(options))
	}

	// Budget window around 24 contains the 824 (89500) and 830 (99500);
	// the cheaper one wins.
	if got := options[catalog.TierBudget]; got.Model != "800 Combi 824" {
		t.Errorf("budget pick = %s %s, want Baxi 800 Combi 824", got.Make, got.Model)
	}
	if got := options[catalog.TierMidRange]; got.Model != "Logic Max Combi2 C24" {
		t.Errorf("mid-range pick = %s %s, want Ideal Logic Max Combi2 C24", got.Make, got.Model)
	}
	// Premium window contains the 25 kW and 30 kW Greenstar; cheapest is the 25.
	if got := options[catalog.TierPremium]; got.Model != "Greenstar 8000 Life 25" {
		t.Errorf("premium pick = %s %s, want Greenstar 8000 Life 25", got.Make, got.Model)
	}

	for tier, b := range options {
		if b.Type != catalog.BoilerCombi {
			t.Errorf("%s pick has type %s, want combi", tier, b.Type)
		}
	}
}

func TestFindBoilerOptionsTierCostOrdering(t *testing.T) {
	cat := catalog.Default()
	for _, typ := range []catalog.BoilerType{catalog.BoilerCombi, catalog.BoilerSystem, catalog.BoilerRegular} {
		for _, kw := range []int{24, 30, 32, 35, 36, 42} {
			options, err := FindBoilerOptions(cat, typ, kw)
			if err != nil {
				t.Fatalf("FindBoilerOptions(%s, %d): %v", typ, kw, err)
			}
			budget := options[catalog.TierBudget].SupplyPricePence
			mid := options[catalog.TierMidRange].SupplyPricePence
			premium := options[catalog.TierPremium].SupplyPricePence
			if budget > mid || mid > premium {
				t.Errorf("%s %dkW: tier prices not ascending: %d / %d / %d", typ, kw, budget, mid, premium)
			}
		}
	}
}

func TestFindBoilerOptionsWindowFallback(t *testing.T) {
	cat := catalog.Default()

	// No budget system boiler sits within 6 kW of 42; the closest budget
	// entry (35 kW) is offered instead of dropping the tier.
	options, err := FindBoilerOptions(cat, catalog.BoilerSystem, 42)
	if err != nil {
		t.Fatalf("FindBoilerOptions failed: %v", err)
	}
	if got := options[catalog.TierBudget]; got.OutputKw != 35 {
		t.Errorf("budget fallback = %.0f kW, want the closest 35 kW entry", got.OutputKw)
	}
	if got := options[catalog.TierPremium]; got.OutputKw != 42 {
		t.Errorf("premium pick = %.0f kW, want exact 42 kW", got.OutputKw)
	}
}

func TestFindBoilerOptionsEmptyTierFallsBackAcrossTiers(t *testing.T) {
	cat := &catalog.Catalog{
		Boilers: []catalog.BoilerEntry{
			{Make: "Baxi", Model: "800 Combi 830", Type: catalog.BoilerCombi, Tier: catalog.TierBudget, OutputKw: 30, SupplyPricePence: 99500},
		},
	}
	options, err := FindBoilerOptions(cat, catalog.BoilerCombi, 30)
	if err != nil {
		t.Fatalf("FindBoilerOptions failed: %v", err)
	}
	// All three tiers must still be priceable, even from a single entry.
	for _, tier := range catalog.Tiers() {
		if options[tier].Model != "800 Combi 830" {
			t.Errorf("tier %s got %q, want the only catalog entry", tier, options[tier].Model)
		}
	}
}

func TestFindBoilerOptionsCatalogIncomplete(t *testing.T) {
	cat := &catalog.Catalog{
		Boilers: []catalog.BoilerEntry{
			{Type: catalog.BoilerCombi, Tier: catalog.TierBudget, OutputKw: 30, SupplyPricePence: 99500},
		},
	}
	_, err := FindBoilerOptions(cat, catalog.BoilerRegular, 30)
	if err == nil {
		t.Fatal("expected error for a type with no catalog entries")
	}
	if !errors.Is(err, ErrCatalogIncomplete) {
		t.Errorf("error = %v, want ErrCatalogIncomplete", err)
	}
}

func TestClosestByKwPrefersCheaperOnTie(t *testing.T) {
	entries := []catalog.BoilerEntry{
		{Model: "low", Tier: catalog.TierBudget, OutputKw: 28, SupplyPricePence: 90000},
		{Model: "high", Tier: catalog.TierBudget, OutputKw: 32, SupplyPricePence: 80000},
	}
	got := closestByKw(entries, 30, catalog.TierBudget)
	if got == nil || got.Model != "high" {
		t.Errorf("tie at 2 kW should pick the cheaper entry, got %+v", got)
	}
}
