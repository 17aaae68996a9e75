package catalog

import (
	"strings"
	"testing"
)

func TestDefaultCatalogValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("built-in catalog failed validation: %v", err)
	}
}

func TestDefaultCatalogCoversAllTypes(t *testing.T) {
	cat := Default()
	for _, typ := range []BoilerType{BoilerCombi, BoilerSystem, BoilerRegular} {
		entries := cat.BoilersOfType(typ)
		if len(entries) == 0 {
			t.Errorf("no %s boilers in the built-in catalog", typ)
			continue
		}
		tiers := make(map[Tier]bool)
		for _, b := range entries {
			if b.Type != typ {
				t.Errorf("BoilersOfType(%s) returned a %s entry", typ, b.Type)
			}
			if b.SupplyPricePence <= 0 {
				t.Errorf("%s %s has non-positive price %d", b.Make, b.Model, b.SupplyPricePence)
			}
			tiers[b.Tier] = true
		}
		for _, tier := range Tiers() {
			if !tiers[tier] {
				t.Errorf("no %s %s boiler in the built-in catalog", tier, typ)
			}
		}
	}
}

func TestCylinderPriceSnapsUp(t *testing.T) {
	cat := Default()

	if p, ok := cat.CylinderPrice(170); !ok || p != 90000 {
		t.Errorf("exact size 170 = %d/%v, want 90000", p, ok)
	}
	// 180L is not stocked; the next size up (210L) is priced instead.
	if p, ok := cat.CylinderPrice(180); !ok || p != 105000 {
		t.Errorf("snap 180->210 = %d/%v, want 105000", p, ok)
	}
	// Beyond the largest stocked size, the largest is priced.
	if p, ok := cat.CylinderPrice(400); !ok || p != 140000 {
		t.Errorf("oversize = %d/%v, want 140000 (300L)", p, ok)
	}
}

func TestLeadPriceAppliesLocationMultiplier(t *testing.T) {
	cat := Default()

	base, ok := cat.LeadPrice("boiler-installation", "ZZ")
	if !ok || base != 4000 {
		t.Fatalf("base lead price = %d/%v, want 4000", base, ok)
	}

	// SW carries a 1.20 multiplier.
	sw, ok := cat.LeadPrice("boiler-installation", "SW")
	if !ok || sw != 4800 {
		t.Errorf("SW lead price = %d/%v, want 4800", sw, ok)
	}

	if _, ok := cat.LeadPrice("no-such-job", "SW"); ok {
		t.Error("unknown job type must not price")
	}
}

func TestValidateCatchesGaps(t *testing.T) {
	cat := Default()
	cat.Boilers = nil
	err := cat.Validate()
	if err == nil {
		t.Fatal("empty boiler list must fail validation")
	}
	if !strings.Contains(err.Error(), "boiler") {
		t.Errorf("validation error should name the missing boilers: %v", err)
	}

	cat = Default()
	cat.Labour = LabourTable{}
	if cat.Validate() == nil {
		t.Error("empty labour table must fail validation")
	}

	cat = Default()
	cat.CylinderPrices = nil
	if cat.Validate() == nil {
		t.Error("missing cylinder prices must fail validation")
	}
}
