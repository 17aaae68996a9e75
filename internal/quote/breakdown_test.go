package quote

import (
	"testing"

	"github.com/bher20/boilerquote/internal/catalog"
)

func TestCalculatePricingBreakdownCombi(t *testing.T) {
	cat := catalog.Default()
	p := PropertyProfile{
		PropertyType:  PropertyHouse,
		Bedrooms:      1,
		Bathrooms:     1,
		Occupants:     2,
		FlueExtension: ExtensionNone,
		Parking:       ParkingFree,
		DrainNearby:   true,
	}
	boiler := catalog.BoilerEntry{Type: catalog.BoilerCombi, Tier: catalog.TierMidRange, OutputKw: 24, SupplyPricePence: 114500}

	b := CalculatePricingBreakdown(cat, p, boiler, 0, catalog.ComplexitySimple)

	if b.BoilerCost != 114500 {
		t.Errorf("boiler cost = %d, want 114500", b.BoilerCost)
	}
	if b.CylinderCost != 0 {
		t.Errorf("combi must carry no cylinder cost, got %d", b.CylinderCost)
	}
	if b.LabourCost != 120000 {
		t.Errorf("labour = %d, want 120000 (combi simple)", b.LabourCost)
	}
	wantSundries := int64(15000 + 45000 + 20000 + 5000)
	gotSundries := b.Sundries.MagneticFilter + b.Sundries.PowerFlush + b.Sundries.Thermostat + b.Sundries.Chemicals
	if gotSundries != wantSundries {
		t.Errorf("sundries = %d, want %d", gotSundries, wantSundries)
	}
	if b.FlueExtension != 0 || b.ParkingCost != 0 || b.CondensatePump != 0 || b.BoilerRelocation != 0 {
		t.Errorf("unexpected optional components: %+v", b)
	}

	wantSubtotal := int64(114500 + 120000 + 85000)
	if b.Subtotal != wantSubtotal {
		t.Errorf("subtotal = %d, want %d", b.Subtotal, wantSubtotal)
	}
	if b.VATAmount != 63900 {
		t.Errorf("vat = %d, want 63900", b.VATAmount)
	}
	if b.TotalPrice != wantSubtotal+63900 {
		t.Errorf("total = %d, want %d", b.TotalPrice, wantSubtotal+63900)
	}
}

func TestCalculatePricingBreakdownSystemWithCylinder(t *testing.T) {
	cat := catalog.Default()
	p := PropertyProfile{
		PropertyType:    PropertyHouse,
		Bedrooms:        4,
		Bathrooms:       3,
		Occupants:       6,
		FlueExtension:   ExtensionMedium,
		Parking:         ParkingPaid,
		ParkingDistance: DistanceFar,
		DrainNearby:     false,
		MoveBoiler:      true,
	}
	boiler := catalog.BoilerEntry{Type: catalog.BoilerSystem, Tier: catalog.TierPremium, OutputKw: 42, SupplyPricePence: 219500}

	b := CalculatePricingBreakdown(cat, p, boiler, 300, catalog.ComplexityComplex)

	if b.CylinderCost != 140000 {
		t.Errorf("cylinder cost = %d, want 140000 (300L)", b.CylinderCost)
	}
	if b.LabourCost != 215000 {
		t.Errorf("labour = %d, want 215000 (system complex)", b.LabourCost)
	}
	if b.FlueExtension != 35000 {
		t.Errorf("flue extension = %d, want 35000 (3-4m)", b.FlueExtension)
	}
	if b.ParkingCost != 4500 {
		t.Errorf("parking = %d, want 4500 (paid, >50m)", b.ParkingCost)
	}
	if b.CondensatePump != 35000 {
		t.Errorf("condensate pump = %d, want 35000", b.CondensatePump)
	}
	if b.BoilerRelocation != 60000 {
		t.Errorf("relocation = %d, want 60000", b.BoilerRelocation)
	}
	if b.TotalPrice != b.Subtotal+b.VATAmount {
		t.Errorf("total %d != subtotal %d + vat %d", b.TotalPrice, b.Subtotal, b.VATAmount)
	}
}

func TestParkingOnlyChargedWhenPaidAndBeyondNearBracket(t *testing.T) {
	cat := catalog.Default()
	boiler := cat.Boilers[0]

	tests := []struct {
		parking  ParkingSituation
		distance ParkingDistance
		want     int64
	}{
		{ParkingPaid, DistanceNear, 0},
		{ParkingPaid, DistanceMid, 2500},
		{ParkingPaid, DistanceFar, 4500},
		{ParkingFree, DistanceFar, 0},
		{ParkingPermit, DistanceFar, 0},
		{ParkingNone, DistanceMid, 0},
	}
	for _, tc := range tests {
		p := PropertyProfile{Parking: tc.parking, ParkingDistance: tc.distance, DrainNearby: true}
		b := CalculatePricingBreakdown(cat, p, boiler, 0, catalog.ComplexitySimple)
		if b.ParkingCost != tc.want {
			t.Errorf("parking=%s distance=%s: cost = %d, want %d", tc.parking, tc.distance, b.ParkingCost, tc.want)
		}
	}
}

// VAT rounds half up on the exact subtotal, and the total identity holds
// even for subtotals that do not divide evenly.
func TestVATRoundsHalfUp(t *testing.T) {
	cat := &catalog.Catalog{
		Labour: catalog.LabourTable{
			catalog.BoilerCombi: {catalog.ComplexitySimple: 0},
		},
	}
	p := PropertyProfile{DrainNearby: true}

	tests := []struct {
		subtotal int64
		wantVAT  int64
	}{
		{100, 20},
		{13, 3},  // 2.6 rounds up
		{12, 2},  // 2.4 rounds down
		{7, 1},   // 1.4 rounds down
		{8, 2},   // 1.6 rounds up
		{1000000, 200000},
	}
	for _, tc := range tests {
		boiler := catalog.BoilerEntry{Type: catalog.BoilerCombi, SupplyPricePence: tc.subtotal}
		b := CalculatePricingBreakdown(cat, p, boiler, 0, catalog.ComplexitySimple)
		if b.Subtotal != tc.subtotal {
			t.Fatalf("subtotal = %d, want %d", b.Subtotal, tc.subtotal)
		}
		if b.VATAmount != tc.wantVAT {
			t.Errorf("vat(%d) = %d, want %d", tc.subtotal, b.VATAmount, tc.wantVAT)
		}
		if b.TotalPrice != b.Subtotal+b.VATAmount {
			t.Errorf("total identity broken for subtotal %d", tc.subtotal)
		}
	}
}
