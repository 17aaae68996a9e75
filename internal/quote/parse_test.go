package quote

import "testing"

func TestParseProfileWizardLabels(t *testing.T) {
	in := ProfileInput{
		PropertyType:    "House",
		Bedrooms:        "4+ bedrooms",
		Bathrooms:       "2",
		Occupants:       "5+",
		CurrentBoiler:   "Conventional boiler",
		FlueLocation:    "Through roof",
		FlueExtension:   "3-4m",
		Parking:         "Paid parking",
		ParkingDistance: "20-50m",
		DrainNearby:     "Yes",
		MoveBoiler:      "No",
		Postcode:        "sw1a 1aa",
	}

	p := ParseProfile(in)

	if p.PropertyType != PropertyHouse {
		t.Errorf("property type = %s, want house", p.PropertyType)
	}
	if p.Bedrooms != 4 || p.Bathrooms != 2 || p.Occupants != 5 {
		t.Errorf("counts = %d/%d/%d, want 4/2/5", p.Bedrooms, p.Bathrooms, p.Occupants)
	}
	if p.CurrentBoiler != CurrentRegular {
		t.Errorf("current boiler = %s, want regular (conventional alias)", p.CurrentBoiler)
	}
	if p.FlueLocation != FlueThroughRoof {
		t.Errorf("flue location = %s, want through-roof", p.FlueLocation)
	}
	if p.FlueExtension != ExtensionMedium {
		t.Errorf("flue extension = %s, want 3-4m", p.FlueExtension)
	}
	if p.Parking != ParkingPaid {
		t.Errorf("parking = %s, want paid", p.Parking)
	}
	if p.ParkingDistance != DistanceMid {
		t.Errorf("parking distance = %s, want 20-50m", p.ParkingDistance)
	}
	if !p.DrainNearby || p.MoveBoiler {
		t.Errorf("yes/no answers misparsed: drain=%v move=%v", p.DrainNearby, p.MoveBoiler)
	}
	if p.Postcode != "SW1A 1AA" {
		t.Errorf("postcode = %q, want SW1A 1AA", p.Postcode)
	}
}

func TestParseProfileDefaultsAndLeniency(t *testing.T) {
	p := ParseProfile(ProfileInput{
		Bedrooms:      "lots",
		Bathrooms:     "",
		CurrentBoiler: "not sure",
		Parking:       "no parking at all",
	})

	if p.Bedrooms != 1 || p.Bathrooms != 1 || p.Occupants != 1 {
		t.Errorf("unparseable counts must default to 1, got %d/%d/%d", p.Bedrooms, p.Bathrooms, p.Occupants)
	}
	if p.CurrentBoiler != CurrentUnknown {
		t.Errorf("current boiler = %s, want unknown", p.CurrentBoiler)
	}
	if p.Parking != ParkingNone {
		t.Errorf("parking = %s, want none", p.Parking)
	}
	if p.FlueExtension != ExtensionNone {
		t.Errorf("flue extension = %s, want none", p.FlueExtension)
	}
	if p.ParkingDistance != DistanceNear {
		t.Errorf("parking distance = %s, want <20m", p.ParkingDistance)
	}
}

func TestParseProfileFlatFields(t *testing.T) {
	p := ParseProfile(ProfileInput{
		PropertyType: "Flat",
		FloorLevel:   "3+",
		HasLift:      "no",
	})
	if p.PropertyType != PropertyFlat {
		t.Errorf("property type = %s, want flat", p.PropertyType)
	}
	if p.FloorLevel != 3 {
		t.Errorf("floor level = %d, want 3", p.FloorLevel)
	}
	if p.HasLift {
		t.Error("lift should be false")
	}
}

func TestParseProfileFlueExtensionLong(t *testing.T) {
	p := ParseProfile(ProfileInput{FlueExtension: "5m+"})
	if p.FlueExtension != ExtensionLong {
		t.Errorf("flue extension = %s, want 5m+", p.FlueExtension)
	}
	p = ParseProfile(ProfileInput{FlueExtension: "1-2m"})
	if p.FlueExtension != ExtensionShort {
		t.Errorf("flue extension = %s, want 1-2m", p.FlueExtension)
	}
}

func TestPostcodeArea(t *testing.T) {
	tests := []struct {
		postcode string
		want     string
	}{
		{"SW1A 1AA", "SW"},
		{"m1 1ae", "M"},
		{"EC2V 6DN", "EC"},
		{"b33 8th", "B"},
		{"", ""},
		{"123", ""},
	}
	for _, tc := range tests {
		if got := PostcodeArea(tc.postcode); got != tc.want {
			t.Errorf("PostcodeArea(%q) = %q, want %q", tc.postcode, got, tc.want)
		}
	}
}
