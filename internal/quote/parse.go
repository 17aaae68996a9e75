package quote

import (
	"regexp"
	"strconv"
	"strings"
)

// ProfileInput carries the raw wizard answers exactly as the UI submits
// them: free-form labels like "4+ bedrooms", "3-4m", "Yes". ParseProfile is
// the single boundary that turns these into the typed PropertyProfile the
// engine operates on.
type ProfileInput struct {
	PropertyType    string `json:"property_type"`
	Bedrooms        string `json:"bedrooms"`
	Bathrooms       string `json:"bathrooms"`
	Occupants       string `json:"occupants"`
	CurrentBoiler   string `json:"current_boiler"`
	FlueLocation    string `json:"flue_location"`
	FlueExtension   string `json:"flue_extension"`
	Parking         string `json:"parking"`
	ParkingDistance string `json:"parking_distance"`
	DrainNearby     string `json:"drain_nearby"`
	MoveBoiler      string `json:"move_boiler"`
	FloorLevel      string `json:"floor_level"`
	HasLift         string `json:"has_lift"`
	Postcode        string `json:"postcode"`
}

var leadingDigits = regexp.MustCompile(`\d+`)

// parseCount extracts the first run of digits from a label ("4+ bedrooms"
// -> 4). Unparseable or non-positive values fall back to 1: a documented
// leniency, never a request failure.
func parseCount(label string) int {
	m := leadingDigits.FindString(label)
	if m == "" {
		return 1
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func parseYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}

// ParseProfile converts raw wizard answers into a clean PropertyProfile.
// Enum-ish labels are matched loosely (case-insensitive substring where the
// original UI wording varies); counts default to 1 when unparseable.
func ParseProfile(in ProfileInput) PropertyProfile {
	p := PropertyProfile{
		Bedrooms:  parseCount(in.Bedrooms),
		Bathrooms: parseCount(in.Bathrooms),
		Occupants: parseCount(in.Occupants),
		Postcode:  normalizePostcode(in.Postcode),
	}

	if strings.Contains(strings.ToLower(in.PropertyType), "flat") {
		p.PropertyType = PropertyFlat
	} else {
		p.PropertyType = PropertyHouse
	}

	cb := strings.ToLower(in.CurrentBoiler)
	switch {
	case strings.Contains(cb, "regular"), strings.Contains(cb, "conventional"):
		p.CurrentBoiler = CurrentRegular
	case strings.Contains(cb, "system"):
		p.CurrentBoiler = CurrentSystem
	case strings.Contains(cb, "combi"):
		p.CurrentBoiler = CurrentCombi
	case strings.Contains(cb, "electric"):
		p.CurrentBoiler = CurrentElectric
	default:
		p.CurrentBoiler = CurrentUnknown
	}

	if strings.Contains(strings.ToLower(in.FlueLocation), "roof") {
		p.FlueLocation = FlueThroughRoof
	} else {
		p.FlueLocation = FlueExternalWall
	}

	fe := strings.ToLower(in.FlueExtension)
	switch {
	case strings.Contains(fe, "1-2"):
		p.FlueExtension = ExtensionShort
	case strings.Contains(fe, "3-4"):
		p.FlueExtension = ExtensionMedium
	case strings.Contains(fe, "5"):
		p.FlueExtension = ExtensionLong
	default:
		p.FlueExtension = ExtensionNone
	}

	pk := strings.ToLower(in.Parking)
	switch {
	case strings.Contains(pk, "paid"):
		p.Parking = ParkingPaid
	case strings.Contains(pk, "permit"):
		p.Parking = ParkingPermit
	case strings.Contains(pk, "no"):
		p.Parking = ParkingNone
	default:
		p.Parking = ParkingFree
	}

	pd := strings.ToLower(in.ParkingDistance)
	switch {
	case strings.Contains(pd, "20-50"):
		p.ParkingDistance = DistanceMid
	case strings.Contains(pd, ">50"), strings.Contains(pd, "50m+"), strings.Contains(pd, "over 50"):
		p.ParkingDistance = DistanceFar
	default:
		p.ParkingDistance = DistanceNear
	}

	p.DrainNearby = parseYes(in.DrainNearby)
	p.MoveBoiler = parseYes(in.MoveBoiler)
	p.HasLift = parseYes(in.HasLift)
	if in.FloorLevel != "" {
		if m := leadingDigits.FindString(in.FloorLevel); m != "" {
			if n, err := strconv.Atoi(m); err == nil && n >= 0 {
				p.FloorLevel = n
			}
		}
	}

	return p
}

var nonPostcode = regexp.MustCompile(`[^A-Z0-9 ]`)

// normalizePostcode trims, uppercases, and strips characters that cannot
// appear in a UK postcode.
func normalizePostcode(s string) string {
	up := strings.ToUpper(strings.TrimSpace(s))
	return nonPostcode.ReplaceAllString(up, "")
}

var postcodeArea = regexp.MustCompile(`^[A-Z]{1,2}`)

// PostcodeArea returns the leading letters of a normalized postcode ("SW1A
// 1AA" -> "SW"), used to select a location multiplier.
func PostcodeArea(postcode string) string {
	return postcodeArea.FindString(normalizePostcode(postcode))
}
