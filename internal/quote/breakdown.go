package quote

import "github.com/bher20/boilerquote/internal/catalog"

// CalculatePricingBreakdown itemizes one tier's installation price for the
// chosen boiler. Labour, sundries, flue, parking, condensate and relocation
// components depend only on the profile and complexity, so across tiers
// only the boiler cost (and cylinder cost, when cylinders are required)
// varies. cylinderSize is 0 for Combi installations.
func CalculatePricingBreakdown(cat *catalog.Catalog, p PropertyProfile, boiler catalog.BoilerEntry, cylinderSize int, cx catalog.Complexity) PriceBreakdown {
	b := PriceBreakdown{
		BoilerCost: boiler.SupplyPricePence,
		LabourCost: cat.Labour[boiler.Type][cx],
		Sundries: SundryBreakdown{
			MagneticFilter: cat.Sundries.MagneticFilterPence,
			PowerFlush:     cat.Sundries.PowerFlushPence,
			Thermostat:     cat.Sundries.ThermostatPence,
			Chemicals:      cat.Sundries.ChemicalsPence,
		},
	}

	if boiler.Type != catalog.BoilerCombi && cylinderSize > 0 {
		if price, ok := cat.CylinderPrice(cylinderSize); ok {
			b.CylinderCost = price
		}
	}

	switch p.FlueExtension {
	case ExtensionShort:
		b.FlueExtension = cat.FlueExtension.Short
	case ExtensionMedium:
		b.FlueExtension = cat.FlueExtension.Medium
	case ExtensionLong:
		b.FlueExtension = cat.FlueExtension.Long
	}

	// Parking is only chargeable when the engineer must pay to park and the
	// carry distance is beyond the nearest bracket.
	if p.Parking == ParkingPaid {
		switch p.ParkingDistance {
		case DistanceMid:
			b.ParkingCost = cat.Parking.Mid
		case DistanceFar:
			b.ParkingCost = cat.Parking.Far
		}
	}

	if !p.DrainNearby {
		b.CondensatePump = cat.CondensatePump
	}
	if p.MoveBoiler {
		b.BoilerRelocation = cat.BoilerRelocation
	}

	b.Subtotal = b.BoilerCost + b.CylinderCost + b.LabourCost + b.FlueExtension +
		b.Sundries.MagneticFilter + b.Sundries.PowerFlush + b.Sundries.Thermostat + b.Sundries.Chemicals +
		b.ParkingCost + b.CondensatePump + b.BoilerRelocation
	b.VATAmount = vatHalfUp(b.Subtotal)
	b.TotalPrice = b.Subtotal + b.VATAmount

	return b
}
