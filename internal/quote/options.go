package quote

import (
	"errors"
	"fmt"
	"math"

	"github.com/bher20/boilerquote/internal/catalog"
)

// ErrCatalogIncomplete reports a data-completeness fault: the catalog has
// no boiler at all for a required type, so a price breakdown cannot be
// computed. This is an operator problem, not a user error.
var ErrCatalogIncomplete = errors.New("catalog incomplete")

// sizeToleranceKw is the output window around the target size a boiler may
// fall in and still be offered.
const sizeToleranceKw = 6.0

// FindBoilerOptions selects one catalog boiler per tier for the resolved
// type and target size. Within the +/-6 kW window the cheapest entry of
// each tier wins; a tier with no candidate in the window falls back to its
// closest-by-kW entry, and a tier with no entries of the type at all falls
// back to the closest entry of any tier (degenerate but priceable). A type
// with zero entries anywhere is ErrCatalogIncomplete.
func FindBoilerOptions(cat *catalog.Catalog, t catalog.BoilerType, targetKw int) (map[catalog.Tier]catalog.BoilerEntry, error) {
	ofType := cat.BoilersOfType(t)
	if len(ofType) == 0 {
		return nil, fmt.Errorf("%w: no %s boilers in catalog", ErrCatalogIncomplete, t)
	}

	target := float64(targetKw)
	out := make(map[catalog.Tier]catalog.BoilerEntry, 3)

	for _, tier := range catalog.Tiers() {
		var cheapest *catalog.BoilerEntry
		for i := range ofType {
			b := &ofType[i]
			if b.Tier != tier || math.Abs(b.OutputKw-target) > sizeToleranceKw {
				continue
			}
			if cheapest == nil || b.SupplyPricePence < cheapest.SupplyPricePence {
				cheapest = b
			}
		}
		if cheapest != nil {
			out[tier] = *cheapest
			continue
		}

		// No candidate inside the window: closest entry of this tier.
		if c := closestByKw(ofType, target, tier); c != nil {
			out[tier] = *c
			continue
		}

		// Tier has no entries of this type at all: closest entry of any tier.
		out[tier] = *closestByKw(ofType, target, "")
	}

	return out, nil
}

// closestByKw returns the entry of the given tier (any tier when tier is
// empty) whose output is nearest the target, preferring the cheaper entry
// on a distance tie. Returns nil when no entry matches the tier.
func closestByKw(entries []catalog.BoilerEntry, target float64, tier catalog.Tier) *catalog.BoilerEntry {
	var best *catalog.BoilerEntry
	for i := range entries {
		b := &entries[i]
		if tier != "" && b.Tier != tier {
			continue
		}
		if best == nil {
			best = b
			continue
		}
		db, dbest := math.Abs(b.OutputKw-target), math.Abs(best.OutputKw-target)
		if db < dbest || (db == dbest && b.SupplyPricePence < best.SupplyPricePence) {
			best = b
		}
	}
	return best
}
