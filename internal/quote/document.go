package quote

import (
	"fmt"
	"strings"

	"github.com/bher20/boilerquote/internal/catalog"
)

// DepositRateBps is the deposit taken at checkout, as a share of the
// selected tier's total price.
const DepositRateBps = 1000 // 10%

// DepositPence returns the deposit for a total, rounded half up.
func DepositPence(totalPence int64) int64 {
	return (totalPence*DepositRateBps + 5000) / 10000
}

// FormatPounds renders integer pence as decimal currency. This is the only
// place money leaves minor units; everything upstream stays integral.
func FormatPounds(pence int64) string {
	sign := ""
	if pence < 0 {
		sign = "-"
		pence = -pence
	}
	return fmt.Sprintf("%s£%d.%02d", sign, pence/100, pence%100)
}

// RenderDocument produces the plain-text quote document sent to customers
// and embedded in order summaries. All currency conversion happens here, at
// the presentation boundary.
func RenderDocument(res *QuoteResult) string {
	var sb strings.Builder

	sb.WriteString("YOUR BOILER INSTALLATION QUOTE\n")
	sb.WriteString("==============================\n\n")
	fmt.Fprintf(&sb, "Recommended: %d kW %s boiler", res.RecommendedBoilerSize, res.RecommendedBoilerType)
	if res.CylinderSize != nil {
		fmt.Fprintf(&sb, " with %d litre cylinder", *res.CylinderSize)
	}
	fmt.Fprintf(&sb, "\nInstallation complexity: %s\n\n", res.InstallationComplexity)

	for _, q := range res.Quotes {
		marker := ""
		if q.IsRecommended {
			marker = "  (recommended)"
		}
		fmt.Fprintf(&sb, "%s%s\n", tierLabel(q.Tier), marker)
		fmt.Fprintf(&sb, "  %s %s  (%.0f kW, %d yr warranty, rated %s)\n",
			q.Boiler.Make, q.Boiler.Model, q.Boiler.OutputKw, q.Boiler.WarrantyYears, q.Boiler.EfficiencyRating)

		b := q.Breakdown
		fmt.Fprintf(&sb, "  Boiler supply        %10s\n", FormatPounds(b.BoilerCost))
		if b.CylinderCost > 0 {
			fmt.Fprintf(&sb, "  Hot water cylinder   %10s\n", FormatPounds(b.CylinderCost))
		}
		fmt.Fprintf(&sb, "  Installation labour  %10s\n", FormatPounds(b.LabourCost))
		if b.FlueExtension > 0 {
			fmt.Fprintf(&sb, "  Flue extension       %10s\n", FormatPounds(b.FlueExtension))
		}
		sundries := b.Sundries.MagneticFilter + b.Sundries.PowerFlush + b.Sundries.Thermostat + b.Sundries.Chemicals
		fmt.Fprintf(&sb, "  Sundries             %10s\n", FormatPounds(sundries))
		if b.ParkingCost > 0 {
			fmt.Fprintf(&sb, "  Parking              %10s\n", FormatPounds(b.ParkingCost))
		}
		if b.CondensatePump > 0 {
			fmt.Fprintf(&sb, "  Condensate pump      %10s\n", FormatPounds(b.CondensatePump))
		}
		if b.BoilerRelocation > 0 {
			fmt.Fprintf(&sb, "  Boiler relocation    %10s\n", FormatPounds(b.BoilerRelocation))
		}
		fmt.Fprintf(&sb, "  Subtotal             %10s\n", FormatPounds(b.Subtotal))
		fmt.Fprintf(&sb, "  VAT (20%%)            %10s\n", FormatPounds(b.VATAmount))
		fmt.Fprintf(&sb, "  Total                %10s\n", FormatPounds(b.TotalPrice))
		fmt.Fprintf(&sb, "  Deposit to book      %10s\n\n", FormatPounds(DepositPence(b.TotalPrice)))
	}

	sb.WriteString(res.Explanation)
	sb.WriteString("\n")

	return sb.String()
}

func tierLabel(t catalog.Tier) string {
	switch t {
	case catalog.TierBudget:
		return "BUDGET"
	case catalog.TierMidRange:
		return "MID-RANGE"
	case catalog.TierPremium:
		return "PREMIUM"
	}
	return strings.ToUpper(string(t))
}
