package plumbcore

import (
	"testing"

	"github.com/bher20/boilerquote/internal/catalog"
)

// Sample text as extracted from the PlumbCore trade price list PDF.
const samplePlumbCoreText = `
PlumbCore Trade Supplies - Boiler Price List - August 2026
Trade prices, excluding VAT and delivery.

Baxi | 800 Combi 824 | COMBI | 24kW | 7yr | £895.00
Baxi | 800 Combi 830 | COMBI | 30kW | 7yr | £1,015.00
Ideal | Logic Max System2 S30 | SYSTEM | 30kW | 10yr | £1,299.99
Worcester Bosch | Greenstar 8000 Life Regular 30 | REGULAR | 30kW | 12yr | £1,650

Prices subject to change without notice.
`

func TestParseText(t *testing.T) {
	s := &Supplier{}
	pl, err := s.ParseText(samplePlumbCoreText)
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}

	if pl.Supplier != "plumbcore" {
		t.Errorf("supplier = %q, want plumbcore", pl.Supplier)
	}
	if len(pl.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(pl.Items))
	}

	first := pl.Items[0]
	if first.Make != "Baxi" || first.Model != "800 Combi 824" {
		t.Errorf("first item = %s %s", first.Make, first.Model)
	}
	if first.Type != catalog.BoilerCombi {
		t.Errorf("first type = %s, want combi", first.Type)
	}
	if first.OutputKw != 24 || first.WarrantyYears != 7 {
		t.Errorf("first specs = %.0fkW/%dyr", first.OutputKw, first.WarrantyYears)
	}
	if first.PricePence != 89500 {
		t.Errorf("first price = %d, want 89500", first.PricePence)
	}

	// Thousands separator.
	if pl.Items[1].PricePence != 101500 {
		t.Errorf("second price = %d, want 101500", pl.Items[1].PricePence)
	}
	// Odd pence.
	if pl.Items[2].PricePence != 129999 {
		t.Errorf("third price = %d, want 129999", pl.Items[2].PricePence)
	}
	if pl.Items[2].Type != catalog.BoilerSystem {
		t.Errorf("third type = %s, want system", pl.Items[2].Type)
	}
	// Whole pounds with no decimals.
	if pl.Items[3].PricePence != 165000 {
		t.Errorf("fourth price = %d, want 165000", pl.Items[3].PricePence)
	}
	if pl.Items[3].Type != catalog.BoilerRegular {
		t.Errorf("fourth type = %s, want regular", pl.Items[3].Type)
	}
}

func TestParseTextHeaderNotAbsorbedIntoMake(t *testing.T) {
	// No blank line between the header and the table; the make of the
	// first row must still be just the make, not the header text.
	text := "PlumbCore Trade Supplies - Boiler Price List\nBaxi | 800 Combi 824 | COMBI | 24kW | 7yr | £895.00\n"
	s := &Supplier{}
	pl, err := s.ParseText(text)
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if len(pl.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(pl.Items))
	}
	if got := pl.Items[0].Make; got != "Baxi" {
		t.Errorf("make = %q, want Baxi", got)
	}
}

func TestParseTextNoLines(t *testing.T) {
	s := &Supplier{}
	if _, err := s.ParseText("nothing resembling a price table"); err == nil {
		t.Fatal("expected an error for text with no price lines")
	}
}
