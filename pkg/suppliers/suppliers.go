package suppliers

import (
	"time"

	"github.com/bher20/boilerquote/internal/catalog"
)

// PriceListItem is one boiler line from a merchant trade price list.
type PriceListItem struct {
	Make          string             `json:"make"`
	Model         string             `json:"model"`
	Type          catalog.BoilerType `json:"type"`
	OutputKw      float64            `json:"output_kw"`
	WarrantyYears int                `json:"warranty_years"`
	PricePence    int64              `json:"price_pence"`
}

// PriceList is a parsed merchant price list.
type PriceList struct {
	Supplier  string          `json:"supplier"`
	Source    string          `json:"source"`
	FetchedAt time.Time       `json:"fetched_at"`
	Items     []PriceListItem `json:"items"`
}

// Supplier is the interface all merchant price-list parsers implement.
// Merchants publish trade prices as PDFs; ParseText exists so parsing can
// be tested against extracted text without PDF fixtures.
type Supplier interface {
	// Key is the unique identifier for this supplier (e.g. "plumbcore").
	Key() string

	// Name is the human-readable merchant name.
	Name() string

	// DefaultPDFPath is where the cached price-list PDF lives.
	DefaultPDFPath() string

	// ParsePDF parses the price list from a PDF file at the given path.
	ParsePDF(path string) (*PriceList, error)

	// ParseText parses the price list from extracted text.
	ParseText(text string) (*PriceList, error)
}

// ApplyTo updates catalog supply prices in place from the price list,
// matching entries by make and model (case-sensitive, as printed in the
// catalog). Returns the number of entries updated. The result is a new
// catalog value; the input is not mutated.
func (pl *PriceList) ApplyTo(c *catalog.Catalog) (*catalog.Catalog, int) {
	out := *c
	out.Boilers = make([]catalog.BoilerEntry, len(c.Boilers))
	copy(out.Boilers, c.Boilers)

	updated := 0
	for i := range out.Boilers {
		for _, item := range pl.Items {
			if item.Make == out.Boilers[i].Make && item.Model == out.Boilers[i].Model && item.PricePence > 0 {
				out.Boilers[i].SupplyPricePence = item.PricePence
				updated++
				break
			}
		}
	}
	return &out, updated
}
