package plumbcore

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bher20/boilerquote/internal/catalog"
	"github.com/bher20/boilerquote/pkg/suppliers"
)

func init() {
	suppliers.Register(&Supplier{})
}

// Supplier parses the PlumbCore trade price list. The list is a plain
// table, one boiler per line:
//
//	Baxi | 800 Combi 824 | COMBI | 24kW | 7yr | £895.00
type Supplier struct{}

func (s *Supplier) Key() string { return "plumbcore" }

func (s *Supplier) Name() string { return "PlumbCore Trade Supplies" }

func (s *Supplier) DefaultPDFPath() string { return "/data/plumbcore_prices.pdf" }

func (s *Supplier) ParsePDF(path string) (*suppliers.PriceList, error) {
	text, err := suppliers.ExtractPDFText(path)
	if err != nil {
		return nil, err
	}
	return s.ParseText(text)
}

var lineRe = regexp.MustCompile(`(?m)^[ \t]*([^|\n]+?)[ \t]*\|[ \t]*([^|\n]+?)[ \t]*\|[ \t]*(COMBI|SYSTEM|REGULAR)[ \t]*\|[ \t]*(\d+(?:\.\d+)?)[ \t]*kW[ \t]*\|[ \t]*(\d+)[ \t]*yr[ \t]*\|[ \t]*£[ \t]*([\d,]+(?:\.\d{2})?)[ \t]*$`)

func (s *Supplier) ParseText(text string) (*suppliers.PriceList, error) {
	matches := lineRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("plumbcore: no price lines found")
	}

	pl := &suppliers.PriceList{
		Supplier:  s.Key(),
		Source:    "PlumbCore trade price list",
		FetchedAt: time.Now().UTC(),
	}
	for _, m := range matches {
		kw, _ := strconv.ParseFloat(m[4], 64)
		warranty, _ := strconv.Atoi(m[5])
		pl.Items = append(pl.Items, suppliers.PriceListItem{
			Make:          strings.TrimSpace(m[1]),
			Model:         strings.TrimSpace(m[2]),
			Type:          boilerType(m[3]),
			OutputKw:      kw,
			WarrantyYears: warranty,
			PricePence:    parsePence(m[6]),
		})
	}
	return pl, nil
}

func boilerType(s string) catalog.BoilerType {
	switch strings.ToUpper(s) {
	case "SYSTEM":
		return catalog.BoilerSystem
	case "REGULAR":
		return catalog.BoilerRegular
	default:
		return catalog.BoilerCombi
	}
}

// parsePence converts a "1,234.56" price string to integer pence.
func parsePence(s string) int64 {
	s = strings.ReplaceAll(s, ",", "")
	parts := strings.SplitN(s, ".", 2)
	pounds, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0
	}
	pence := pounds * 100
	if len(parts) == 2 {
		frac := parts[1]
		for len(frac) < 2 {
			frac += "0"
		}
		p, err := strconv.ParseInt(frac[:2], 10, 64)
		if err != nil {
			return 0
		}
		pence += p
	}
	return pence
}
