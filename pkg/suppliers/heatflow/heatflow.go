package heatflow

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

// Supplier parses the HeatFlow Direct price list. HeatFlow prints compact
// lines with the price in pence and the category as a single letter:
//
//	HF;C;Worcester Bosch;Greenstar 8000 Life 30;30;12;169500
type Supplier struct{}

func (s *Supplier) Key() string { return "heatflow" }

func (s *Supplier) Name() string { return "HeatFlow Direct" }

func (s *Supplier) DefaultPDFPath() string { return "/data/heatflow_prices.pdf" }

func (s *Supplier) ParsePDF(path string) (*suppliers.PriceList, error) {
	text, err := suppliers.ExtractPDFText(path)
	if err != nil {
		return nil, err
	}
	return s.ParseText(text)
}

var lineRe = regexp.MustCompile(`(?m)^HF;([CSR]);([^;]+);([^;]+);(\d+(?:\.\d+)?);(\d+);(\d+)\s*$`)

func (s *Supplier) ParseText(text string) (*suppliers.PriceList, error) {
	matches := lineRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("heatflow: no price lines found")
	}

	pl := &suppliers.PriceList{
		Supplier:  s.Key(),
		Source:    "HeatFlow Direct price list",
		FetchedAt: time.Now().UTC(),
	}
	for _, m := range matches {
		kw, _ := strconv.ParseFloat(m[4], 64)
		warranty, _ := strconv.Atoi(m[5])
		pence, _ := strconv.ParseInt(m[6], 10, 64)
		pl.Items = append(pl.Items, suppliers.PriceListItem{
			Make:          strings.TrimSpace(m[2]),
			Model:         strings.TrimSpace(m[3]),
			Type:          boilerType(m[1]),
			OutputKw:      kw,
			WarrantyYears: warranty,
			PricePence:    pence,
		})
	}
	return pl, nil
}

func boilerType(code string) catalog.BoilerType {
	switch code {
	case "S":
		return catalog.BoilerSystem
	case "R":
		return catalog.BoilerRegular
	default:
		return catalog.BoilerCombi
	}
}
