package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bher20/boilerquote/internal/catalog"
	"github.com/bher20/boilerquote/internal/quote"
	"github.com/bher20/boilerquote/pkg/suppliers"
)

// SupplierDTO represents a price-list supplier in the API.
type SupplierDTO struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// LeadCostDTO is one lead price for a job type in a postcode area.
type LeadCostDTO struct {
	JobType       string `json:"job_type"`
	PostcodeArea  string `json:"postcode_area"`
	LeadCostPence int64  `json:"lead_cost_pence"`
}

// RegisterCatalogRoutes wires read-only catalog inspection endpoints.
func RegisterCatalogRoutes(mux *http.ServeMux, svc *quote.Service) {
	mux.HandleFunc("/catalog/boilers", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		cat := svc.Catalog()
		entries := cat.Boilers
		if t := strings.ToLower(r.URL.Query().Get("type")); t != "" {
			entries = cat.BoilersOfType(catalog.BoilerType(t))
		}
		if tier := strings.ToLower(r.URL.Query().Get("tier")); tier != "" {
			var filtered []catalog.BoilerEntry
			for _, b := range entries {
				if string(b.Tier) == tier {
					filtered = append(filtered, b)
				}
			}
			entries = filtered
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entries)
	})

	mux.HandleFunc("/catalog/suppliers", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var list []SupplierDTO
		for _, s := range suppliers.GetAll() {
			list = append(list, SupplierDTO{Key: s.Key(), Name: s.Name()})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(list)
	})

	mux.HandleFunc("/catalog/lead-costs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		postcode := r.URL.Query().Get("postcode")
		if postcode == "" {
			http.Error(w, "postcode query parameter required", http.StatusBadRequest)
			return
		}
		area := quote.PostcodeArea(postcode)
		cat := svc.Catalog()
		var out []LeadCostDTO
		for _, lc := range cat.LeadCosts {
			if price, ok := cat.LeadPrice(lc.JobType, area); ok {
				out = append(out, LeadCostDTO{JobType: lc.JobType, PostcodeArea: area, LeadCostPence: price})
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	})

	mux.HandleFunc("/catalog/scenarios", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(quote.Scenarios())
	})
}
