package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bher20/boilerquote/internal/metrics"
	"github.com/bher20/boilerquote/internal/notification"
	"github.com/bher20/boilerquote/internal/quote"
)

// CalculateResponse wraps a quote result with its persisted identifier.
type CalculateResponse struct {
	QuoteID string `json:"quote_id,omitempty"`
	*quote.QuoteResult
}

// EmailRequest is the body for POST /quotes/{id}/email.
type EmailRequest struct {
	To string `json:"to"`
}

// RegisterQuoteRoutes wires the quote calculation and retrieval endpoints.
func RegisterQuoteRoutes(mux *http.ServeMux, svc *quote.Service, notifSvc *notification.Service) {
	mux.HandleFunc("/quote/calculate", handleCalculate(svc))
	mux.HandleFunc("/quotes/", handleQuotes(svc, notifSvc))
}

func handleCalculate(svc *quote.Service) http.HandlerFunc {
	const path = "/quote/calculate"
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			metrics.RequestDurationSeconds.WithLabelValues(path).Observe(time.Since(start).Seconds())
		}()

		if r.Method != http.MethodPost {
			metrics.RequestErrorsTotal.WithLabelValues(path, "405").Inc()
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var in quote.ProfileInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			metrics.RequestErrorsTotal.WithLabelValues(path, "400").Inc()
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		profile := quote.ParseProfile(in)
		res, id, err := svc.Calculate(r.Context(), profile)
		if err != nil {
			if errors.Is(err, quote.ErrCatalogIncomplete) {
				// Data fault, not a user fault: the catalog is missing
				// entries for a type the rules selected.
				log.Printf("quote calculation failed, catalog incomplete: %v", err)
				metrics.CatalogIncompleteTotal.Inc()
				metrics.RequestErrorsTotal.WithLabelValues(path, "500").Inc()
				http.Error(w, "no boilers available for this configuration", http.StatusInternalServerError)
				return
			}
			log.Printf("quote calculation failed: %v", err)
			metrics.RequestErrorsTotal.WithLabelValues(path, "500").Inc()
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		metrics.QuotesTotal.WithLabelValues(string(res.RecommendedBoilerType)).Inc()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(CalculateResponse{QuoteID: id, QuoteResult: res}); err != nil {
			log.Printf("encode response failed: %v", err)
		}
	}
}

// handleQuotes serves /quotes/{id} and /quotes/{id}/email.
func handleQuotes(svc *quote.Service, notifSvc *notification.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/")
		switch {
		case len(parts) == 2 && parts[0] == "quotes":
			handleGetQuote(svc, parts[1], w, r)
		case len(parts) == 3 && parts[0] == "quotes" && parts[2] == "email":
			handleEmailQuote(svc, notifSvc, parts[1], w, r)
		default:
			http.NotFound(w, r)
		}
	}
}

func handleGetQuote(svc *quote.Service, id string, w http.ResponseWriter, r *http.Request) {
	const path = "/quotes/{id}"
	if r.Method != http.MethodGet {
		metrics.RequestErrorsTotal.WithLabelValues(path, "405").Inc()
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	res, err := svc.Get(r.Context(), id)
	if err != nil || res == nil {
		metrics.RequestErrorsTotal.WithLabelValues(path, "404").Inc()
		http.Error(w, "quote not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(CalculateResponse{QuoteID: id, QuoteResult: res}); err != nil {
		log.Printf("encode response failed: %v", err)
	}
}

func handleEmailQuote(svc *quote.Service, notifSvc *notification.Service, id string, w http.ResponseWriter, r *http.Request) {
	const path = "/quotes/{id}/email"
	if r.Method != http.MethodPost {
		metrics.RequestErrorsTotal.WithLabelValues(path, "405").Inc()
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.To == "" {
		metrics.RequestErrorsTotal.WithLabelValues(path, "400").Inc()
		http.Error(w, "missing recipient", http.StatusBadRequest)
		return
	}
	res, err := svc.Get(r.Context(), id)
	if err != nil || res == nil {
		metrics.RequestErrorsTotal.WithLabelValues(path, "404").Inc()
		http.Error(w, "quote not found", http.StatusNotFound)
		return
	}
	doc := quote.RenderDocument(res)
	if err := notifSvc.SendQuoteDocument(r.Context(), req.To, doc); err != nil {
		log.Printf("send quote %s to %s failed: %v", id, req.To, err)
		metrics.RequestErrorsTotal.WithLabelValues(path, "500").Inc()
		http.Error(w, "sending failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "sent", "to": req.To})
}
