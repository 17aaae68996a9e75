package api

import (
	"encoding/json"
	"net/http"

	"github.com/bher20/boilerquote/internal/notification"
	"github.com/bher20/boilerquote/internal/storage"
)

// RegisterNotificationRoutes wires the email configuration endpoints.
func RegisterNotificationRoutes(mux *http.ServeMux, notifSvc *notification.Service) {
	mux.HandleFunc("/settings/email", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			cfg, err := notifSvc.GetConfig(r.Context())
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if cfg == nil {
				cfg = &storage.EmailConfig{}
			}
			// Never echo secrets back out.
			cfg.Password = ""
			cfg.APIKey = ""
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(cfg)

		case http.MethodPut:
			var cfg storage.EmailConfig
			if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
				http.Error(w, "invalid request body", http.StatusBadRequest)
				return
			}
			if err := notifSvc.SaveConfig(r.Context(), cfg); err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/settings/email/test", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			To     string               `json:"to"`
			Config *storage.EmailConfig `json:"config,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.To == "" {
			http.Error(w, "missing recipient", http.StatusBadRequest)
			return
		}
		var err error
		if req.Config != nil {
			err = notifSvc.TestConfig(r.Context(), *req.Config, req.To)
		} else {
			err = notifSvc.Send(r.Context(), req.To, "BoilerQuote test email", "If you can read this, email sending is configured correctly.")
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "sent", "to": req.To})
	})
}
