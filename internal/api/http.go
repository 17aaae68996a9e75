package api

import (
	"context"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bher20/boilerquote/internal/api/swagger"
	"github.com/bher20/boilerquote/internal/catalog"
	"github.com/bher20/boilerquote/internal/config"
	migrate "github.com/bher20/boilerquote/internal/migrate"
	"github.com/bher20/boilerquote/internal/notification"
	"github.com/bher20/boilerquote/internal/quote"
	"github.com/bher20/boilerquote/internal/storage"
	"github.com/bher20/boilerquote/internal/ui"
)

// NewMux constructs the HTTP mux, wiring in the quote service, catalog
// endpoints, notification settings, metrics and health endpoints.
func NewMux() *http.ServeMux {
	cfg := config.FromEnv()

	// Optional auto-migration: run `goose up` on startup when enabled.
	if cfg.AutoMigrate {
		if err := migrate.Up(context.Background(), cfg.DBDriver, cfg.DBDSN); err != nil {
			log.Printf("auto-migration failed: %v", err)
		}
	}

	ctx := context.Background()
	st, err := storage.Open(ctx, storage.Config{Driver: cfg.DBDriver, DSN: cfg.DBDSN})
	if err != nil {
		log.Printf("storage.Open failed (driver=%s dsn=%s): %v; falling back to in-memory storage", cfg.DBDriver, cfg.DBDSN, err)
		st = storage.NewMemory()
	}

	cat, err := catalog.Load(ctx, cfg.CatalogPath, st)
	if err != nil {
		log.Printf("catalog load failed: %v; falling back to built-in catalog", err)
		cat = catalog.Default()
	}

	log.Printf("quote service using storage backend driver=%s", cfg.DBDriver)
	svc := quote.NewServiceWithStorage(cat, st)

	notifSvc := notification.NewService(st)

	mux := http.NewServeMux()

	// Metrics endpoint.
	mux.Handle("/metrics", promhttp.Handler())

	// Health / readiness / liveness.
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			log.Printf("readyz: db ping failed: %v", err)
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	mux.HandleFunc("/livez", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("live"))
	})

	// Quote API.
	RegisterQuoteRoutes(mux, svc, notifSvc)

	// Catalog inspection endpoints.
	RegisterCatalogRoutes(mux, svc)

	// Email settings.
	RegisterNotificationRoutes(mux, notifSvc)

	// Swagger UI.
	mux.Handle("/swagger/", http.StripPrefix("/swagger", swagger.Handler()))

	// Web UI
	mux.Handle("/ui/", http.StripPrefix("/ui/", ui.Handler()))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/ui/", http.StatusFound)
	})

	return mux
}

// Serve starts the HTTP server on the configured port.
func Serve() error {
	mux := NewMux()
	addr := ":" + config.FromEnv().Port
	log.Printf("boilerquote listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}
