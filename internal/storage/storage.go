package storage

import "context"

// Storage abstracts persistence for catalog snapshots, computed quotes and
// service settings. The quote engine itself never writes; persistence is
// the calling layer's concern.
type Storage interface {
	// Catalog snapshots
	GetCatalogSnapshot(ctx context.Context) (*CatalogSnapshot, error)
	SaveCatalogSnapshot(ctx context.Context, snap CatalogSnapshot) error

	// Quotes
	SaveQuote(ctx context.Context, rec QuoteRecord) error
	GetQuote(ctx context.Context, id string) (*QuoteRecord, error)
	ListQuotes(ctx context.Context, limit int) ([]QuoteRecord, error)

	// Settings
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error

	// Email configuration
	GetEmailConfig(ctx context.Context) (*EmailConfig, error)
	SaveEmailConfig(ctx context.Context, cfg EmailConfig) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources (no-op for in-memory).
	Close() error
}
