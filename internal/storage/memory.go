package storage

import (
	"context"
	"sort"
	"sync"
)

// MemoryStorage is an in-memory Storage implementation, useful for tests
// and simple single-process deployments.
type MemoryStorage struct {
	mu          sync.RWMutex
	catalog     *CatalogSnapshot
	quotes      map[string]QuoteRecord
	settings    map[string]string
	emailConfig *EmailConfig
}

// NewMemory returns an empty MemoryStorage.
func NewMemory() *MemoryStorage {
	return &MemoryStorage{
		quotes:   make(map[string]QuoteRecord),
		settings: make(map[string]string),
	}
}

func (m *MemoryStorage) Close() error { return nil }

func (m *MemoryStorage) Ping(ctx context.Context) error { return nil }

func (m *MemoryStorage) GetCatalogSnapshot(ctx context.Context) (*CatalogSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.catalog == nil {
		return nil, nil
	}
	cp := *m.catalog
	return &cp, nil
}

func (m *MemoryStorage) SaveCatalogSnapshot(ctx context.Context, snap CatalogSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.catalog = &snap
	return nil
}

func (m *MemoryStorage) SaveQuote(ctx context.Context, rec QuoteRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quotes[rec.ID] = rec
	return nil
}

func (m *MemoryStorage) GetQuote(ctx context.Context, id string) (*QuoteRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.quotes[id]
	if !ok {
		return nil, nil
	}
	cp := rec
	return &cp, nil
}

func (m *MemoryStorage) ListQuotes(ctx context.Context, limit int) ([]QuoteRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]QuoteRecord, 0, len(m.quotes))
	for _, rec := range m.quotes {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStorage) GetSetting(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings[key], nil
}

func (m *MemoryStorage) SetSetting(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[key] = value
	return nil
}

func (m *MemoryStorage) GetEmailConfig(ctx context.Context) (*EmailConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.emailConfig == nil {
		return nil, nil
	}
	cp := *m.emailConfig
	return &cp, nil
}

func (m *MemoryStorage) SaveEmailConfig(ctx context.Context, cfg EmailConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emailConfig = &cfg
	return nil
}
