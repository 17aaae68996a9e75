package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/bher20/boilerquote/internal/storage"
)

// Load resolves the catalog a process will price quotes against. Precedence:
// an explicit JSON file path, then the latest stored snapshot, then the
// built-in defaults. The result is validated before it is returned; an
// invalid explicit file is an error rather than a silent fallback, since the
// operator asked for that exact data.
func Load(ctx context.Context, path string, st storage.Storage) (*Catalog, error) {
	if path != "" {
		c, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	if st != nil {
		snap, err := st.GetCatalogSnapshot(ctx)
		if err == nil && snap != nil && len(snap.Payload) > 0 {
			var c Catalog
			if err := json.Unmarshal(snap.Payload, &c); err == nil {
				if verr := c.Validate(); verr == nil {
					log.Printf("catalog: loaded snapshot from storage (source=%s)", snap.Source)
					return &c, nil
				} else {
					log.Printf("catalog: stored snapshot failed validation: %v; using defaults", verr)
				}
			} else {
				log.Printf("catalog: stored snapshot unreadable: %v; using defaults", err)
			}
		}
	}

	c := Default()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("built-in catalog invalid: %w", err)
	}
	return c, nil
}

// LoadFile reads and validates a JSON catalog file.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return &c, nil
}
