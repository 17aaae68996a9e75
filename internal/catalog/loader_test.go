package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bher20/boilerquote/internal/storage"
)

func TestLoadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")

	src := Default()
	raw, err := json.Marshal(src)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(got.Boilers) != len(src.Boilers) {
		t.Errorf("boiler count = %d, want %d", len(got.Boilers), len(src.Boilers))
	}
	if got.Sundries != src.Sundries {
		t.Errorf("sundries drifted: %+v", got.Sundries)
	}
}

func TestLoadFileRejectsIncompleteCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"boilers": []}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("incomplete catalog file must not load")
	}
}

func TestLoadExplicitFileBeatsSnapshot(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")

	src := Default()
	src.CondensatePump = 99999
	raw, _ := json.Marshal(src)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	st := storage.NewMemory()
	snap, _ := json.Marshal(Default())
	_ = st.SaveCatalogSnapshot(ctx, storage.CatalogSnapshot{Source: "test", Payload: snap, FetchedAt: time.Now()})

	got, err := Load(ctx, path, st)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.CondensatePump != 99999 {
		t.Errorf("explicit file ignored: condensate pump = %d", got.CondensatePump)
	}
}

func TestLoadUsesSnapshotWhenNoFile(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()

	src := Default()
	src.BoilerRelocation = 77777
	raw, _ := json.Marshal(src)
	_ = st.SaveCatalogSnapshot(ctx, storage.CatalogSnapshot{Source: "test", Payload: raw, FetchedAt: time.Now()})

	got, err := Load(ctx, "", st)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.BoilerRelocation != 77777 {
		t.Errorf("snapshot ignored: relocation = %d", got.BoilerRelocation)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()

	// No file, no storage.
	got, err := Load(ctx, "", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.Boilers) == 0 {
		t.Fatal("default catalog is empty")
	}

	// Invalid stored snapshot also falls back.
	st := storage.NewMemory()
	_ = st.SaveCatalogSnapshot(ctx, storage.CatalogSnapshot{Source: "bad", Payload: []byte(`{"boilers":[]}`), FetchedAt: time.Now()})
	got, err = Load(ctx, "", st)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("fallback catalog invalid: %v", err)
	}
}
