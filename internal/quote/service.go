package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bher20/boilerquote/internal/catalog"
	"github.com/bher20/boilerquote/internal/storage"
)

// Service wraps the pure quote computation with the catalog it prices
// against and, optionally, a storage backend that records computed quotes
// for the order flow.
type Service struct {
	cat   *catalog.Catalog
	store storage.Storage // may be nil: compute-only mode
}

// NewService returns a compute-only Service: quotes are calculated and
// returned but never recorded.
func NewService(cat *catalog.Catalog) *Service {
	return &Service{cat: cat}
}

// NewServiceWithStorage returns a Service that also persists each computed
// quote so the order summary and checkout can fetch it later by ID.
func NewServiceWithStorage(cat *catalog.Catalog, st storage.Storage) *Service {
	return &Service{cat: cat, store: st}
}

// Catalog exposes the immutable catalog the service prices against.
func (s *Service) Catalog() *catalog.Catalog {
	return s.cat
}

// Compute runs the full quote pipeline for a clean profile: boiler type,
// size, cylinder, complexity, per-tier catalog selection and price
// breakdowns, scenario match and explanation. Pure and deterministic:
// identical profiles against an unchanged catalog produce byte-identical
// results.
func Compute(cat *catalog.Catalog, p PropertyProfile) (*QuoteResult, error) {
	boilerType := DetermineBoilerType(p)
	sizeKw := CalculateBoilerSize(p)

	cylinder := 0
	if boilerType != catalog.BoilerCombi {
		cylinder = CalculateCylinderSize(p)
	}

	cx := CalculateInstallationComplexity(p, boilerType)

	options, err := FindBoilerOptions(cat, boilerType, sizeKw)
	if err != nil {
		return nil, err
	}

	quotes := make([]BoilerRecommendation, 0, 3)
	for _, tier := range catalog.Tiers() {
		boiler := options[tier]
		quotes = append(quotes, BoilerRecommendation{
			Tier:          tier,
			Boiler:        boiler,
			Breakdown:     CalculatePricingBreakdown(cat, p, boiler, cylinder, cx),
			IsRecommended: tier == RecommendedTier,
		})
	}

	scenario := FindMatchingScenario(p)

	res := &QuoteResult{
		RecommendedBoilerType:  boilerType,
		RecommendedBoilerSize:  sizeKw,
		InstallationComplexity: cx,
		Quotes:                 quotes,
		Explanation:            BuildExplanation(p, boilerType, sizeKw, cylinder, cx, scenario),
		ScenarioMatch:          scenario,
	}
	if cylinder > 0 {
		res.CylinderSize = &cylinder
	}
	return res, nil
}

// Calculate computes a quote and, when a storage backend is configured,
// records it. The returned ID is empty in compute-only mode. Persistence is
// best-effort for the caller's convenience; a storage failure does not fail
// the quote.
func (s *Service) Calculate(ctx context.Context, p PropertyProfile) (*QuoteResult, string, error) {
	res, err := Compute(s.cat, p)
	if err != nil {
		return nil, "", err
	}

	id := ""
	if s.store != nil {
		id = uuid.New().String()
		payload, merr := json.Marshal(res)
		profileJSON, perr := json.Marshal(p)
		if merr == nil && perr == nil {
			_ = s.store.SaveQuote(ctx, storage.QuoteRecord{
				ID:        id,
				Profile:   profileJSON,
				Payload:   payload,
				Postcode:  p.Postcode,
				CreatedAt: time.Now().UTC(),
			})
		}
	}

	return res, id, nil
}

// Get fetches a previously recorded quote result by ID. Returns nil when
// the quote is unknown.
func (s *Service) Get(ctx context.Context, id string) (*QuoteResult, error) {
	if s.store == nil {
		return nil, fmt.Errorf("quote storage not configured")
	}
	rec, err := s.store.GetQuote(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	var res QuoteResult
	if err := json.Unmarshal(rec.Payload, &res); err != nil {
		return nil, fmt.Errorf("decode stored quote %s: %w", id, err)
	}
	return &res, nil
}
