package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gramsetu/carefinder/internal/geocoding"
	"github.com/gramsetu/carefinder/internal/metrics"
	"github.com/gramsetu/carefinder/internal/models"
	"github.com/gramsetu/carefinder/internal/repository"
	"github.com/gramsetu/carefinder/internal/search"
)

// ErrUnknownKind is returned when a request names a facility kind the finder
// has no profile for.
var ErrUnknownKind = errors.New("unknown facility kind")

// Searcher is the slice of the search engine the finder depends on.
type Searcher interface {
	Search(ctx context.Context, origin models.Coordinates, profile search.Profile) []models.Facility
}

// Enricher is the slice of the enrichment pipeline the finder depends on.
type Enricher interface {
	Doctors(ctx context.Context, facility models.Facility, patient models.PatientContext) ([]models.Doctor, bool)
	Inventory(ctx context.Context, facility models.Facility) ([]models.InventoryItem, bool)
}

// Recommender is the slice of the advisor the finder depends on.
type Recommender interface {
	Recommend(
		ctx context.Context,
		candidates []models.Facility,
		patient models.PatientContext,
		symptoms string,
	) models.Recommendation
}

// FindRequest carries the location fragments and patient context of one
// nearby-facility lookup.
type FindRequest struct {
	District string                `json:"district"`
	Pincode  string                `json:"pincode"`
	State    string                `json:"state"`
	Kind     models.Kind           `json:"kind"`
	Patient  models.PatientContext `json:"patient"`
}

// Finder orchestrates one request: geocode, search, enrich, persist. Every
// upstream failure short of the database degrades to fallback data so the
// caller always gets a usable facility list.
type Finder struct {
	log      *slog.Logger
	repo     repository.Interface
	geocoder geocoding.Provider
	engine   Searcher
	enricher Enricher
	advisor  Recommender
	metrics  *metrics.Metrics
	profiles map[models.Kind]search.Profile
}

// NewFinder creates a finder service.
func NewFinder(
	log *slog.Logger,
	repo repository.Interface,
	geocoder geocoding.Provider,
	engine Searcher,
	enricher Enricher,
	advisor Recommender,
	appMetrics *metrics.Metrics,
	profiles map[models.Kind]search.Profile,
) *Finder {
	return &Finder{
		log:      log,
		repo:     repo,
		geocoder: geocoder,
		engine:   engine,
		enricher: enricher,
		advisor:  advisor,
		metrics:  appMetrics,
		profiles: profiles,
	}
}

// FindNearby resolves the request location, searches for facilities of the
// requested kind and attaches enriched children to each. A persistence
// failure is the only error surfaced; everything upstream degrades to mock
// data.
func (f *Finder) FindNearby(ctx context.Context, req FindRequest) ([]models.EnrichedFacility, error) {
	profile, ok := f.profiles[req.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}

	origin := f.resolveOrigin(ctx, req)

	facilities := f.engine.Search(ctx, origin, profile)
	if len(facilities) == 0 {
		f.log.WarnContext(ctx, "Search returned no facilities, substituting mock data",
			"kind", req.Kind, "district", req.District)
		f.metrics.SearchesTotal.WithLabelValues(string(req.Kind), "mock").Inc()
		facilities = mockFacilities(req.Kind, origin)
	} else {
		f.metrics.SearchesTotal.WithLabelValues(string(req.Kind), "ok").Inc()
	}

	enriched := make([]models.EnrichedFacility, 0, len(facilities))
	for _, facility := range facilities {
		entry := models.EnrichedFacility{Facility: facility}
		switch req.Kind {
		case models.KindPharmacy:
			entry.Inventory, entry.HasRealData = f.enricher.Inventory(ctx, facility)
		default:
			entry.Doctors, entry.HasRealData = f.enricher.Doctors(ctx, facility, req.Patient)
		}
		enriched = append(enriched, entry)
	}

	if _, err := f.repo.SaveSearchResults(ctx, enriched); err != nil {
		return nil, fmt.Errorf("failed to persist search results: %w", err)
	}

	return enriched, nil
}

// Recommend delegates to the advisor, which never fails.
func (f *Finder) Recommend(
	ctx context.Context,
	candidates []models.Facility,
	patient models.PatientContext,
	symptoms string,
) models.Recommendation {
	return f.advisor.Recommend(ctx, candidates, patient, symptoms)
}

// resolveOrigin geocodes the request's address fragments, degrading to the
// static per-state coordinate table on any failure. Geocoding trouble never
// propagates past this point.
func (f *Finder) resolveOrigin(ctx context.Context, req FindRequest) models.Coordinates {
	query := geocoding.BuildQuery(req.District, req.Pincode, req.State)
	if query == "" {
		f.metrics.GeocodeFallbacks.Inc()
		return mockCoordinates(req.State)
	}

	coords, err := f.geocoder.Geocode(ctx, query)
	if err != nil {
		f.log.WarnContext(ctx, "Geocoding failed, using static coordinates",
			"query", query, "error", err)
		f.metrics.GeocodeFallbacks.Inc()
		return mockCoordinates(req.State)
	}

	return *coords
}
