// Package search implements the nearby-facility aggregation and
// deduplication engine: a bounded sequence of category x radius queries
// against the places API, merged into a ranked, distance-bounded facility
// list.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/gramsetu/carefinder/internal/geo"
	"github.com/gramsetu/carefinder/internal/metrics"
	"github.com/gramsetu/carefinder/internal/models"
	"github.com/gramsetu/carefinder/internal/places"
)

// Fallback literals used when the provider omits a field.
const (
	phoneNotAvailable   = "Not available"
	addressNotAvailable = "Address not available"
)

// DefaultQueryDelay is the politeness delay between consecutive places
// queries, chosen to stay under the provider's rate limits.
const DefaultQueryDelay = 100 * time.Millisecond

// PlacesAPI is the slice of the places client the engine depends on.
type PlacesAPI interface {
	Search(
		ctx context.Context,
		category string,
		center models.Coordinates,
		radiusMeters int,
		limit int,
	) ([]places.RawPlace, error)
}

// Pass is one radius step of the search-space expansion.
type Pass struct {
	RadiusMeters int // Circle radius for this pass.
	Limit        int // Per-query result limit.
}

// Profile parameterizes one search: which kind of facility, which categories
// in priority order, which radius passes, and the retention bounds.
type Profile struct {
	Kind          models.Kind // hospital or pharmacy.
	Categories    []string    // Places-API categories, highest priority first.
	Passes        []Pass      // Radius passes in ascending radius.
	MaxDistanceKm float64     // Facilities beyond this distance are discarded.
	Ceiling       int         // Maximum size of the result set.
}

// Engine merges multi-pass places queries into a deduplicated, ranked
// facility list. One engine serves all kinds; the profile selects behavior.
type Engine struct {
	log        *slog.Logger
	places     PlacesAPI
	metrics    *metrics.Metrics
	queryDelay time.Duration
}

// NewEngine creates a search engine. queryDelay is the pause between
// consecutive external queries; pass 0 to disable pacing (tests).
func NewEngine(log *slog.Logger, placesAPI PlacesAPI, appMetrics *metrics.Metrics, queryDelay time.Duration) *Engine {
	return &Engine{
		log:        log,
		places:     placesAPI,
		metrics:    appMetrics,
		queryDelay: queryDelay,
	}
}

// Search runs the category-major, radius-minor query loop and returns the
// deduplicated facility set sorted ascending by distance, truncated to the
// profile's ceiling.
//
// Search never fails: a query that errors or returns nothing is logged and
// skipped, and the worst case is an empty slice, which callers replace with
// static fallback data. Earlier categories and narrower radii win both the
// ceiling race and the dedup race (first seen wins).
func (e *Engine) Search(ctx context.Context, origin models.Coordinates, profile Profile) []models.Facility {
	start := time.Now()

	facilities := make([]models.Facility, 0, profile.Ceiling)
	seen := make(map[string]struct{})
	queries := 0

outer:
	for _, category := range profile.Categories {
		for _, pass := range profile.Passes {
			if ctx.Err() != nil {
				e.log.WarnContext(ctx, "Search cancelled mid-pass", "category", category)
				break outer
			}

			if queries > 0 {
				e.pause(ctx)
			}
			queries++

			raws, err := e.places.Search(ctx, category, origin, pass.RadiusMeters, pass.Limit)
			if err != nil {
				// One bad network call must not fail the whole search.
				e.log.ErrorContext(ctx, "Places query failed, skipping pass",
					"category", category, "radius_m", pass.RadiusMeters, "error", err)
				e.metrics.PlacesAPIErrors.Inc()
				continue
			}

			for _, raw := range raws {
				distance := geo.Distance(origin, raw.Coordinates)
				if distance > profile.MaxDistanceKm {
					continue
				}

				name := displayName(raw, distance)
				key := dedupKey(name, raw.Coordinates)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				emergency, description := describeFacility(profile.Kind, name)
				facilities = append(facilities, models.Facility{
					Name:             name,
					Address:          formattedAddress(raw),
					Coordinates:      raw.Coordinates,
					DistanceKm:       distance,
					Phone:            phoneOrFallback(raw),
					Category:         category,
					Kind:             profile.Kind,
					EmergencyCapable: emergency,
					Facilities:       description,
				})
			}

			if len(facilities) >= profile.Ceiling {
				break outer
			}
		}

		if len(facilities) >= profile.Ceiling {
			break
		}
	}

	// Stable sort keeps discovery order for equal distances.
	sort.SliceStable(facilities, func(i, j int) bool {
		return facilities[i].DistanceKm < facilities[j].DistanceKm
	})
	if len(facilities) > profile.Ceiling {
		facilities = facilities[:profile.Ceiling]
	}

	e.metrics.SearchSeconds.WithLabelValues(string(profile.Kind)).Observe(time.Since(start).Seconds())
	e.log.InfoContext(ctx, "Facility search finished",
		"kind", profile.Kind, "queries", queries, "results", len(facilities))

	return facilities
}

// pause sleeps for the configured inter-query delay, returning early when the
// context is cancelled.
func (e *Engine) pause(ctx context.Context) {
	if e.queryDelay <= 0 {
		return
	}
	timer := time.NewTimer(e.queryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// displayName picks a human-usable name for a raw result: explicit name,
// then first address line, then street, then a synthetic name. Provider IDs
// that are purely numeric or shorter than three characters never surface.
func displayName(raw places.RawPlace, distanceKm float64) string {
	if name := strings.TrimSpace(raw.Name); usableName(name) {
		return name
	}
	if line := strings.TrimSpace(raw.AddressLine1); line != "" {
		return line
	}
	if street := strings.TrimSpace(raw.Street); street != "" {
		return street
	}
	return fmt.Sprintf("Facility %d", int(math.Round(distanceKm*10)))
}

// usableName rejects empty, purely numeric and very short names.
func usableName(name string) bool {
	if len([]rune(name)) < 3 {
		return false
	}
	for _, r := range name {
		if !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// dedupKey collapses near-duplicate discoveries from overlapping passes:
// normalized name plus coordinates rounded to 3 decimals (~111 m grid).
func dedupKey(name string, coords models.Coordinates) string {
	var norm strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			norm.WriteRune(r)
		}
	}
	return fmt.Sprintf("%s_%.3f_%.3f", norm.String(), coords.Latitude, coords.Longitude)
}

// describeFacility infers emergency capability and a capability summary from
// the facility name.
func describeFacility(kind models.Kind, name string) (bool, string) {
	if kind == models.KindPharmacy {
		return false, "Prescription dispensing, OTC medicines, Basic first aid"
	}

	lower := strings.ToLower(name)
	if strings.Contains(lower, "hospital") || strings.Contains(lower, "medical college") {
		return true, "ICU, Emergency, Laboratory, Pharmacy, X-Ray"
	}
	return false, "OPD, Consultation, Basic diagnostics"
}

func formattedAddress(raw places.RawPlace) string {
	if addr := strings.TrimSpace(raw.Formatted); addr != "" {
		return addr
	}
	if line := strings.TrimSpace(raw.AddressLine1); line != "" {
		return line
	}
	return addressNotAvailable
}

func phoneOrFallback(raw places.RawPlace) string {
	if phone := strings.TrimSpace(raw.Phone); phone != "" {
		return phone
	}
	return phoneNotAvailable
}
