package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SearchesTotal      *prometheus.CounterVec
	PlacesAPIErrors    prometheus.Counter
	GeocodeFallbacks   prometheus.Counter
	EnrichmentOutcomes *prometheus.CounterVec
	GenerationSeconds  *prometheus.HistogramVec
	SearchSeconds      *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		SearchesTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "carefinder_searches_total",
			Help: "Total number of facility searches, by kind and outcome.",
		}, []string{"kind", "status"}),
		PlacesAPIErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "carefinder_places_api_errors_total",
			Help: "Total number of errors received from the places API.",
		}),
		GeocodeFallbacks: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "carefinder_geocode_fallbacks_total",
			Help: "Total number of searches that fell back to static coordinates.",
		}),
		EnrichmentOutcomes: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "carefinder_enrichment_outcomes_total",
			Help: "Enrichment results by source (generated or fallback).",
		}, []string{"source"}),
		GenerationSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "carefinder_generation_request_duration_seconds",
			Help:    "Duration of requests to the text-generation API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"task"}),
		SearchSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "carefinder_search_duration_seconds",
			Help:    "End-to-end duration of one facility search.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
	}
}
