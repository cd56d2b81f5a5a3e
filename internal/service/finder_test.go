package service_test

import (
	"log/slog"
	"testing"

	"github.com/gramsetu/carefinder/internal/metrics"
	"github.com/gramsetu/carefinder/internal/models"
	"github.com/gramsetu/carefinder/internal/search"
	"github.com/gramsetu/carefinder/internal/service"
	"github.com/gramsetu/carefinder/test/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type finderFixture struct {
	finder   *service.Finder
	repo     *mocks.Interface
	geocoder *mocks.Provider
	engine   *mocks.Searcher
	enricher *mocks.Enricher
	advisor  *mocks.Recommender
	profiles map[models.Kind]search.Profile
}

func newFinder(t *testing.T) finderFixture {
	t.Helper()

	fx := finderFixture{
		repo:     mocks.NewInterface(t),
		geocoder: mocks.NewProvider(t),
		engine:   mocks.NewSearcher(t),
		enricher: mocks.NewEnricher(t),
		advisor:  mocks.NewRecommender(t),
		profiles: service.BuildProfiles(service.ProfileConfig{
			HospitalCeiling: 10,
			PharmacyCeiling: 12,
			HospitalMaxKm:   15,
			PharmacyMaxKm:   10,
			PerQueryLimit:   20,
		}),
	}
	fx.finder = service.NewFinder(
		slog.Default(),
		fx.repo,
		fx.geocoder,
		fx.engine,
		fx.enricher,
		fx.advisor,
		metrics.NewMetrics(prometheus.NewRegistry()),
		fx.profiles,
	)

	return fx
}

func hospitalRequest() service.FindRequest {
	return service.FindRequest{
		District: "Nagpur",
		Pincode:  "440001",
		State:    "Maharashtra",
		Kind:     models.KindHospital,
		Patient:  models.PatientContext{Age: 40, Gender: "female"},
	}
}

func TestFindNearby(t *testing.T) {
	geocoded := models.Coordinates{Latitude: 21.1458, Longitude: 79.0882}
	foundHospital := models.Facility{
		Name:        "Grace Hospital",
		Coordinates: models.Coordinates{Latitude: 21.15, Longitude: 79.09},
		DistanceKm:  1.2,
		Kind:        models.KindHospital,
	}
	roster := []models.Doctor{{Name: "Dr. Ramesh Kumar", Specialization: "General Medicine"}}

	t.Run("happy path attaches doctors and persists", func(t *testing.T) {
		fx := newFinder(t)
		ctx := t.Context()
		req := hospitalRequest()

		fx.geocoder.On("Geocode", ctx, "Nagpur, 440001, Maharashtra, India").
			Return(&geocoded, nil).Once()
		fx.engine.On("Search", ctx, geocoded, fx.profiles[models.KindHospital]).
			Return([]models.Facility{foundHospital}).Once()
		fx.enricher.On("Doctors", ctx, foundHospital, req.Patient).
			Return(roster, true).Once()
		fx.repo.On("SaveSearchResults", ctx, mock.Anything).
			Return([]int64{1}, nil).Once()

		enriched, err := fx.finder.FindNearby(ctx, req)

		require.NoError(t, err)
		require.Len(t, enriched, 1)
		assert.Equal(t, "Grace Hospital", enriched[0].Name)
		assert.Equal(t, roster, enriched[0].Doctors)
		assert.True(t, enriched[0].HasRealData)
	})

	t.Run("pharmacy kind attaches inventory", func(t *testing.T) {
		fx := newFinder(t)
		ctx := t.Context()
		req := hospitalRequest()
		req.Kind = models.KindPharmacy

		pharmacy := models.Facility{Name: "Jan Aushadhi Kendra", Kind: models.KindPharmacy}
		stock := []models.InventoryItem{{MedicineName: "Crocin 650"}}

		fx.geocoder.On("Geocode", ctx, mock.Anything).Return(&geocoded, nil).Once()
		fx.engine.On("Search", ctx, geocoded, fx.profiles[models.KindPharmacy]).
			Return([]models.Facility{pharmacy}).Once()
		fx.enricher.On("Inventory", ctx, pharmacy).Return(stock, true).Once()
		fx.repo.On("SaveSearchResults", ctx, mock.Anything).Return([]int64{1}, nil).Once()

		enriched, err := fx.finder.FindNearby(ctx, req)

		require.NoError(t, err)
		require.Len(t, enriched, 1)
		assert.Equal(t, stock, enriched[0].Inventory)
		assert.Empty(t, enriched[0].Doctors)
	})

	t.Run("geocode failure degrades to static state coordinates", func(t *testing.T) {
		fx := newFinder(t)
		ctx := t.Context()
		req := hospitalRequest()

		// Maharashtra's static fallback coordinate.
		fallback := models.Coordinates{Latitude: 19.0760, Longitude: 72.8777}

		fx.geocoder.On("Geocode", ctx, mock.Anything).Return(nil, assert.AnError).Once()
		fx.engine.On("Search", ctx, fallback, fx.profiles[models.KindHospital]).
			Return([]models.Facility{foundHospital}).Once()
		fx.enricher.On("Doctors", ctx, foundHospital, req.Patient).Return(roster, false).Once()
		fx.repo.On("SaveSearchResults", ctx, mock.Anything).Return([]int64{1}, nil).Once()

		enriched, err := fx.finder.FindNearby(ctx, req)

		require.NoError(t, err)
		require.Len(t, enriched, 1)
	})

	t.Run("empty search substitutes mock facilities", func(t *testing.T) {
		fx := newFinder(t)
		ctx := t.Context()
		req := hospitalRequest()

		fx.geocoder.On("Geocode", ctx, mock.Anything).Return(&geocoded, nil).Once()
		fx.engine.On("Search", ctx, geocoded, fx.profiles[models.KindHospital]).
			Return([]models.Facility{}).Once()
		fx.enricher.On("Doctors", ctx, mock.Anything, req.Patient).Return(roster, false).Times(3)
		fx.repo.On("SaveSearchResults", ctx, mock.Anything).Return([]int64{1, 2, 3}, nil).Once()

		enriched, err := fx.finder.FindNearby(ctx, req)

		require.NoError(t, err)
		require.Len(t, enriched, 3)
		names := []string{enriched[0].Name, enriched[1].Name, enriched[2].Name}
		assert.Contains(t, names, "District Government Hospital")
		for _, entry := range enriched {
			assert.Equal(t, models.KindHospital, entry.Kind)
			assert.Greater(t, entry.DistanceKm, 0.0)
		}
	})

	t.Run("persistence failure is surfaced", func(t *testing.T) {
		fx := newFinder(t)
		ctx := t.Context()
		req := hospitalRequest()

		fx.geocoder.On("Geocode", ctx, mock.Anything).Return(&geocoded, nil).Once()
		fx.engine.On("Search", ctx, geocoded, fx.profiles[models.KindHospital]).
			Return([]models.Facility{foundHospital}).Once()
		fx.enricher.On("Doctors", ctx, foundHospital, req.Patient).Return(roster, true).Once()
		fx.repo.On("SaveSearchResults", ctx, mock.Anything).Return(nil, assert.AnError).Once()

		_, err := fx.finder.FindNearby(ctx, req)

		require.Error(t, err)
		require.ErrorContains(t, err, "persist")
	})

	t.Run("unknown kind", func(t *testing.T) {
		fx := newFinder(t)
		req := hospitalRequest()
		req.Kind = "dentist"

		_, err := fx.finder.FindNearby(t.Context(), req)

		require.ErrorIs(t, err, service.ErrUnknownKind)
	})

	t.Run("blank location skips geocoding entirely", func(t *testing.T) {
		fx := newFinder(t)
		ctx := t.Context()
		req := service.FindRequest{Kind: models.KindHospital}

		// Nagpur default when no state is given.
		fallback := models.Coordinates{Latitude: 21.1458, Longitude: 79.0882}

		fx.engine.On("Search", ctx, fallback, fx.profiles[models.KindHospital]).
			Return([]models.Facility{foundHospital}).Once()
		fx.enricher.On("Doctors", ctx, foundHospital, req.Patient).Return(roster, false).Once()
		fx.repo.On("SaveSearchResults", ctx, mock.Anything).Return([]int64{1}, nil).Once()

		_, err := fx.finder.FindNearby(ctx, req)

		require.NoError(t, err)
		fx.geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	})
}

func TestRecommend(t *testing.T) {
	fx := newFinder(t)
	ctx := t.Context()

	candidates := []models.Facility{{Name: "Grace Hospital", DistanceKm: 1.2}}
	patient := models.PatientContext{Age: 61, Gender: "male"}
	want := models.Recommendation{
		RecommendedName: "Grace Hospital",
		Reason:          "Nearest emergency-capable facility.",
		UrgencyLevel:    models.UrgencyUrgent,
	}

	fx.advisor.On("Recommend", ctx, candidates, patient, "breathlessness").Return(want).Once()

	got := fx.finder.Recommend(ctx, candidates, patient, "breathlessness")

	assert.Equal(t, want, got)
}
