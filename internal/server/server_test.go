package server_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gramsetu/carefinder/internal/models"
	"github.com/gramsetu/carefinder/internal/server"
	"github.com/gramsetu/carefinder/internal/service"
	"github.com/gramsetu/carefinder/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (http.Handler, *mocks.FinderService) {
	t.Helper()
	mockFinder := mocks.NewFinderService(t)
	srv := server.New(slog.Default(), mockFinder)

	return srv.Router(), mockFinder
}

func doRequest(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandleFindNearby(t *testing.T) {
	t.Run("successful lookup", func(t *testing.T) {
		router, mockFinder := newRouter(t)

		enriched := []models.EnrichedFacility{
			{Facility: models.Facility{Name: "Grace Hospital", DistanceKm: 1.2, Kind: models.KindHospital}},
		}
		mockFinder.On("FindNearby", mock.Anything, service.FindRequest{
			District: "Nagpur",
			Pincode:  "440001",
			State:    "Maharashtra",
			Kind:     models.KindHospital,
			Patient:  models.PatientContext{Age: 40, Gender: "female"},
		}).Return(enriched, nil).Once()

		body := `{"district": "Nagpur", "pincode": "440001", "state": "Maharashtra",
			"kind": "hospital", "patient": {"age": 40, "gender": "female"}}`
		rec := doRequest(t, router, "/api/facilities/nearby", body)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

		var payload struct {
			Facilities []models.EnrichedFacility `json:"facilities"`
			Count      int                       `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, 1, payload.Count)
		assert.Equal(t, "Grace Hospital", payload.Facilities[0].Name)
	})

	t.Run("kind defaults to hospital", func(t *testing.T) {
		router, mockFinder := newRouter(t)

		mockFinder.On("FindNearby", mock.Anything, mock.MatchedBy(func(req service.FindRequest) bool {
			return req.Kind == models.KindHospital
		})).Return([]models.EnrichedFacility{}, nil).Once()

		rec := doRequest(t, router, "/api/facilities/nearby", `{"district": "Nagpur"}`)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid kind", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := doRequest(t, router, "/api/facilities/nearby", `{"district": "Nagpur", "kind": "dentist"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "kind must be")
	})

	t.Run("missing location", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := doRequest(t, router, "/api/facilities/nearby", `{"kind": "hospital"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "district, pincode or state")
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := doRequest(t, router, "/api/facilities/nearby", `{"district": `)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid JSON body")
	})

	t.Run("finder failure", func(t *testing.T) {
		router, mockFinder := newRouter(t)

		mockFinder.On("FindNearby", mock.Anything, mock.Anything).
			Return(nil, assert.AnError).Once()

		rec := doRequest(t, router, "/api/facilities/nearby", `{"district": "Nagpur"}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "facility lookup failed")
	})
}

func TestHandleRecommend(t *testing.T) {
	t.Run("successful recommendation", func(t *testing.T) {
		router, mockFinder := newRouter(t)

		want := models.Recommendation{
			RecommendedName:  "Grace Hospital",
			Reason:           "Nearest emergency-capable facility.",
			UrgencyLevel:     models.UrgencyUrgent,
			SuggestedTests:   []string{"ECG"},
			AlternativeNames: []string{},
		}
		mockFinder.On("Recommend", mock.Anything,
			[]models.Facility{{Name: "Grace Hospital", DistanceKm: 1.2}},
			models.PatientContext{Age: 61, Gender: "male"},
			"chest pain").Return(want).Once()

		body := `{"facilities": [{"name": "Grace Hospital", "distanceKm": 1.2}],
			"patient": {"age": 61, "gender": "male"}, "symptoms": "chest pain"}`
		rec := doRequest(t, router, "/api/recommend", body)

		require.Equal(t, http.StatusOK, rec.Code)

		var got models.Recommendation
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, want, got)
	})

	t.Run("missing symptoms", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := doRequest(t, router, "/api/recommend", `{"facilities": [], "symptoms": "   "}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "symptoms text is required")
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := doRequest(t, router, "/api/recommend", `not json`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
