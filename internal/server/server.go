// Package server is the thin HTTP surface around the finder core: request
// validation, JSON shaping, nothing else.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gramsetu/carefinder/internal/models"
	"github.com/gramsetu/carefinder/internal/service"
)

// FinderService is the core contract the HTTP layer marshals to.
type FinderService interface {
	FindNearby(ctx context.Context, req service.FindRequest) ([]models.EnrichedFacility, error)
	Recommend(
		ctx context.Context,
		candidates []models.Facility,
		patient models.PatientContext,
		symptoms string,
	) models.Recommendation
}

// Server holds the HTTP handlers for the finder API.
type Server struct {
	log    *slog.Logger
	finder FinderService
}

// New creates an HTTP server around the finder service.
func New(log *slog.Logger, finder FinderService) *Server {
	return &Server{log: log, finder: finder}
}

// Router assembles the API routes with the shared middleware stack.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(requestID)
	router.Use(requestLogger(s.log))

	router.Route("/api", func(r chi.Router) {
		r.Post("/facilities/nearby", s.handleFindNearby)
		r.Post("/recommend", s.handleRecommend)
	})

	return router
}

func (s *Server) handleFindNearby(w http.ResponseWriter, r *http.Request) {
	var req service.FindRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(s.log, w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Kind == "" {
		req.Kind = models.KindHospital
	}
	if !req.Kind.Valid() {
		respondWithError(s.log, w, http.StatusBadRequest, "kind must be \"hospital\" or \"pharmacy\"")
		return
	}
	if req.District == "" && req.Pincode == "" && req.State == "" {
		respondWithError(s.log, w, http.StatusBadRequest, "at least one of district, pincode or state is required")
		return
	}

	facilities, err := s.finder.FindNearby(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownKind) {
			respondWithError(s.log, w, http.StatusBadRequest, err.Error())
			return
		}
		s.log.ErrorContext(r.Context(), "Facility lookup failed", "error", err)
		respondWithError(s.log, w, http.StatusInternalServerError, "facility lookup failed")
		return
	}

	respondWithJSON(s.log, w, http.StatusOK, map[string]any{
		"facilities": facilities,
		"count":      len(facilities),
	})
}

type recommendRequest struct {
	Facilities []models.Facility     `json:"facilities"`
	Patient    models.PatientContext `json:"patient"`
	Symptoms   string                `json:"symptoms"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(s.log, w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.Symptoms) == "" {
		respondWithError(s.log, w, http.StatusBadRequest, "symptoms text is required")
		return
	}

	recommendation := s.finder.Recommend(r.Context(), req.Facilities, req.Patient, req.Symptoms)

	respondWithJSON(s.log, w, http.StatusOK, recommendation)
}
