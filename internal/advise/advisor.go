// Package advise asks the generation collaborator to pick and justify one
// facility for a patient, with a deterministic nearest-first fallback.
package advise

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/gramsetu/carefinder/internal/genai"
	"github.com/gramsetu/carefinder/internal/metrics"
	"github.com/gramsetu/carefinder/internal/models"
)

// maxCandidates bounds the prompt size.
const maxCandidates = 10

// Advisor produces a single recommendation from a ranked candidate list.
type Advisor struct {
	log     *slog.Logger
	gen     genai.Generator
	metrics *metrics.Metrics
}

// NewAdvisor creates a recommendation advisor.
func NewAdvisor(log *slog.Logger, gen genai.Generator, appMetrics *metrics.Metrics) *Advisor {
	return &Advisor{log: log, gen: gen, metrics: appMetrics}
}

// Recommend asks the generator to select one facility for the patient and
// symptoms. It never fails: any request or parse error degrades to the
// deterministic nearest-facility recommendation.
func (a *Advisor) Recommend(
	ctx context.Context,
	candidates []models.Facility,
	patient models.PatientContext,
	symptoms string,
) models.Recommendation {
	if len(candidates) == 0 {
		return models.Recommendation{
			RecommendedName:  "N/A",
			Reason:           "No facilities were found nearby.",
			UrgencyLevel:     models.UrgencyRoutine,
			SuggestedTests:   []string{},
			AlternativeNames: []string{},
		}
	}

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	start := time.Now()
	raw, err := a.gen.Generate(ctx, a.prompt(candidates, patient, symptoms), 0.3, 768)
	a.metrics.GenerationSeconds.WithLabelValues("recommend").Observe(time.Since(start).Seconds())
	if err != nil {
		a.log.WarnContext(ctx, "Recommendation generation failed, using nearest-first fallback", "error", err)
		return fallbackRecommendation(candidates)
	}

	rec, err := genai.ParseJSON[models.Recommendation](raw)
	if err != nil || rec.RecommendedName == "" {
		a.log.WarnContext(ctx, "Recommendation response unparsable, using nearest-first fallback", "error", err)
		return fallbackRecommendation(candidates)
	}

	if !models.ValidUrgency(rec.UrgencyLevel) {
		rec.UrgencyLevel = models.UrgencyRoutine
	}
	if rec.SuggestedTests == nil {
		rec.SuggestedTests = []string{}
	}
	if rec.AlternativeNames == nil {
		rec.AlternativeNames = []string{}
	}

	return rec
}

func (a *Advisor) prompt(candidates []models.Facility, patient models.PatientContext, symptoms string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "A patient (age %d, gender %s) reports: %s\n", patient.Age, patient.Gender, symptoms)
	sb.WriteString("Nearby facilities:\n")
	for i, c := range candidates {
		emergency := "no emergency ward"
		if c.EmergencyCapable {
			emergency = "emergency capable"
		}
		fmt.Fprintf(&sb, "%d. %s - %.1f km, %s, %s\n", i+1, c.Name, c.DistanceKm, c.Facilities, emergency)
	}
	sb.WriteString(`Pick the single best facility for this patient. Return ONLY a JSON object, no prose, with fields:
"recommendedName" (one of the facility names above), "reason" (one sentence),
"urgencyLevel" ("routine", "urgent" or "emergency"),
"suggestedTests" (array of strings), "alternativeNames" (array of up to two other facility names).`)
	return sb.String()
}

// fallbackRecommendation recommends the nearest candidate, deterministically.
func fallbackRecommendation(candidates []models.Facility) models.Recommendation {
	ranked := make([]models.Facility, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	alternatives := []string{}
	for _, alt := range ranked[1:] {
		alternatives = append(alternatives, alt.Name)
		if len(alternatives) == 2 {
			break
		}
	}

	return models.Recommendation{
		RecommendedName:  ranked[0].Name,
		Reason:           fmt.Sprintf("%s is the nearest facility, %.1f km away.", ranked[0].Name, ranked[0].DistanceKm),
		UrgencyLevel:     models.UrgencyRoutine,
		SuggestedTests:   []string{},
		AlternativeNames: alternatives,
	}
}
