// Package enrich attaches generated structured child data (doctor rosters,
// medicine inventories) to facilities, one facility at a time, degrading to
// deterministic fallback data whenever the generator fails or misbehaves.
package enrich

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/gramsetu/carefinder/internal/genai"
	"github.com/gramsetu/carefinder/internal/metrics"
	"github.com/gramsetu/carefinder/internal/models"
	"golang.org/x/time/rate"
)

// DefaultCallDelay is the pause between consecutive generation calls,
// chosen to stay under the generation provider's rate limits.
const DefaultCallDelay = 600 * time.Millisecond

// Rating bounds for generated doctor records. The generator is asked to
// respect them in the prompt but is not trusted to.
const (
	minRating = 3.5
	maxRating = 4.0
)

// Pipeline generates child records for facilities sequentially. One pipeline
// is shared by all requests; the limiter keeps the pacing safe under
// concurrent use.
type Pipeline struct {
	log     *slog.Logger
	gen     genai.Generator
	metrics *metrics.Metrics
	limiter *rate.Limiter
}

// NewPipeline creates an enrichment pipeline. callDelay is the minimum gap
// between any two generation calls across the process; pass 0 to disable
// pacing (tests).
func NewPipeline(log *slog.Logger, gen genai.Generator, appMetrics *metrics.Metrics, callDelay time.Duration) *Pipeline {
	limit := rate.Inf
	if callDelay > 0 {
		limit = rate.Every(callDelay)
	}

	return &Pipeline{
		log:     log,
		gen:     gen,
		metrics: appMetrics,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Doctors returns a doctor roster for the facility. The second return value
// reports whether the roster came from the generator (true) or from the
// deterministic fallback (false). The roster is never empty.
func (p *Pipeline) Doctors(
	ctx context.Context,
	facility models.Facility,
	patient models.PatientContext,
) ([]models.Doctor, bool) {
	hospitalLike := isHospitalLike(facility.Name)
	rosterSize := clinicRosterSize
	if hospitalLike {
		rosterSize = hospitalRosterSize
	}

	raw, err := p.generate(ctx, "doctors", doctorPrompt(facility, patient, rosterSize, hospitalLike))
	if err != nil {
		p.log.WarnContext(ctx, "Doctor generation failed, using fallback roster",
			"facility", facility.Name, "error", err)
		p.metrics.EnrichmentOutcomes.WithLabelValues("fallback").Inc()
		return fallbackDoctors(hospitalLike), false
	}

	doctors, err := genai.ParseJSON[[]models.Doctor](raw)
	if err != nil || len(doctors) == 0 {
		p.log.WarnContext(ctx, "Doctor response unparsable, using fallback roster",
			"facility", facility.Name, "error", err)
		p.metrics.EnrichmentOutcomes.WithLabelValues("fallback").Inc()
		return fallbackDoctors(hospitalLike), false
	}

	for i := range doctors {
		clampDoctor(&doctors[i])
	}

	p.metrics.EnrichmentOutcomes.WithLabelValues("generated").Inc()
	return doctors, true
}

// Inventory returns a medicine inventory for a pharmacy facility, falling
// back to the deterministic stock list on any failure. Never empty.
func (p *Pipeline) Inventory(ctx context.Context, facility models.Facility) ([]models.InventoryItem, bool) {
	raw, err := p.generate(ctx, "inventory", inventoryPrompt(facility))
	if err != nil {
		p.log.WarnContext(ctx, "Inventory generation failed, using fallback stock",
			"facility", facility.Name, "error", err)
		p.metrics.EnrichmentOutcomes.WithLabelValues("fallback").Inc()
		return fallbackInventory(), false
	}

	items, err := genai.ParseJSON[[]models.InventoryItem](raw)
	if err != nil || len(items) == 0 {
		p.log.WarnContext(ctx, "Inventory response unparsable, using fallback stock",
			"facility", facility.Name, "error", err)
		p.metrics.EnrichmentOutcomes.WithLabelValues("fallback").Inc()
		return fallbackInventory(), false
	}

	for i := range items {
		clampInventoryItem(&items[i])
	}

	p.metrics.EnrichmentOutcomes.WithLabelValues("generated").Inc()
	return items, true
}

// generate paces and issues one generation call.
func (p *Pipeline) generate(ctx context.Context, task, prompt string) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", err
	}

	start := time.Now()
	raw, err := p.gen.Generate(ctx, prompt, 0.7, 1024)
	p.metrics.GenerationSeconds.WithLabelValues(task).Observe(time.Since(start).Seconds())
	return raw, err
}

// isHospitalLike decides roster size and prompt register from the name.
func isHospitalLike(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "hospital") || strings.Contains(lower, "medical college")
}

// clampDoctor forces generated numeric fields back into domain bounds.
func clampDoctor(d *models.Doctor) {
	d.Rating = math.Round(math.Min(maxRating, math.Max(minRating, d.Rating))*10) / 10
	if d.ExperienceYears < 1 {
		d.ExperienceYears = 1
	}
	if d.ExperienceYears > 50 {
		d.ExperienceYears = 50
	}
	if d.ConsultationFee < 0 {
		d.ConsultationFee = 0
	}
	if len(d.AvailableDays) == 0 {
		d.AvailableDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	}
	if d.AvailableTime == "" {
		d.AvailableTime = "10:00 AM - 4:00 PM"
	}
	if len(d.Languages) == 0 {
		d.Languages = []string{"Hindi", "English"}
	}
}

// clampInventoryItem sanitizes generated stock entries.
func clampInventoryItem(item *models.InventoryItem) {
	if item.Price < 0 {
		item.Price = 0
	}
	if item.Quantity < 0 {
		item.Quantity = 0
	}
	if item.StockStatus == "" {
		item.StockStatus = "In Stock"
	}
}
