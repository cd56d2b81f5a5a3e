package service

import (
	"github.com/gramsetu/carefinder/internal/models"
	"github.com/gramsetu/carefinder/internal/search"
)

// ProfileConfig carries the tunable bounds of the per-kind search profiles.
type ProfileConfig struct {
	HospitalCeiling int
	PharmacyCeiling int
	HospitalMaxKm   float64
	PharmacyMaxKm   float64
	PerQueryLimit   int
}

// BuildProfiles assembles the per-kind search profiles. Categories are
// ordered by priority and radius passes by ascending radius: narrow, likely
// relevant results are retained preferentially when the ceiling is hit.
func BuildProfiles(cfg ProfileConfig) map[models.Kind]search.Profile {
	return map[models.Kind]search.Profile{
		models.KindHospital: {
			Kind:       models.KindHospital,
			Categories: []string{"healthcare.hospital", "healthcare.clinic_or_praxis"},
			Passes: []search.Pass{
				{RadiusMeters: 5000, Limit: cfg.PerQueryLimit},
				{RadiusMeters: 10000, Limit: cfg.PerQueryLimit},
				{RadiusMeters: 15000, Limit: cfg.PerQueryLimit},
			},
			MaxDistanceKm: cfg.HospitalMaxKm,
			Ceiling:       cfg.HospitalCeiling,
		},
		models.KindPharmacy: {
			Kind:       models.KindPharmacy,
			Categories: []string{"healthcare.pharmacy", "commercial.chemist"},
			Passes: []search.Pass{
				{RadiusMeters: 3000, Limit: cfg.PerQueryLimit},
				{RadiusMeters: 7000, Limit: cfg.PerQueryLimit},
				{RadiusMeters: 12000, Limit: cfg.PerQueryLimit},
			},
			MaxDistanceKm: cfg.PharmacyMaxKm,
			Ceiling:       cfg.PharmacyCeiling,
		},
	}
}
