package service

import (
	"strings"

	"github.com/gramsetu/carefinder/internal/geo"
	"github.com/gramsetu/carefinder/internal/models"
)

// Static fallback datasets for the degraded paths: when geocoding cannot
// resolve the patient's location, or when every places query fails or comes
// back empty. Deterministic on purpose.

// stateCoordinates maps lowercased state names to their capital's coordinates.
var stateCoordinates = map[string]models.Coordinates{
	"andhra pradesh": {Latitude: 16.5062, Longitude: 80.6480},
	"bihar":          {Latitude: 25.5941, Longitude: 85.1376},
	"chhattisgarh":   {Latitude: 21.2514, Longitude: 81.6296},
	"gujarat":        {Latitude: 23.0225, Longitude: 72.5714},
	"jharkhand":      {Latitude: 23.3441, Longitude: 85.3096},
	"karnataka":      {Latitude: 12.9716, Longitude: 77.5946},
	"madhya pradesh": {Latitude: 23.2599, Longitude: 77.4126},
	"maharashtra":    {Latitude: 19.0760, Longitude: 72.8777},
	"odisha":         {Latitude: 20.2961, Longitude: 85.8245},
	"rajasthan":      {Latitude: 26.9124, Longitude: 75.7873},
	"tamil nadu":     {Latitude: 13.0827, Longitude: 80.2707},
	"uttar pradesh":  {Latitude: 26.8467, Longitude: 80.9462},
	"west bengal":    {Latitude: 22.5726, Longitude: 88.3639},
}

// defaultCoordinates sits in central India (Nagpur).
var defaultCoordinates = models.Coordinates{Latitude: 21.1458, Longitude: 79.0882}

// mockCoordinates returns a static coordinate for the given state, or a
// central-India default when the state is unknown.
func mockCoordinates(state string) models.Coordinates {
	if coords, ok := stateCoordinates[strings.ToLower(strings.TrimSpace(state))]; ok {
		return coords
	}
	return defaultCoordinates
}

type mockSeed struct {
	name     string
	category string
	dLat     float64
	dLon     float64
}

var mockHospitalSeeds = []mockSeed{
	{name: "District Government Hospital", category: "healthcare.hospital", dLat: 0.010, dLon: 0.008},
	{name: "Community Health Centre", category: "healthcare.clinic_or_praxis", dLat: -0.018, dLon: 0.015},
	{name: "Primary Health Centre", category: "healthcare.clinic_or_praxis", dLat: 0.025, dLon: -0.020},
}

var mockPharmacySeeds = []mockSeed{
	{name: "Jan Aushadhi Kendra", category: "healthcare.pharmacy", dLat: 0.008, dLon: 0.006},
	{name: "Sri Balaji Medical Store", category: "healthcare.pharmacy", dLat: -0.012, dLon: 0.010},
	{name: "Apollo Pharmacy", category: "healthcare.pharmacy", dLat: 0.020, dLon: -0.015},
}

// mockFacilities builds a small static facility list positioned around the
// origin so distances stay plausible.
func mockFacilities(kind models.Kind, origin models.Coordinates) []models.Facility {
	seeds := mockHospitalSeeds
	if kind == models.KindPharmacy {
		seeds = mockPharmacySeeds
	}

	facilities := make([]models.Facility, 0, len(seeds))
	for _, seed := range seeds {
		coords := models.Coordinates{
			Latitude:  origin.Latitude + seed.dLat,
			Longitude: origin.Longitude + seed.dLon,
		}

		emergency := false
		description := "OPD, Consultation, Basic diagnostics"
		if kind == models.KindPharmacy {
			description = "Prescription dispensing, OTC medicines, Basic first aid"
		} else if strings.Contains(strings.ToLower(seed.name), "hospital") {
			emergency = true
			description = "ICU, Emergency, Laboratory, Pharmacy, X-Ray"
		}

		facilities = append(facilities, models.Facility{
			Name:             seed.name,
			Address:          "Address not available",
			Coordinates:      coords,
			DistanceKm:       geo.Distance(origin, coords),
			Phone:            "Not available",
			Category:         seed.category,
			Kind:             kind,
			EmergencyCapable: emergency,
			Facilities:       description,
		})
	}

	return facilities
}
