package enrich

import (
	"fmt"

	"github.com/gramsetu/carefinder/internal/models"
)

// Fallback roster sizes. Hospitals carry broader departments than clinics.
const (
	hospitalRosterSize = 5
	clinicRosterSize   = 3
)

func doctorPrompt(facility models.Facility, patient models.PatientContext, rosterSize int, hospitalLike bool) string {
	scope := "a small rural clinic offering OPD and general consultation"
	if hospitalLike {
		scope = "a rural hospital with ICU, emergency ward and laboratory"
	}

	return fmt.Sprintf(`Generate a realistic doctor roster for %q, %s located %.1f km from the patient (age %d, gender %s).
Return ONLY a JSON array of exactly %d objects, no prose, with these fields:
"name" (Indian doctor name with Dr. prefix), "specialization", "experienceYears" (integer),
"consultationFee" (integer, rupees), "rating" (number between 3.5 and 4.0, one decimal),
"availableDays" (array of weekday abbreviations), "availableTime" (string like "10:00 AM - 4:00 PM"),
"languages" (array including local languages).`,
		facility.Name, scope, facility.DistanceKm, patient.Age, patient.Gender, rosterSize)
}

func inventoryPrompt(facility models.Facility) string {
	return fmt.Sprintf(`Generate a realistic medicine inventory for %q, a rural Indian pharmacy located %.1f km from the patient.
Return ONLY a JSON array of 8 objects, no prose, with these fields:
"medicineName", "genericName", "category", "manufacturer" (Indian manufacturer),
"price" (number, rupees), "stockStatus" ("In Stock", "Low Stock" or "Out of Stock"),
"quantity" (integer), "requiresPrescription" (boolean).
Favor common rural essentials: fever, pain, ORS, antibiotics, chronic care.`,
		facility.Name, facility.DistanceKm)
}
