package models

// Kind distinguishes the two facility families the finder knows about.
type Kind string

const (
	// KindHospital covers hospitals, clinics and health centres.
	KindHospital Kind = "hospital"
	// KindPharmacy covers pharmacies and chemist shops.
	KindPharmacy Kind = "pharmacy"
)

// Valid reports whether the kind is one of the supported facility families.
func (k Kind) Valid() bool {
	return k == KindHospital || k == KindPharmacy
}

// Facility is a deduplicated healthcare facility candidate produced by one
// search invocation. It is never mutated after enrichment attaches children.
type Facility struct {
	Name             string      `json:"name"`                  // Display name, synthesized when the source name is unusable.
	Address          string      `json:"address"`               // Formatted address, or a fallback literal.
	Coordinates      Coordinates `json:"coordinate"`            // Location of the facility.
	DistanceKm       float64     `json:"distanceKm"`            // Great-circle distance from the search origin.
	Phone            string      `json:"phone"`                 // Contact number, or a fallback literal.
	Category         string      `json:"category"`              // The places-API category that produced it.
	Kind             Kind        `json:"kind"`                  // hospital or pharmacy.
	EmergencyCapable bool        `json:"emergencyCapable"`      // Inferred from the facility name.
	Facilities       string      `json:"facilitiesDescription"` // Short description of on-site capabilities.
}

// Doctor is a structured roster entry attached to exactly one hospital facility.
type Doctor struct {
	Name            string   `json:"name"`
	Specialization  string   `json:"specialization"`
	ExperienceYears int      `json:"experienceYears"`
	ConsultationFee int      `json:"consultationFee"`
	Rating          float64  `json:"rating"` // Bounded to [3.5, 4.0], one decimal.
	AvailableDays   []string `json:"availableDays"`
	AvailableTime   string   `json:"availableTime"`
	Languages       []string `json:"languages"`
}

// InventoryItem is a structured stock entry attached to exactly one pharmacy facility.
type InventoryItem struct {
	MedicineName         string  `json:"medicineName"`
	GenericName          string  `json:"genericName"`
	Category             string  `json:"category"`
	Manufacturer         string  `json:"manufacturer"`
	Price                float64 `json:"price"`
	StockStatus          string  `json:"stockStatus"`
	Quantity             int     `json:"quantity"`
	RequiresPrescription bool    `json:"requiresPrescription"`
}

// EnrichedFacility bundles a facility with its generated children and a
// diagnostics flag telling whether the children came from the generator or
// from the deterministic fallback data.
type EnrichedFacility struct {
	Facility
	Doctors     []Doctor        `json:"doctors,omitempty"`
	Inventory   []InventoryItem `json:"inventory,omitempty"`
	HasRealData bool            `json:"hasRealData"`
}

// PatientContext carries the patient attributes used to shape generation prompts.
type PatientContext struct {
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}
