package enrich

import "github.com/gramsetu/carefinder/internal/models"

// Hand-authored fallback data, returned whenever generation fails or is
// unparsable. Deterministic so downstream behavior stays reproducible.

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func fallbackDoctors(hospitalLike bool) []models.Doctor {
	doctors := []models.Doctor{
		{
			Name:            "Dr. Ramesh Kumar",
			Specialization:  "General Medicine",
			ExperienceYears: 12,
			ConsultationFee: 200,
			Rating:          3.8,
			AvailableDays:   weekdays,
			AvailableTime:   "9:00 AM - 1:00 PM",
			Languages:       []string{"Hindi", "English"},
		},
		{
			Name:            "Dr. Sunita Sharma",
			Specialization:  "Pediatrics",
			ExperienceYears: 8,
			ConsultationFee: 250,
			Rating:          3.9,
			AvailableDays:   weekdays[:5],
			AvailableTime:   "10:00 AM - 4:00 PM",
			Languages:       []string{"Hindi", "English"},
		},
		{
			Name:            "Dr. Anil Verma",
			Specialization:  "General Practice",
			ExperienceYears: 15,
			ConsultationFee: 150,
			Rating:          3.7,
			AvailableDays:   weekdays,
			AvailableTime:   "11:00 AM - 6:00 PM",
			Languages:       []string{"Hindi"},
		},
	}

	if !hospitalLike {
		return doctors
	}

	return append(doctors,
		models.Doctor{
			Name:            "Dr. Priya Nair",
			Specialization:  "Gynecology",
			ExperienceYears: 10,
			ConsultationFee: 300,
			Rating:          4.0,
			AvailableDays:   weekdays[:5],
			AvailableTime:   "9:00 AM - 3:00 PM",
			Languages:       []string{"Hindi", "English", "Malayalam"},
		},
		models.Doctor{
			Name:            "Dr. Suresh Patil",
			Specialization:  "Orthopedics",
			ExperienceYears: 14,
			ConsultationFee: 350,
			Rating:          3.8,
			AvailableDays:   weekdays[:4],
			AvailableTime:   "2:00 PM - 8:00 PM",
			Languages:       []string{"Hindi", "Marathi", "English"},
		},
	)
}

func fallbackInventory() []models.InventoryItem {
	return []models.InventoryItem{
		{MedicineName: "Crocin 650", GenericName: "Paracetamol", Category: "Fever & Pain", Manufacturer: "GSK", Price: 30, StockStatus: "In Stock", Quantity: 120, RequiresPrescription: false},
		{MedicineName: "Electral", GenericName: "ORS", Category: "Rehydration", Manufacturer: "FDC", Price: 22, StockStatus: "In Stock", Quantity: 200, RequiresPrescription: false},
		{MedicineName: "Mox 500", GenericName: "Amoxicillin", Category: "Antibiotic", Manufacturer: "Sun Pharma", Price: 85, StockStatus: "In Stock", Quantity: 60, RequiresPrescription: true},
		{MedicineName: "Cetrizine", GenericName: "Cetirizine", Category: "Allergy", Manufacturer: "Cipla", Price: 18, StockStatus: "In Stock", Quantity: 150, RequiresPrescription: false},
		{MedicineName: "Omez", GenericName: "Omeprazole", Category: "Gastric", Manufacturer: "Dr. Reddy's", Price: 55, StockStatus: "Low Stock", Quantity: 25, RequiresPrescription: false},
		{MedicineName: "Glycomet 500", GenericName: "Metformin", Category: "Diabetes", Manufacturer: "USV", Price: 40, StockStatus: "In Stock", Quantity: 90, RequiresPrescription: true},
		{MedicineName: "Amlong 5", GenericName: "Amlodipine", Category: "Blood Pressure", Manufacturer: "Micro Labs", Price: 38, StockStatus: "In Stock", Quantity: 75, RequiresPrescription: true},
		{MedicineName: "Brufen 400", GenericName: "Ibuprofen", Category: "Fever & Pain", Manufacturer: "Abbott", Price: 28, StockStatus: "In Stock", Quantity: 110, RequiresPrescription: false},
	}
}
