package repository_test

import (
	"log/slog"
	"testing"

	"github.com/gramsetu/carefinder/internal/models"
	"github.com/gramsetu/carefinder/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) (*repository.Repository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)

	return repository.NewRepository(mockPool, slog.Default()), mockPool
}

func enrichedHospital() models.EnrichedFacility {
	return models.EnrichedFacility{
		Facility: models.Facility{
			Name:             "Grace Hospital",
			Address:          "12 Main Road, Chennai",
			Coordinates:      models.Coordinates{Latitude: 13.051, Longitude: 80.241},
			DistanceKm:       1.2,
			Phone:            "+91 44 1234 5678",
			Category:         "healthcare.hospital",
			Kind:             models.KindHospital,
			EmergencyCapable: true,
			Facilities:       "ICU, Emergency, Laboratory, Pharmacy, X-Ray",
		},
		Doctors: []models.Doctor{
			{
				Name:            "Dr. Ramesh Kumar",
				Specialization:  "General Medicine",
				ExperienceYears: 12,
				ConsultationFee: 200,
				Rating:          3.9,
				AvailableDays:   []string{"Mon", "Tue"},
				AvailableTime:   "10:00 AM - 4:00 PM",
				Languages:       []string{"Hindi", "English"},
			},
		},
		HasRealData: true,
	}
}

func enrichedPharmacy() models.EnrichedFacility {
	return models.EnrichedFacility{
		Facility: models.Facility{
			Name:        "Sri Balaji Medical Store",
			Address:     "Bazar Street",
			Coordinates: models.Coordinates{Latitude: 13.06, Longitude: 80.25},
			DistanceKm:  0.8,
			Phone:       "Not available",
			Category:    "healthcare.pharmacy",
			Kind:        models.KindPharmacy,
			Facilities:  "Prescription dispensing, OTC medicines, Basic first aid",
		},
		Inventory: []models.InventoryItem{
			{
				MedicineName: "Crocin 650",
				GenericName:  "Paracetamol",
				Category:     "Analgesic",
				Manufacturer: "GSK",
				Price:        30,
				StockStatus:  "In Stock",
				Quantity:     120,
			},
		},
	}
}

func expectFacilityInsert(mockPool pgxmock.PgxPoolIface, f models.EnrichedFacility, id int64) {
	mockPool.ExpectQuery(`
	INSERT INTO facilities
		(kind, name, address, latitude, longitude, distance_km, phone,
		 category, emergency_capable, facilities, has_real_data)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING facility_id;
`).
		WithArgs(string(f.Kind), f.Name, f.Address, f.Coordinates.Latitude, f.Coordinates.Longitude,
			f.DistanceKm, f.Phone, f.Category, f.EmergencyCapable, f.Facilities, f.HasRealData).
		WillReturnRows(pgxmock.NewRows([]string{"facility_id"}).AddRow(id))
}

func TestSaveSearchResults(t *testing.T) {
	ctx := t.Context()

	t.Run("empty input is a no-op", func(t *testing.T) {
		repo, mockPool := newRepository(t)

		ids, err := repo.SaveSearchResults(ctx, nil)

		require.NoError(t, err)
		assert.Nil(t, ids)
		require.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("hospital with doctors", func(t *testing.T) {
		repo, mockPool := newRepository(t)
		hospital := enrichedHospital()
		doctor := hospital.Doctors[0]

		mockPool.ExpectBegin()
		expectFacilityInsert(mockPool, hospital, 7)
		mockPool.ExpectExec(`
	INSERT INTO doctors
		(facility_id, name, specialization, experience_years, consultation_fee,
		 rating, available_days, available_time, languages)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`).
			WithArgs(int64(7), doctor.Name, doctor.Specialization, doctor.ExperienceYears,
				doctor.ConsultationFee, doctor.Rating, doctor.AvailableDays, doctor.AvailableTime, doctor.Languages).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockPool.ExpectCommit()

		ids, err := repo.SaveSearchResults(ctx, []models.EnrichedFacility{hospital})

		require.NoError(t, err)
		assert.Equal(t, []int64{7}, ids)
		require.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("pharmacy with inventory", func(t *testing.T) {
		repo, mockPool := newRepository(t)
		pharmacy := enrichedPharmacy()
		item := pharmacy.Inventory[0]

		mockPool.ExpectBegin()
		expectFacilityInsert(mockPool, pharmacy, 11)
		mockPool.ExpectExec(`
	INSERT INTO inventory_items
		(facility_id, medicine_name, generic_name, category, manufacturer,
		 price, stock_status, quantity, requires_prescription)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`).
			WithArgs(int64(11), item.MedicineName, item.GenericName, item.Category,
				item.Manufacturer, item.Price, item.StockStatus, item.Quantity, item.RequiresPrescription).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockPool.ExpectCommit()

		ids, err := repo.SaveSearchResults(ctx, []models.EnrichedFacility{pharmacy})

		require.NoError(t, err)
		assert.Equal(t, []int64{11}, ids)
		require.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("failed facility insert rolls back", func(t *testing.T) {
		repo, mockPool := newRepository(t)
		hospital := enrichedHospital()

		mockPool.ExpectBegin()
		mockPool.ExpectQuery(`
	INSERT INTO facilities
		(kind, name, address, latitude, longitude, distance_km, phone,
		 category, emergency_capable, facilities, has_real_data)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING facility_id;
`).
			WithArgs(string(hospital.Kind), hospital.Name, hospital.Address,
				hospital.Coordinates.Latitude, hospital.Coordinates.Longitude, hospital.DistanceKm,
				hospital.Phone, hospital.Category, hospital.EmergencyCapable,
				hospital.Facilities, hospital.HasRealData).
			WillReturnError(assert.AnError)
		mockPool.ExpectRollback()

		ids, err := repo.SaveSearchResults(ctx, []models.EnrichedFacility{hospital})

		require.Error(t, err)
		assert.Nil(t, ids)
		require.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("failed begin", func(t *testing.T) {
		repo, mockPool := newRepository(t)

		mockPool.ExpectBegin().WillReturnError(assert.AnError)

		_, err := repo.SaveSearchResults(ctx, []models.EnrichedFacility{enrichedHospital()})

		require.Error(t, err)
		require.ErrorContains(t, err, "begin transaction")
		require.NoError(t, mockPool.ExpectationsWereMet())
	})
}
