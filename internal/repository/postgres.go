package repository

import (
	"context"
	"fmt"

	"github.com/gramsetu/carefinder/internal/models"
	"github.com/jackc/pgx/v5"
)

const insertFacilityQuery = `
	INSERT INTO facilities
		(kind, name, address, latitude, longitude, distance_km, phone,
		 category, emergency_capable, facilities, has_real_data)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING facility_id;
`

const insertDoctorQuery = `
	INSERT INTO doctors
		(facility_id, name, specialization, experience_years, consultation_fee,
		 rating, available_days, available_time, languages)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`

const insertInventoryQuery = `
	INSERT INTO inventory_items
		(facility_id, medicine_name, generic_name, category, manufacturer,
		 price, stock_status, quantity, requires_prescription)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`

// SaveSearchResults writes one search's facilities and their children inside
// a single transaction, so a partial write is never observable. It returns
// the generated facility IDs in input order.
func (r *Repository) SaveSearchResults(
	ctx context.Context,
	results []models.EnrichedFacility,
) ([]int64, error) {
	if len(results) == 0 {
		return nil, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	ids, err := r.insertAll(ctx, tx, results)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			r.log.ErrorContext(ctx, "Failed to roll back search results transaction", "error", rbErr)
		}
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit search results: %w", err)
	}

	r.log.DebugContext(ctx, "Search results persisted", "facilities", len(ids))

	return ids, nil
}

func (r *Repository) insertAll(ctx context.Context, tx pgx.Tx, results []models.EnrichedFacility) ([]int64, error) {
	ids := make([]int64, 0, len(results))

	for _, result := range results {
		var facilityID int64
		err := tx.QueryRow(ctx, insertFacilityQuery,
			string(result.Kind),
			result.Name,
			result.Address,
			result.Coordinates.Latitude,
			result.Coordinates.Longitude,
			result.DistanceKm,
			result.Phone,
			result.Category,
			result.EmergencyCapable,
			result.Facilities,
			result.HasRealData,
		).Scan(&facilityID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert facility %q: %w", result.Name, err)
		}

		for _, doctor := range result.Doctors {
			if _, err = tx.Exec(ctx, insertDoctorQuery,
				facilityID,
				doctor.Name,
				doctor.Specialization,
				doctor.ExperienceYears,
				doctor.ConsultationFee,
				doctor.Rating,
				doctor.AvailableDays,
				doctor.AvailableTime,
				doctor.Languages,
			); err != nil {
				return nil, fmt.Errorf("failed to insert doctor for facility %d: %w", facilityID, err)
			}
		}

		for _, item := range result.Inventory {
			if _, err = tx.Exec(ctx, insertInventoryQuery,
				facilityID,
				item.MedicineName,
				item.GenericName,
				item.Category,
				item.Manufacturer,
				item.Price,
				item.StockStatus,
				item.Quantity,
				item.RequiresPrescription,
			); err != nil {
				return nil, fmt.Errorf("failed to insert inventory item for facility %d: %w", facilityID, err)
			}
		}

		ids = append(ids, facilityID)
	}

	return ids, nil
}
