package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/unilodge/rental-portal/internal/model"
)

// GroupRepository handles rental group data access.
type GroupRepository struct {
	db DB
}

// NewGroupRepository creates a new GroupRepository.
func NewGroupRepository(db DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// GetByCode retrieves the rental group matching the given code.
// Returns (nil, nil) when no row matches; an unknown code is an empty
// state for the detail page, not an error. If duplicate codes exist in
// the store only the first match is returned.
func (r *GroupRepository) GetByCode(ctx context.Context, code string) (*model.RentalGroup, error) {
	g := &model.RentalGroup{}
	err := r.db.QueryRow(ctx,
		`SELECT group_code, desired_property_type, desired_number_of_bedrooms,
		        desired_number_of_bathrooms, parking_preference, laundry_preference,
		        max_price, accessibility_preference
		 FROM rental_groups WHERE group_code = $1 LIMIT 1`, code,
	).Scan(
		&g.GroupCode, &g.DesiredPropertyType, &g.DesiredNumberOfBedrooms,
		&g.DesiredNumberOfBathrooms, &g.ParkingPreference, &g.LaundryPreference,
		&g.MaxPrice, &g.AccessibilityPreference,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// List retrieves all rental groups ordered by code.
func (r *GroupRepository) List(ctx context.Context) ([]model.RentalGroup, error) {
	rows, err := r.db.Query(ctx,
		`SELECT group_code, desired_property_type, desired_number_of_bedrooms,
		        desired_number_of_bathrooms, parking_preference, laundry_preference,
		        max_price, accessibility_preference
		 FROM rental_groups ORDER BY group_code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []model.RentalGroup
	for rows.Next() {
		var g model.RentalGroup
		if err := rows.Scan(
			&g.GroupCode, &g.DesiredPropertyType, &g.DesiredNumberOfBedrooms,
			&g.DesiredNumberOfBathrooms, &g.ParkingPreference, &g.LaundryPreference,
			&g.MaxPrice, &g.AccessibilityPreference,
		); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// UpdatePreferences overwrites all seven preference fields of the group
// matching the code in a single statement. A code that matches no row
// affects zero rows and is not an error.
func (r *GroupRepository) UpdatePreferences(ctx context.Context, code string, req model.UpdatePreferencesRequest) error {
	_, err := r.db.Exec(ctx,
		`UPDATE rental_groups SET
		        desired_property_type = $1,
		        desired_number_of_bedrooms = $2,
		        desired_number_of_bathrooms = $3,
		        parking_preference = $4,
		        laundry_preference = $5,
		        max_price = $6,
		        accessibility_preference = $7
		 WHERE group_code = $8`,
		req.DesiredPropertyType, req.DesiredNumberOfBedrooms, req.DesiredNumberOfBathrooms,
		req.ParkingPreference, req.LaundryPreference, req.MaxPrice,
		req.AccessibilityPreference, code,
	)
	return err
}
