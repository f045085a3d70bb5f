package repository

import (
	"context"

	"github.com/unilodge/rental-portal/internal/model"
)

// PropertyRepository handles rental property data access.
type PropertyRepository struct {
	db DB
}

// NewPropertyRepository creates a new PropertyRepository.
func NewPropertyRepository(db DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// List retrieves all properties with their owners aggregated into one
// comma-separated string and the manager joined in when assigned.
func (r *PropertyRepository) List(ctx context.Context) ([]model.RentalProperty, error) {
	rows, err := r.db.Query(ctx,
		`SELECT rp.property_id, rp.street, rp.city, rp.postal_code,
		        rp.cost_per_month, rp.property_type,
		        COALESCE(own.owner_names, '') AS owner_names,
		        mgr.first_name, mgr.last_name
		 FROM rental_properties rp
		 LEFT JOIN LATERAL (
		        SELECT string_agg(p.first_name || ' ' || p.last_name, ', '
		                          ORDER BY p.first_name) AS owner_names
		        FROM property_owner_relations por
		        JOIN persons p ON p.id = por.owner_id
		        WHERE por.property_id = rp.property_id
		 ) own ON true
		 LEFT JOIN property_manager_rental_relations pmrr ON pmrr.property_id = rp.property_id
		 LEFT JOIN persons mgr ON mgr.id = pmrr.manager_id
		 ORDER BY rp.property_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []model.RentalProperty
	for rows.Next() {
		var p model.RentalProperty
		if err := rows.Scan(
			&p.PropertyID, &p.Street, &p.City, &p.PostalCode,
			&p.CostPerMonth, &p.PropertyType, &p.OwnerNames,
			&p.ManagerFirstName, &p.ManagerLastName,
		); err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

// AverageRents retrieves the average monthly cost per property type.
// Types with no listings average to zero rather than NULL.
func (r *PropertyRepository) AverageRents(ctx context.Context) (model.AverageRents, error) {
	var avg model.AverageRents
	err := r.db.QueryRow(ctx,
		`SELECT
		        COALESCE((SELECT AVG(cost_per_month) FROM rental_properties WHERE property_type = 'house'), 0),
		        COALESCE((SELECT AVG(cost_per_month) FROM rental_properties WHERE property_type = 'apartment'), 0),
		        COALESCE((SELECT AVG(cost_per_month) FROM rental_properties WHERE property_type = 'room'), 0)`,
	).Scan(&avg.House, &avg.Apartment, &avg.Room)
	return avg, err
}
