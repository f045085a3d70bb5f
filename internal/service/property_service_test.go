package service

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unilodge/rental-portal/internal/model"
	"github.com/unilodge/rental-portal/internal/repository"
)

func TestAverageRentsEmptyMarket(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT\s+COALESCE`).
		WillReturnRows(pgxmock.NewRows([]string{"house", "apartment", "room"}).
			AddRow(0.00, 0.00, 0.00))

	svc := NewPropertyService(repository.NewPropertyRepository(mock))
	avg, err := svc.AverageRents(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.AverageRents{}, avg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListProperties(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT rp.property_id, (.+) FROM rental_properties rp`).
		WillReturnRows(pgxmock.NewRows([]string{
			"property_id", "street", "city", "postal_code",
			"cost_per_month", "property_type", "owner_names", "first_name", "last_name",
		}).AddRow(2, "88 Princess St", "Kingston", "K7L 1A6",
			1250.00, model.PropertyApartment, "Frank Hartmann", nil, nil))

	svc := NewPropertyService(repository.NewPropertyRepository(mock))
	properties, err := svc.ListProperties(context.Background())

	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "N/A", properties[0].ManagerName())
	assert.NoError(t, mock.ExpectationsWereMet())
}
