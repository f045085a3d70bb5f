package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unilodge/rental-portal/internal/model"
)

func TestHomeShowsAverageRents(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT\s+COALESCE`).
		WillReturnRows(pgxmock.NewRows([]string{"house", "apartment", "room"}).
			AddRow(1850.00, 1250.00, 650.00))

	r := newTestRouter(t, mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "$1850.00")
	assert.Contains(t, body, "$1250.00")
	assert.Contains(t, body, "$650.00")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPropertiesPage(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	managerFirst := "Henry"
	managerLast := "Adeyemi"

	mock.ExpectQuery(`SELECT rp.property_id, (.+) FROM rental_properties rp`).
		WillReturnRows(pgxmock.NewRows([]string{
			"property_id", "street", "city", "postal_code",
			"cost_per_month", "property_type", "owner_names", "first_name", "last_name",
		}).
			AddRow(1, "12 College Ave", "Kingston", "K7L 3N6",
				1850.00, model.PropertyHouse, "Frank Hartmann, Grace Liu", &managerFirst, &managerLast).
			AddRow(3, "5 Union St", "Kingston", "K7L 2N8",
				650.00, model.PropertyRoom, "Grace Liu", nil, nil))

	r := newTestRouter(t, mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/properties", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "12 College Ave")
	assert.Contains(t, body, "Frank Hartmann, Grace Liu")
	assert.Contains(t, body, "Henry Adeyemi")
	assert.Contains(t, body, "N/A")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListGroupsPage(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT (.+) FROM rental_groups ORDER BY group_code`).
		WillReturnRows(pgxmock.NewRows(groupColumns).
			AddRow("G1", model.PropertyRoom, 1, 1, model.PreferenceNo,
				model.LaundryShared, 500.00, model.PreferenceNo))

	r := newTestRouter(t, mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/groups", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "G1")
	assert.Contains(t, body, "/groups/detail?group_id=G1")
	assert.NoError(t, mock.ExpectationsWereMet())
}
