package square

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/UbiShip-Limited/bItS-build-sub008/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitLogger("test")
	m.Run()
}

func TestListBookingsFollowsPagination(t *testing.T) {
	var authHeader, versionHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/bookings", r.URL.Path)
		authHeader = r.Header.Get("Authorization")
		versionHeader = r.Header.Get("Square-Version")

		assert.Equal(t, "loc_1", r.URL.Query().Get("location_id"))
		assert.NotEmpty(t, r.URL.Query().Get("start_at_min"))
		assert.NotEmpty(t, r.URL.Query().Get("start_at_max"))

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("cursor") == "" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"bookings": []map[string]interface{}{
					{"id": "bk_1", "start_at": "2024-06-01T10:00:00Z"},
				},
				"cursor": "page2",
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"bookings": []map[string]interface{}{
				{"id": "bk_2", "start_at": "2024-06-02T10:00:00Z"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", "loc_1")

	bookings, err := client.ListBookings(context.Background(),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, bookings, 2)
	assert.Equal(t, "bk_1", bookings[0].ID)
	assert.Equal(t, "bk_2", bookings[1].ID)
	assert.Equal(t, "Bearer test-token", authHeader)
	assert.Equal(t, apiVersion, versionHeader)
}

func TestListBookingsSurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]string{
				{"category": "AUTHENTICATION_ERROR", "code": "UNAUTHORIZED", "detail": "token expired"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "stale-token", "")

	_, err := client.ListBookings(context.Background(), time.Now(), time.Now().Add(time.Hour))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNAUTHORIZED")
}

func TestGetCustomer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/customers/cust_1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"customer": map[string]string{
				"id":            "cust_1",
				"given_name":    "Jane",
				"family_name":   "Doe",
				"email_address": "jane@example.com",
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", "")

	customer, err := client.GetCustomer(context.Background(), "cust_1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", customer.GivenName)
	assert.Equal(t, "Doe", customer.FamilyName)
}

func TestGetCustomerNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors":[{"code":"NOT_FOUND","detail":"customer not found"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", "")

	_, err := client.GetCustomer(context.Background(), "missing")
	assert.Error(t, err)
}
