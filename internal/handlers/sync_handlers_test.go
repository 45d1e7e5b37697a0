package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/UbiShip-Limited/bItS-build-sub008/internal/client/square"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/db"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/mocks"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type stubBookings struct {
	bookings []square.Booking
	err      error
}

func (s *stubBookings) ListBookings(ctx context.Context, startAtMin, startAtMax time.Time) ([]square.Booking, error) {
	return s.bookings, s.err
}

func (s *stubBookings) GetCustomer(ctx context.Context, customerID string) (*square.Customer, error) {
	return &square.Customer{ID: customerID}, nil
}

func setupSyncRouter(t *testing.T, api square.BookingsAPI) (*gin.Engine, *mocks.MockQuerier) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	querier := mocks.NewMockQuerierForTest(t)
	audit := services.NewAuditService(querier, zap.NewNop())
	bookingService := services.NewBookingService(querier, zap.NewNop(), audit)
	syncService := services.NewBookingSyncService(api, bookingService, 24*time.Hour, 30*24*time.Hour, zap.NewNop())

	handler := NewSyncHandler(syncService)

	router := gin.New()
	router.GET("/api/v1/square-sync/status", handler.GetStatus)
	router.POST("/api/v1/square-sync/run", handler.RunSync)
	return router, querier
}

func TestGetSyncStatusBeforeFirstRun(t *testing.T) {
	router, _ := setupSyncRouter(t, &stubBookings{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/square-sync/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var status SyncStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.False(t, status.Running)
	assert.Nil(t, status.LastResult)
}

func TestRunSyncEndpoint(t *testing.T) {
	api := &stubBookings{
		bookings: []square.Booking{
			{ID: "bk_1", StartAt: "2024-06-01T10:00:00Z"},
		},
	}
	router, querier := setupSyncRouter(t, api)

	querier.EXPECT().
		GetAppointmentBySquareID(gomock.Any(), gomock.Any()).
		Return(db.Appointment{}, pgx.ErrNoRows)
	querier.EXPECT().
		CreateAppointment(gomock.Any(), gomock.Any()).
		Return(db.Appointment{ID: uuid.New()}, nil)
	querier.EXPECT().
		CreateAuditLog(gomock.Any(), gomock.Any()).
		Return(db.AuditLog{}, nil).
		AnyTimes()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/square-sync/run", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result services.SyncResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 1, result.Created)
	assert.Empty(t, result.Errors)

	// Status now reflects the completed run.
	statusReq := httptest.NewRequest(http.MethodGet, "/api/v1/square-sync/status", nil)
	statusW := httptest.NewRecorder()
	router.ServeHTTP(statusW, statusReq)

	var status SyncStatusResponse
	require.NoError(t, json.Unmarshal(statusW.Body.Bytes(), &status))
	require.NotNil(t, status.LastResult)
	assert.Equal(t, 1, status.LastResult.Synced)
}
