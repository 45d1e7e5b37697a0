package services

import (
	"context"
	"testing"
	"time"

	"github.com/UbiShip-Limited/bItS-build-sub008/internal/client/square"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/db"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// stubBookingsAPI is a canned Square bookings client.
type stubBookingsAPI struct {
	bookings  []square.Booking
	err       error
	listCalls int
}

func (s *stubBookingsAPI) ListBookings(ctx context.Context, startAtMin, startAtMax time.Time) ([]square.Booking, error) {
	s.listCalls++
	return s.bookings, s.err
}

func (s *stubBookingsAPI) GetCustomer(ctx context.Context, customerID string) (*square.Customer, error) {
	return nil, errors.New("not implemented")
}

func newSyncServiceForTest(t *testing.T, api square.BookingsAPI) (*BookingSyncService, *mocks.MockQuerier) {
	t.Helper()
	querier := mocks.NewMockQuerierForTest(t)
	audit := NewAuditService(querier, zap.NewNop())
	bookings := NewBookingService(querier, zap.NewNop(), audit)
	return NewBookingSyncService(api, bookings, 24*time.Hour, 30*24*time.Hour, zap.NewNop()), querier
}

func TestSyncRunIsolatesPerBookingFailures(t *testing.T) {
	api := &stubBookingsAPI{
		bookings: []square.Booking{
			{
				ID:                  "bk_1",
				StartAt:             "2024-06-01T10:00:00Z",
				AppointmentSegments: []square.AppointmentSegment{{DurationMinutes: 120}},
			},
			{
				ID:      "bk_2",
				StartAt: "not-a-timestamp",
			},
			{
				ID:      "bk_3",
				StartAt: "2024-06-02T11:00:00Z",
			},
		},
	}

	svc, querier := newSyncServiceForTest(t, api)

	querier.EXPECT().
		GetAppointmentBySquareID(gomock.Any(), gomock.Any()).
		Return(db.Appointment{}, pgx.ErrNoRows).
		Times(2)
	querier.EXPECT().
		CreateAppointment(gomock.Any(), gomock.Any()).
		Return(db.Appointment{ID: uuid.New()}, nil).
		Times(2)
	querier.EXPECT().
		CreateAuditLog(gomock.Any(), gomock.Any()).
		Return(db.AuditLog{}, nil).
		AnyTimes()

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Synced)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Updated)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "bk_2", result.Errors[0].BookingID)

	last := svc.LastResult()
	require.NotNil(t, last)
	assert.Equal(t, 2, last.Synced)
	require.Len(t, last.Errors, 1)
}

func TestSyncRunFailsWhenSquareUnreachable(t *testing.T) {
	api := &stubBookingsAPI{err: errors.New("connection refused")}
	svc, _ := newSyncServiceForTest(t, api)

	_, err := svc.Run(context.Background())
	require.Error(t, err)

	last := svc.LastResult()
	require.NotNil(t, last)
	assert.Equal(t, 0, last.Synced)
	require.Len(t, last.Errors, 1)
	assert.Equal(t, "*", last.Errors[0].BookingID)
}

func TestSyncRunSingleFlight(t *testing.T) {
	svc, _ := newSyncServiceForTest(t, &stubBookingsAPI{})

	svc.running.Store(true)
	defer svc.running.Store(false)

	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, ErrSyncAlreadyRunning)
	assert.True(t, svc.IsRunning())
}

func TestSyncLastResultNilBeforeFirstRun(t *testing.T) {
	svc, _ := newSyncServiceForTest(t, &stubBookingsAPI{})
	assert.Nil(t, svc.LastResult())
	assert.False(t, svc.IsRunning())
}

func TestSyncRunMixedCreateAndUpdate(t *testing.T) {
	api := &stubBookingsAPI{
		bookings: []square.Booking{
			{ID: "bk_new", StartAt: "2024-06-01T10:00:00Z"},
			{ID: "bk_known", StartAt: "2024-06-02T10:00:00Z", Status: "ACCEPTED"},
		},
	}

	svc, querier := newSyncServiceForTest(t, api)

	existing := db.Appointment{
		ID:       uuid.New(),
		SquareID: textValue("bk_known"),
		Duration: 60,
		Status:   db.AppointmentStatusScheduled,
	}

	querier.EXPECT().
		GetAppointmentBySquareID(gomock.Any(), textValue("bk_new")).
		Return(db.Appointment{}, pgx.ErrNoRows)
	querier.EXPECT().
		CreateAppointment(gomock.Any(), gomock.Any()).
		Return(db.Appointment{ID: uuid.New()}, nil)
	querier.EXPECT().
		GetAppointmentBySquareID(gomock.Any(), textValue("bk_known")).
		Return(existing, nil)
	querier.EXPECT().
		UpdateAppointmentSync(gomock.Any(), gomock.Any()).
		Return(existing, nil)
	querier.EXPECT().
		CreateAuditLog(gomock.Any(), gomock.Any()).
		Return(db.AuditLog{}, nil).
		AnyTimes()

	result, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Synced)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Empty(t, result.Errors)
}
