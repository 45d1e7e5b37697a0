package services

import (
	"context"
	"testing"
	"time"

	"github.com/UbiShip-Limited/bItS-build-sub008/internal/db"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newBookingServiceForTest(t *testing.T) (*BookingService, *mocks.MockQuerier) {
	t.Helper()
	querier := mocks.NewMockQuerierForTest(t)
	audit := NewAuditService(querier, zap.NewNop())
	return NewBookingService(querier, zap.NewNop(), audit), querier
}

func TestReconcileBookingCreatesAppointment(t *testing.T) {
	svc, querier := newBookingServiceForTest(t)

	startAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	customerID := uuid.New()

	querier.EXPECT().
		GetAppointmentBySquareID(gomock.Any(), textValue("bk_1")).
		Return(db.Appointment{}, pgx.ErrNoRows)
	querier.EXPECT().
		GetCustomerBySquareID(gomock.Any(), textValue("cust_1")).
		Return(db.Customer{ID: customerID, Name: "Jane Doe"}, nil)
	querier.EXPECT().
		CreateAppointment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateAppointmentParams) (db.Appointment, error) {
			assert.Equal(t, "bk_1", arg.SquareID.String)
			assert.Equal(t, customerID, uuid.UUID(arg.CustomerID.Bytes))
			assert.True(t, arg.CustomerID.Valid)
			assert.Equal(t, startAt, arg.StartTime.Time)
			assert.Equal(t, startAt.Add(2*time.Hour), arg.EndTime.Time)
			assert.Equal(t, int32(120), arg.Duration)
			assert.Equal(t, db.AppointmentStatusScheduled, arg.Status)
			assert.Equal(t, db.AppointmentTypeTattooSession, arg.Type)
			assert.Equal(t, "sleeve work", arg.Notes.String)
			return db.Appointment{
				ID:        uuid.New(),
				SquareID:  arg.SquareID,
				StartTime: arg.StartTime,
				Status:    arg.Status,
			}, nil
		})
	querier.EXPECT().
		CreateAuditLog(gomock.Any(), gomock.Any()).
		Return(db.AuditLog{}, nil).
		AnyTimes()

	result, err := svc.ReconcileBooking(context.Background(), BookingData{
		SquareID:         "bk_1",
		CustomerSquareID: "cust_1",
		StartAt:          startAt,
		DurationMinutes:  120,
		SellerNote:       "tattoo_session - sleeve work",
	})
	require.NoError(t, err)
	assert.True(t, result.Created)
}

func TestReconcileBookingDefaultsDuration(t *testing.T) {
	svc, querier := newBookingServiceForTest(t)

	startAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	querier.EXPECT().
		GetAppointmentBySquareID(gomock.Any(), textValue("bk_2")).
		Return(db.Appointment{}, pgx.ErrNoRows)
	querier.EXPECT().
		CreateAppointment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateAppointmentParams) (db.Appointment, error) {
			assert.Equal(t, int32(60), arg.Duration)
			assert.Equal(t, startAt.Add(time.Hour), arg.EndTime.Time)
			assert.False(t, arg.CustomerID.Valid)
			return db.Appointment{ID: uuid.New()}, nil
		})
	querier.EXPECT().
		CreateAuditLog(gomock.Any(), gomock.Any()).
		Return(db.AuditLog{}, nil).
		AnyTimes()

	result, err := svc.ReconcileBooking(context.Background(), BookingData{
		SquareID: "bk_2",
		StartAt:  startAt,
	})
	require.NoError(t, err)
	assert.True(t, result.Created)
}

func TestReconcileBookingUpdatesExisting(t *testing.T) {
	svc, querier := newBookingServiceForTest(t)

	oldStart := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	newStart := time.Date(2024, 6, 2, 14, 0, 0, 0, time.UTC)
	existing := db.Appointment{
		ID:        uuid.New(),
		SquareID:  textValue("bk_3"),
		StartTime: timestamptzValue(oldStart),
		EndTime:   timestamptzValue(oldStart.Add(90 * time.Minute)),
		Duration:  90,
		Status:    db.AppointmentStatusScheduled,
	}

	querier.EXPECT().
		GetAppointmentBySquareID(gomock.Any(), textValue("bk_3")).
		Return(existing, nil)
	querier.EXPECT().
		UpdateAppointmentSync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateAppointmentSyncParams) (db.Appointment, error) {
			assert.Equal(t, existing.ID, arg.ID)
			assert.Equal(t, db.AppointmentStatusCancelled, arg.Status)
			assert.Equal(t, newStart, arg.StartTime.Time)
			// End time follows the stored duration, not the event.
			assert.Equal(t, newStart.Add(90*time.Minute), arg.EndTime.Time)
			return db.Appointment{ID: existing.ID, Status: arg.Status, StartTime: arg.StartTime}, nil
		})
	querier.EXPECT().
		CreateAuditLog(gomock.Any(), gomock.Any()).
		Return(db.AuditLog{}, nil).
		AnyTimes()

	result, err := svc.ReconcileBooking(context.Background(), BookingData{
		SquareID:        "bk_3",
		StartAt:         newStart,
		DurationMinutes: 30,
		Status:          "CANCELLED",
	})
	require.NoError(t, err)
	assert.False(t, result.Created)
}

func TestReconcileBookingUnmappedStatusKeepsExisting(t *testing.T) {
	svc, querier := newBookingServiceForTest(t)

	existing := db.Appointment{
		ID:       uuid.New(),
		SquareID: textValue("bk_4"),
		Duration: 60,
		Status:   db.AppointmentStatusConfirmed,
	}

	querier.EXPECT().
		GetAppointmentBySquareID(gomock.Any(), textValue("bk_4")).
		Return(existing, nil)
	querier.EXPECT().
		UpdateAppointmentSync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateAppointmentSyncParams) (db.Appointment, error) {
			assert.Equal(t, db.AppointmentStatusConfirmed, arg.Status)
			return db.Appointment{ID: existing.ID, Status: arg.Status}, nil
		})
	querier.EXPECT().
		CreateAuditLog(gomock.Any(), gomock.Any()).
		Return(db.AuditLog{}, nil).
		AnyTimes()

	_, err := svc.ReconcileBooking(context.Background(), BookingData{
		SquareID: "bk_4",
		Status:   "PENDING",
	})
	require.NoError(t, err)
}

func TestReconcileBookingMissingSquareID(t *testing.T) {
	svc, _ := newBookingServiceForTest(t)

	_, err := svc.ReconcileBooking(context.Background(), BookingData{})
	assert.Error(t, err)
}

func TestReconcileBookingCreateRaceFallsBackToUpdate(t *testing.T) {
	svc, querier := newBookingServiceForTest(t)

	existing := db.Appointment{
		ID:       uuid.New(),
		SquareID: textValue("bk_5"),
		Duration: 60,
		Status:   db.AppointmentStatusScheduled,
	}

	querier.EXPECT().
		GetAppointmentBySquareID(gomock.Any(), textValue("bk_5")).
		Return(db.Appointment{}, pgx.ErrNoRows)
	querier.EXPECT().
		CreateAppointment(gomock.Any(), gomock.Any()).
		Return(db.Appointment{}, &pgconn.PgError{Code: uniqueViolation})
	querier.EXPECT().
		GetAppointmentBySquareID(gomock.Any(), textValue("bk_5")).
		Return(existing, nil)
	querier.EXPECT().
		UpdateAppointmentSync(gomock.Any(), gomock.Any()).
		Return(existing, nil)
	querier.EXPECT().
		CreateAuditLog(gomock.Any(), gomock.Any()).
		Return(db.AuditLog{}, nil).
		AnyTimes()

	result, err := svc.ReconcileBooking(context.Background(), BookingData{
		SquareID: "bk_5",
		StartAt:  time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.False(t, result.Created)
}

func TestMapBookingStatus(t *testing.T) {
	tests := []struct {
		external string
		want     db.AppointmentStatus
		mapped   bool
	}{
		{"CANCELLED", db.AppointmentStatusCancelled, true},
		{"cancelled", db.AppointmentStatusCancelled, true},
		{"ACCEPTED", db.AppointmentStatusConfirmed, true},
		{"NO_SHOW", db.AppointmentStatusNoShow, true},
		{"PENDING", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.external, func(t *testing.T) {
			got, ok := mapBookingStatus(tt.external)
			assert.Equal(t, tt.mapped, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSellerNote(t *testing.T) {
	tests := []struct {
		name      string
		note      string
		wantType  db.AppointmentType
		wantNotes string
	}{
		{
			name:      "type with dash separator",
			note:      "tattoo_session - sleeve work",
			wantType:  db.AppointmentTypeTattooSession,
			wantNotes: "sleeve work",
		},
		{
			name:      "type with colon separator",
			note:      "consultation: initial chat",
			wantType:  db.AppointmentTypeConsultation,
			wantNotes: "initial chat",
		},
		{
			name:      "type only",
			note:      "drawing_consultation",
			wantType:  db.AppointmentTypeDrawingConsultation,
			wantNotes: "",
		},
		{
			name:      "case insensitive keyword",
			note:      "Consultation design talk",
			wantType:  db.AppointmentTypeConsultation,
			wantNotes: "design talk",
		},
		{
			name:      "no keyword defaults to tattoo session",
			note:      "walk-in flash",
			wantType:  db.AppointmentTypeTattooSession,
			wantNotes: "walk-in flash",
		},
		{
			name:      "empty note",
			note:      "",
			wantType:  db.AppointmentTypeTattooSession,
			wantNotes: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotNotes := parseSellerNote(tt.note)
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantNotes, gotNotes)
		})
	}
}
