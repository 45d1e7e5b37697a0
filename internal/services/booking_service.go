package services

import (
	"context"
	"strings"
	"time"

	"github.com/UbiShip-Limited/bItS-build-sub008/internal/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultBookingDurationMinutes = 60

// BookingData is a normalized Square booking, fed identically by the webhook
// path and the polling sync job.
type BookingData struct {
	SquareID         string
	CustomerSquareID string
	StartAt          time.Time
	DurationMinutes  int
	SellerNote       string
	Status           string
}

// BookingReconcileResult reports what reconciliation did. Created is true
// only on the call that actually inserted the row: Square sends its own
// customer-facing confirmation email, and downstream notification logic
// keys off this flag to avoid duplicating it.
type BookingReconcileResult struct {
	Appointment db.Appointment
	Created     bool
}

// BookingService upserts local appointments from Square booking state. The
// operation is idempotent: re-running it with the same booking payload, from
// a redelivered webhook or an overlapping sync window, converges on the same
// row.
type BookingService struct {
	queries db.Querier
	logger  *zap.Logger
	audit   *AuditService
}

// NewBookingService creates a new booking reconciliation service.
func NewBookingService(queries db.Querier, logger *zap.Logger, audit *AuditService) *BookingService {
	return &BookingService{
		queries: queries,
		logger:  logger,
		audit:   audit,
	}
}

// ReconcileBooking finds or creates the appointment for a Square booking and
// applies the booking's status and schedule to it.
func (s *BookingService) ReconcileBooking(ctx context.Context, data BookingData) (*BookingReconcileResult, error) {
	if data.SquareID == "" {
		return nil, errors.New("booking is missing a Square id")
	}

	existing, err := s.queries.GetAppointmentBySquareID(ctx, textValue(data.SquareID))
	switch {
	case err == nil:
		return s.updateAppointment(ctx, existing, data)
	case errors.Is(err, pgx.ErrNoRows):
		return s.createAppointment(ctx, data)
	default:
		return nil, errors.Wrap(err, "failed to look up appointment by square id")
	}
}

func (s *BookingService) createAppointment(ctx context.Context, data BookingData) (*BookingReconcileResult, error) {
	customerID := s.resolveCustomer(ctx, data)

	duration := data.DurationMinutes
	if duration <= 0 {
		duration = defaultBookingDurationMinutes
	}
	endTime := data.StartAt.Add(time.Duration(duration) * time.Minute)

	appointmentType, notes := parseSellerNote(data.SellerNote)

	status := db.AppointmentStatusScheduled
	if mapped, ok := mapBookingStatus(data.Status); ok {
		status = mapped
	}

	appointment, err := s.queries.CreateAppointment(ctx, db.CreateAppointmentParams{
		SquareID:   textValue(data.SquareID),
		CustomerID: customerID,
		StartTime:  timestamptzValue(data.StartAt),
		EndTime:    timestamptzValue(endTime),
		Duration:   int32(duration),
		Status:     status,
		Type:       appointmentType,
		Notes:      textValue(notes),
	})
	if err != nil {
		if isUniqueViolation(err) {
			// Lost a create race with the other reconciliation path.
			existing, lookupErr := s.queries.GetAppointmentBySquareID(ctx, textValue(data.SquareID))
			if lookupErr != nil {
				return nil, errors.Wrap(lookupErr, "failed to re-fetch appointment after duplicate create")
			}
			return s.updateAppointment(ctx, existing, data)
		}
		return nil, errors.Wrap(err, "failed to create appointment")
	}

	s.logger.Info("Created appointment from Square booking",
		zap.String("square_id", data.SquareID),
		zap.String("status", string(status)),
		zap.String("type", string(appointmentType)))

	s.audit.LogAction(ctx, "appointment_created", "appointment", data.SquareID, map[string]interface{}{
		"appointment_id":      appointment.ID.String(),
		"created_from_square": true,
		"status":              string(appointment.Status),
		"start_time":          appointment.StartTime.Time,
	})

	return &BookingReconcileResult{Appointment: appointment, Created: true}, nil
}

func (s *BookingService) updateAppointment(ctx context.Context, existing db.Appointment, data BookingData) (*BookingReconcileResult, error) {
	status := existing.Status
	if mapped, ok := mapBookingStatus(data.Status); ok {
		status = mapped
	}

	startTime := existing.StartTime
	endTime := existing.EndTime
	if !data.StartAt.IsZero() && !data.StartAt.Equal(existing.StartTime.Time) {
		// The end time follows from the stored duration; the event's segment
		// duration only matters at creation.
		startTime = timestamptzValue(data.StartAt)
		endTime = timestamptzValue(data.StartAt.Add(time.Duration(existing.Duration) * time.Minute))
	}

	appointment, err := s.queries.UpdateAppointmentSync(ctx, db.UpdateAppointmentSyncParams{
		ID:        existing.ID,
		Status:    status,
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update appointment")
	}

	s.logger.Info("Updated appointment from Square booking",
		zap.String("square_id", data.SquareID),
		zap.String("status", string(status)))

	s.audit.LogAction(ctx, "appointment_updated", "appointment", data.SquareID, map[string]interface{}{
		"appointment_id":      appointment.ID.String(),
		"created_from_square": false,
		"status":              string(appointment.Status),
		"start_time":          appointment.StartTime.Time,
	})

	return &BookingReconcileResult{Appointment: appointment, Created: false}, nil
}

// resolveCustomer maps the Square customer id to a local customer.
// Resolution is best-effort: an unknown customer leaves the appointment
// anonymous and logs a warning.
func (s *BookingService) resolveCustomer(ctx context.Context, data BookingData) pgtype.UUID {
	if data.CustomerSquareID == "" {
		return pgtype.UUID{}
	}

	customer, err := s.queries.GetCustomerBySquareID(ctx, textValue(data.CustomerSquareID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn("Square customer has no local record; storing appointment without customer",
				zap.String("square_customer_id", data.CustomerSquareID),
				zap.String("square_booking_id", data.SquareID))
		} else {
			s.logger.Error("Failed to look up customer by square id",
				zap.String("square_customer_id", data.CustomerSquareID),
				zap.Error(err))
		}
		return pgtype.UUID{}
	}

	return pgtype.UUID{Bytes: customer.ID, Valid: true}
}

// mapBookingStatus translates a Square booking status to the local status.
// The second return is false when the external status has no mapping.
func mapBookingStatus(external string) (db.AppointmentStatus, bool) {
	switch strings.ToUpper(external) {
	case "CANCELLED":
		return db.AppointmentStatusCancelled, true
	case "ACCEPTED":
		return db.AppointmentStatusConfirmed, true
	case "NO_SHOW":
		return db.AppointmentStatusNoShow, true
	default:
		return "", false
	}
}

// parseSellerNote splits a Square seller note into an appointment type and
// free-text notes. The note may lead with one of the known type keywords,
// optionally followed by a "-" or ":" separator; the rest is kept verbatim.
func parseSellerNote(note string) (db.AppointmentType, string) {
	trimmed := strings.TrimSpace(note)
	lower := strings.ToLower(trimmed)

	prefixes := []struct {
		keyword string
		typ     db.AppointmentType
	}{
		{"drawing_consultation", db.AppointmentTypeDrawingConsultation},
		{"consultation", db.AppointmentTypeConsultation},
		{"tattoo_session", db.AppointmentTypeTattooSession},
	}

	for _, p := range prefixes {
		if strings.HasPrefix(lower, p.keyword) {
			rest := trimmed[len(p.keyword):]
			rest = strings.TrimLeft(rest, " \t")
			rest = strings.TrimLeft(rest, "-:")
			rest = strings.TrimSpace(rest)
			return p.typ, rest
		}
	}

	return db.AppointmentTypeTattooSession, trimmed
}
