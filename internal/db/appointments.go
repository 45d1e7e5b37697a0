package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getAppointmentBySquareID = `
SELECT id, square_id, customer_id, start_time, end_time, duration, status, type, notes, price_quote, created_at, updated_at
FROM appointments
WHERE square_id = $1
`

// GetAppointmentBySquareID looks an appointment up by its Square booking id.
func (q *Queries) GetAppointmentBySquareID(ctx context.Context, squareID pgtype.Text) (Appointment, error) {
	row := q.db.QueryRow(ctx, getAppointmentBySquareID, squareID)
	var a Appointment
	err := row.Scan(
		&a.ID,
		&a.SquareID,
		&a.CustomerID,
		&a.StartTime,
		&a.EndTime,
		&a.Duration,
		&a.Status,
		&a.Type,
		&a.Notes,
		&a.PriceQuote,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

const createAppointment = `
INSERT INTO appointments (square_id, customer_id, start_time, end_time, duration, status, type, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, square_id, customer_id, start_time, end_time, duration, status, type, notes, price_quote, created_at, updated_at
`

type CreateAppointmentParams struct {
	SquareID   pgtype.Text        `json:"square_id"`
	CustomerID pgtype.UUID        `json:"customer_id"`
	StartTime  pgtype.Timestamptz `json:"start_time"`
	EndTime    pgtype.Timestamptz `json:"end_time"`
	Duration   int32              `json:"duration"`
	Status     AppointmentStatus  `json:"status"`
	Type       AppointmentType    `json:"type"`
	Notes      pgtype.Text        `json:"notes"`
}

// CreateAppointment inserts a new appointment row. The unique constraint on
// square_id is the backstop against concurrent creation for the same booking.
func (q *Queries) CreateAppointment(ctx context.Context, arg CreateAppointmentParams) (Appointment, error) {
	row := q.db.QueryRow(ctx, createAppointment,
		arg.SquareID,
		arg.CustomerID,
		arg.StartTime,
		arg.EndTime,
		arg.Duration,
		arg.Status,
		arg.Type,
		arg.Notes,
	)
	var a Appointment
	err := row.Scan(
		&a.ID,
		&a.SquareID,
		&a.CustomerID,
		&a.StartTime,
		&a.EndTime,
		&a.Duration,
		&a.Status,
		&a.Type,
		&a.Notes,
		&a.PriceQuote,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

const updateAppointmentSync = `
UPDATE appointments
SET status = $2,
    start_time = $3,
    end_time = $4,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING id, square_id, customer_id, start_time, end_time, duration, status, type, notes, price_quote, created_at, updated_at
`

type UpdateAppointmentSyncParams struct {
	ID        uuid.UUID          `json:"id"`
	Status    AppointmentStatus  `json:"status"`
	StartTime pgtype.Timestamptz `json:"start_time"`
	EndTime   pgtype.Timestamptz `json:"end_time"`
}

// UpdateAppointmentSync applies the mutable reconciliation fields. Last write
// wins; duration is never re-derived here.
func (q *Queries) UpdateAppointmentSync(ctx context.Context, arg UpdateAppointmentSyncParams) (Appointment, error) {
	row := q.db.QueryRow(ctx, updateAppointmentSync,
		arg.ID,
		arg.Status,
		arg.StartTime,
		arg.EndTime,
	)
	var a Appointment
	err := row.Scan(
		&a.ID,
		&a.SquareID,
		&a.CustomerID,
		&a.StartTime,
		&a.EndTime,
		&a.Duration,
		&a.Status,
		&a.Type,
		&a.Notes,
		&a.PriceQuote,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}
