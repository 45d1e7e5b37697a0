package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getPaymentBySquareID = `
SELECT id, square_id, reference_id, amount, status, payment_method, order_id, raw_payload, created_at, updated_at
FROM payments
WHERE square_id = $1
`

// GetPaymentBySquareID retrieves a payment by its Square payment id.
func (q *Queries) GetPaymentBySquareID(ctx context.Context, squareID pgtype.Text) (Payment, error) {
	row := q.db.QueryRow(ctx, getPaymentBySquareID, squareID)
	return scanPayment(row)
}

const getPaymentByReferenceID = `
SELECT id, square_id, reference_id, amount, status, payment_method, order_id, raw_payload, created_at, updated_at
FROM payments
WHERE reference_id = $1
`

// GetPaymentByReferenceID retrieves a payment by the locally-issued reference id.
func (q *Queries) GetPaymentByReferenceID(ctx context.Context, referenceID pgtype.Text) (Payment, error) {
	row := q.db.QueryRow(ctx, getPaymentByReferenceID, referenceID)
	return scanPayment(row)
}

const createPayment = `
INSERT INTO payments (square_id, reference_id, amount, status, payment_method, order_id, raw_payload)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, square_id, reference_id, amount, status, payment_method, order_id, raw_payload, created_at, updated_at
`

type CreatePaymentParams struct {
	SquareID      pgtype.Text    `json:"square_id"`
	ReferenceID   pgtype.Text    `json:"reference_id"`
	Amount        pgtype.Numeric `json:"amount"`
	Status        string         `json:"status"`
	PaymentMethod pgtype.Text    `json:"payment_method"`
	OrderID       pgtype.Text    `json:"order_id"`
	RawPayload    []byte         `json:"raw_payload"`
}

// CreatePayment inserts a new payment row.
func (q *Queries) CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error) {
	row := q.db.QueryRow(ctx, createPayment,
		arg.SquareID,
		arg.ReferenceID,
		arg.Amount,
		arg.Status,
		arg.PaymentMethod,
		arg.OrderID,
		arg.RawPayload,
	)
	return scanPayment(row)
}

const updatePayment = `
UPDATE payments
SET square_id = COALESCE($2, square_id),
    status = $3,
    raw_payload = $4,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING id, square_id, reference_id, amount, status, payment_method, order_id, raw_payload, created_at, updated_at
`

type UpdatePaymentParams struct {
	ID         uuid.UUID   `json:"id"`
	SquareID   pgtype.Text `json:"square_id"`
	Status     string      `json:"status"`
	RawPayload []byte      `json:"raw_payload"`
}

// UpdatePayment refreshes the mutable fields of an existing payment row.
func (q *Queries) UpdatePayment(ctx context.Context, arg UpdatePaymentParams) (Payment, error) {
	row := q.db.QueryRow(ctx, updatePayment,
		arg.ID,
		arg.SquareID,
		arg.Status,
		arg.RawPayload,
	)
	return scanPayment(row)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner) (Payment, error) {
	var p Payment
	err := row.Scan(
		&p.ID,
		&p.SquareID,
		&p.ReferenceID,
		&p.Amount,
		&p.Status,
		&p.PaymentMethod,
		&p.OrderID,
		&p.RawPayload,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
