package db

import (
	"context"

	"github.com/google/uuid"
)

const getInvoiceByNumber = `
SELECT id, appointment_id, description, status, created_at, updated_at
FROM invoices
WHERE description ILIKE '%' || $1 || '%'
ORDER BY created_at DESC
LIMIT 1
`

// GetInvoiceByNumber finds the most recent local invoice whose description
// contains the given Square invoice number. The match is deliberately loose:
// the two numbering schemes are not identically keyed.
func (q *Queries) GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (Invoice, error) {
	row := q.db.QueryRow(ctx, getInvoiceByNumber, invoiceNumber)
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.AppointmentID,
		&i.Description,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateInvoiceStatus = `
UPDATE invoices
SET status = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING id, appointment_id, description, status, created_at, updated_at
`

type UpdateInvoiceStatusParams struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

// UpdateInvoiceStatus transitions an invoice to the given status.
func (q *Queries) UpdateInvoiceStatus(ctx context.Context, arg UpdateInvoiceStatusParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, updateInvoiceStatus, arg.ID, arg.Status)
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.AppointmentID,
		&i.Description,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
