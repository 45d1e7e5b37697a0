package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getPaymentLink = `
SELECT id, square_order_id, customer_id, amount, purpose, status, created_at
FROM payment_links
WHERE id = $1
`

// GetPaymentLink retrieves a payment link by its own id.
func (q *Queries) GetPaymentLink(ctx context.Context, id uuid.UUID) (PaymentLink, error) {
	row := q.db.QueryRow(ctx, getPaymentLink, id)
	return scanPaymentLink(row)
}

const getPaymentLinkByOrderID = `
SELECT id, square_order_id, customer_id, amount, purpose, status, created_at
FROM payment_links
WHERE square_order_id = $1
`

// GetPaymentLinkByOrderID retrieves a payment link by the Square order id it
// was issued against.
func (q *Queries) GetPaymentLinkByOrderID(ctx context.Context, orderID pgtype.Text) (PaymentLink, error) {
	row := q.db.QueryRow(ctx, getPaymentLinkByOrderID, orderID)
	return scanPaymentLink(row)
}

func scanPaymentLink(row rowScanner) (PaymentLink, error) {
	var l PaymentLink
	err := row.Scan(
		&l.ID,
		&l.SquareOrderID,
		&l.CustomerID,
		&l.Amount,
		&l.Purpose,
		&l.Status,
		&l.CreatedAt,
	)
	return l, err
}
