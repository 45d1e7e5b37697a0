package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getCustomer = `
SELECT id, square_id, name, email, phone, created_at, updated_at
FROM customers
WHERE id = $1
`

// GetCustomer retrieves a customer by local id.
func (q *Queries) GetCustomer(ctx context.Context, id uuid.UUID) (Customer, error) {
	row := q.db.QueryRow(ctx, getCustomer, id)
	var c Customer
	err := row.Scan(
		&c.ID,
		&c.SquareID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

const getCustomerBySquareID = `
SELECT id, square_id, name, email, phone, created_at, updated_at
FROM customers
WHERE square_id = $1
`

// GetCustomerBySquareID retrieves a customer by their Square customer id.
func (q *Queries) GetCustomerBySquareID(ctx context.Context, squareID pgtype.Text) (Customer, error) {
	row := q.db.QueryRow(ctx, getCustomerBySquareID, squareID)
	var c Customer
	err := row.Scan(
		&c.ID,
		&c.SquareID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
