package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createAuditLog = `
INSERT INTO audit_logs (action, resource, resource_id, details)
VALUES ($1, $2, $3, $4)
RETURNING id, action, resource, resource_id, details, created_at
`

type CreateAuditLogParams struct {
	Action     string      `json:"action"`
	Resource   string      `json:"resource"`
	ResourceID pgtype.Text `json:"resource_id"`
	Details    []byte      `json:"details"`
}

// CreateAuditLog appends an audit record. Audit rows are never updated or
// read back by the sync engine.
func (q *Queries) CreateAuditLog(ctx context.Context, arg CreateAuditLogParams) (AuditLog, error) {
	row := q.db.QueryRow(ctx, createAuditLog,
		arg.Action,
		arg.Resource,
		arg.ResourceID,
		arg.Details,
	)
	var a AuditLog
	err := row.Scan(
		&a.ID,
		&a.Action,
		&a.Resource,
		&a.ResourceID,
		&a.Details,
		&a.CreatedAt,
	)
	return a, err
}
