package services

import (
	"context"
	"encoding/json"

	"github.com/UbiShip-Limited/bItS-build-sub008/internal/db"

	"go.uber.org/zap"
)

// AuditService appends audit log entries for every reconciliation side
// effect. Writes are fire-and-report: a failed audit insert is logged but
// never fails the operation that produced it.
type AuditService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewAuditService creates a new audit service.
func NewAuditService(queries db.Querier, logger *zap.Logger) *AuditService {
	return &AuditService{
		queries: queries,
		logger:  logger,
	}
}

// LogAction records an action against a resource with structured detail.
func (s *AuditService) LogAction(ctx context.Context, action, resource, resourceID string, details interface{}) {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		s.logger.Error("Failed to marshal audit details",
			zap.String("action", action),
			zap.String("resource", resource),
			zap.Error(err))
		detailsJSON = []byte("{}")
	}

	_, err = s.queries.CreateAuditLog(ctx, db.CreateAuditLogParams{
		Action:     action,
		Resource:   resource,
		ResourceID: textValue(resourceID),
		Details:    detailsJSON,
	})
	if err != nil {
		s.logger.Error("Failed to write audit log",
			zap.String("action", action),
			zap.String("resource", resource),
			zap.String("resource_id", resourceID),
			zap.Error(err))
	}
}
