package handlers

import (
	"net/http"

	"github.com/UbiShip-Limited/bItS-build-sub008/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// SyncHandler exposes the booking sync job to the dashboard: current status
// and an on-demand trigger.
type SyncHandler struct {
	syncService *services.BookingSyncService
}

// NewSyncHandler creates the sync endpoint handler.
func NewSyncHandler(syncService *services.BookingSyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// SyncStatusResponse reports the sync job's state.
type SyncStatusResponse struct {
	Running    bool                 `json:"running"`
	LastResult *services.SyncResult `json:"last_result,omitempty"`
}

// GetStatus handles GET /api/v1/square-sync/status.
func (h *SyncHandler) GetStatus(c *gin.Context) {
	sendSuccess(c, http.StatusOK, SyncStatusResponse{
		Running:    h.syncService.IsRunning(),
		LastResult: h.syncService.LastResult(),
	})
}

// RunSync handles POST /api/v1/square-sync/run. The run executes inline;
// callers wanting fire-and-forget poll the status endpoint instead.
func (h *SyncHandler) RunSync(c *gin.Context) {
	result, err := h.syncService.Run(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrSyncAlreadyRunning) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A sync run is already in progress"})
			return
		}
		sendError(c, http.StatusBadGateway, "Sync run failed", err)
		return
	}

	sendSuccess(c, http.StatusOK, result)
}
