package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/UbiShip-Limited/bItS-build-sub008/internal/config"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/logger"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/webhooks"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SquareSignatureHeader carries the HMAC signature on Square deliveries.
const SquareSignatureHeader = "X-Square-Hmacsha256-Signature"

// WebhookHandler terminates Square webhook deliveries: it verifies the
// signature, decodes the envelope, and hands the event to the router.
//
// Square retries on any non-2xx, so processing failures after a valid
// signature are logged and acknowledged with 200 anyway; redelivering a
// payload we could not handle does not make it handleable.
type WebhookHandler struct {
	squareConfig config.SquareConfig
	router       *webhooks.Router
}

// NewWebhookHandler creates the webhook endpoint handler.
func NewWebhookHandler(squareConfig config.SquareConfig, router *webhooks.Router) *WebhookHandler {
	return &WebhookHandler{
		squareConfig: squareConfig,
		router:       router,
	}
}

type webhookAck struct {
	Received bool `json:"received"`
}

// HandleSquareWebhook processes POST /api/v1/webhooks/square.
func (h *WebhookHandler) HandleSquareWebhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to read request body", err)
		return
	}

	if h.squareConfig.WebhookSignatureKey == "" {
		sendError(c, http.StatusInternalServerError, "Webhook signature key is not configured", webhooks.ErrMissingSignatureKey)
		return
	}

	notificationURL := h.notificationURL(c)
	signature := c.GetHeader(SquareSignatureHeader)

	if !webhooks.VerifySignature(h.squareConfig.WebhookSignatureKey, notificationURL, body, signature) {
		logger.Warn("Rejected webhook with invalid signature",
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", len(body)))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid webhook signature"})
		return
	}

	var event webhooks.Event
	if err := json.Unmarshal(body, &event); err != nil {
		logger.Error("Failed to decode webhook envelope", zap.Error(err))
		c.JSON(http.StatusOK, webhookAck{Received: true})
		return
	}

	if err := h.router.Route(c.Request.Context(), event); err != nil {
		logger.Error("Webhook event processing failed",
			zap.String("event_id", event.EventID),
			zap.String("event_type", event.Type),
			zap.Error(err))
	}

	c.JSON(http.StatusOK, webhookAck{Received: true})
}

// notificationURL returns the URL Square signed the delivery against. The
// configured URL wins; behind a proxy the reconstructed one would not match
// what Square was told to call.
func (h *WebhookHandler) notificationURL(c *gin.Context) string {
	if h.squareConfig.WebhookURL != "" {
		return h.squareConfig.WebhookURL
	}

	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.Path
}
