package webhooks

import (
	"context"

	"go.uber.org/zap"
)

// Handler receives decoded webhook payloads. It is implemented by the
// reconciliation layer and mocked in router tests.
type Handler interface {
	HandlePaymentEvent(ctx context.Context, eventType string, payment PaymentPayload, raw []byte) error
	HandleCheckoutEvent(ctx context.Context, eventType string, checkout CheckoutPayload, raw []byte) error
	HandleInvoicePaymentMade(ctx context.Context, invoice InvoicePayload) error
	HandleBookingEvent(ctx context.Context, eventType string, booking BookingPayload) error
}

// Router dispatches verified webhook events to the reconciliation handlers.
// Errors returned here are business/data failures: the HTTP layer logs them
// and still acknowledges the event, because Square retries indefinitely on
// non-2xx and a malformed payload does not get better by being redelivered.
type Router struct {
	handler Handler
	logger  *zap.Logger
}

// NewRouter creates an event router.
func NewRouter(handler Handler, logger *zap.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  logger,
	}
}

// Route dispatches a single event by type. Unknown event types are logged
// and dropped; they are not an error.
func (r *Router) Route(ctx context.Context, event Event) error {
	log := r.logger.With(
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.Type),
	)
	log.Info("Processing webhook event")

	switch event.Type {
	case EventPaymentCreated, EventPaymentUpdated:
		payment, err := DecodePayment(event.Data)
		if err != nil {
			return err
		}
		return r.handler.HandlePaymentEvent(ctx, event.Type, payment, event.Data.Object)

	case EventCheckoutCreated, EventCheckoutUpdated:
		checkout, err := DecodeCheckout(event.Data)
		if err != nil {
			return err
		}
		return r.handler.HandleCheckoutEvent(ctx, event.Type, checkout, event.Data.Object)

	case EventInvoicePaymentMade:
		invoice, err := DecodeInvoice(event.Data)
		if err != nil {
			return err
		}
		return r.handler.HandleInvoicePaymentMade(ctx, invoice)

	case EventBookingCreated, EventBookingUpdated:
		booking, err := DecodeBooking(event.Data)
		if err != nil {
			return err
		}
		return r.handler.HandleBookingEvent(ctx, event.Type, booking)

	default:
		log.Warn("Unhandled webhook event type")
		return nil
	}
}
