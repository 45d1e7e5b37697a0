package webhooks

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingHandler captures what the router dispatched.
type recordingHandler struct {
	payments  []PaymentPayload
	checkouts []CheckoutPayload
	invoices  []InvoicePayload
	bookings  []BookingPayload
	err       error
}

func (h *recordingHandler) HandlePaymentEvent(ctx context.Context, eventType string, payment PaymentPayload, raw []byte) error {
	h.payments = append(h.payments, payment)
	return h.err
}

func (h *recordingHandler) HandleCheckoutEvent(ctx context.Context, eventType string, checkout CheckoutPayload, raw []byte) error {
	h.checkouts = append(h.checkouts, checkout)
	return h.err
}

func (h *recordingHandler) HandleInvoicePaymentMade(ctx context.Context, invoice InvoicePayload) error {
	h.invoices = append(h.invoices, invoice)
	return h.err
}

func (h *recordingHandler) HandleBookingEvent(ctx context.Context, eventType string, booking BookingPayload) error {
	h.bookings = append(h.bookings, booking)
	return h.err
}

func makeEvent(t *testing.T, eventType string, object string) Event {
	t.Helper()
	return Event{
		Type:    eventType,
		EventID: "evt_test",
		Data: EventData{
			Type:   eventType,
			ID:     "obj_test",
			Object: json.RawMessage(object),
		},
	}
}

func TestRouterRoutesPaymentEvent(t *testing.T) {
	handler := &recordingHandler{}
	router := NewRouter(handler, zap.NewNop())

	event := makeEvent(t, EventPaymentUpdated, `{
		"payment": {
			"id": "pay_1",
			"referenceId": "ref_1",
			"orderId": "order_1",
			"status": "COMPLETED",
			"sourceType": "CARD",
			"amountMoney": {"amount": 5000, "currency": "CAD"}
		}
	}`)

	err := router.Route(context.Background(), event)
	require.NoError(t, err)

	require.Len(t, handler.payments, 1)
	payment := handler.payments[0]
	assert.Equal(t, "pay_1", payment.ID)
	assert.Equal(t, "ref_1", payment.ReferenceID)
	assert.Equal(t, "order_1", payment.OrderID)
	assert.Equal(t, "COMPLETED", payment.Status)
	assert.Equal(t, int64(5000), payment.AmountMoney.Amount)
	assert.Equal(t, "CAD", payment.AmountMoney.Currency)
}

func TestRouterRoutesBookingEvent(t *testing.T) {
	handler := &recordingHandler{}
	router := NewRouter(handler, zap.NewNop())

	event := makeEvent(t, EventBookingCreated, `{
		"booking": {
			"id": "bk_1",
			"status": "ACCEPTED",
			"startAt": "2024-06-01T10:00:00Z",
			"customerId": "cust_1",
			"sellerNote": "tattoo_session - sleeve work",
			"appointmentSegments": [{"durationMinutes": 120}]
		}
	}`)

	err := router.Route(context.Background(), event)
	require.NoError(t, err)

	require.Len(t, handler.bookings, 1)
	booking := handler.bookings[0]
	assert.Equal(t, "bk_1", booking.ID)
	assert.Equal(t, "2024-06-01T10:00:00Z", booking.StartAt)
	assert.Equal(t, "tattoo_session - sleeve work", booking.SellerNote)
	require.Len(t, booking.AppointmentSegments, 1)
	assert.Equal(t, 120, booking.AppointmentSegments[0].DurationMinutes)
}

func TestRouterRoutesCheckoutAndInvoiceEvents(t *testing.T) {
	handler := &recordingHandler{}
	router := NewRouter(handler, zap.NewNop())

	checkout := makeEvent(t, EventCheckoutUpdated, `{
		"checkout": {
			"id": "chk_1",
			"referenceId": "ref_9",
			"status": "COMPLETED",
			"amountMoney": {"amount": 10000, "currency": "CAD"}
		}
	}`)
	require.NoError(t, router.Route(context.Background(), checkout))
	require.Len(t, handler.checkouts, 1)
	assert.Equal(t, "chk_1", handler.checkouts[0].ID)

	invoice := makeEvent(t, EventInvoicePaymentMade, `{
		"invoice": {
			"id": "inv_1",
			"invoiceNumber": "INV-0042"
		}
	}`)
	require.NoError(t, router.Route(context.Background(), invoice))
	require.Len(t, handler.invoices, 1)
	assert.Equal(t, "INV-0042", handler.invoices[0].InvoiceNumber)
}

func TestRouterIgnoresUnknownEventType(t *testing.T) {
	handler := &recordingHandler{}
	router := NewRouter(handler, zap.NewNop())

	event := makeEvent(t, "catalog.version.updated", `{}`)

	err := router.Route(context.Background(), event)
	assert.NoError(t, err)
	assert.Empty(t, handler.payments)
	assert.Empty(t, handler.checkouts)
	assert.Empty(t, handler.invoices)
	assert.Empty(t, handler.bookings)
}

func TestRouterReturnsDecodeError(t *testing.T) {
	handler := &recordingHandler{}
	router := NewRouter(handler, zap.NewNop())

	event := makeEvent(t, EventPaymentCreated, `{"payment": "not-an-object"`)

	err := router.Route(context.Background(), event)
	assert.Error(t, err)
	assert.Empty(t, handler.payments)
}
