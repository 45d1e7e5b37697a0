package webhooks

import (
	"encoding/json"
	"fmt"
)

// Known Square event types this service reconciles. Anything else is logged
// and acknowledged without processing.
const (
	EventPaymentCreated     = "payment.created"
	EventPaymentUpdated     = "payment.updated"
	EventInvoicePaymentMade = "invoice.payment_made"
	EventCheckoutCreated    = "checkout.created"
	EventCheckoutUpdated    = "checkout.updated"
	EventBookingCreated     = "booking.created"
	EventBookingUpdated     = "booking.updated"
)

// Event is the outer webhook envelope delivered by Square.
type Event struct {
	MerchantID string    `json:"merchant_id,omitempty"`
	Type       string    `json:"type"`
	EventID    string    `json:"event_id"`
	CreatedAt  string    `json:"created_at"`
	Data       EventData `json:"data"`
}

// EventData carries the typed object of the event. Object stays raw until
// the router knows which payload family to decode it into.
type EventData struct {
	Type   string          `json:"type"`
	ID     string          `json:"id"`
	Object json.RawMessage `json:"object"`
}

// Money is an amount in minor units with its currency.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PaymentPayload is the payment object carried by payment.* events.
type PaymentPayload struct {
	ID          string `json:"id"`
	ReferenceID string `json:"referenceId"`
	OrderID     string `json:"orderId"`
	Status      string `json:"status"`
	SourceType  string `json:"sourceType"`
	AmountMoney Money  `json:"amountMoney"`
}

// CheckoutPayload is the checkout object carried by checkout.* events.
type CheckoutPayload struct {
	ID          string `json:"id"`
	ReferenceID string `json:"referenceId"`
	OrderID     string `json:"orderId"`
	Status      string `json:"status"`
	AmountMoney Money  `json:"amountMoney"`
}

// InvoicePayload is the invoice object carried by invoice.payment_made.
type InvoicePayload struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoiceNumber"`
}

// BookingPayload is the booking object carried by booking.* events.
type BookingPayload struct {
	ID                  string           `json:"id"`
	Status              string           `json:"status"`
	StartAt             string           `json:"startAt"`
	CustomerID          string           `json:"customerId"`
	SellerNote          string           `json:"sellerNote"`
	AppointmentSegments []BookingSegment `json:"appointmentSegments"`
}

// BookingSegment is one service segment of a webhook booking.
type BookingSegment struct {
	DurationMinutes int `json:"durationMinutes"`
}

// The data.object member wraps the payload under a key named after the
// object family.

type paymentObject struct {
	Payment PaymentPayload `json:"payment"`
}

type checkoutObject struct {
	Checkout CheckoutPayload `json:"checkout"`
}

type invoiceObject struct {
	Invoice InvoicePayload `json:"invoice"`
}

type bookingObject struct {
	Booking BookingPayload `json:"booking"`
}

// DecodePayment extracts the payment payload from an event's data object.
func DecodePayment(data EventData) (PaymentPayload, error) {
	var wrapper paymentObject
	if err := json.Unmarshal(data.Object, &wrapper); err != nil {
		return PaymentPayload{}, fmt.Errorf("failed to decode payment object: %w", err)
	}
	return wrapper.Payment, nil
}

// DecodeCheckout extracts the checkout payload from an event's data object.
func DecodeCheckout(data EventData) (CheckoutPayload, error) {
	var wrapper checkoutObject
	if err := json.Unmarshal(data.Object, &wrapper); err != nil {
		return CheckoutPayload{}, fmt.Errorf("failed to decode checkout object: %w", err)
	}
	return wrapper.Checkout, nil
}

// DecodeInvoice extracts the invoice payload from an event's data object.
func DecodeInvoice(data EventData) (InvoicePayload, error) {
	var wrapper invoiceObject
	if err := json.Unmarshal(data.Object, &wrapper); err != nil {
		return InvoicePayload{}, fmt.Errorf("failed to decode invoice object: %w", err)
	}
	return wrapper.Invoice, nil
}

// DecodeBooking extracts the booking payload from an event's data object.
func DecodeBooking(data EventData) (BookingPayload, error) {
	var wrapper bookingObject
	if err := json.Unmarshal(data.Object, &wrapper); err != nil {
		return BookingPayload{}, fmt.Errorf("failed to decode booking object: %w", err)
	}
	return wrapper.Booking, nil
}
