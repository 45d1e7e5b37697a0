package services

import (
	"context"
	"time"

	"github.com/UbiShip-Limited/bItS-build-sub008/internal/webhooks"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// WebhookProcessor adapts decoded webhook payloads onto the reconciliation
// services. It implements webhooks.Handler.
type WebhookProcessor struct {
	payments *PaymentService
	bookings *BookingService
	logger   *zap.Logger
}

// NewWebhookProcessor creates the webhook-side reconciliation adapter.
func NewWebhookProcessor(payments *PaymentService, bookings *BookingService, logger *zap.Logger) *WebhookProcessor {
	return &WebhookProcessor{
		payments: payments,
		bookings: bookings,
		logger:   logger,
	}
}

// HandlePaymentEvent reconciles payment.created / payment.updated.
func (p *WebhookProcessor) HandlePaymentEvent(ctx context.Context, eventType string, payment webhooks.PaymentPayload, raw []byte) error {
	return p.payments.ReconcilePayment(ctx, PaymentData{
		SquareID:    payment.ID,
		ReferenceID: payment.ReferenceID,
		OrderID:     payment.OrderID,
		Status:      payment.Status,
		SourceType:  payment.SourceType,
		AmountMinor: payment.AmountMoney.Amount,
		Currency:    payment.AmountMoney.Currency,
		Raw:         raw,
	})
}

// HandleCheckoutEvent reconciles checkout.created / checkout.updated. A
// checkout is treated as a payment-shaped record whose order id is the
// checkout id itself.
func (p *WebhookProcessor) HandleCheckoutEvent(ctx context.Context, eventType string, checkout webhooks.CheckoutPayload, raw []byte) error {
	orderID := checkout.OrderID
	if orderID == "" {
		orderID = checkout.ID
	}
	return p.payments.ReconcilePayment(ctx, PaymentData{
		SquareID:    checkout.ID,
		ReferenceID: checkout.ReferenceID,
		OrderID:     orderID,
		Status:      checkout.Status,
		SourceType:  "checkout",
		AmountMinor: checkout.AmountMoney.Amount,
		Currency:    checkout.AmountMoney.Currency,
		Raw:         raw,
	})
}

// HandleInvoicePaymentMade reconciles invoice.payment_made.
func (p *WebhookProcessor) HandleInvoicePaymentMade(ctx context.Context, invoice webhooks.InvoicePayload) error {
	return p.payments.MarkInvoicePaid(ctx, InvoiceData{
		SquareID:      invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
	})
}

// HandleBookingEvent reconciles booking.created / booking.updated.
func (p *WebhookProcessor) HandleBookingEvent(ctx context.Context, eventType string, booking webhooks.BookingPayload) error {
	var startAt time.Time
	if booking.StartAt != "" {
		parsed, err := time.Parse(time.RFC3339, booking.StartAt)
		if err != nil {
			return errors.Wrapf(err, "booking %s has invalid start time %q", booking.ID, booking.StartAt)
		}
		startAt = parsed
	}

	duration := 0
	if len(booking.AppointmentSegments) > 0 {
		duration = booking.AppointmentSegments[0].DurationMinutes
	}

	_, err := p.bookings.ReconcileBooking(ctx, BookingData{
		SquareID:         booking.ID,
		CustomerSquareID: booking.CustomerID,
		StartAt:          startAt,
		DurationMinutes:  duration,
		SellerNote:       booking.SellerNote,
		Status:           booking.Status,
	})
	return err
}
