package services

import (
	"context"
	"strings"
	"time"

	"github.com/UbiShip-Limited/bItS-build-sub008/internal/db"
	"github.com/UbiShip-Limited/bItS-build-sub008/internal/realtime"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Notifier pushes real-time events to the dashboard. Satisfied by
// *realtime.Hub; delivery is fire-and-forget.
type Notifier interface {
	Broadcast(event string, payload interface{})
}

// PaymentData is a normalized Square payment or checkout carried by a
// webhook event.
type PaymentData struct {
	SquareID    string
	ReferenceID string
	OrderID     string
	Status      string
	SourceType  string
	AmountMinor int64
	Currency    string
	Raw         []byte
}

// InvoiceData identifies a Square invoice that was just paid.
type InvoiceData struct {
	SquareID      string
	InvoiceNumber string
}

// PaymentService upserts local payment records from Square payment events
// and transitions matched invoices. Re-delivery of the same event converges
// on the same row rather than duplicating it.
type PaymentService struct {
	queries  db.Querier
	logger   *zap.Logger
	audit    *AuditService
	email    *EmailService
	notifier Notifier
}

// NewPaymentService creates a new payment reconciliation service.
func NewPaymentService(queries db.Querier, logger *zap.Logger, audit *AuditService, email *EmailService, notifier Notifier) *PaymentService {
	return &PaymentService{
		queries:  queries,
		logger:   logger,
		audit:    audit,
		email:    email,
		notifier: notifier,
	}
}

// ReconcilePayment upserts the local payment row for a Square payment.
// Payments without a reference id cannot be linked to anything local and are
// skipped outright.
func (s *PaymentService) ReconcilePayment(ctx context.Context, data PaymentData) error {
	if data.ReferenceID == "" {
		s.logger.Info("Ignoring payment without reference id",
			zap.String("square_payment_id", data.SquareID))
		return nil
	}

	status := strings.ToLower(data.Status)

	existing, found, err := s.findPayment(ctx, data)
	if err != nil {
		return err
	}

	var payment db.Payment
	if found {
		payment, err = s.queries.UpdatePayment(ctx, db.UpdatePaymentParams{
			ID:         existing.ID,
			SquareID:   textValue(data.SquareID),
			Status:     status,
			RawPayload: data.Raw,
		})
		if err != nil {
			return errors.Wrap(err, "failed to update payment")
		}
		s.logger.Info("Updated payment from Square event",
			zap.String("square_payment_id", data.SquareID),
			zap.String("status", status))
	} else {
		amount, err := minorUnitsToDecimal(data.AmountMinor)
		if err != nil {
			return errors.Wrap(err, "failed to convert payment amount")
		}

		payment, err = s.queries.CreatePayment(ctx, db.CreatePaymentParams{
			SquareID:      textValue(data.SquareID),
			ReferenceID:   textValue(data.ReferenceID),
			Amount:        amount,
			Status:        status,
			PaymentMethod: textValue(strings.ToLower(data.SourceType)),
			OrderID:       textValue(data.OrderID),
			RawPayload:    data.Raw,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create payment")
		}
		s.logger.Info("Created payment from Square event",
			zap.String("square_payment_id", data.SquareID),
			zap.String("status", status))
	}

	s.audit.LogAction(ctx, "payment_synced", "payment", data.SquareID, map[string]interface{}{
		"payment_id":   payment.ID.String(),
		"reference_id": data.ReferenceID,
		"status":       status,
		"created":      !found,
	})

	if status == "completed" {
		s.notifyPaymentCompleted(ctx, data)
	}

	return nil
}

// MarkInvoicePaid transitions the local invoice matching a Square invoice
// number to "paid". A missing match is a logged no-op: invoices always
// originate locally, so there is nothing to create.
func (s *PaymentService) MarkInvoicePaid(ctx context.Context, data InvoiceData) error {
	if data.InvoiceNumber == "" {
		s.logger.Warn("Invoice payment event without invoice number",
			zap.String("square_invoice_id", data.SquareID))
		return nil
	}

	invoice, err := s.queries.GetInvoiceByNumber(ctx, data.InvoiceNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Info("No local invoice matches Square invoice number",
				zap.String("invoice_number", data.InvoiceNumber))
			return nil
		}
		return errors.Wrap(err, "failed to look up invoice")
	}

	if _, err := s.queries.UpdateInvoiceStatus(ctx, db.UpdateInvoiceStatusParams{
		ID:     invoice.ID,
		Status: "paid",
	}); err != nil {
		return errors.Wrap(err, "failed to mark invoice paid")
	}

	s.audit.LogAction(ctx, "invoice_paid", "invoice", invoice.ID.String(), map[string]interface{}{
		"square_invoice_id": data.SquareID,
		"invoice_number":    data.InvoiceNumber,
	})

	return nil
}

// findPayment looks an incoming payment up by reference id first, then by
// Square id. The two keys are alternates, not a composite: either match
// means the payment already exists locally.
func (s *PaymentService) findPayment(ctx context.Context, data PaymentData) (db.Payment, bool, error) {
	payment, err := s.queries.GetPaymentByReferenceID(ctx, textValue(data.ReferenceID))
	if err == nil {
		return payment, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return db.Payment{}, false, errors.Wrap(err, "failed to look up payment by reference id")
	}

	if data.SquareID == "" {
		return db.Payment{}, false, nil
	}

	payment, err = s.queries.GetPaymentBySquareID(ctx, textValue(data.SquareID))
	if err == nil {
		return payment, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return db.Payment{}, false, errors.Wrap(err, "failed to look up payment by square id")
	}

	return db.Payment{}, false, nil
}

// notifyPaymentCompleted resolves the payment link behind a completed
// payment and fans out the dashboard event and owner email. Everything here
// is best-effort: notification failures are logged, never propagated.
func (s *PaymentService) notifyPaymentCompleted(ctx context.Context, data PaymentData) {
	link, ok := s.findPaymentLink(ctx, data)
	if !ok {
		s.logger.Debug("Completed payment has no matching payment link",
			zap.String("square_payment_id", data.SquareID),
			zap.String("reference_id", data.ReferenceID))
		return
	}

	amount := decimal.NewFromInt(data.AmountMinor).Shift(-2)

	payload := realtime.PaymentCompletedPayload{
		Amount:    amount.StringFixed(2),
		Purpose:   link.Purpose.String,
		Timestamp: time.Now().UTC(),
	}

	if link.CustomerID.Valid {
		customer, err := s.queries.GetCustomer(ctx, link.CustomerID.Bytes)
		if err != nil {
			s.logger.Warn("Failed to resolve customer for payment notification",
				zap.Error(err))
		} else {
			payload.CustomerID = customer.ID.String()
			payload.CustomerName = customer.Name
		}
	}
	if payload.CustomerName == "" {
		payload.CustomerName = "Customer"
	}

	s.notifier.Broadcast("payment_completed", payload)

	if err := s.email.SendPaymentNotification(ctx, PaymentNotification{
		CustomerName: payload.CustomerName,
		Amount:       payload.Amount,
		Purpose:      payload.Purpose,
	}); err != nil {
		s.logger.Warn("Owner payment notification email failed",
			zap.String("square_payment_id", data.SquareID),
			zap.Error(err))
	}
}

// findPaymentLink correlates a payment to the link that requested it: by the
// Square order id when present, otherwise by treating the payment's
// reference id as the link's own id. The fallback exists for ad-hoc links
// issued without an order.
func (s *PaymentService) findPaymentLink(ctx context.Context, data PaymentData) (db.PaymentLink, bool) {
	if data.OrderID != "" {
		link, err := s.queries.GetPaymentLinkByOrderID(ctx, textValue(data.OrderID))
		if err == nil {
			return link, true
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error("Failed to look up payment link by order id", zap.Error(err))
			return db.PaymentLink{}, false
		}
	}

	linkID, err := uuid.Parse(data.ReferenceID)
	if err != nil {
		return db.PaymentLink{}, false
	}

	link, err := s.queries.GetPaymentLink(ctx, linkID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error("Failed to look up payment link by id", zap.Error(err))
		}
		return db.PaymentLink{}, false
	}
	return link, true
}

func minorUnitsToDecimal(amountMinor int64) (pgtype.Numeric, error) {
	return numericFromDecimal(decimal.NewFromInt(amountMinor).Shift(-2))
}
