package services

import (
	"context"
	"fmt"

	"github.com/UbiShip-Limited/bItS-build-sub008/internal/config"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// EmailService sends owner-facing notification emails via Resend. All sends
// are best-effort from the caller's perspective; the webhook path logs and
// drops failures rather than surfacing them.
type EmailService struct {
	client     *resend.Client
	logger     *zap.Logger
	fromEmail  string
	fromName   string
	ownerEmail string
}

// NewEmailService creates a new email service. An empty API key or owner
// address leaves the service disabled; sends become logged no-ops.
func NewEmailService(cfg config.EmailConfig, logger *zap.Logger) *EmailService {
	var client *resend.Client
	if cfg.ResendAPIKey != "" {
		client = resend.NewClient(cfg.ResendAPIKey)
	}

	return &EmailService{
		client:     client,
		logger:     logger,
		fromEmail:  cfg.FromEmail,
		fromName:   cfg.FromName,
		ownerEmail: cfg.OwnerEmail,
	}
}

// Enabled reports whether the service can actually deliver mail.
func (s *EmailService) Enabled() bool {
	return s.client != nil && s.ownerEmail != ""
}

// PaymentNotification describes a completed payment for the owner email.
type PaymentNotification struct {
	CustomerName string
	Amount       string
	Purpose      string
}

// SendPaymentNotification emails the studio owner about a completed payment.
func (s *EmailService) SendPaymentNotification(ctx context.Context, notification PaymentNotification) error {
	if !s.Enabled() {
		s.logger.Warn("Email service not configured; skipping payment notification",
			zap.String("customer_name", notification.CustomerName))
		return nil
	}

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	subject := fmt.Sprintf("Payment received: $%s from %s", notification.Amount, notification.CustomerName)

	purpose := notification.Purpose
	if purpose == "" {
		purpose = "payment"
	}

	html := fmt.Sprintf(
		"<p><strong>%s</strong> paid <strong>$%s</strong> for %s.</p>",
		notification.CustomerName, notification.Amount, purpose,
	)
	text := fmt.Sprintf("%s paid $%s for %s.", notification.CustomerName, notification.Amount, purpose)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{s.ownerEmail},
		Subject: subject,
		Html:    html,
		Text:    text,
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "payment-notification"},
		},
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("Failed to send payment notification email",
			zap.Error(err),
			zap.String("to", s.ownerEmail))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("Payment notification email sent",
		zap.String("email_id", sent.Id),
		zap.String("to", s.ownerEmail))

	return nil
}
