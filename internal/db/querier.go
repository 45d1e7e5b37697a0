package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Querier is the query surface consumed by the services. It exists so unit
// tests can substitute a gomock implementation for the pgx-backed Queries.
type Querier interface {
	GetAppointmentBySquareID(ctx context.Context, squareID pgtype.Text) (Appointment, error)
	CreateAppointment(ctx context.Context, arg CreateAppointmentParams) (Appointment, error)
	UpdateAppointmentSync(ctx context.Context, arg UpdateAppointmentSyncParams) (Appointment, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (Customer, error)
	GetCustomerBySquareID(ctx context.Context, squareID pgtype.Text) (Customer, error)
	GetPaymentBySquareID(ctx context.Context, squareID pgtype.Text) (Payment, error)
	GetPaymentByReferenceID(ctx context.Context, referenceID pgtype.Text) (Payment, error)
	CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error)
	UpdatePayment(ctx context.Context, arg UpdatePaymentParams) (Payment, error)
	GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, arg UpdateInvoiceStatusParams) (Invoice, error)
	GetPaymentLink(ctx context.Context, id uuid.UUID) (PaymentLink, error)
	GetPaymentLinkByOrderID(ctx context.Context, orderID pgtype.Text) (PaymentLink, error)
	CreateAuditLog(ctx context.Context, arg CreateAuditLogParams) (AuditLog, error)
}

var _ Querier = (*Queries)(nil)
