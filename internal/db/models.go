package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// AppointmentStatus is the local lifecycle status of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// AppointmentType distinguishes the kind of session being booked.
type AppointmentType string

const (
	AppointmentTypeConsultation        AppointmentType = "consultation"
	AppointmentTypeDrawingConsultation AppointmentType = "drawing_consultation"
	AppointmentTypeTattooSession       AppointmentType = "tattoo_session"
)

// Appointment is a booked session. Once a Square booking id is attached the
// row is owned by the reconciliation paths and is only ever status-transitioned,
// never deleted.
type Appointment struct {
	ID         uuid.UUID          `json:"id"`
	SquareID   pgtype.Text        `json:"square_id"`
	CustomerID pgtype.UUID        `json:"customer_id"`
	StartTime  pgtype.Timestamptz `json:"start_time"`
	EndTime    pgtype.Timestamptz `json:"end_time"`
	Duration   int32              `json:"duration"`
	Status     AppointmentStatus  `json:"status"`
	Type       AppointmentType    `json:"type"`
	Notes      pgtype.Text        `json:"notes"`
	PriceQuote pgtype.Numeric     `json:"price_quote"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

// Customer is a studio customer. Reconciliation only ever looks customers up
// by their Square id; creation happens through the regular booking flows.
type Customer struct {
	ID        uuid.UUID          `json:"id"`
	SquareID  pgtype.Text        `json:"square_id"`
	Name      string             `json:"name"`
	Email     pgtype.Text        `json:"email"`
	Phone     pgtype.Text        `json:"phone"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

// Payment mirrors a Square payment. Amount is stored in decimal currency
// units, converted from Square's minor units at ingestion. RawPayload keeps
// the original event object for audit and debugging.
type Payment struct {
	ID            uuid.UUID          `json:"id"`
	SquareID      pgtype.Text        `json:"square_id"`
	ReferenceID   pgtype.Text        `json:"reference_id"`
	Amount        pgtype.Numeric     `json:"amount"`
	Status        string             `json:"status"`
	PaymentMethod pgtype.Text        `json:"payment_method"`
	OrderID       pgtype.Text        `json:"order_id"`
	RawPayload    []byte             `json:"raw_payload"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

// Invoice is a locally-originated invoice. Square invoices are correlated by
// invoice number appearing in the description.
type Invoice struct {
	ID            uuid.UUID          `json:"id"`
	AppointmentID pgtype.UUID        `json:"appointment_id"`
	Description   pgtype.Text        `json:"description"`
	Status        string             `json:"status"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

// PaymentLink is a previously-issued request for payment. Incoming payments
// correlate to it either through the stored Square order id or by carrying
// the link's own id as their reference id.
type PaymentLink struct {
	ID            uuid.UUID          `json:"id"`
	SquareOrderID pgtype.Text        `json:"square_order_id"`
	CustomerID    pgtype.UUID        `json:"customer_id"`
	Amount        pgtype.Numeric     `json:"amount"`
	Purpose       pgtype.Text        `json:"purpose"`
	Status        string             `json:"status"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

// AuditLog is an append-only record of reconciliation side effects.
type AuditLog struct {
	ID         uuid.UUID          `json:"id"`
	Action     string             `json:"action"`
	Resource   string             `json:"resource"`
	ResourceID pgtype.Text        `json:"resource_id"`
	Details    []byte             `json:"details"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}
