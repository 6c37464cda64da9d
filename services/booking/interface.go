package booking

import (
	"context"

	"storefront/models"
)

// CreateStatus distinguishes the outcomes of a booking create attempt.
type CreateStatus string

const (
	StatusCreated  CreateStatus = "created"
	StatusConflict CreateStatus = "conflict"
)

// CreateBookingRequest carries the client-supplied booking fields. Extra holds
// any additional descriptive fields, persisted verbatim.
type CreateBookingRequest struct {
	Email       string
	ServiceName string
	Price       float64
	Extra       map[string]interface{}
}

// CreateOutcome is the explicit result of a create attempt: either a new
// booking record, or a conflict with the already-existing pair. Store
// failures are returned as errors, never as outcomes.
type CreateOutcome struct {
	Status  CreateStatus
	Booking *models.Booking
	Message string
}

// PaymentInput carries a completed client-side payment to be reconciled.
type PaymentInput struct {
	BookingID     string
	TransactionID string
	Amount        float64
	Method        string
	Extra         map[string]interface{}
}

// ReconcileResult reports the persisted payment and whether the referenced
// booking was actually updated.
type ReconcileResult struct {
	PaymentID      string
	BookingUpdated bool
}

// BookingService is the booking-and-payment workflow: booking creation and
// deduplication, retrieval by email, and reconciliation of payment status
// onto booking records.
type BookingService interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateOutcome, error)
	ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	RecordPayment(ctx context.Context, input PaymentInput) (*ReconcileResult, error)
}

// ReceiptEnqueuer dispatches a receipt task after a successful reconciliation.
type ReceiptEnqueuer interface {
	EnqueueReceipt(payload models.ReceiptPayload) error
}
