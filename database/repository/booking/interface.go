package bookingRepo

import (
	"context"
	"errors"

	"storefront/models"
)

// ErrDuplicateBooking signals that a booking with the same (email, serviceName)
// pair already exists.
var ErrDuplicateBooking = errors.New("booking already exists for this email and service")

// ErrBookingNotFound signals that no booking matches the given identifier.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines the interface for booking and payment data access.
type BookingRepository interface {
	// Create inserts a new booking. Returns ErrDuplicateBooking when a booking
	// with the same (email, serviceName) pair already exists.
	Create(ctx context.Context, booking *models.Booking) error

	// ListByEmail returns all bookings whose email field matches exactly,
	// in store-native order.
	ListByEmail(ctx context.Context, email string) ([]models.Booking, error)

	// GetByID fetches a booking by its identifier.
	GetByID(ctx context.Context, id string) (*models.Booking, error)

	// ReconcilePayment persists the payment record and marks the referenced
	// booking paid with the supplied transaction identifier, in a single
	// transaction. The returned bool reports whether a booking was updated;
	// the payment record is persisted either way.
	ReconcilePayment(ctx context.Context, payment *models.Payment) (bool, error)
}
