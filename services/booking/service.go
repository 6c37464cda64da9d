package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "storefront/database/repository/booking"
	"storefront/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Receipts ReceiptEnqueuer
	Logger   *zap.Logger
}

// NewBookingService wires the booking ledger onto its repository. Receipts may
// be nil, in which case no receipt tasks are dispatched.
func NewBookingService(repo bookingRepo.BookingRepository, receipts ReceiptEnqueuer, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, Receipts: receipts, Logger: logger}
}

// CreateBooking validates the request and inserts a new booking with paid=false.
// A duplicate (email, serviceName) pair yields a Conflict outcome and no record.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateOutcome, error) {
	if req.Email == "" {
		return nil, NewValidationError("email", "must not be empty")
	}
	if req.ServiceName == "" {
		return nil, NewValidationError("serviceName", "must not be empty")
	}
	if req.Price < 0 {
		return nil, NewValidationError("price", "must not be negative")
	}

	bk := &models.Booking{
		ID:          uuid.New().String(),
		Email:       req.Email,
		ServiceName: req.ServiceName,
		Price:       req.Price,
		Paid:        false,
		Extra:       req.Extra,
	}

	if err := s.Repo.Create(ctx, bk); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			return &CreateOutcome{
				Status:  StatusConflict,
				Message: "Already booked.",
			}, nil
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.Logger.Info("booking created",
		zap.String("bookingId", bk.ID),
		zap.String("serviceName", bk.ServiceName),
	)
	return &CreateOutcome{Status: StatusCreated, Booking: bk}, nil
}

// ListBookingsByEmail returns the bookings whose email matches exactly.
func (s *DefaultBookingService) ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.Repo.ListByEmail(ctx, email)
}

// RecordPayment persists the payment ledger entry and marks the referenced
// booking paid. The payment is persisted even when the booking identifier
// matches nothing; the result reports which case occurred.
func (s *DefaultBookingService) RecordPayment(ctx context.Context, input PaymentInput) (*ReconcileResult, error) {
	if input.BookingID == "" {
		return nil, NewValidationError("bookingId", "must not be empty")
	}
	if input.TransactionID == "" {
		return nil, NewValidationError("transactionId", "must not be empty")
	}

	payment := &models.Payment{
		ID:            uuid.New().String(),
		BookingID:     input.BookingID,
		TransactionID: input.TransactionID,
		Amount:        input.Amount,
		Method:        input.Method,
		Extra:         input.Extra,
	}

	updated, err := s.Repo.ReconcilePayment(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	if !updated {
		s.Logger.Warn("payment recorded against unknown booking",
			zap.String("bookingId", input.BookingID),
			zap.String("transactionId", input.TransactionID),
		)
	}

	s.dispatchReceipt(payment)

	return &ReconcileResult{PaymentID: payment.ID, BookingUpdated: updated}, nil
}

// dispatchReceipt enqueues the receipt task. Failures are logged only; the
// reconciliation itself has already committed.
func (s *DefaultBookingService) dispatchReceipt(payment *models.Payment) {
	if s.Receipts == nil {
		return
	}

	email := ""
	if v, ok := payment.Extra["email"].(string); ok {
		email = v
	}
	payload := models.ReceiptPayload{
		BookingID:     payment.BookingID,
		PaymentID:     payment.ID,
		TransactionID: payment.TransactionID,
		Email:         email,
	}
	if err := s.Receipts.EnqueueReceipt(payload); err != nil {
		s.Logger.Error("failed to enqueue receipt task", zap.Error(err))
	}
}
