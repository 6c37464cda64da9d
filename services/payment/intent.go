package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// IntentService creates payment intents with the external processor and
// returns only the client-usable secret token.
type IntentService interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

// ProcessorError reports a failure from the external payment processor.
type ProcessorError struct {
	Message string
	Err     error
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("payment processor: %s: %v", e.Message, e.Err)
}

func (e *ProcessorError) Unwrap() error {
	return e.Err
}

// MinorUnits converts a price in major currency units to minor units.
// The multiply-by-100 conversion assumes an integer-cent currency (USD).
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// StripeIntentService is the Stripe-backed IntentService. The package-level
// stripe.Key must be set before use.
type StripeIntentService struct {
	Logger *zap.Logger

	// create is swapped out in tests; defaults to paymentintent.New.
	create func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// NewStripeIntentService creates a new Stripe-backed IntentService.
func NewStripeIntentService(logger *zap.Logger) *StripeIntentService {
	return &StripeIntentService{
		Logger: logger,
		create: paymentintent.New,
	}
}

// CreateIntent requests a card-capable payment intent for the given price and
// returns the client secret. Server-side intent identifiers are never exposed.
func (s *StripeIntentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", fmt.Errorf("invalid payment amount: %v", price)
	}

	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := s.create(params)
	if err != nil {
		s.Logger.Error("payment intent creation failed", zap.Error(err))
		return "", &ProcessorError{Message: "failed to create payment intent", Err: err}
	}

	return intent.ClientSecret, nil
}
