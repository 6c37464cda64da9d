package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(2500), MinorUnits(25.00))
	assert.Equal(t, int64(2550), MinorUnits(25.50))
	assert.Equal(t, int64(1), MinorUnits(0.01))
	// Rounding, not truncation: 19.99*100 is 1998.9999... in float64.
	assert.Equal(t, int64(1999), MinorUnits(19.99))
}

func TestCreateIntentRequestsMinorUnits(t *testing.T) {
	var captured *stripe.PaymentIntentParams
	svc := NewStripeIntentService(zap.NewNop())
	svc.create = func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		captured = params
		return &stripe.PaymentIntent{
			ID:           "pi_123",
			ClientSecret: "pi_123_secret_test",
		}, nil
	}

	secret, err := svc.CreateIntent(context.Background(), 25.00)
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_test", secret)
	assert.NotEqual(t, "pi_123", secret)

	require.NotNil(t, captured)
	assert.Equal(t, int64(2500), *captured.Amount)
	assert.Equal(t, "usd", *captured.Currency)
	require.Len(t, captured.PaymentMethodTypes, 1)
	assert.Equal(t, "card", *captured.PaymentMethodTypes[0])
}

func TestCreateIntentRejectsNonPositivePrice(t *testing.T) {
	svc := NewStripeIntentService(zap.NewNop())
	svc.create = func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		t.Fatal("processor must not be called for a non-positive price")
		return nil, nil
	}

	_, err := svc.CreateIntent(context.Background(), 0)
	assert.Error(t, err)
	_, err = svc.CreateIntent(context.Background(), -3)
	assert.Error(t, err)
}

func TestCreateIntentWrapsProcessorFailure(t *testing.T) {
	svc := NewStripeIntentService(zap.NewNop())
	svc.create = func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		return nil, errors.New("card declined")
	}

	_, err := svc.CreateIntent(context.Background(), 10)
	var pErr *ProcessorError
	require.ErrorAs(t, err, &pErr)
	assert.Contains(t, pErr.Error(), "card declined")
}
