package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/models"
	"storefront/services/booking"
	"storefront/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBookingService struct {
	outcome   *booking.CreateOutcome
	bookings  []models.Booking
	reconcile *booking.ReconcileResult

	gotCreate  booking.CreateBookingRequest
	gotPayment booking.PaymentInput
}

func (s *stubBookingService) CreateBooking(_ context.Context, req booking.CreateBookingRequest) (*booking.CreateOutcome, error) {
	s.gotCreate = req
	return s.outcome, nil
}

func (s *stubBookingService) ListBookingsByEmail(_ context.Context, email string) ([]models.Booking, error) {
	return s.bookings, nil
}

func (s *stubBookingService) RecordPayment(_ context.Context, input booking.PaymentInput) (*booking.ReconcileResult, error) {
	s.gotPayment = input
	return s.reconcile, nil
}

type stubIntentService struct {
	secret   string
	err      error
	gotPrice float64
}

func (s *stubIntentService) CreateIntent(_ context.Context, price float64) (string, error) {
	s.gotPrice = price
	if s.err != nil {
		return "", s.err
	}
	return s.secret, nil
}

func newBookingRouter(svc booking.BookingService, intents payment.IntentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, intents, zap.NewNop())
	r := gin.New()
	r.POST("/bookings", h.CreateBooking)
	r.GET("/bookings", h.ListBookings)
	r.POST("/create-payment-intent", h.CreatePaymentIntent)
	r.POST("/payments", h.RecordPayment)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingHandlerCreated(t *testing.T) {
	svc := &stubBookingService{
		outcome: &booking.CreateOutcome{
			Status:  booking.StatusCreated,
			Booking: &models.Booking{ID: "bk1", Email: "a@b.com", ServiceName: "screen-repair", Price: 25},
		},
	}
	r := newBookingRouter(svc, &stubIntentService{})

	w := doJSON(t, r, http.MethodPost, "/bookings", map[string]interface{}{
		"email":       "a@b.com",
		"serviceName": "screen-repair",
		"price":       25,
		"phone":       "0800",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "a@b.com", svc.gotCreate.Email)
	assert.Equal(t, "screen-repair", svc.gotCreate.ServiceName)
	assert.Equal(t, 25.0, svc.gotCreate.Price)
	assert.Equal(t, "0800", svc.gotCreate.Extra["phone"])

	var resp models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bk1", resp.ID)
}

func TestCreateBookingHandlerConflict(t *testing.T) {
	svc := &stubBookingService{
		outcome: &booking.CreateOutcome{Status: booking.StatusConflict, Message: "Already booked."},
	}
	r := newBookingRouter(svc, &stubIntentService{})

	w := doJSON(t, r, http.MethodPost, "/bookings", map[string]interface{}{
		"email":       "a@b.com",
		"serviceName": "screen-repair",
		"price":       25,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["acknowledge"])
	assert.Equal(t, "Already booked.", resp["message"])
}

func TestListBookingsHandlerRequiresEmail(t *testing.T) {
	r := newBookingRouter(&stubBookingService{}, &stubIntentService{})

	w := doJSON(t, r, http.MethodGet, "/bookings", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBookingsHandlerReturnsArray(t *testing.T) {
	svc := &stubBookingService{
		bookings: []models.Booking{{ID: "bk1", Email: "a@b.com"}},
	}
	r := newBookingRouter(svc, &stubIntentService{})

	w := doJSON(t, r, http.MethodGet, "/bookings?email=a@b.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "bk1", resp[0].ID)
}

func TestCreatePaymentIntentHandler(t *testing.T) {
	intents := &stubIntentService{secret: "pi_123_secret_test"}
	r := newBookingRouter(&stubBookingService{}, intents)

	w := doJSON(t, r, http.MethodPost, "/create-payment-intent", map[string]interface{}{"price": 25.0})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 25.0, intents.gotPrice)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pi_123_secret_test", resp["clientSecret"])
}

func TestCreatePaymentIntentHandlerProcessorError(t *testing.T) {
	intents := &stubIntentService{err: &payment.ProcessorError{Message: "declined"}}
	r := newBookingRouter(&stubBookingService{}, intents)

	w := doJSON(t, r, http.MethodPost, "/create-payment-intent", map[string]interface{}{"price": 25.0})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestRecordPaymentHandler(t *testing.T) {
	svc := &stubBookingService{
		reconcile: &booking.ReconcileResult{PaymentID: "pay1", BookingUpdated: true},
	}
	r := newBookingRouter(svc, &stubIntentService{})

	w := doJSON(t, r, http.MethodPost, "/payments", map[string]interface{}{
		"bookingId":     "bk1",
		"transactionId": "txn_42",
		"amount":        25.0,
		"method":        "card",
		"email":         "a@b.com",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "bk1", svc.gotPayment.BookingID)
	assert.Equal(t, "txn_42", svc.gotPayment.TransactionID)
	assert.Equal(t, "a@b.com", svc.gotPayment.Extra["email"])

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pay1", resp["paymentId"])
	assert.Equal(t, true, resp["bookingUpdated"])
}
