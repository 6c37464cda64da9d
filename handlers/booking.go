package handlers

import (
	"errors"
	"net/http"

	"storefront/models"
	"storefront/services/booking"
	"storefront/services/payment"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking-and-payment workflow over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Intents payment.IntentService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, intents payment.IntentService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Intents: intents, Logger: logger}
}

// asString pulls a string field out of the raw request body.
func asString(body map[string]interface{}, key string) string {
	v, _ := body[key].(string)
	return v
}

// asNumber pulls a numeric field out of the raw request body.
func asNumber(body map[string]interface{}, key string) float64 {
	v, _ := body[key].(float64)
	return v
}

// CreateBooking handles POST /bookings. Fields beyond email, serviceName and
// price are persisted on the booking verbatim.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}

	req := booking.CreateBookingRequest{
		Email:       asString(body, "email"),
		ServiceName: asString(body, "serviceName"),
		Price:       asNumber(body, "price"),
	}
	delete(body, "email")
	delete(body, "serviceName")
	delete(body, "price")
	if len(body) > 0 {
		req.Extra = body
	}

	outcome, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONError(c, http.StatusBadRequest, "invalid booking request", vErr.Error())
			return
		}
		h.Logger.Error("booking create failed", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "store unavailable", err.Error())
		return
	}

	if outcome.Status == booking.StatusConflict {
		// Response body shape kept for existing clients; the status code makes
		// the conflict explicit.
		c.JSON(http.StatusConflict, gin.H{"acknowledge": false, "message": outcome.Message})
		return
	}
	c.JSON(http.StatusCreated, outcome.Booking)
}

// ListBookings handles GET /bookings?email=E.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing email query parameter", "")
		return
	}

	bookings, err := h.Service.ListBookingsByEmail(c.Request.Context(), email)
	if err != nil {
		h.Logger.Error("booking list failed", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "store unavailable", err.Error())
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	secret, err := h.Intents.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		var pErr *payment.ProcessorError
		if errors.As(err, &pErr) {
			h.Logger.Error("payment intent failed", zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "payment processor error", pErr.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "invalid payment amount", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// RecordPayment handles POST /payments: it persists the payment record and
// flags the referenced booking as paid.
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment payload", err.Error())
		return
	}

	input := booking.PaymentInput{
		BookingID:     asString(body, "bookingId"),
		TransactionID: asString(body, "transactionId"),
		Amount:        asNumber(body, "amount"),
		Method:        asString(body, "method"),
	}
	delete(body, "bookingId")
	delete(body, "transactionId")
	delete(body, "amount")
	delete(body, "method")
	if len(body) > 0 {
		input.Extra = body
	}

	result, err := h.Service.RecordPayment(c.Request.Context(), input)
	if err != nil {
		var vErr *booking.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONError(c, http.StatusBadRequest, "invalid payment record", vErr.Error())
			return
		}
		h.Logger.Error("payment record failed", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "store unavailable", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"paymentId":      result.PaymentID,
		"bookingUpdated": result.BookingUpdated,
	})
}
