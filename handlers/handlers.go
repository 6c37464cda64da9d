package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every route handler wired in main.
type HandlerBundle struct {
	// Catalog endpoints.
	ListMobiles    gin.HandlerFunc
	ListLaptops    gin.HandlerFunc
	ListTVs        gin.HandlerFunc
	ListCategories gin.HandlerFunc
	ListServices   gin.HandlerFunc
	AddService     gin.HandlerFunc

	// Booking and payment endpoints.
	CreateBooking       gin.HandlerFunc
	ListBookings        gin.HandlerFunc
	CreatePaymentIntent gin.HandlerFunc
	RecordPayment       gin.HandlerFunc

	// User endpoints.
	GetAllUsers    gin.HandlerFunc
	CreateUser     gin.HandlerFunc
	PromoteToAdmin gin.HandlerFunc
	CheckAdmin     gin.HandlerFunc
}
