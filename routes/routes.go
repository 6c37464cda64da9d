package routes

import (
	"net/http"
	"time"

	"storefront/handlers"
	"storefront/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the catalog read endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/mobile", hb.ListMobiles)
	r.GET("/laptops", hb.ListLaptops)
	r.GET("/tv", hb.ListTVs)
	r.GET("/categories", hb.ListCategories)
	r.GET("/all-service", hb.ListServices)
	r.POST("/add-service", middleware.AdminAuthMiddleware(), hb.AddService)
}

// RegisterBookingRoutes registers the booking-and-payment workflow endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/bookings", hb.CreateBooking)
	r.GET("/bookings", hb.ListBookings)
	r.POST("/create-payment-intent", hb.CreatePaymentIntent)
	r.POST("/payments", hb.RecordPayment)
}

// RegisterUserRoutes registers user and role endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/users", hb.GetAllUsers)
	r.POST("/users", hb.CreateUser)
	r.PUT("/users/admin/:id", middleware.AdminAuthMiddleware(), hb.PromoteToAdmin)
	r.GET("/users/admin/:email", hb.CheckAdmin)
}

// RegisterHealthRoute registers liveness endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to Mobile Store API")
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
}
