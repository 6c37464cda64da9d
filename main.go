// File: storefront/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/config"
	"storefront/cron"
	"storefront/database"
	bookingRepoPkg "storefront/database/repository/booking"
	catalogRepoPkg "storefront/database/repository/catalog"
	userRepoPkg "storefront/database/repository/user"
	"storefront/handlers"
	"storefront/middleware"
	"storefront/routes"
	"storefront/services/booking"
	"storefront/services/catalog"
	"storefront/services/payment"
	"storefront/services/tasks"
	"storefront/services/user"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()
	mongoClient, err := database.Connect(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(mongoClient)
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo(mongoClient)
	userRepo := userRepoPkg.NewMongoUserRepo(mongoClient)

	// services.
	receiptEnqueuer := tasks.NewAsynqReceiptEnqueuer()
	bookingService := booking.NewBookingService(bookingRepo, receiptEnqueuer, logger)
	intentService := payment.NewStripeIntentService(logger)
	catalogService := &catalog.DefaultCatalogService{
		Repo:     catalogRepo,
		Cache:    utils.GetCacheClient(),
		CacheTTL: time.Duration(config.AppConfig.CatalogCacheTTL) * time.Second,
		Logger:   logger,
	}
	userService := &user.DefaultUserService{Repo: userRepo}

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, intentService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		ListMobiles:    catalogHandler.List("mobile"),
		ListLaptops:    catalogHandler.List("laptops"),
		ListTVs:        catalogHandler.List("tv"),
		ListCategories: catalogHandler.List("categories"),
		ListServices:   catalogHandler.List("services"),
		AddService:     catalogHandler.AddService,

		// Booking endpoints.
		CreateBooking:       bookingHandler.CreateBooking,
		ListBookings:        bookingHandler.ListBookings,
		CreatePaymentIntent: bookingHandler.CreatePaymentIntent,
		RecordPayment:       bookingHandler.RecordPayment,

		// User endpoints.
		GetAllUsers:    userHandler.GetAllUsers,
		CreateUser:     userHandler.CreateUser,
		PromoteToAdmin: userHandler.PromoteToAdmin,
		CheckAdmin:     userHandler.CheckAdmin,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the background receipt worker.
	cron.InitReceiptWorker(logger)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "7000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := receiptEnqueuer.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close receipt queue client: %v", err)
	}
	utils.CloseCache()
	if err := database.Disconnect(shutdownCtx, mongoClient); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
