// File: glowbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowbook/config"
	"glowbook/database"
	bookingRepoPkg "glowbook/database/repository/booking"
	providerRepoPkg "glowbook/database/repository/provider"
	userRepoPkg "glowbook/database/repository/user"
	"glowbook/handlers"
	"glowbook/middleware"
	"glowbook/routes"
	"glowbook/services/booking"
	"glowbook/services/provider"
	"glowbook/services/user"
	"glowbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient := database.Connect()
	db := mongoClient.Database(config.AppConfig.DatabaseName)
	authCache := utils.NewAuthCacheClient()
	identityVerifier := utils.FirebaseAuth()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	provRepo := providerRepoPkg.NewMongoProviderRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)

	// services.
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Identity: &user.FirebaseIdentitySource{Auth: identityVerifier},
	}
	providerService := &provider.DefaultProviderService{
		Repo: provRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		ProviderRepo: provRepo,
		Transitions:  booking.AllowAnyTransition,
	}

	userHandler := handlers.NewUserHandler(userService)
	providerHandler := handlers.NewProviderHandler(providerService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// User endpoints.
		CreateProfileHandler:    userHandler.CreateProfileHandler,
		SyncProfileHandler:      userHandler.SyncProfileHandler,
		GetProfileHandler:       userHandler.GetProfileHandler,
		UpdateProfileHandler:    userHandler.UpdateProfileHandler,
		UpdateFavouritesHandler: userHandler.UpdateFavouritesHandler,

		// Provider discovery endpoints.
		ProvidersByCategoryHandler: providerHandler.ProvidersByCategoryHandler,
		FilterProvidersHandler:     providerHandler.FilterProvidersHandler,
		GetProviderByIDHandler:     providerHandler.GetProviderByIDHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		GetBookingHandler:          bookingHandler.GetBookingHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
		UserBookingsHandler:        bookingHandler.UserBookingsHandler,
		ProviderBookingsHandler:    bookingHandler.ProviderBookingsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, identityVerifier, authCache)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect mongo client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
