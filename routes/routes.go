package routes

import (
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"glowbook/handlers"
	"glowbook/middleware"
)

// RegisterUserRoutes registers profile and favourites endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, verifier *auth.Client, authCache *redis.Client) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.AuthMiddleware(verifier, authCache))
		api.POST("", hb.CreateProfileHandler)
		api.POST("/sync", hb.SyncProfileHandler)
		api.GET("/profile", hb.GetProfileHandler)
		api.PUT("/profile", hb.UpdateProfileHandler)
		api.POST("/favourites", hb.UpdateFavouritesHandler)
	}
}

// RegisterProviderRoutes registers the public discovery endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("/category/:category", hb.ProvidersByCategoryHandler)
		api.GET("/filter", hb.FilterProvidersHandler)
		api.GET("/id/:providerId", hb.GetProviderByIDHandler)
	}
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, verifier *auth.Client, authCache *redis.Client) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware(verifier, authCache))
		api.POST("", hb.CreateBookingHandler)
		api.GET("/user", hb.UserBookingsHandler)
		api.GET("/provider", hb.ProviderBookingsHandler)
		api.GET("/id/:bookingId", hb.GetBookingHandler)
		api.PATCH("/id/:bookingId/status", hb.UpdateBookingStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Glowbook"})
	})
}

// RegisterMetricsRoute exposes prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, verifier *auth.Client, authCache *redis.Client) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb, verifier, authCache)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb, verifier, authCache)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
