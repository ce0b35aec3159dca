package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// User endpoints.
	CreateProfileHandler    gin.HandlerFunc
	SyncProfileHandler      gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc
	UpdateFavouritesHandler gin.HandlerFunc

	// Provider discovery endpoints.
	ProvidersByCategoryHandler gin.HandlerFunc
	FilterProvidersHandler     gin.HandlerFunc
	GetProviderByIDHandler     gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler       gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	UserBookingsHandler        gin.HandlerFunc
	ProviderBookingsHandler    gin.HandlerFunc
}

// callerID reads the verified identity set by the auth middleware.
func callerID(c *gin.Context) (string, bool) {
	id, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	idStr, ok := id.(string)
	if !ok || idStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	return idStr, true
}
