package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glowbook/models"
	"glowbook/services/booking"
	"glowbook/utils"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// bookingError maps booking service errors onto HTTP status codes.
func bookingError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
		return
	}
	var nfErr *booking.NotFoundError
	if errors.As(err, &nfErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": nfErr.Error()})
		return
	}
	var fErr *booking.ForbiddenError
	if errors.As(err, &fErr) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		return
	}
	var cErr *booking.ConflictError
	if errors.As(err, &cErr) {
		c.JSON(http.StatusConflict, gin.H{"error": cErr.Message})
		return
	}
	utils.GetLogger().Error("Booking operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}

	var req struct {
		ProviderID string `json:"providerId" binding:"required"`
		Service    struct {
			Name  string  `json:"name" binding:"required"`
			Price float64 `json:"price" binding:"required"`
		} `json:"service" binding:"required"`
		Date  time.Time `json:"date" binding:"required"`
		Notes string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provider ID, service, and date are required"})
		return
	}

	created, err := h.Service.CreateBooking(uid, booking.CreateBookingInput{
		ProviderID: req.ProviderID,
		Service:    models.BookedService{Name: req.Service.Name, Price: req.Service.Price},
		Date:       req.Date,
		Notes:      req.Notes,
	})
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// GetBookingHandler handles GET /api/bookings/id/:bookingId.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}

	b, err := h.Service.GetBooking(uid, c.Param("bookingId"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingStatusHandler handles PATCH /api/bookings/id/:bookingId/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	b, err := h.Service.UpdateStatus(uid, c.Param("bookingId"), req.Status)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UserBookingsHandler handles GET /api/bookings/user.
func (h *BookingHandler) UserBookingsHandler(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}

	bookings, err := h.Service.ListUserBookings(uid, c.Query("status"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ProviderBookingsHandler handles GET /api/bookings/provider. The caller's
// identity is taken as the provider id.
func (h *BookingHandler) ProviderBookingsHandler(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}

	var date *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse(time.RFC3339, dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		date = &parsed
	}

	bookings, err := h.Service.ListProviderBookings(uid, date, c.Query("status"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
