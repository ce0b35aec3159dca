package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glowbook/services/user"
	"glowbook/utils"
)

// UserHandler serves the profile lifecycle and favourites endpoints.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// userError maps user service errors onto HTTP status codes.
func userError(c *gin.Context, err error) {
	var vErr *user.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
		return
	}
	var nfErr *user.NotFoundError
	if errors.As(err, &nfErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User profile not found"})
		return
	}
	utils.GetLogger().Error("User operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// CreateProfileHandler handles POST /api/users.
func (h *UserHandler) CreateProfileHandler(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}

	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required"`
		Role  string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}

	profile, err := h.Service.CreateProfile(uid, user.CreateProfileInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SyncProfileHandler handles POST /api/users/sync. The client calls it once
// after first sign-in so the profile exists before any booking.
func (h *UserHandler) SyncProfileHandler(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}

	profile, err := h.Service.SyncProfile(uid)
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfileHandler handles GET /api/users/profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}

	profile, err := h.Service.GetProfile(uid)
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler handles PUT /api/users/profile. Absent fields stay
// untouched.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}

	var req struct {
		Name       string   `json:"name"`
		Role       string   `json:"role"`
		Favourites []string `json:"favourites"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	profile, err := h.Service.UpdateProfile(uid, user.UpdateProfileInput{
		Name:       req.Name,
		Role:       req.Role,
		Favourites: req.Favourites,
	})
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateFavouritesHandler handles POST /api/users/favourites.
func (h *UserHandler) UpdateFavouritesHandler(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}

	var req struct {
		ProviderID string `json:"providerId" binding:"required"`
		Action     string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provider ID and action are required"})
		return
	}

	profile, err := h.Service.UpdateFavourites(uid, req.ProviderID, req.Action)
	if err != nil {
		userError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
