package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glowbook/services/provider"
	"glowbook/utils"
)

// ProviderHandler serves the public discovery endpoints.
type ProviderHandler struct {
	Service provider.ProviderService
}

func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

// parseSearchParams reads the shared discovery query parameters. Geo
// filtering activates only when both coordinates are present, matching the
// client contract.
func parseSearchParams(c *gin.Context) (provider.SearchParams, error) {
	var params provider.SearchParams

	latStr, lngStr := c.Query("latitude"), c.Query("longitude")
	if latStr != "" && lngStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return params, errors.New("invalid latitude")
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			return params, errors.New("invalid longitude")
		}
		params.Latitude, params.Longitude = &lat, &lng
	}
	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			return params, errors.New("invalid radius")
		}
		params.RadiusKm = radius
	}
	if minStr := c.Query("minPrice"); minStr != "" {
		min, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			return params, errors.New("invalid minPrice")
		}
		params.MinPrice = &min
	}
	if maxStr := c.Query("maxPrice"); maxStr != "" {
		max, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return params, errors.New("invalid maxPrice")
		}
		params.MaxPrice = &max
	}
	return params, nil
}

// ProvidersByCategoryHandler handles GET /api/providers/category/:category.
func (h *ProviderHandler) ProvidersByCategoryHandler(c *gin.Context) {
	params, err := parseSearchParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	params.Category = c.Param("category")

	providers, err := h.Service.SearchByCategory(params)
	if err != nil {
		utils.GetLogger().Error("Provider search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, providers)
}

// FilterProvidersHandler handles GET /api/providers/filter.
func (h *ProviderHandler) FilterProvidersHandler(c *gin.Context) {
	params, err := parseSearchParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	params.Category = c.Query("category")

	providers, err := h.Service.Filter(params)
	if err != nil {
		utils.GetLogger().Error("Provider filter failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, providers)
}

// GetProviderByIDHandler handles GET /api/providers/id/:providerId.
func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	id := c.Param("providerId")

	prov, err := h.Service.GetProviderByID(id)
	if err != nil {
		var nfErr *provider.NotFoundError
		if errors.As(err, &nfErr) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
			return
		}
		utils.GetLogger().Error("Provider lookup failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, prov)
}
