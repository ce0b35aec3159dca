package provider

import (
	providerRepo "glowbook/database/repository/provider"
	"glowbook/models"
)

// SearchParams carries the discovery filters. Nil pointer fields mean the
// corresponding filter was not requested.
type SearchParams struct {
	Category  string
	Latitude  *float64
	Longitude *float64
	RadiusKm  float64
	MinPrice  *float64
	MaxPrice  *float64
}

// ProviderService is the discovery query engine over the provider collection.
type ProviderService interface {
	// SearchByCategory returns providers in the category, optionally
	// narrowed by distance and by having at least one service priced
	// inside the requested window.
	SearchByCategory(params SearchParams) ([]models.Provider, error)
	// Filter returns providers (optionally narrowed by category) whose
	// whole catalogue fits inside the requested price window, then
	// narrowed by distance.
	Filter(params SearchParams) ([]models.Provider, error)
	// GetProviderByID retrieves one provider's public profile.
	GetProviderByID(id string) (*models.Provider, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}
