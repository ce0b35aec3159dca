package providerRepo

import "glowbook/models"

// ProviderRepository defines read access to the provider collection.
// Providers are created and maintained outside this service.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID. Returns (nil, nil)
	// when no document exists.
	GetByID(id string) (*models.Provider, error)
	// FindByCategory retrieves providers whose category set contains the
	// given category.
	FindByCategory(category string) ([]models.Provider, error)
	// List retrieves all providers, optionally narrowed by category when
	// category is non-empty.
	List(category string) ([]models.Provider, error)
}
