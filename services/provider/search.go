package provider

import (
	"fmt"

	"glowbook/models"
	"glowbook/utils"
)

// defaultRadiusKm applies when coordinates are given without a radius.
const defaultRadiusKm = 10

// SearchByCategory fetches the category's providers from storage, then
// filters in memory: first by distance, then by price. The price rule here
// is "at least one service inside the window". Price filtering happens in
// memory because the store cannot combine array-containment with numeric
// range predicates.
func (s *DefaultProviderService) SearchByCategory(params SearchParams) ([]models.Provider, error) {
	providers, err := s.Repo.FindByCategory(params.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to search providers by category: %w", err)
	}

	providers = filterByDistance(providers, params)

	if params.MinPrice != nil || params.MaxPrice != nil {
		filtered := providers[:0]
		for _, p := range providers {
			if anyServiceInRange(p.Services, params.MinPrice, params.MaxPrice) {
				filtered = append(filtered, p)
			}
		}
		providers = filtered
	}

	return providers, nil
}

// Filter fetches providers (optionally narrowed by category), then filters
// in memory: first by price, then by distance. The price rule here is the
// stricter one: the provider's cheapest service must be at or above the
// requested minimum AND its dearest service at or below the maximum, i.e.
// the whole catalogue fits inside the window. This deliberately differs
// from SearchByCategory; both behaviors ship as-is per endpoint.
func (s *DefaultProviderService) Filter(params SearchParams) ([]models.Provider, error) {
	providers, err := s.Repo.List(params.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to filter providers: %w", err)
	}

	if params.MinPrice != nil || params.MaxPrice != nil {
		filtered := providers[:0]
		for _, p := range providers {
			if catalogueWithinRange(p.Services, params.MinPrice, params.MaxPrice) {
				filtered = append(filtered, p)
			}
		}
		providers = filtered
	}

	return filterByDistance(providers, params), nil
}

// GetProviderByID retrieves one provider's public profile.
func (s *DefaultProviderService) GetProviderByID(id string) (*models.Provider, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	if p == nil {
		return nil, &NotFoundError{ID: id}
	}
	return p, nil
}

// filterByDistance keeps providers within the radius of the given origin.
// Without coordinates it is a no-op; providers without a stored location are
// excluded once a geo filter applies.
func filterByDistance(providers []models.Provider, params SearchParams) []models.Provider {
	if params.Latitude == nil || params.Longitude == nil {
		return providers
	}
	radius := params.RadiusKm
	if radius <= 0 {
		radius = defaultRadiusKm
	}

	filtered := providers[:0]
	for _, p := range providers {
		if p.Location == nil {
			continue
		}
		d := utils.DistanceKm(*params.Latitude, *params.Longitude, p.Location.Lat, p.Location.Lng)
		if d <= radius {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// anyServiceInRange reports whether at least one service's price lies inside
// [min, max], treating an absent bound as unconstrained. An empty catalogue
// never qualifies.
func anyServiceInRange(services []models.Service, min, max *float64) bool {
	for _, svc := range services {
		if min != nil && svc.Price < *min {
			continue
		}
		if max != nil && svc.Price > *max {
			continue
		}
		return true
	}
	return false
}

// catalogueWithinRange reports whether the provider's entire catalogue fits
// inside [min, max]: cheapest service >= min and dearest service <= max. An
// empty catalogue never qualifies.
func catalogueWithinRange(services []models.Service, min, max *float64) bool {
	if len(services) == 0 {
		return false
	}

	lowest, highest := services[0].Price, services[0].Price
	for _, svc := range services[1:] {
		if svc.Price < lowest {
			lowest = svc.Price
		}
		if svc.Price > highest {
			highest = svc.Price
		}
	}

	if min != nil && lowest < *min {
		return false
	}
	if max != nil && highest > *max {
		return false
	}
	return true
}
