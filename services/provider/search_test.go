package provider

import (
	"errors"
	"testing"

	"glowbook/models"
)

// fakeProviderRepo serves fixture providers from memory. It returns fresh
// copies so in-place filtering in the service never corrupts the fixture.
type fakeProviderRepo struct {
	providers []models.Provider
	err       error
}

func (f *fakeProviderRepo) GetByID(id string) (*models.Provider, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.providers {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProviderRepo) FindByCategory(category string) ([]models.Provider, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Provider
	for _, p := range f.providers {
		for _, c := range p.Categories {
			if c == category {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeProviderRepo) List(category string) ([]models.Provider, error) {
	if category != "" {
		return f.FindByCategory(category)
	}
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Provider(nil), f.providers...), nil
}

func floatPtr(v float64) *float64 { return &v }

func names(providers []models.Provider) []string {
	var out []string
	for _, p := range providers {
		out = append(out, p.ID)
	}
	return out
}

func containsID(providers []models.Provider, id string) bool {
	for _, p := range providers {
		if p.ID == id {
			return true
		}
	}
	return false
}

func fixtureProviders() []models.Provider {
	return []models.Provider{
		{
			ID:         "spread", // services 20 and 80
			Categories: []string{"hair"},
			Location:   &models.Location{City: "Nairobi", Lat: -1.2921, Lng: 36.8219},
			Services: []models.Service{
				{Name: "trim", Price: 20, Category: "hair"},
				{Name: "braiding", Price: 80, Category: "hair"},
			},
		},
		{
			ID:         "premium", // services 60 and 90
			Categories: []string{"hair", "makeup"},
			Location:   &models.Location{City: "Nairobi", Lat: -1.3000, Lng: 36.8300},
			Services: []models.Service{
				{Name: "styling", Price: 60, Category: "hair"},
				{Name: "full glam", Price: 90, Category: "makeup"},
			},
		},
		{
			ID:         "faraway", // ~440 km out
			Categories: []string{"hair"},
			Location:   &models.Location{City: "Mombasa", Lat: -4.0435, Lng: 39.6682},
			Services: []models.Service{
				{Name: "trim", Price: 30, Category: "hair"},
			},
		},
		{
			ID:         "nowhere", // no stored location
			Categories: []string{"hair"},
			Services: []models.Service{
				{Name: "trim", Price: 25, Category: "hair"},
			},
		},
		{
			ID:         "empty", // no services yet
			Categories: []string{"hair"},
			Location:   &models.Location{City: "Nairobi", Lat: -1.2921, Lng: 36.8219},
		},
	}
}

// The two discovery entry points deliberately disagree on price semantics:
// the category path keeps a provider when any one service fits the window,
// the general filter only when the whole catalogue does. The {20, 80} /
// min=50 case pins the discrepancy.
func TestPriceFilterDiscrepancy(t *testing.T) {
	t.Parallel()

	svc := &DefaultProviderService{Repo: &fakeProviderRepo{providers: fixtureProviders()}}
	params := SearchParams{Category: "hair", MinPrice: floatPtr(50)}

	byCategory, err := svc.SearchByCategory(params)
	if err != nil {
		t.Fatalf("SearchByCategory: %v", err)
	}
	if !containsID(byCategory, "spread") {
		t.Errorf("category path should include provider with one service >= 50, got %v", names(byCategory))
	}

	filtered, err := svc.Filter(params)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if containsID(filtered, "spread") {
		t.Errorf("filter path should exclude provider whose cheapest service is below 50, got %v", names(filtered))
	}
	if !containsID(filtered, "premium") {
		t.Errorf("filter path should include provider whose whole catalogue is >= 50, got %v", names(filtered))
	}
}

func TestSearchByCategory_PriceWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		min, max *float64
		wantIDs  map[string]bool
	}{
		{
			name: "no bounds keeps everyone including empty catalogue",
			wantIDs: map[string]bool{
				"spread": true, "premium": true, "faraway": true, "nowhere": true, "empty": true,
			},
		},
		{
			name: "max only",
			max:  floatPtr(25),
			wantIDs: map[string]bool{
				"spread": true, "faraway": false, "nowhere": true, "premium": false, "empty": false,
			},
		},
		{
			name: "band excludes catalogues that never enter it",
			min:  floatPtr(50),
			max:  floatPtr(70),
			wantIDs: map[string]bool{
				"premium": true, "spread": false, "faraway": false, "nowhere": false, "empty": false,
			},
		},
		{
			name: "any bound excludes empty catalogue",
			min:  floatPtr(0),
			wantIDs: map[string]bool{
				"empty": false, "spread": true,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &DefaultProviderService{Repo: &fakeProviderRepo{providers: fixtureProviders()}}
			got, err := svc.SearchByCategory(SearchParams{
				Category: "hair", MinPrice: tt.min, MaxPrice: tt.max,
			})
			if err != nil {
				t.Fatalf("SearchByCategory: %v", err)
			}
			for id, want := range tt.wantIDs {
				if containsID(got, id) != want {
					t.Errorf("provider %q included=%v, want %v (got %v)", id, !want, want, names(got))
				}
			}
		})
	}
}

func TestGeoFilter(t *testing.T) {
	t.Parallel()

	svc := &DefaultProviderService{Repo: &fakeProviderRepo{providers: fixtureProviders()}}
	lat, lng := -1.2921, 36.8219

	// Default radius of 10 km keeps the Nairobi providers and drops the
	// Mombasa one plus any provider without a stored location.
	got, err := svc.SearchByCategory(SearchParams{
		Category: "hair", Latitude: &lat, Longitude: &lng,
	})
	if err != nil {
		t.Fatalf("SearchByCategory: %v", err)
	}
	for id, want := range map[string]bool{
		"spread": true, "premium": true, "faraway": false, "nowhere": false,
	} {
		if containsID(got, id) != want {
			t.Errorf("provider %q included=%v, want %v", id, !want, want)
		}
	}

	// A big enough radius reaches Mombasa; the location-less provider
	// stays excluded.
	got, err = svc.Filter(SearchParams{
		Category: "hair", Latitude: &lat, Longitude: &lng, RadiusKm: 1000,
	})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if !containsID(got, "faraway") {
		t.Errorf("radius 1000 should include faraway provider, got %v", names(got))
	}
	if containsID(got, "nowhere") {
		t.Errorf("provider without location must stay excluded under geo filter")
	}

	// Without coordinates the geo filter is inert.
	got, err = svc.Filter(SearchParams{Category: "hair"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if !containsID(got, "nowhere") {
		t.Errorf("no geo filter requested, provider without location should remain")
	}
}

func TestGetProviderByID(t *testing.T) {
	t.Parallel()

	svc := &DefaultProviderService{Repo: &fakeProviderRepo{providers: fixtureProviders()}}

	p, err := svc.GetProviderByID("spread")
	if err != nil {
		t.Fatalf("GetProviderByID: %v", err)
	}
	if p.ID != "spread" {
		t.Errorf("got provider %q, want spread", p.ID)
	}

	_, err = svc.GetProviderByID("ghost")
	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Errorf("expected NotFoundError for unknown provider, got %v", err)
	}
}

func TestSearch_StorageFailure(t *testing.T) {
	t.Parallel()

	svc := &DefaultProviderService{Repo: &fakeProviderRepo{err: errors.New("connection reset")}}

	if _, err := svc.SearchByCategory(SearchParams{Category: "hair"}); err == nil {
		t.Error("expected error when storage is unavailable")
	}
	if _, err := svc.Filter(SearchParams{}); err == nil {
		t.Error("expected error when storage is unavailable")
	}
}
