package utils

import (
	"math"
	"testing"
)

func TestDistanceKm_ZeroForEqualPoints(t *testing.T) {
	t.Parallel()

	points := [][2]float64{
		{0, 0},
		{48.8566, 2.3522},
		{-33.8688, 151.2093},
	}
	for _, p := range points {
		if d := DistanceKm(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("DistanceKm(%v, %v, same) = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{"paris-london", 48.8566, 2.3522, 51.5074, -0.1278},
		{"equator-crossing", -1.2921, 36.8219, 1.3521, 103.8198},
		{"antimeridian", 35.6762, 139.6503, 37.7749, -122.4194},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			forward := DistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			backward := DistanceKm(tt.lat2, tt.lon2, tt.lat1, tt.lon1)
			if math.Abs(forward-backward) > 1e-9 {
				t.Errorf("distance not symmetric: %v vs %v", forward, backward)
			}
			if forward <= 0 {
				t.Errorf("expected positive distance, got %v", forward)
			}
		})
	}
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	t.Parallel()

	// Paris to London is roughly 344 km great-circle.
	d := DistanceKm(48.8566, 2.3522, 51.5074, -0.1278)
	if d < 330 || d > 355 {
		t.Errorf("Paris-London distance = %v km, want ~344", d)
	}
}

func TestDistanceKm_NaNPropagates(t *testing.T) {
	t.Parallel()

	if d := DistanceKm(math.NaN(), 0, 0, 0); !math.IsNaN(d) {
		t.Errorf("expected NaN to propagate, got %v", d)
	}
}
