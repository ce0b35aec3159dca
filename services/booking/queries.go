package booking

import (
	"fmt"
	"time"

	"glowbook/models"
)

// ListUserBookings returns the user's bookings, newest first, optionally
// narrowed to one status.
func (s *DefaultBookingService) ListUserBookings(userID, status string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByUser(userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list user bookings: %w", err)
	}
	return bookings, nil
}

// ListProviderBookings returns the provider's bookings, oldest first,
// optionally narrowed to an exact date and/or status.
func (s *DefaultBookingService) ListProviderBookings(providerID string, date *time.Time, status string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByProvider(providerID, date, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list provider bookings: %w", err)
	}
	return bookings, nil
}
