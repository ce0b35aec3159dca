package booking

import (
	"time"

	bookingRepo "glowbook/database/repository/booking"
	providerRepo "glowbook/database/repository/provider"
	"glowbook/models"
)

// CreateBookingInput is the booking-creation request. Service is a snapshot
// of the chosen service, copied into the booking.
type CreateBookingInput struct {
	ProviderID string
	Service    models.BookedService
	Date       time.Time
	Notes      string
}

type BookingService interface {
	// CreateBooking books the provider's slot at the exact instant for the
	// user, rejecting the request when an active booking already holds it.
	CreateBooking(userID string, input CreateBookingInput) (*models.Booking, error)
	// GetBooking retrieves a booking; the caller must be its user or its
	// provider.
	GetBooking(callerID, bookingID string) (*models.Booking, error)
	// UpdateStatus moves a booking to the given status, subject to the
	// same authorization rule and the configured transition policy.
	UpdateStatus(callerID, bookingID, status string) (*models.Booking, error)
	// ListUserBookings returns the user's bookings, newest first.
	ListUserBookings(userID, status string) ([]models.Booking, error)
	// ListProviderBookings returns the provider's bookings, oldest first.
	ListProviderBookings(providerID string, date *time.Time, status string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation. Transitions may
// be left nil, in which case every status change is allowed.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
	Transitions  TransitionPolicy
}
