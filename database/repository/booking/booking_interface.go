package bookingRepo

import (
	"context"
	"errors"
	"time"

	"glowbook/models"
)

// ErrSlotTaken is returned when the unique slot index rejects an insert:
// another active booking for the same provider and instant already exists.
var ErrSlotTaken = errors.New("booking slot already taken")

// ErrNotFound is returned by write operations that matched no booking.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID. Returns (nil, nil)
	// when no document exists.
	GetByID(id string) (*models.Booking, error)
	// CountActiveAt counts bookings for the provider at exactly date with
	// status pending or confirmed.
	CountActiveAt(providerID string, date time.Time) (int64, error)
	// Create inserts the booking and appends its id to the owning user's
	// bookings set in one transaction. Returns ErrSlotTaken when a
	// concurrent booking won the slot.
	Create(ctx context.Context, booking *models.Booking) error
	// UpdateStatus sets the booking's status and refreshes updatedAt.
	UpdateStatus(id, status string) error
	// ListByUser retrieves a user's bookings, newest first, optionally
	// narrowed to one status.
	ListByUser(userID, status string) ([]models.Booking, error)
	// ListByProvider retrieves a provider's bookings, oldest first,
	// optionally narrowed to an exact date and/or status.
	ListByProvider(providerID string, date *time.Time, status string) ([]models.Booking, error)
}
