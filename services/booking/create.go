package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "glowbook/database/repository/booking"
	"glowbook/models"
	"glowbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking creates a pending booking for the user at the exact instant.
// Conflict detection is equality on (providerId, date) over active statuses;
// a booking one second later is a different slot. The advisory pre-check
// keeps the common case cheap, and the transactional insert behind the
// partial unique index settles races: the loser gets a ConflictError.
func (s *DefaultBookingService) CreateBooking(userID string, input CreateBookingInput) (*models.Booking, error) {
	if input.ProviderID == "" || input.Date.IsZero() {
		return nil, &ValidationError{Message: "provider ID, service, and date are required"}
	}
	if input.Service.Name == "" || input.Service.Price <= 0 {
		return nil, &ValidationError{Message: "service must include name and price"}
	}

	prov, err := s.ProviderRepo.GetByID(input.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to check provider: %w", err)
	}
	if prov == nil {
		return nil, &NotFoundError{Resource: "provider", ID: input.ProviderID}
	}

	count, err := s.Repo.CountActiveAt(input.ProviderID, input.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot availability: %w", err)
	}
	if count > 0 {
		return nil, &ConflictError{Message: "time slot not available"}
	}

	booking := &models.Booking{
		ID:         uuid.New().String(),
		ProviderID: input.ProviderID,
		UserID:     userID,
		Service:    input.Service,
		Date:       input.Date,
		Status:     models.StatusPending,
		Notes:      input.Notes,
		CreatedAt:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Repo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, &ConflictError{Message: "time slot not available"}
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	utils.GetLogger().Info("Booking created",
		zap.String("bookingID", booking.ID),
		zap.String("providerID", booking.ProviderID),
		zap.String("userID", userID),
	)
	return booking, nil
}
