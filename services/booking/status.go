package booking

import (
	"errors"
	"fmt"

	bookingRepo "glowbook/database/repository/booking"
	"glowbook/models"
)

// authorize enforces the shared read/write rule: the caller's identity must
// be the booking's user or its provider. A provider's account id is its
// provider document id.
func authorize(callerID string, b *models.Booking) error {
	if b.UserID != callerID && b.ProviderID != callerID {
		return &ForbiddenError{BookingID: b.ID}
	}
	return nil
}

// GetBooking retrieves a booking for its user or provider.
func (s *DefaultBookingService) GetBooking(callerID, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if b == nil {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}
	if err := authorize(callerID, b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateStatus moves the booking to the given status. The status value must
// be one of the four known states; whether the move itself is legal is the
// transition policy's call.
func (s *DefaultBookingService) UpdateStatus(callerID, bookingID, status string) (*models.Booking, error) {
	if !models.ValidStatus(status) {
		return nil, &ValidationError{Message: "invalid status"}
	}

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if b == nil {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}
	if err := authorize(callerID, b); err != nil {
		return nil, err
	}

	policy := s.Transitions
	if policy == nil {
		policy = AllowAnyTransition
	}
	if !policy(b.Status, status) {
		return nil, &ValidationError{
			Message: fmt.Sprintf("status transition %s -> %s not allowed", b.Status, status),
		}
	}

	if err := s.Repo.UpdateStatus(bookingID, status); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{Resource: "booking", ID: bookingID}
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	b.Status = status
	return b, nil
}
