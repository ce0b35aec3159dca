package booking

import "fmt"

// ValidationError signals a malformed or incomplete request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError signals a missing booking or provider.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ForbiddenError signals that the caller has no rights over the booking.
type ForbiddenError struct {
	BookingID string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("not authorized for booking %s", e.BookingID)
}

// ConflictError signals that the requested slot is already taken.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
