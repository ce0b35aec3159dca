package provider

import "fmt"

// NotFoundError signals that the requested provider does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("provider %s not found", e.ID)
}
