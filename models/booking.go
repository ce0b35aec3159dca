package models

import "time"

// Booking statuses. Pending and confirmed count as active when checking
// slot conflicts; completed and cancelled are terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the four booking statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ActiveStatuses are the statuses that occupy a slot.
func ActiveStatuses() []string {
	return []string{StatusPending, StatusConfirmed}
}

// BookedService is a snapshot of the service at booking time, not a live
// reference into the provider's catalogue.
type BookedService struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

// Booking is an appointment record linking a user to a provider at an
// exact instant.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	ProviderID string        `bson:"providerId" json:"providerId"`
	UserID     string        `bson:"userId" json:"userId"`
	Service    BookedService `bson:"service" json:"service"`
	Date       time.Time     `bson:"date" json:"date"`
	Status     string        `bson:"status" json:"status"`
	Notes      string        `bson:"notes" json:"notes"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitzero"`
}
