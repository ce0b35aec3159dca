package models

import "time"

// User roles. Role defaults to RoleClient when a profile is created.
const (
	RoleClient   = "client"
	RoleProvider = "provider"
)

// User is a platform account document, keyed by the identity subject id.
// Bookings and Favourites are id sets; order carries no meaning.
type User struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Role       string    `bson:"role" json:"role"`
	Bookings   []string  `bson:"bookings" json:"bookings"`
	Favourites []string  `bson:"favourites" json:"favourites"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitzero"`
}
