package userRepo

import (
	"errors"

	"glowbook/models"
)

// ErrNotFound is returned by write operations that matched no user document.
var ErrNotFound = errors.New("user not found")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns (nil, nil) when
	// no document exists.
	GetByID(id string) (*models.User, error)
	// Upsert writes the full profile document, replacing any existing one
	// with the same ID.
	Upsert(user *models.User) error
	// UpdateFields applies a partial $set-style update.
	UpdateFields(id string, fields map[string]any) error
	// AddFavourite adds a provider id to the user's favourites set.
	AddFavourite(id, providerID string) error
	// RemoveFavourite removes a provider id from the user's favourites set.
	RemoveFavourite(id, providerID string) error
}
