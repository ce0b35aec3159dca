package user

import (
	userRepo "glowbook/database/repository/user"
	"glowbook/models"
)

// Favourites toggle actions.
const (
	FavouriteAdd    = "add"
	FavouriteRemove = "remove"
)

// IdentitySource looks up account details held by the external identity
// provider, used when a profile is created implicitly after first sign-in.
type IdentitySource interface {
	Lookup(id string) (name, email string, err error)
}

// CreateProfileInput is the explicit profile-creation request.
type CreateProfileInput struct {
	Name  string
	Email string
	Role  string
}

// UpdateProfileInput is a partial profile update; zero-value fields are
// left untouched.
type UpdateProfileInput struct {
	Name       string
	Role       string
	Favourites []string
}

type UserService interface {
	// CreateProfile writes the profile document for the identity id. An
	// existing profile is overwritten (idempotent upsert).
	CreateProfile(id string, input CreateProfileInput) (*models.User, error)
	// SyncProfile creates the profile from the identity provider's record,
	// defaulting the role to client. Same upsert semantics as CreateProfile.
	SyncProfile(id string) (*models.User, error)
	// GetProfile retrieves the profile for the identity id.
	GetProfile(id string) (*models.User, error)
	// UpdateProfile applies a partial merge and refreshes updatedAt.
	UpdateProfile(id string, input UpdateProfileInput) (*models.User, error)
	// UpdateFavourites adds or removes a provider id from the favourites
	// set. Both directions are idempotent.
	UpdateFavourites(id, providerID, action string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Identity IdentitySource
}
