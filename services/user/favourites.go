package user

import (
	"errors"
	"fmt"

	userRepo "glowbook/database/repository/user"
	"glowbook/models"
)

// UpdateFavourites toggles a provider id in the user's favourites set.
// Adding an already-present id and removing an absent one are both no-ops.
// The provider id is not checked for existence; a favourite may dangle.
func (s *DefaultUserService) UpdateFavourites(id, providerID, action string) (*models.User, error) {
	if providerID == "" {
		return nil, &ValidationError{Message: "provider ID is required"}
	}

	var err error
	switch action {
	case FavouriteAdd:
		err = s.Repo.AddFavourite(id, providerID)
	case FavouriteRemove:
		err = s.Repo.RemoveFavourite(id, providerID)
	default:
		return nil, &ValidationError{Message: `invalid action, use "add" or "remove"`}
	}

	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to update favourites: %w", err)
	}

	return s.GetProfile(id)
}
