package user

import (
	"errors"
	"fmt"
	"time"

	userRepo "glowbook/database/repository/user"
	"glowbook/models"
	"glowbook/utils"

	"go.uber.org/zap"
)

// CreateProfile writes a fresh profile document for the identity id.
// Bookings and favourites start empty even when a profile already existed;
// re-creation is a deliberate overwrite, not an error.
func (s *DefaultUserService) CreateProfile(id string, input CreateProfileInput) (*models.User, error) {
	if input.Name == "" || input.Email == "" {
		return nil, &ValidationError{Message: "name and email are required"}
	}

	role := input.Role
	if role == "" {
		role = models.RoleClient
	}

	profile := &models.User{
		ID:         id,
		Name:       input.Name,
		Email:      input.Email,
		Role:       role,
		Bookings:   []string{},
		Favourites: []string{},
		CreatedAt:  time.Now(),
	}

	if err := s.Repo.Upsert(profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	utils.GetLogger().Info("User profile created", zap.String("userID", id))
	return profile, nil
}

// SyncProfile creates the profile from the external identity record. The
// mobile client calls this right after first sign-in, which stands in for
// the identity provider's own on-create hook.
func (s *DefaultUserService) SyncProfile(id string) (*models.User, error) {
	name, email, err := s.Identity.Lookup(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up identity %s: %w", id, err)
	}

	profile := &models.User{
		ID:         id,
		Name:       name,
		Email:      email,
		Role:       models.RoleClient,
		Bookings:   []string{},
		Favourites: []string{},
		CreatedAt:  time.Now(),
	}

	if err := s.Repo.Upsert(profile); err != nil {
		return nil, fmt.Errorf("failed to sync profile: %w", err)
	}
	utils.GetLogger().Info("User profile synced from identity provider", zap.String("userID", id))
	return profile, nil
}

// GetProfile retrieves the profile for the identity id.
func (s *DefaultUserService) GetProfile(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if usr == nil {
		return nil, &NotFoundError{ID: id}
	}
	return usr, nil
}

// UpdateProfile applies a partial merge: only name, role and favourites
// present in the request are written; updatedAt always refreshes.
func (s *DefaultUserService) UpdateProfile(id string, input UpdateProfileInput) (*models.User, error) {
	updateFields := map[string]any{
		"updatedAt": time.Now(),
	}
	if input.Name != "" {
		updateFields["name"] = input.Name
	}
	if input.Role != "" {
		updateFields["role"] = input.Role
	}
	if input.Favourites != nil {
		updateFields["favourites"] = input.Favourites
	}

	if err := s.Repo.UpdateFields(id, updateFields); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.GetProfile(id)
}
