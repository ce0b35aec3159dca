package user

import (
	"errors"
	"testing"
	"time"

	userRepo "glowbook/database/repository/user"
	"glowbook/models"
)

// fakeUserRepo mirrors the set semantics of the Mongo implementation:
// AddFavourite ignores duplicates, RemoveFavourite ignores absent ids, and
// write operations against a missing user report ErrNotFound.
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	cp.Favourites = append([]string(nil), u.Favourites...)
	cp.Bookings = append([]string(nil), u.Bookings...)
	return &cp, nil
}

func (f *fakeUserRepo) Upsert(user *models.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdateFields(id string, fields map[string]any) error {
	u, ok := f.users[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "role":
			u.Role = v.(string)
		case "favourites":
			u.Favourites = v.([]string)
		case "updatedAt":
			u.UpdatedAt = v.(time.Time)
		}
	}
	return nil
}

func (f *fakeUserRepo) AddFavourite(id, providerID string) error {
	u, ok := f.users[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	for _, fav := range u.Favourites {
		if fav == providerID {
			return nil
		}
	}
	u.Favourites = append(u.Favourites, providerID)
	return nil
}

func (f *fakeUserRepo) RemoveFavourite(id, providerID string) error {
	u, ok := f.users[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	kept := u.Favourites[:0]
	for _, fav := range u.Favourites {
		if fav != providerID {
			kept = append(kept, fav)
		}
	}
	u.Favourites = kept
	return nil
}

type stubIdentity struct {
	name, email string
	err         error
}

func (s *stubIdentity) Lookup(string) (string, string, error) {
	return s.name, s.email, s.err
}

func seedUser(repo *fakeUserRepo, id string) {
	repo.users[id] = &models.User{
		ID:         id,
		Name:       "Amina",
		Email:      "amina@example.com",
		Role:       models.RoleClient,
		Bookings:   []string{},
		Favourites: []string{},
		CreatedAt:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateProfile(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	profile, err := svc.CreateProfile("uid-1", CreateProfileInput{Name: "Amina", Email: "amina@example.com"})
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if profile.Role != models.RoleClient {
		t.Errorf("role = %q, want default client", profile.Role)
	}
	if profile.Bookings == nil || profile.Favourites == nil {
		t.Error("bookings and favourites must start as empty sets, not nil")
	}

	// Missing fields are rejected.
	for _, input := range []CreateProfileInput{
		{Email: "x@example.com"},
		{Name: "x"},
	} {
		_, err := svc.CreateProfile("uid-1", input)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("CreateProfile(%+v): expected ValidationError, got %v", input, err)
		}
	}
}

// Re-creating a profile is a full overwrite: the new document wins and the
// bookings and favourites sets are reset.
func TestCreateProfile_UpsertOverwrites(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	if _, err := svc.CreateProfile("uid-1", CreateProfileInput{Name: "Amina", Email: "amina@example.com", Role: models.RoleProvider}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.UpdateFavourites("uid-1", "prov-1", FavouriteAdd); err != nil {
		t.Fatalf("add favourite: %v", err)
	}

	second, err := svc.CreateProfile("uid-1", CreateProfileInput{Name: "Amina N.", Email: "amina@example.com"})
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if second.Name != "Amina N." || second.Role != models.RoleClient {
		t.Errorf("overwrite did not take: %+v", second)
	}

	stored, err := svc.GetProfile("uid-1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if len(stored.Favourites) != 0 {
		t.Errorf("favourites should reset on re-create, got %v", stored.Favourites)
	}
}

func TestSyncProfile(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := &DefaultUserService{
		Repo:     repo,
		Identity: &stubIdentity{name: "Wanjiru", email: "wanjiru@example.com"},
	}

	profile, err := svc.SyncProfile("uid-7")
	if err != nil {
		t.Fatalf("SyncProfile: %v", err)
	}
	if profile.Name != "Wanjiru" || profile.Email != "wanjiru@example.com" {
		t.Errorf("profile not filled from identity record: %+v", profile)
	}
	if profile.Role != models.RoleClient {
		t.Errorf("role = %q, want client", profile.Role)
	}

	failing := &DefaultUserService{
		Repo:     repo,
		Identity: &stubIdentity{err: errors.New("record not found")},
	}
	if _, err := failing.SyncProfile("uid-8"); err == nil {
		t.Error("expected error when identity lookup fails")
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	t.Parallel()

	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.GetProfile("ghost")
	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestUpdateProfile_PartialMerge(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	seedUser(repo, "uid-1")
	svc := &DefaultUserService{Repo: repo}

	updated, err := svc.UpdateProfile("uid-1", UpdateProfileInput{Name: "Amina W."})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "Amina W." {
		t.Errorf("name = %q, want Amina W.", updated.Name)
	}
	if updated.Email != "amina@example.com" || updated.Role != models.RoleClient {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if updated.UpdatedAt.IsZero() {
		t.Error("updatedAt should refresh on every update")
	}

	// Replacing favourites wholesale is allowed through the profile update.
	updated, err = svc.UpdateProfile("uid-1", UpdateProfileInput{Favourites: []string{"prov-9"}})
	if err != nil {
		t.Fatalf("UpdateProfile favourites: %v", err)
	}
	if len(updated.Favourites) != 1 || updated.Favourites[0] != "prov-9" {
		t.Errorf("favourites = %v, want [prov-9]", updated.Favourites)
	}

	_, err = svc.UpdateProfile("ghost", UpdateProfileInput{Name: "x"})
	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Errorf("expected NotFoundError for missing user, got %v", err)
	}
}

func TestUpdateFavourites(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	seedUser(repo, "uid-1")
	svc := &DefaultUserService{Repo: repo}

	// Adding twice leaves a single occurrence.
	for i := 0; i < 2; i++ {
		if _, err := svc.UpdateFavourites("uid-1", "prov-1", FavouriteAdd); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	profile, err := svc.GetProfile("uid-1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if len(profile.Favourites) != 1 {
		t.Errorf("favourites = %v, want exactly one prov-1", profile.Favourites)
	}

	// Removing an id that is not present is a no-op, not an error.
	profile, err = svc.UpdateFavourites("uid-1", "prov-2", FavouriteRemove)
	if err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if len(profile.Favourites) != 1 {
		t.Errorf("favourites = %v, want prov-1 untouched", profile.Favourites)
	}

	profile, err = svc.UpdateFavourites("uid-1", "prov-1", FavouriteRemove)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(profile.Favourites) != 0 {
		t.Errorf("favourites = %v, want empty", profile.Favourites)
	}

	var vErr *ValidationError
	if _, err := svc.UpdateFavourites("uid-1", "prov-1", "toggle"); !errors.As(err, &vErr) {
		t.Errorf("expected ValidationError for unknown action, got %v", err)
	}
	if _, err := svc.UpdateFavourites("uid-1", "", FavouriteAdd); !errors.As(err, &vErr) {
		t.Errorf("expected ValidationError for empty provider id, got %v", err)
	}

	var nfErr *NotFoundError
	if _, err := svc.UpdateFavourites("ghost", "prov-1", FavouriteAdd); !errors.As(err, &nfErr) {
		t.Errorf("expected NotFoundError for missing user, got %v", err)
	}
}
