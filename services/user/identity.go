package user

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/auth"
)

// FirebaseIdentitySource resolves account details through the Firebase
// Admin SDK.
type FirebaseIdentitySource struct {
	Auth *auth.Client
}

// Lookup fetches the identity record for the subject id. Display name and
// email may be empty when the identity provider holds none.
func (f *FirebaseIdentitySource) Lookup(id string) (string, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	record, err := f.Auth.GetUser(ctx, id)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch identity record: %w", err)
	}
	return record.DisplayName, record.Email, nil
}
