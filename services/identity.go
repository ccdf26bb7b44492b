// services/identity.go
package services

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
)

// IdentityProvider abstracts the authentication backend holding login
// identities. Deleting an identity that does not exist is a no-op.
type IdentityProvider interface {
	DeleteUser(ctx context.Context, uid string) error
}

type firebaseIdentity struct {
	client *auth.Client
}

// NewFirebaseIdentity wraps the Firebase Admin auth client as an
// IdentityProvider.
func NewFirebaseIdentity(ctx context.Context, app *firebase.App) (IdentityProvider, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &firebaseIdentity{client: client}, nil
}

func (f *firebaseIdentity) DeleteUser(ctx context.Context, uid string) error {
	err := f.client.DeleteUser(ctx, uid)
	if err != nil && auth.IsUserNotFound(err) {
		return nil
	}
	return err
}
