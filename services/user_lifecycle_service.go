// services/user_lifecycle_service.go
package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wen-dev/wen_backend/repositories"
	"github.com/wen-dev/wen_backend/utils"
)

// UserLifecycleService runs the admin user-deletion cascade across the
// document store and the identity provider. The two stores share no
// transaction, so each step is written to converge under retry instead of
// assuming the previous attempt never ran.
type UserLifecycleService struct {
	users      repositories.UserRepository
	businesses repositories.BusinessRepository
	identity   IdentityProvider
}

func NewUserLifecycleService(users repositories.UserRepository, businesses repositories.BusinessRepository, identity IdentityProvider) *UserLifecycleService {
	return &UserLifecycleService{users: users, businesses: businesses, identity: identity}
}

// DeleteUser removes the target's user document and login identity, then
// orphans every listing they own: ownerId cleared and the listing
// unpublished, never deleted.
//
// The user-document delete is deliberately tolerated on failure so a retried
// invocation after a partial failure still converges. The identity delete
// tolerates a missing identity only; any other provider failure surfaces.
func (s *UserLifecycleService) DeleteUser(ctx context.Context, actorID, targetUserID string) error {
	if actorID == "" {
		return ErrUnauthenticated
	}
	if targetUserID == "" {
		return ErrInvalidArgument
	}
	actorOID, err := primitive.ObjectIDFromHex(actorID)
	if err != nil {
		return ErrUnauthenticated
	}
	targetOID, err := primitive.ObjectIDFromHex(targetUserID)
	if err != nil {
		return ErrInvalidArgument
	}

	actor, err := s.users.GetByID(ctx, actorOID)
	if err != nil {
		return ErrInternal
	}
	if actor == nil || !utils.Allow(actor.Role, utils.ActionManageUsers) {
		return ErrPermissionDenied
	}

	if err := s.users.Delete(ctx, targetOID); err != nil {
		log.Printf("delete user: user document delete failed for %s: %v", targetUserID, err)
	}

	if err := s.identity.DeleteUser(ctx, targetOID.Hex()); err != nil {
		return ErrInternal
	}

	owned, err := s.businesses.FindByOwner(ctx, targetOID)
	if err != nil {
		return ErrInternal
	}
	if len(owned) == 0 {
		return nil
	}

	if _, err := s.businesses.OrphanByOwner(ctx, targetOID, time.Now()); err != nil {
		return ErrInternal
	}
	return nil
}
