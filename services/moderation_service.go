// services/moderation_service.go
package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wen-dev/wen_backend/models"
	"github.com/wen-dev/wen_backend/repositories"
	"github.com/wen-dev/wen_backend/utils"
)

// ModerationService owns the listing approval workflow. A listing moves from
// pending to approved through a single admin-gated forward transition; there
// is no reject or unpublish transition on this surface.
type ModerationService struct {
	users      repositories.UserRepository
	businesses repositories.BusinessRepository
}

func NewModerationService(users repositories.UserRepository, businesses repositories.BusinessRepository) *ModerationService {
	return &ModerationService{users: users, businesses: businesses}
}

// Approve stamps a listing as approved by the given actor. Re-approving an
// already approved listing re-stamps approvedAt/approvedBy; state never
// regresses, which keeps the handler safe under at-least-once delivery.
func (s *ModerationService) Approve(ctx context.Context, actorID, businessID string) (*models.Business, error) {
	if actorID == "" {
		return nil, ErrUnauthenticated
	}
	if businessID == "" {
		return nil, ErrInvalidArgument
	}
	actorOID, err := primitive.ObjectIDFromHex(actorID)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	businessOID, err := primitive.ObjectIDFromHex(businessID)
	if err != nil {
		return nil, ErrInvalidArgument
	}

	actor, err := s.users.GetByID(ctx, actorOID)
	if err != nil {
		return nil, ErrInternal
	}
	if actor == nil || !utils.Allow(actor.Role, utils.ActionApproveBusiness) {
		return nil, ErrPermissionDenied
	}

	business, err := s.businesses.GetByID(ctx, businessOID)
	if err != nil {
		return nil, ErrInternal
	}
	if business == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	matched, err := s.businesses.SetApproval(ctx, businessOID, actorOID, now)
	if err != nil {
		return nil, ErrInternal
	}
	if !matched {
		return nil, ErrNotFound
	}

	business.Approved = true
	business.ApprovedAt = &now
	business.ApprovedBy = &actorOID
	business.UpdatedAt = now
	return business, nil
}
