// services/business_service.go
package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wen-dev/wen_backend/models"
	"github.com/wen-dev/wen_backend/repositories"
	"github.com/wen-dev/wen_backend/utils"
)

// BusinessService is the write path for listings. Every create and update
// recomputes the derived geohash and searchKeywords fields from the source
// fields, then notifies the dispatcher so downstream indexing sees the write.
type BusinessService struct {
	businesses repositories.BusinessRepository
	categories repositories.CategoryRepository
	dispatcher *Dispatcher
}

func NewBusinessService(businesses repositories.BusinessRepository, categories repositories.CategoryRepository, dispatcher *Dispatcher) *BusinessService {
	return &BusinessService{businesses: businesses, categories: categories, dispatcher: dispatcher}
}

// Create inserts a new listing. New listings always start unapproved.
func (s *BusinessService) Create(ctx context.Context, req models.BusinessRequest) (*models.Business, error) {
	if req.Name == "" || req.CategoryID == "" {
		return nil, ErrInvalidArgument
	}
	categoryOID, err := primitive.ObjectIDFromHex(req.CategoryID)
	if err != nil {
		return nil, ErrInvalidArgument
	}

	var ownerOID *primitive.ObjectID
	if req.OwnerID != "" {
		oid, err := primitive.ObjectIDFromHex(req.OwnerID)
		if err != nil {
			return nil, ErrInvalidArgument
		}
		ownerOID = &oid
	}

	category, err := s.categories.GetByID(ctx, categoryOID)
	if err != nil {
		return nil, ErrInternal
	}
	if category == nil {
		return nil, ErrNotFound
	}

	geohash, keywords, err := deriveFields(req, category.Name)
	if err != nil {
		return nil, err
	}

	plan := req.Plan
	if plan == "" {
		plan = models.PlanFree
	}

	now := time.Now()
	business := &models.Business{
		Name:           req.Name,
		Description:    req.Description,
		CategoryID:     categoryOID,
		OwnerID:        ownerOID,
		Location:       req.Location,
		Geohash:        geohash,
		SearchKeywords: keywords,
		Approved:       false,
		Plan:           plan,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.businesses.Insert(ctx, business); err != nil {
		return nil, ErrInternal
	}

	s.dispatcher.NotifyWrite(ctx, nil, business)
	return business, nil
}

// Update rewrites a listing's source fields and recomputes the derived ones.
// Approval state is untouched; moderation owns it.
func (s *BusinessService) Update(ctx context.Context, id string, req models.BusinessRequest) (*models.Business, error) {
	if id == "" || req.Name == "" || req.CategoryID == "" {
		return nil, ErrInvalidArgument
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidArgument
	}
	categoryOID, err := primitive.ObjectIDFromHex(req.CategoryID)
	if err != nil {
		return nil, ErrInvalidArgument
	}

	before, err := s.businesses.GetByID(ctx, oid)
	if err != nil {
		return nil, ErrInternal
	}
	if before == nil {
		return nil, ErrNotFound
	}

	category, err := s.categories.GetByID(ctx, categoryOID)
	if err != nil {
		return nil, ErrInternal
	}
	if category == nil {
		return nil, ErrNotFound
	}

	geohash, keywords, err := deriveFields(req, category.Name)
	if err != nil {
		return nil, err
	}

	after := *before
	after.Name = req.Name
	after.Description = req.Description
	after.CategoryID = categoryOID
	after.Location = req.Location
	after.Geohash = geohash
	after.SearchKeywords = keywords
	if req.Plan != "" {
		after.Plan = req.Plan
	}
	if req.OwnerID != "" {
		ownerOID, err := primitive.ObjectIDFromHex(req.OwnerID)
		if err != nil {
			return nil, ErrInvalidArgument
		}
		after.OwnerID = &ownerOID
	}
	after.UpdatedAt = time.Now()

	matched, err := s.businesses.Update(ctx, &after)
	if err != nil {
		return nil, ErrInternal
	}
	if !matched {
		return nil, ErrNotFound
	}

	s.dispatcher.NotifyWrite(ctx, before, &after)
	return &after, nil
}

// Delete removes a listing and notifies the dispatcher with a nil after
// state.
func (s *BusinessService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidArgument
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidArgument
	}

	before, err := s.businesses.GetByID(ctx, oid)
	if err != nil {
		return ErrInternal
	}
	if before == nil {
		return ErrNotFound
	}

	deleted, err := s.businesses.Delete(ctx, oid)
	if err != nil {
		return ErrInternal
	}
	if !deleted {
		return ErrNotFound
	}

	s.dispatcher.NotifyWrite(ctx, before, nil)
	return nil
}

// Get returns one listing by id.
func (s *BusinessService) Get(ctx context.Context, id string) (*models.Business, error) {
	if id == "" {
		return nil, ErrInvalidArgument
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidArgument
	}
	business, err := s.businesses.GetByID(ctx, oid)
	if err != nil {
		return nil, ErrInternal
	}
	if business == nil {
		return nil, ErrNotFound
	}
	return business, nil
}

// List returns every listing, newest first.
func (s *BusinessService) List(ctx context.Context) ([]models.Business, error) {
	businesses, err := s.businesses.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return businesses, nil
}

func deriveFields(req models.BusinessRequest, categoryName string) (string, []string, error) {
	geohash, err := utils.EncodeGeohash(req.Location.Lat, req.Location.Lng, utils.DefaultGeohashPrecision)
	if err != nil {
		return "", nil, ErrInvalidArgument
	}
	keywords := utils.BuildSearchKeywords(req.Name, req.Description, categoryName)
	return geohash, keywords, nil
}
