// services/category_service.go
package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wen-dev/wen_backend/models"
	"github.com/wen-dev/wen_backend/repositories"
)

const (
	categoryCacheKey = "categories:list"
	categoryCacheTTL = 5 * time.Minute
)

// CategoryService maintains the two-level directory taxonomy. The listing is
// cached in Redis when a client is available; the service works without one.
type CategoryService struct {
	categories repositories.CategoryRepository
	cache      *redis.Client
}

func NewCategoryService(categories repositories.CategoryRepository, cache *redis.Client) *CategoryService {
	return &CategoryService{categories: categories, cache: cache}
}

// CreateTop creates a top-level category.
func (s *CategoryService) CreateTop(ctx context.Context, name string) (*models.Category, error) {
	if name == "" {
		return nil, ErrInvalidArgument
	}

	now := time.Now()
	category := &models.Category{
		Name:      name,
		ParentID:  nil,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.categories.Insert(ctx, category); err != nil {
		return nil, ErrInternal
	}

	s.invalidateCache(ctx)
	return category, nil
}

// CreateSub creates a subcategory under an existing top-level category. The
// taxonomy never grows deeper than two levels, so a subcategory cannot serve
// as a parent.
func (s *CategoryService) CreateSub(ctx context.Context, name, parentID string) (*models.Category, error) {
	if name == "" || parentID == "" {
		return nil, ErrInvalidArgument
	}
	parentOID, err := primitive.ObjectIDFromHex(parentID)
	if err != nil {
		return nil, ErrInvalidArgument
	}

	parent, err := s.categories.GetByID(ctx, parentOID)
	if err != nil {
		return nil, ErrInternal
	}
	if parent == nil || parent.ParentID != nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	category := &models.Category{
		Name:      name,
		ParentID:  &parentOID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.categories.Insert(ctx, category); err != nil {
		return nil, ErrInternal
	}

	s.invalidateCache(ctx)
	return category, nil
}

// Delete removes a category unless another category still references it as
// parent.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidArgument
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidArgument
	}

	children, err := s.categories.CountChildren(ctx, oid)
	if err != nil {
		return ErrInternal
	}
	if children > 0 {
		return ErrHasChildren
	}

	deleted, err := s.categories.Delete(ctx, oid)
	if err != nil {
		return ErrInternal
	}
	if !deleted {
		return ErrNotFound
	}

	s.invalidateCache(ctx)
	return nil
}

// List returns every category sorted by name.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	if cached := s.cachedList(ctx); cached != nil {
		return cached, nil
	}

	categories, err := s.categories.ListByName(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	s.storeList(ctx, categories)
	return categories, nil
}

func (s *CategoryService) cachedList(ctx context.Context) []models.Category {
	if s.cache == nil {
		return nil
	}
	payload, err := s.cache.Get(ctx, categoryCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var categories []models.Category
	if err := json.Unmarshal(payload, &categories); err != nil {
		return nil
	}
	return categories
}

func (s *CategoryService) storeList(ctx context.Context, categories []models.Category) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(categories)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, categoryCacheKey, payload, categoryCacheTTL).Err(); err != nil {
		log.Printf("category cache: set failed: %v", err)
	}
}

func (s *CategoryService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, categoryCacheKey).Err(); err != nil {
		log.Printf("category cache: invalidation failed: %v", err)
	}
}
