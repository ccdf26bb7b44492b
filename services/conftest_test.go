package services

// In-memory fakes for the repository and identity interfaces. Each fake keeps
// documents in a map guarded by nothing: the tests are sequential.

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wen-dev/wen_backend/models"
)

type memUserRepo struct {
	users     map[primitive.ObjectID]models.User
	deleteErr error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[primitive.ObjectID]models.User)}
}

func (r *memUserRepo) add(user models.User) models.User {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = user
	return user
}

func (r *memUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Insert(_ context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	r.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) List(_ context.Context) ([]models.User, error) {
	var users []models.User
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *memUserRepo) UpdateRole(_ context.Context, id primitive.ObjectID, role string) (bool, error) {
	user, ok := r.users[id]
	if !ok {
		return false, nil
	}
	user.Role = role
	r.users[id] = user
	return true, nil
}

func (r *memUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.users, id)
	return nil
}

type memBusinessRepo struct {
	businesses map[primitive.ObjectID]models.Business
}

func newMemBusinessRepo() *memBusinessRepo {
	return &memBusinessRepo{businesses: make(map[primitive.ObjectID]models.Business)}
}

func (r *memBusinessRepo) add(business models.Business) models.Business {
	if business.ID.IsZero() {
		business.ID = primitive.NewObjectID()
	}
	r.businesses[business.ID] = business
	return business
}

func (r *memBusinessRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Business, error) {
	business, ok := r.businesses[id]
	if !ok {
		return nil, nil
	}
	return &business, nil
}

func (r *memBusinessRepo) Insert(_ context.Context, business *models.Business) error {
	business.ID = primitive.NewObjectID()
	r.businesses[business.ID] = *business
	return nil
}

func (r *memBusinessRepo) Update(_ context.Context, business *models.Business) (bool, error) {
	if _, ok := r.businesses[business.ID]; !ok {
		return false, nil
	}
	r.businesses[business.ID] = *business
	return true, nil
}

func (r *memBusinessRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := r.businesses[id]; !ok {
		return false, nil
	}
	delete(r.businesses, id)
	return true, nil
}

func (r *memBusinessRepo) List(_ context.Context) ([]models.Business, error) {
	var businesses []models.Business
	for _, business := range r.businesses {
		businesses = append(businesses, business)
	}
	return businesses, nil
}

func (r *memBusinessRepo) FindByOwner(_ context.Context, ownerID primitive.ObjectID) ([]models.Business, error) {
	var owned []models.Business
	for _, business := range r.businesses {
		if business.OwnerID != nil && *business.OwnerID == ownerID {
			owned = append(owned, business)
		}
	}
	return owned, nil
}

func (r *memBusinessRepo) SetApproval(_ context.Context, id primitive.ObjectID, approvedBy primitive.ObjectID, at time.Time) (bool, error) {
	business, ok := r.businesses[id]
	if !ok {
		return false, nil
	}
	business.Approved = true
	business.ApprovedAt = &at
	business.ApprovedBy = &approvedBy
	business.UpdatedAt = at
	r.businesses[id] = business
	return true, nil
}

func (r *memBusinessRepo) OrphanByOwner(_ context.Context, ownerID primitive.ObjectID, at time.Time) (int64, error) {
	var touched int64
	for id, business := range r.businesses {
		if business.OwnerID != nil && *business.OwnerID == ownerID {
			business.OwnerID = nil
			business.Approved = false
			business.UpdatedAt = at
			r.businesses[id] = business
			touched++
		}
	}
	return touched, nil
}

type memCategoryRepo struct {
	categories map[primitive.ObjectID]models.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[primitive.ObjectID]models.Category)}
}

func (r *memCategoryRepo) add(category models.Category) models.Category {
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	r.categories[category.ID] = category
	return category
}

func (r *memCategoryRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (r *memCategoryRepo) Insert(_ context.Context, category *models.Category) error {
	category.ID = primitive.NewObjectID()
	r.categories[category.ID] = *category
	return nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := r.categories[id]; !ok {
		return false, nil
	}
	delete(r.categories, id)
	return true, nil
}

func (r *memCategoryRepo) ListByName(_ context.Context) ([]models.Category, error) {
	var categories []models.Category
	for _, category := range r.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (r *memCategoryRepo) CountChildren(_ context.Context, parentID primitive.ObjectID) (int64, error) {
	var count int64
	for _, category := range r.categories {
		if category.ParentID != nil && *category.ParentID == parentID {
			count++
		}
	}
	return count, nil
}

type memQueueRepo struct {
	entries map[primitive.ObjectID]models.EmbeddingQueueEntry
}

func newMemQueueRepo() *memQueueRepo {
	return &memQueueRepo{entries: make(map[primitive.ObjectID]models.EmbeddingQueueEntry)}
}

func (r *memQueueRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.EmbeddingQueueEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (r *memQueueRepo) Overwrite(_ context.Context, entry *models.EmbeddingQueueEntry) error {
	r.entries[entry.ID] = *entry
	return nil
}

func (r *memQueueRepo) ClaimPending(_ context.Context, limit int, claimID string, at time.Time) ([]models.EmbeddingQueueEntry, error) {
	var pending []models.EmbeddingQueueEntry
	for _, entry := range r.entries {
		if entry.Status == models.EmbeddingPending {
			pending = append(pending, entry)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].UpdatedAt.Before(pending[j].UpdatedAt) })
	if len(pending) > limit {
		pending = pending[:limit]
	}
	for i, entry := range pending {
		entry.Status = models.EmbeddingProcessing
		entry.ClaimID = claimID
		entry.UpdatedAt = at
		r.entries[entry.ID] = entry
		pending[i] = entry
	}
	return pending, nil
}

func (r *memQueueRepo) Complete(_ context.Context, id primitive.ObjectID, status, errorMessage string, at time.Time) (bool, error) {
	entry, ok := r.entries[id]
	if !ok || entry.Status != models.EmbeddingProcessing {
		return false, nil
	}
	entry.Status = status
	entry.ErrorMessage = errorMessage
	entry.ClaimID = ""
	entry.UpdatedAt = at
	r.entries[id] = entry
	return true, nil
}

func (r *memQueueRepo) ReclaimStale(_ context.Context, cutoff time.Time, at time.Time) (int64, error) {
	var reclaimed int64
	for id, entry := range r.entries {
		if entry.Status == models.EmbeddingProcessing && entry.UpdatedAt.Before(cutoff) {
			entry.Status = models.EmbeddingPending
			entry.ClaimID = ""
			entry.UpdatedAt = at
			r.entries[id] = entry
			reclaimed++
		}
	}
	return reclaimed, nil
}

func (r *memQueueRepo) List(_ context.Context) ([]models.EmbeddingQueueEntry, error) {
	var entries []models.EmbeddingQueueEntry
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].UpdatedAt.After(entries[j].UpdatedAt) })
	return entries, nil
}

type fakeIdentity struct {
	deleted []string
	err     error
}

func (f *fakeIdentity) DeleteUser(_ context.Context, uid string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, uid)
	return nil
}

var errStoreDown = errors.New("store unavailable")

func mustOID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		t.Fatalf("bad object id %q: %v", hex, err)
	}
	return oid
}
