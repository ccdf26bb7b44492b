// repositories/repositories.go
package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wen-dev/wen_backend/models"
)

// The repository interfaces decouple the workflows from MongoDB so they can
// be exercised against in-memory fakes. Lookups return (nil, nil) when the
// document does not exist; callers translate that into their own NotFound.

// UserRepository persists directory users.
type UserRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// BusinessRepository persists directory listings.
type BusinessRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Business, error)
	Insert(ctx context.Context, business *models.Business) error
	Update(ctx context.Context, business *models.Business) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	List(ctx context.Context) ([]models.Business, error)
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Business, error)
	// SetApproval stamps the moderation fields in one atomic document update.
	SetApproval(ctx context.Context, id primitive.ObjectID, approvedBy primitive.ObjectID, at time.Time) (bool, error)
	// OrphanByOwner clears ownership and unpublishes every listing owned by
	// the given user as one all-or-nothing batch. Returns the number of
	// listings touched.
	OrphanByOwner(ctx context.Context, ownerID primitive.ObjectID, at time.Time) (int64, error)
}

// CategoryRepository persists the two-level taxonomy.
type CategoryRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	Insert(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	ListByName(ctx context.Context) ([]models.Category, error)
	CountChildren(ctx context.Context, parentID primitive.ObjectID) (int64, error)
}

// QueueRepository persists embedding queue entries. Claim atomicity lives
// here because mutual exclusion is the store's job, not the caller's.
type QueueRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.EmbeddingQueueEntry, error)
	// Overwrite replaces the entry for the given business id regardless of
	// its current state.
	Overwrite(ctx context.Context, entry *models.EmbeddingQueueEntry) error
	// ClaimPending atomically moves up to limit pending entries, oldest
	// first, to processing under the given claim id. Two concurrent callers
	// can never claim the same entry.
	ClaimPending(ctx context.Context, limit int, claimID string, at time.Time) ([]models.EmbeddingQueueEntry, error)
	// Complete moves a processing entry to success or error.
	Complete(ctx context.Context, id primitive.ObjectID, status, errorMessage string, at time.Time) (bool, error)
	// ReclaimStale reverts processing entries last touched before cutoff
	// back to pending. Returns the number of entries reclaimed.
	ReclaimStale(ctx context.Context, cutoff time.Time, at time.Time) (int64, error)
	List(ctx context.Context) ([]models.EmbeddingQueueEntry, error)
}
