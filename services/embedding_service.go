// services/embedding_service.go
package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wen-dev/wen_backend/models"
	"github.com/wen-dev/wen_backend/repositories"
)

// DefaultClaimLimit is how many pending entries one scheduled sweep claims.
const DefaultClaimLimit = 10

// DefaultStaleClaimAge is how long an entry may sit in processing before the
// reclaim sweep hands it back to pending.
const DefaultStaleClaimAge = 2 * time.Hour

// DefaultSyncInterval is how often the scheduled sweep claims a batch.
const DefaultSyncInterval = time.Hour

// EmbeddingService manages the per-business indexing queue. Entries track a
// business document's write history: every write re-queues the business for
// indexing, discarding whatever state the previous cycle reached.
type EmbeddingService struct {
	queue repositories.QueueRepository
}

func NewEmbeddingService(queue repositories.QueueRepository) *EmbeddingService {
	return &EmbeddingService{queue: queue}
}

// Enqueue is the dispatcher callback for business writes. It overwrites the
// entry for the business to pending on every create and update, so a change
// always triggers a fresh indexing cycle even if one is mid-flight. Delete
// events are ignored; the entry stays behind (see DESIGN.md).
func (s *EmbeddingService) Enqueue(ctx context.Context, before, after *models.Business) error {
	if after == nil {
		return nil
	}
	entry := &models.EmbeddingQueueEntry{
		ID:        after.ID,
		DocPath:   "businesses/" + after.ID.Hex(),
		Status:    models.EmbeddingPending,
		UpdatedAt: time.Now(),
	}
	return s.queue.Overwrite(ctx, entry)
}

// ClaimBatch atomically claims up to limit pending entries, oldest first,
// marking them processing under a fresh claim id. Returns the claimed set,
// empty when nothing is pending.
func (s *EmbeddingService) ClaimBatch(ctx context.Context, limit int) ([]models.EmbeddingQueueEntry, error) {
	if limit <= 0 {
		limit = DefaultClaimLimit
	}

	claimID := uuid.NewString()
	entries, err := s.queue.ClaimPending(ctx, limit, claimID, time.Now())
	if err != nil {
		return nil, ErrInternal
	}
	if len(entries) == 0 {
		log.Println("embedding queue: no pending entries to process")
		return nil, nil
	}

	log.Printf("embedding queue: claimed %d entries under claim %s", len(entries), claimID)
	return entries, nil
}

// Complete records the outcome of an indexing cycle for a claimed entry,
// moving it from processing to success, or to error with the message kept
// for inspection.
func (s *EmbeddingService) Complete(ctx context.Context, businessID primitive.ObjectID, jobErr error) error {
	status := models.EmbeddingSuccess
	message := ""
	if jobErr != nil {
		status = models.EmbeddingError
		message = jobErr.Error()
	}

	moved, err := s.queue.Complete(ctx, businessID, status, message, time.Now())
	if err != nil {
		return ErrInternal
	}
	if !moved {
		// Either the entry is gone or a newer write already reset it to
		// pending; both mean this cycle's outcome no longer applies.
		return ErrNotFound
	}
	return nil
}

// ReclaimStale reverts entries stuck in processing longer than maxAge back to
// pending so a crashed indexing run cannot strand them forever.
func (s *EmbeddingService) ReclaimStale(ctx context.Context, maxAge time.Duration) (int64, error) {
	if maxAge <= 0 {
		maxAge = DefaultStaleClaimAge
	}

	now := time.Now()
	reclaimed, err := s.queue.ReclaimStale(ctx, now.Add(-maxAge), now)
	if err != nil {
		return 0, ErrInternal
	}
	if reclaimed > 0 {
		log.Printf("embedding queue: reclaimed %d stale processing entries", reclaimed)
	}
	return reclaimed, nil
}

// List returns every queue entry, most recently touched first.
func (s *EmbeddingService) List(ctx context.Context) ([]models.EmbeddingQueueEntry, error) {
	entries, err := s.queue.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return entries, nil
}
