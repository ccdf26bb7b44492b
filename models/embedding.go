// models/embedding.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Embedding queue entry statuses.
const (
	EmbeddingPending    = "pending"
	EmbeddingProcessing = "processing"
	EmbeddingSuccess    = "success"
	EmbeddingError      = "error"
)

// EmbeddingQueueEntry tracks the indexing state of one business document. The
// entry is keyed by the source business id and is overwritten, not merged, on
// every write event for that business.
type EmbeddingQueueEntry struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	DocPath      string             `json:"docPath" bson:"docPath"`
	Status       string             `json:"status" bson:"status"`
	ErrorMessage string             `json:"errorMessage,omitempty" bson:"errorMessage,omitempty"`
	ClaimID      string             `json:"claimId,omitempty" bson:"claimId,omitempty"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}
