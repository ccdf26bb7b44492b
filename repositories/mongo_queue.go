// repositories/mongo_queue.go
package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wen-dev/wen_backend/models"
)

type mongoQueueRepository struct {
	collection *mongo.Collection
	client     *mongo.Client
}

// NewQueueRepository returns a MongoDB-backed QueueRepository.
func NewQueueRepository(db *mongo.Database) QueueRepository {
	return &mongoQueueRepository{
		collection: db.Collection("ai_embedding_queue"),
		client:     db.Client(),
	}
}

func (r *mongoQueueRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.EmbeddingQueueEntry, error) {
	var entry models.EmbeddingQueueEntry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *mongoQueueRepository) Overwrite(ctx context.Context, entry *models.EmbeddingQueueEntry) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry, opts)
	return err
}

func (r *mongoQueueRepository) ClaimPending(ctx context.Context, limit int, claimID string, at time.Time) ([]models.EmbeddingQueueEntry, error) {
	session, err := r.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	// The select-then-update pair must commit as one unit so two concurrent
	// schedule firings cannot double-claim the same entries.
	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		findOpts := options.Find().
			SetSort(bson.D{{Key: "updatedAt", Value: 1}}).
			SetLimit(int64(limit))
		cursor, err := r.collection.Find(sc, bson.M{"status": models.EmbeddingPending}, findOpts)
		if err != nil {
			return nil, err
		}

		var entries []models.EmbeddingQueueEntry
		if err := cursor.All(sc, &entries); err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			return entries, nil
		}

		ids := make([]primitive.ObjectID, 0, len(entries))
		for _, entry := range entries {
			ids = append(ids, entry.ID)
		}

		updateResult, err := r.collection.UpdateMany(sc,
			bson.M{"_id": bson.M{"$in": ids}, "status": models.EmbeddingPending},
			bson.M{"$set": bson.M{
				"status":    models.EmbeddingProcessing,
				"claimId":   claimID,
				"updatedAt": at,
			}},
		)
		if err != nil {
			return nil, err
		}
		if updateResult.ModifiedCount != int64(len(ids)) {
			return nil, fmt.Errorf("claimed %d of %d selected entries", updateResult.ModifiedCount, len(ids))
		}

		for i := range entries {
			entries[i].Status = models.EmbeddingProcessing
			entries[i].ClaimID = claimID
			entries[i].UpdatedAt = at
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]models.EmbeddingQueueEntry), nil
}

func (r *mongoQueueRepository) Complete(ctx context.Context, id primitive.ObjectID, status, errorMessage string, at time.Time) (bool, error) {
	set := bson.M{
		"status":    status,
		"updatedAt": at,
	}
	unset := bson.M{"claimId": ""}
	if errorMessage != "" {
		set["errorMessage"] = errorMessage
	} else {
		unset["errorMessage"] = ""
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.EmbeddingProcessing},
		bson.M{"$set": set, "$unset": unset},
	)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

func (r *mongoQueueRepository) ReclaimStale(ctx context.Context, cutoff time.Time, at time.Time) (int64, error) {
	result, err := r.collection.UpdateMany(ctx,
		bson.M{
			"status":    models.EmbeddingProcessing,
			"updatedAt": bson.M{"$lt": cutoff},
		},
		bson.M{
			"$set":   bson.M{"status": models.EmbeddingPending, "updatedAt": at},
			"$unset": bson.M{"claimId": ""},
		},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *mongoQueueRepository) List(ctx context.Context) ([]models.EmbeddingQueueEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.EmbeddingQueueEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
