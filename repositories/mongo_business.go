// repositories/mongo_business.go
package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wen-dev/wen_backend/models"
)

type mongoBusinessRepository struct {
	collection *mongo.Collection
}

// NewBusinessRepository returns a MongoDB-backed BusinessRepository.
func NewBusinessRepository(db *mongo.Database) BusinessRepository {
	return &mongoBusinessRepository{collection: db.Collection("businesses")}
}

func (r *mongoBusinessRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Business, error) {
	var business models.Business
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&business)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *mongoBusinessRepository) Insert(ctx context.Context, business *models.Business) error {
	result, err := r.collection.InsertOne(ctx, business)
	if err != nil {
		return err
	}
	business.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoBusinessRepository) Update(ctx context.Context, business *models.Business) (bool, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": business.ID}, bson.M{
		"$set": bson.M{
			"name":           business.Name,
			"description":    business.Description,
			"categoryId":     business.CategoryID,
			"ownerId":        business.OwnerID,
			"location":       business.Location,
			"geohash":        business.Geohash,
			"searchKeywords": business.SearchKeywords,
			"plan":           business.Plan,
			"updatedAt":      business.UpdatedAt,
		},
	})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *mongoBusinessRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *mongoBusinessRepository) List(ctx context.Context) ([]models.Business, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var businesses []models.Business
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, err
	}
	return businesses, nil
}

func (r *mongoBusinessRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Business, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var businesses []models.Business
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, err
	}
	return businesses, nil
}

func (r *mongoBusinessRepository) SetApproval(ctx context.Context, id primitive.ObjectID, approvedBy primitive.ObjectID, at time.Time) (bool, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"approved":   true,
			"approvedAt": at,
			"approvedBy": approvedBy,
			"updatedAt":  at,
		},
	})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *mongoBusinessRepository) OrphanByOwner(ctx context.Context, ownerID primitive.ObjectID, at time.Time) (int64, error) {
	// Single UpdateMany so the cascade commits as one unit.
	result, err := r.collection.UpdateMany(ctx, bson.M{"ownerId": ownerID}, bson.M{
		"$set": bson.M{
			"ownerId":   nil,
			"approved":  false,
			"updatedAt": at,
		},
	})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
