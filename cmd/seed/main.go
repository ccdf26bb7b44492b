// cmd/seed seeds the database with a starter category tree, a few users
// and two sample listings. Derived listing fields (geohash, searchKeywords)
// go through the same code path the API uses.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/wen-dev/wen_backend/config"
	"github.com/wen-dev/wen_backend/models"
	"github.com/wen-dev/wen_backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	client := config.ConnectDB()
	db := client.Database(config.DBName())
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Printf("Seeding database %s...", config.DBName())

	categoryIDs := seedCategories(ctx, db)
	ownerID := seedUsers(ctx, db)
	seedBusinesses(ctx, db, categoryIDs, ownerID)

	log.Println("Seed complete")
}

func seedCategories(ctx context.Context, db *mongo.Database) map[string]primitive.ObjectID {
	now := time.Now()
	ids := map[string]primitive.ObjectID{
		"restaurants": primitive.NewObjectID(),
		"retail":      primitive.NewObjectID(),
		"beauty":      primitive.NewObjectID(),
		"services":    primitive.NewObjectID(),
		"cafes":       primitive.NewObjectID(),
	}
	restaurants := ids["restaurants"]

	categories := []models.Category{
		{ID: ids["restaurants"], Name: "Restaurants", CreatedAt: now, UpdatedAt: now},
		{ID: ids["cafes"], Name: "Cafés", ParentID: &restaurants, CreatedAt: now, UpdatedAt: now},
		{ID: ids["retail"], Name: "Retail & Shopping", CreatedAt: now, UpdatedAt: now},
		{ID: ids["beauty"], Name: "Beauty & Wellness", CreatedAt: now, UpdatedAt: now},
		{ID: ids["services"], Name: "Professional Services", CreatedAt: now, UpdatedAt: now},
	}
	for _, category := range categories {
		upsert(ctx, db.Collection("categories"), category.ID, category)
	}
	return ids
}

func seedUsers(ctx context.Context, db *mongo.Database) primitive.ObjectID {
	now := time.Now()
	ownerID := primitive.NewObjectID()

	users := []models.User{
		{
			ID:        primitive.NewObjectID(),
			Name:      "Wen Admin",
			Email:     "admin@wen.dev",
			Password:  hashPassword("ChangeMe123!"),
			Role:      models.RoleAdmin,
			Plan:      models.PlanPremium,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        ownerID,
			Name:      "Layla Business Owner",
			Email:     "layla@almadina.ae",
			Password:  hashPassword("ChangeMe123!"),
			Role:      models.RoleOwner,
			Plan:      models.PlanStandard,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        primitive.NewObjectID(),
			Name:      "Omar Explorer",
			Email:     "omar@wen.dev",
			Password:  hashPassword("ChangeMe123!"),
			Role:      models.RoleUser,
			Plan:      models.PlanFree,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, user := range users {
		upsert(ctx, db.Collection("users"), user.ID, user)
	}
	return ownerID
}

func seedBusinesses(ctx context.Context, db *mongo.Database, categoryIDs map[string]primitive.ObjectID, ownerID primitive.ObjectID) {
	now := time.Now()

	type listing struct {
		name        string
		description string
		category    string
		location    models.Location
		plan        string
		approved    bool
	}
	listings := []listing{
		{
			name:        "Al Madina Bistro",
			description: "Modern Emirati fusion cuisine with a rooftop terrace overlooking the creek.",
			category:    "restaurants",
			location:    models.Location{Lat: 25.2048, Lng: 55.2708},
			plan:        models.PlanStandard,
			approved:    true,
		},
		{
			name:        "Palm Beauty Lounge",
			description: "Luxury beauty lounge specialising in organic treatments and spa experiences.",
			category:    "beauty",
			location:    models.Location{Lat: 25.1291, Lng: 55.1170},
			plan:        models.PlanFree,
			approved:    false,
		},
	}

	categoryNames := map[string]string{
		"restaurants": "Restaurants",
		"beauty":      "Beauty & Wellness",
	}

	for _, l := range listings {
		geohash, err := utils.EncodeGeohash(l.location.Lat, l.location.Lng, utils.DefaultGeohashPrecision)
		if err != nil {
			log.Fatalf("Failed to encode geohash for %s: %v", l.name, err)
		}
		owner := ownerID
		business := models.Business{
			ID:             primitive.NewObjectID(),
			Name:           l.name,
			Description:    l.description,
			CategoryID:     categoryIDs[l.category],
			OwnerID:        &owner,
			Location:       l.location,
			Geohash:        geohash,
			SearchKeywords: utils.BuildSearchKeywords(l.name, l.description, categoryNames[l.category]),
			Approved:       l.approved,
			Plan:           l.plan,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		upsert(ctx, db.Collection("businesses"), business.ID, business)
	}
}

func upsert(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, doc interface{}) {
	opts := options.Replace().SetUpsert(true)
	if _, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts); err != nil {
		log.Fatalf("Failed to seed %s: %v", coll.Name(), err)
	}
}

func hashPassword(plain string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}
	return string(hashed)
}
