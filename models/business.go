// models/business.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location model
type Location struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Business is a directory listing. Geohash and SearchKeywords are derived from
// Name, Description and the resolved category name on every create/update and
// must never be written independently of those fields.
type Business struct {
	ID             primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string              `json:"name" bson:"name"`
	Description    string              `json:"description" bson:"description"`
	CategoryID     primitive.ObjectID  `json:"categoryId" bson:"categoryId"`
	OwnerID        *primitive.ObjectID `json:"ownerId" bson:"ownerId"`
	Location       Location            `json:"location" bson:"location"`
	Geohash        string              `json:"geohash" bson:"geohash"`
	SearchKeywords []string            `json:"searchKeywords" bson:"searchKeywords"`
	Approved       bool                `json:"approved" bson:"approved"`
	ApprovedAt     *time.Time          `json:"approvedAt,omitempty" bson:"approvedAt,omitempty"`
	ApprovedBy     *primitive.ObjectID `json:"approvedBy,omitempty" bson:"approvedBy,omitempty"`
	Plan           string              `json:"plan" bson:"plan"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// BusinessRequest is the create/update payload for a listing
type BusinessRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	CategoryID  string   `json:"categoryId" validate:"required"`
	OwnerID     string   `json:"ownerId"`
	Location    Location `json:"location"`
	Plan        string   `json:"plan" validate:"omitempty,oneof=free standard premium"`
}
