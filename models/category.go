// models/category.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a node in the two-level directory taxonomy. ParentID is nil for
// top-level categories; a subcategory can never itself be a parent.
type Category struct {
	ID        primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string              `json:"name" bson:"name"`
	ParentID  *primitive.ObjectID `json:"parentId" bson:"parentId"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// CategoryRequest is the create payload for a category
type CategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	ParentID string `json:"parentId"`
}
