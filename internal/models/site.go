package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Site struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name" validate:"required"`
	LocationID      primitive.ObjectID `json:"location_id" bson:"location_id" validate:"required"`
	TotalSpaces     int                `json:"total_spaces" bson:"total_spaces" validate:"required,min=1"`
	AvailableSpaces int                `json:"available_spaces" bson:"available_spaces" validate:"min=0"`
	Status          string             `json:"status" bson:"status" default:"active"`
	Description     string             `json:"description" bson:"description"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}
