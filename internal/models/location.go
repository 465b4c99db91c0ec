package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Location struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name" validate:"required"`
	Address         string             `json:"address" bson:"address" validate:"required"`
	City            string             `json:"city" bson:"city" validate:"required"`
	State           string             `json:"state" bson:"state" validate:"required"`
	Country         string             `json:"country" bson:"country" validate:"required"`
	PostalCode      string             `json:"postal_code" bson:"postal_code" validate:"required"`
	TotalSpaces     int                `json:"total_spaces" bson:"total_spaces" validate:"required,min=1"`
	AvailableSpaces int                `json:"available_spaces" bson:"available_spaces" validate:"min=0"`
	Status          string             `json:"status" bson:"status" default:"active"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

func (l Location) IsActive() bool {
	return l.Status == "active"
}
