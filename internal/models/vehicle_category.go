package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleCategory struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name" validate:"required"`
	Description   string             `json:"description" bson:"description"`
	IsMonthlyPass bool               `json:"is_monthly_pass" bson:"is_monthly_pass" default:"false"`
	Amount        float64            `json:"amount" bson:"amount" validate:"min=0"`
	LocationID    primitive.ObjectID `json:"location_id" bson:"location_id" validate:"required"`
	SiteID        primitive.ObjectID `json:"site_id" bson:"site_id" validate:"required"`
	DeviceID      primitive.ObjectID `json:"device_id" bson:"device_id" validate:"required"`
	Status        string             `json:"status" bson:"status" default:"active"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

func (v VehicleCategory) IsActive() bool {
	return v.Status == "active"
}
