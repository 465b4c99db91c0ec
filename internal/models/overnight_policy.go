package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OvernightPolicy is a flat override fee for a vehicle category applied when
// a stay crosses the overnight threshold. Absence of a policy for a category
// is normal: such stays fall through to interval pricing.
type OvernightPolicy struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleCategoryID primitive.ObjectID `json:"vehicle_category_id" bson:"vehicle_category_id" validate:"required"`
	Amount            float64            `json:"amount" bson:"amount" validate:"min=0"`
	Status            string             `json:"status" bson:"status" default:"active"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" bson:"updated_at"`
}

func (p OvernightPolicy) IsActive() bool {
	return p.Status == "active"
}
