package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TariffInterval is one duration bucket of a tariff. A stay whose billable
// duration falls in [FromMinute, ToMinute) owes the bucket's flat Amount.
// The amount is the total fee for reaching the bucket, not an increment on
// top of earlier buckets.
type TariffInterval struct {
	FromMinute int     `json:"from_minute" bson:"from_minute" validate:"min=0"`
	ToMinute   int     `json:"to_minute" bson:"to_minute" validate:"required,min=1"`
	Amount     float64 `json:"amount" bson:"amount" validate:"min=0"`
}

// Contains reports whether the given billable duration falls in this bucket.
func (i TariffInterval) Contains(durationMinutes int) bool {
	return durationMinutes >= i.FromMinute && durationMinutes < i.ToMinute
}

// Tariff prices stays for one (location, site, device, vehicle category)
// scope. Intervals are embedded, kept sorted ascending by FromMinute, and
// deleted with the tariff.
type Tariff struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name" validate:"required"`
	Status            string             `json:"status" bson:"status" default:"active"`
	GraceTime         int                `json:"grace_time" bson:"grace_time" validate:"min=0"` // minutes
	LocationID        primitive.ObjectID `json:"location_id" bson:"location_id" validate:"required"`
	SiteID            primitive.ObjectID `json:"site_id" bson:"site_id" validate:"required"`
	DeviceID          primitive.ObjectID `json:"device_id" bson:"device_id" validate:"required"`
	VehicleCategoryID primitive.ObjectID `json:"vehicle_category_id" bson:"vehicle_category_id" validate:"required"`
	Intervals         []TariffInterval   `json:"time_intervals" bson:"intervals" validate:"required,min=1,dive"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" bson:"updated_at"`
}

func (t Tariff) IsActive() bool {
	return t.Status == "active"
}

// TariffScope identifies which tariff and policy set applies to a stay.
type TariffScope struct {
	LocationID        primitive.ObjectID `json:"location_id"`
	SiteID            primitive.ObjectID `json:"site_id"`
	DeviceID          primitive.ObjectID `json:"device_id"`
	VehicleCategoryID primitive.ObjectID `json:"vehicle_category_id"`
}
