package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeviceType string

const (
	DeviceTypeEntryPaid DeviceType = "entry_paid"
	DeviceTypeExitPaid  DeviceType = "exit_paid"
)

type Device struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DeviceCode    string             `json:"device_code" bson:"device_code" validate:"required,device_code"`
	SiteID        primitive.ObjectID `json:"site_id" bson:"site_id" validate:"required"`
	DeviceType    DeviceType         `json:"device_type" bson:"device_type" validate:"required"`
	UPIID         string             `json:"upi_id" bson:"upi_id" validate:"required"`
	Status        string             `json:"status" bson:"status" default:"active"`
	PrinterHeader string             `json:"printer_header" bson:"printer_header"`
	PrinterFooter string             `json:"printer_footer" bson:"printer_footer"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// DeviceConfig is the bootstrap payload a gate device pulls on startup. It
// bundles everything the device needs to price and print locally: its own
// record, the owning site and location, vehicle categories, tariffs with
// intervals, and monthly pass definitions.
type DeviceConfig struct {
	Device            *Device            `json:"device"`
	Site              *Site              `json:"site"`
	Location          *Location          `json:"location"`
	VehicleCategories []*VehicleCategory `json:"vehicle_categories"`
	Tariffs           []*Tariff          `json:"tariffs"`
	MonthlyPasses     []*MonthlyPass     `json:"monthly_passes"`
}

// MonthlyPass is the device-facing projection of a monthly-pass vehicle
// category.
type MonthlyPass struct {
	ID                primitive.ObjectID `json:"id"`
	Name              string             `json:"name"`
	VehicleCategoryID primitive.ObjectID `json:"vehicle_category_id"`
	Amount            float64            `json:"amount"`
	ValidityDays      int                `json:"validity_days"`
	Status            string             `json:"status"`
}
