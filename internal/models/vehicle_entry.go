package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleEntry is a parking session keyed by transaction ID. It is created
// at the gate when the vehicle enters (ExitTime nil) and finalized exactly
// once at exit, when the fee is computed and stored. Finalized entries are
// immutable.
type VehicleEntry struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleNumber    string             `json:"vehicle_number" bson:"vehicle_number" validate:"required"`
	VehicleType      string             `json:"vehicle_type" bson:"vehicle_type" validate:"required"`
	TransactionID    string             `json:"transaction_id" bson:"transaction_id" validate:"required"`
	EntryTime        time.Time          `json:"entry_time" bson:"entry_time" validate:"required"`
	ExitTime         *time.Time         `json:"exit_time" bson:"exit_time"`
	QRCode           string             `json:"qr_code,omitempty" bson:"qr_code,omitempty"`
	AmountPaid       *float64           `json:"amount_paid" bson:"amount_paid"`
	FeeClass         string             `json:"fee_class,omitempty" bson:"fee_class,omitempty"`
	PaymentStatus    PaymentStatus      `json:"payment_status" bson:"payment_status" default:"pending"`
	PaymentMethod    PaymentMethod      `json:"payment_method,omitempty" bson:"payment_method,omitempty"`
	PaymentReference string             `json:"payment_reference,omitempty" bson:"payment_reference,omitempty"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at" bson:"updated_at"`
}

func (e VehicleEntry) HasExited() bool {
	return e.ExitTime != nil
}
