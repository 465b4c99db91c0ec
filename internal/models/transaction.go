package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentStatus string
type PaymentMethod string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"

	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodCard PaymentMethod = "card"
)

// Transaction is a device-reported parking transaction. Entry-only
// transactions have a nil ExitTime; exit transactions carry the amount and
// payment details settled at the gate.
type Transaction struct {
	ID                primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	TransactionID     string              `json:"transaction_id" bson:"transaction_id" validate:"required"`
	DeviceCode        string              `json:"device_id" bson:"device_code" validate:"required"`
	VehicleNumber     string              `json:"vehicle_number" bson:"vehicle_number" validate:"required"`
	VehicleCategoryID primitive.ObjectID  `json:"vehicle_category_id" bson:"vehicle_category_id" validate:"required"`
	EntryTime         time.Time           `json:"entry_time" bson:"entry_time" validate:"required"`
	ExitTime          *time.Time          `json:"exit_time" bson:"exit_time"`
	AmountPaid        *float64            `json:"amount_paid" bson:"amount_paid"`
	FeeClass          string              `json:"fee_class,omitempty" bson:"fee_class,omitempty"`
	PaymentStatus     PaymentStatus       `json:"payment_status" bson:"payment_status" default:"pending"`
	PaymentMethod     PaymentMethod       `json:"payment_method,omitempty" bson:"payment_method,omitempty"`
	PaymentReference  string              `json:"payment_reference,omitempty" bson:"payment_reference,omitempty"`
	OperatorID        string              `json:"operator_id" bson:"operator_id" validate:"required"`
	CreatedAt         time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at" bson:"updated_at"`
}

func (t Transaction) IsFinalized() bool {
	return t.ExitTime != nil
}
