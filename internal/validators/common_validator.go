package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("device_code", validateDeviceCode)
	validate.RegisterValidation("vehicle_number", validateVehicleNumber)
	validate.RegisterValidation("payment_method", validatePaymentMethod)
	validate.RegisterValidation("record_status", validateRecordStatus)
}

// Common validation errors
var (
	ErrInvalidObjectID      = errors.New("invalid object ID format")
	ErrInvalidDeviceCode    = errors.New("invalid device code format")
	ErrInvalidVehicleNumber = errors.New("invalid vehicle number format")
	ErrInvalidStatus        = errors.New("status must be active or inactive")
)

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// FieldMap flattens the errors into a field -> message map for API
// responses.
func (v ValidationErrors) FieldMap() map[string]string {
	fields := make(map[string]string, len(v))
	for _, err := range v {
		fields[err.Field] = err.Message
	}
	return fields
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationError := ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			}
			validationErrors = append(validationErrors, validationError)
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "object_id":
		return "Invalid ID format"
	case "device_code":
		return "Device code must be 2-8 alphanumeric characters"
	case "vehicle_number":
		return "Invalid vehicle number format"
	case "payment_method":
		return "Payment method must be cash, upi or card"
	case "record_status":
		return "Status must be active or inactive"
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

// Custom validation functions
func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let required tag handle empty values
	}
	_, err := primitive.ObjectIDFromHex(value)
	return err == nil
}

var deviceCodeRegex = regexp.MustCompile(`^[A-Za-z0-9]{2,8}$`)

func validateDeviceCode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return deviceCodeRegex.MatchString(value)
}

var vehicleNumberRegex = regexp.MustCompile(`^[A-Z0-9 -]{4,20}$`)

func validateVehicleNumber(fl validator.FieldLevel) bool {
	value := strings.ToUpper(fl.Field().String())
	if value == "" {
		return true
	}
	return vehicleNumberRegex.MatchString(value)
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return value == "cash" || value == "upi" || value == "card"
}

func validateRecordStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return value == "active" || value == "inactive"
}
