package utils

import "time"

// Application Constants
const (
	AppName    = "ParkWise"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency = "INR"
	DefaultTimeZone = "UTC"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	JWTAccessTokenTTL  = 24 * time.Hour
	JWTRefreshTokenTTL = 7 * 24 * time.Hour
	PasswordMinLength  = 8
	PasswordMaxLength  = 128

	// Tariff Constants
	DefaultGraceTimeMinutes = 15
	MaxTariffIntervals      = 48
	MaxIntervalMinutes      = 30 * 24 * 60
	TariffCacheTTL          = 5 * time.Minute
	DeviceConfigCacheTTL    = 5 * time.Minute

	// Device Constants
	DeviceCodeMinLength = 2
	DeviceCodeMaxLength = 8
	DeviceTypeEntryPaid = "entry_paid"
	DeviceTypeExitPaid  = "exit_paid"

	// Status values
	StatusActive   = "active"
	StatusInactive = "inactive"

	// Payment Constants
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
	PaymentMethodCash    = "cash"
	PaymentMethodUPI     = "upi"
	PaymentMethodCard    = "card"

	// Rate Limiting
	DefaultRateLimit = 100
	LoginRateLimit   = 5
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusFailed  = "failed"
)

// Error Messages
const (
	ErrInvalidCredentials = "invalid credentials"
	ErrUserNotFound       = "user not found"
	ErrUserExists         = "user already exists"
	ErrInvalidToken       = "invalid token"
	ErrTokenExpired       = "token expired"
	ErrInvalidInput       = "invalid input"
	ErrInternalServer     = "internal server error"
	ErrUnauthorized       = "unauthorized"
	ErrForbidden          = "forbidden"
	ErrNotFound           = "not found"
	ErrConflict           = "conflict"
	ErrValidationFailed   = "validation failed"
)
