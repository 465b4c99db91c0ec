package services

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses do not leak which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAlreadyExited means the parking session was finalized earlier and
	// a second exit was attempted for it.
	ErrAlreadyExited = errors.New("vehicle already exited")

	// ErrInactiveRecord means the referenced record exists but is disabled.
	ErrInactiveRecord = errors.New("record is not active")

	// ErrInvalidQRCode means the QR code presented at exit does not match the
	// signature issued for the session at entry.
	ErrInvalidQRCode = errors.New("invalid qr code")
)
