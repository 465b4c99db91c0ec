package interfaces

import "errors"

var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate means a unique key (device code, transaction ID, user
	// email) already exists.
	ErrDuplicate = errors.New("record already exists")
)
