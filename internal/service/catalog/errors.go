package catalog

import "errors"

var (
	// ErrYachtNotFound is returned when the yacht does not exist
	ErrYachtNotFound = errors.New("yacht not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal service failures
	ErrInternal = errors.New("service: internal error")
)
