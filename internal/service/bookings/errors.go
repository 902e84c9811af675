package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus is returned for an unknown booking status
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition is returned when the status change breaks the lifecycle
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrNotEditable is returned when a cancelled or completed booking is edited
	ErrNotEditable = errors.New("booking can no longer be edited")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal service failures
	ErrInternal = errors.New("service: internal error")
)
