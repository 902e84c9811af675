package check_availability

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate is returned when the requested date is in the past
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrBookingsRetrieval is returned when the day's bookings cannot be loaded
	ErrBookingsRetrieval = errors.New("failed to retrieve bookings")
)
