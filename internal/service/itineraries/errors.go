package itineraries

import "errors"

var (
	// ErrItineraryNotFound is returned when the itinerary does not exist
	ErrItineraryNotFound = errors.New("itinerary not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal service failures
	ErrInternal = errors.New("service: internal error")
)
