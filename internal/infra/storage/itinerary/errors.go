package itinerary

import "errors"

var (
	ErrItineraryNotFound = errors.New("itinerary.repository: itinerary not found")
	ErrBuildQuery        = errors.New("itinerary.repository: failed to build query")
	ErrExecQuery         = errors.New("itinerary.repository: failed to execute query")
	ErrScanRow           = errors.New("itinerary.repository: failed to scan row")
)
