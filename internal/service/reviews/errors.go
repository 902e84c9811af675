package reviews

import "errors"

var (
	// ErrReviewNotFound is returned when the review does not exist
	ErrReviewNotFound = errors.New("review not found")

	// ErrYachtNotFound is returned when the review points at a missing yacht
	ErrYachtNotFound = errors.New("yacht not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal service failures
	ErrInternal = errors.New("service: internal error")
)
