package offers

import "errors"

var (
	// ErrOfferNotFound is returned when the offer does not exist
	ErrOfferNotFound = errors.New("offer not found")

	// ErrYachtNotFound is returned when the offer points at a missing yacht
	ErrYachtNotFound = errors.New("yacht not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal service failures
	ErrInternal = errors.New("service: internal error")
)
