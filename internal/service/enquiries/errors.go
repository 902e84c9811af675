package enquiries

import "errors"

var (
	// ErrEnquiryNotFound is returned when the enquiry does not exist
	ErrEnquiryNotFound = errors.New("enquiry not found")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal service failures
	ErrInternal = errors.New("service: internal error")
)
