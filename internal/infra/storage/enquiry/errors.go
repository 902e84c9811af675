package enquiry

import "errors"

var (
	ErrEnquiryNotFound = errors.New("enquiry.repository: enquiry not found")
	ErrBuildQuery      = errors.New("enquiry.repository: failed to build query")
	ErrExecQuery       = errors.New("enquiry.repository: failed to execute query")
	ErrScanRow         = errors.New("enquiry.repository: failed to scan row")
)
