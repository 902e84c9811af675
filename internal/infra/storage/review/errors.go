package review

import "errors"

var (
	ErrReviewNotFound = errors.New("review.repository: review not found")
	ErrBuildQuery     = errors.New("review.repository: failed to build query")
	ErrExecQuery      = errors.New("review.repository: failed to execute query")
	ErrScanRow        = errors.New("review.repository: failed to scan row")
)
