package offer

import "errors"

var (
	ErrOfferNotFound = errors.New("offer.repository: offer not found")
	ErrBuildQuery    = errors.New("offer.repository: failed to build query")
	ErrExecQuery     = errors.New("offer.repository: failed to execute query")
	ErrScanRow       = errors.New("offer.repository: failed to scan row")
)
