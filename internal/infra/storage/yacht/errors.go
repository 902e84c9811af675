package yacht

import "errors"

var (
	// ErrYachtNotFound is returned when no yacht matches the query
	ErrYachtNotFound = errors.New("yacht.repository: yacht not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("yacht.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("yacht.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("yacht.repository: failed to scan row")
)
