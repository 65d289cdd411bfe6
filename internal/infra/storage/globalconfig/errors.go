package globalconfig

import "errors"

var (
	// ErrConfigNotFound is returned when the singleton row has not been
	// seeded yet
	ErrConfigNotFound = errors.New("globalconfig.repository: config not found")

	// ErrBuildQuery is returned when building a SQL statement fails
	ErrBuildQuery = errors.New("globalconfig.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL statement fails
	ErrExecQuery = errors.New("globalconfig.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("globalconfig.repository: failed to scan row")
)
