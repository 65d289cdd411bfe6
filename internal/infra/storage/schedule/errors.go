package schedule

import "errors"

var (
	// ErrWorkingHoursNotFound is returned when no weekly record exists for
	// the asset and weekday
	ErrWorkingHoursNotFound = errors.New("schedule.repository: working hours not found")

	// ErrBlackoutNotFound is returned when a blackout period does not exist
	ErrBlackoutNotFound = errors.New("schedule.repository: blackout period not found")

	// ErrBuildQuery is returned when building a SQL statement fails
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL statement fails
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
