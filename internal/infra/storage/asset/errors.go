package asset

import "errors"

var (
	// ErrOrganizationNotFound is returned when an organization does not exist
	ErrOrganizationNotFound = errors.New("asset.repository: organization not found")

	// ErrAssetNotFound is returned when an asset does not exist
	ErrAssetNotFound = errors.New("asset.repository: asset not found")

	// ErrUnitNotFound is returned when a bookable unit does not exist
	ErrUnitNotFound = errors.New("asset.repository: bookable unit not found")

	// ErrBuildQuery is returned when building a SQL statement fails
	ErrBuildQuery = errors.New("asset.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL statement fails
	ErrExecQuery = errors.New("asset.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("asset.repository: failed to scan row")
)
