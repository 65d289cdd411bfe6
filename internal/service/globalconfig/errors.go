package globalconfig

import "errors"

var (
	// ErrInvalidInput is returned for malformed configuration values
	ErrInvalidInput = errors.New("globalconfig.service: invalid input data")

	// ErrInternal is returned for repository failures
	ErrInternal = errors.New("globalconfig.service: internal error")
)
