package notifier

import "errors"

var (
	// ErrInternal is returned when building or executing the request fails
	ErrInternal = errors.New("notifier client: internal error")

	// ErrInvalidResponse is returned when the notifier answers with an
	// unexpected status
	ErrInvalidResponse = errors.New("notifier client: invalid response")
)
