package get_available_slots

import "fmt"

// validateRequest checks the request identifiers and date.
func validateRequest(req *Request) error {
	if req.BookableUnitID <= 0 {
		return fmt.Errorf("%w: bookableUnitID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
