package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for a status change the state machine
// does not allow.
var ErrInvalidTransition = errors.New("domain: invalid status transition")

// statusTransitions is the full transition table:
// pending may become accepted, rejected or canceled; accepted may still be
// canceled or rejected; rejected and canceled are terminal.
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:  {StatusAccepted, StatusRejected, StatusCanceled},
	StatusAccepted: {StatusCanceled, StatusRejected},
	StatusRejected: {},
	StatusCanceled: {},
}

// CanTransitionTo reports whether the state machine allows moving from s
// to target.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Transition validates a status change and returns the new status.
func (s BookingStatus) Transition(target BookingStatus) (BookingStatus, error) {
	if !target.Valid() {
		return s, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, target)
	}
	if !s.CanTransitionTo(target) {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}
	return target, nil
}
