package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_Transitions(t *testing.T) {
	allowed := map[BookingStatus][]BookingStatus{
		StatusPending:  {StatusAccepted, StatusRejected, StatusCanceled},
		StatusAccepted: {StatusCanceled, StatusRejected},
		StatusRejected: {},
		StatusCanceled: {},
	}
	all := []BookingStatus{StatusPending, StatusAccepted, StatusRejected, StatusCanceled}

	for from, targets := range allowed {
		ok := map[BookingStatus]bool{}
		for _, to := range targets {
			ok[to] = true
		}
		for _, to := range all {
			got, err := from.Transition(to)
			if ok[to] {
				assert.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, got)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", from, to)
				assert.Equal(t, from, got)
			}
		}
	}
}

func TestBookingStatus_TransitionToUnknownStatus(t *testing.T) {
	_, err := StatusPending.Transition(BookingStatus("archived"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusAccepted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCanceled.IsTerminal())
}

func TestResolveConflictScope(t *testing.T) {
	assert.Equal(t, ScopeUnit, ResolveConflictScope(nil))
	assert.Equal(t, ScopeUnit, ResolveConflictScope(&Organization{}))
	assert.Equal(t, ScopeAsset, ResolveConflictScope(&Organization{ExclusiveAcrossAsset: true}))
	assert.Equal(t, ScopeOrganization, ResolveConflictScope(&Organization{ExclusiveAcrossOrganization: true}))

	// The organization-wide flag wins when both are set.
	assert.Equal(t, ScopeOrganization, ResolveConflictScope(&Organization{
		ExclusiveAcrossAsset:        true,
		ExclusiveAcrossOrganization: true,
	}))
}
