package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/avelis/ARB-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusAccepted BookingStatus = "accepted"
	StatusRejected BookingStatus = "rejected"
	StatusCanceled BookingStatus = "canceled"
)

// Valid reports whether the status is one of the known values.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether the status ends the booking's lifecycle.
// Terminal bookings never occupy slots.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusCanceled
}

// Booking represents a reservation of a bookable unit for a time range on a
// date. Start and end are times of day; a booking never spans midnight.
type Booking struct {
	ID             int64
	UserID         int64
	BookableUnitID int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         BookingStatus

	// Token is the opaque credential embedded in cancel/approve links.
	Token uuid.UUID

	// ParticipantIDs are additional users attached to the booking.
	ParticipantIDs []int64

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the booking occupies its slot for conflict
// purposes.
func (b *Booking) IsActive() bool {
	return !b.Status.IsTerminal()
}

// CanBeCancelled reports whether the booking can still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status.CanTransitionTo(StatusCanceled)
}

// HasParticipant reports whether the user is attached to the booking.
func (b *Booking) HasParticipant(userID int64) bool {
	for _, id := range b.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ConflictScope selects which bookings count as occupying a slot when
// checking for overlap.
type ConflictScope int

const (
	// ScopeUnit considers only bookings on the one bookable unit.
	ScopeUnit ConflictScope = iota
	// ScopeAsset considers bookings on every unit of the asset.
	ScopeAsset
	// ScopeOrganization considers bookings on every asset of the organization.
	ScopeOrganization
)

// ResolveConflictScope maps the organization's exclusivity flags to the
// widest scope they request. Both flags false means single-unit scope.
func ResolveConflictScope(org *Organization) ConflictScope {
	switch {
	case org != nil && org.ExclusiveAcrossOrganization:
		return ScopeOrganization
	case org != nil && org.ExclusiveAcrossAsset:
		return ScopeAsset
	default:
		return ScopeUnit
	}
}

// OverlapFilter describes the occupied-booking query run by the conflict
// resolver and the admission engine.
type OverlapFilter struct {
	Scope ConflictScope

	// Target identifiers. AssetID and OrganizationID widen the query when
	// the scope requires it.
	BookableUnitID int64
	AssetID        int64
	OrganizationID int64

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	// ExcludeBookingID removes the booking's own row on the edit path.
	ExcludeBookingID *int64
}

// AssetBookingsFilter filters the admin listing of an asset's bookings.
type AssetBookingsFilter struct {
	AssetID         int64
	BookableUnitID  *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *BookingStatus
	IncludeInactive bool
}
