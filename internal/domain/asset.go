package domain

import "time"

// Organization owns assets and carries the booking exclusivity flags.
type Organization struct {
	ID   int64
	Name string
	Slug string

	// ExclusiveAcrossOrganization means the whole organization accepts at
	// most one booking per timeslot.
	ExclusiveAcrossOrganization bool

	// ExclusiveAcrossAsset means each asset accepts at most one booking
	// per timeslot, regardless of unit.
	ExclusiveAcrossAsset bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Asset is an organization-owned bookable category ("Meeting Rooms").
// The nil override fields fall back to the global configuration.
type Asset struct {
	ID             int64
	OrganizationID int64
	Name           string
	Slug           string
	Description    *string

	// DefaultBookingStatus is assigned to new bookings that do not set a
	// status explicitly.
	DefaultBookingStatus BookingStatus

	SlotDurationMinutes *int
	BufferTimeMinutes   *int

	// MaxDaysAhead limits how far in the future bookings are accepted.
	// nil or <= 0 means unrestricted.
	MaxDaysAhead *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UnitKind distinguishes concrete bookable units from the auto-assign
// placeholder.
type UnitKind string

const (
	// UnitConcrete is a real unit (a specific room, a specific machine).
	UnitConcrete UnitKind = "concrete"

	// UnitAutoAssign is the "book some unit, assigned later by an admin"
	// placeholder. At most one exists per asset.
	UnitAutoAssign UnitKind = "auto_assign"
)

// BookableUnit is one concrete bookable unit under an asset, or the asset's
// auto-assign placeholder.
type BookableUnit struct {
	ID      int64
	AssetID int64
	Name    string
	Slug    string
	Kind    UnitKind

	// ShareLink allows the unit's booking calendar to be shared publicly.
	ShareLink      bool
	CalendarColour string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAutoAssign reports whether the unit is the auto-assign placeholder.
func (u *BookableUnit) IsAutoAssign() bool {
	return u.Kind == UnitAutoAssign
}
