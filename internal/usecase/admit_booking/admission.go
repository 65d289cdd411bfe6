package admit_booking

import "github.com/avelis/ARB-BookingService/internal/domain"

// resolveStatus decides the status the booking is admitted with.
//
// An explicit status wins; otherwise the asset's default applies. The
// auto-assign placeholder can never hold an accepted booking: an explicit
// accepted request is an error, while an accepted asset default silently
// falls back to pending, since only the configuration, not the caller,
// asked for acceptance.
func resolveStatus(requested *domain.BookingStatus, asset *domain.Asset, unit *domain.BookableUnit) (domain.BookingStatus, error) {
	status := asset.DefaultBookingStatus
	explicit := requested != nil
	if explicit {
		status = *requested
	}
	if !status.Valid() {
		status = domain.StatusPending
	}

	if status == domain.StatusAccepted && unit.IsAutoAssign() {
		if explicit {
			return "", ErrAutoAssignAccepted
		}
		return domain.StatusPending, nil
	}

	return status, nil
}

// partitionOverlaps splits the conflicting bookings by whether they block
// the slot outright (accepted) or merely compete for it (pending).
// Terminal bookings never reach here; GetOverlapping filters them out.
func partitionOverlaps(bookings []*domain.Booking) (accepted, pending []*domain.Booking) {
	for _, b := range bookings {
		switch b.Status {
		case domain.StatusAccepted:
			accepted = append(accepted, b)
		case domain.StatusPending:
			pending = append(pending, b)
		}
	}
	return accepted, pending
}
