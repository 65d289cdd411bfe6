package get_available_slots

import (
	"sort"

	"github.com/avelis/ARB-BookingService/internal/domain"
	"github.com/avelis/ARB-BookingService/pkg/types"
)

// generateSlots produces the raw candidate slot starts for one working
// window. The cursor walks from the window start in slotDuration steps; a
// slot is emitted while it still fits before the window end, and only once
// it reaches the buffer cutoff.
//
// The buffer is an absolute cutoff on the target date, measured from the
// window start: buffer=60 on an 08:00 window suppresses every slot before
// 09:00. It is not "now + buffer".
func generateSlots(hours domain.DayHours, slotDurationMinutes, bufferMinutes int) []types.TimeString {
	slots := make([]types.TimeString, 0)
	if slotDurationMinutes <= 0 {
		return slots
	}

	cutoff, err := hours.StartTime.AddMinutes(bufferMinutes)
	if err != nil {
		// Cutoff past the end of the day: nothing is bookable.
		return slots
	}

	cursor := hours.StartTime
	for {
		slotEnd, err := cursor.AddMinutes(slotDurationMinutes)
		if err != nil || slotEnd.IsAfter(hours.EndTime) {
			break
		}
		if !cursor.IsBefore(cutoff) {
			slots = append(slots, cursor)
		}
		cursor = slotEnd
	}

	return slots
}

// excludeOccupied removes the candidate slots taken by an active booking.
// A slot [s, s+d) is occupied by a booking [b0, b1) iff b0 < s+d && s < b1:
// strict half-open overlap, so a booking ending exactly at s does not
// exclude the slot.
func excludeOccupied(slots []types.TimeString, bookings []*domain.Booking, slotDurationMinutes int) []types.TimeString {
	available := make([]types.TimeString, 0, len(slots))

	for _, slot := range slots {
		slotEnd, err := slot.AddMinutes(slotDurationMinutes)
		if err != nil {
			continue
		}

		occupied := false
		for _, booking := range bookings {
			if !booking.IsActive() {
				continue
			}
			if booking.StartTime.IsBefore(slotEnd) && slot.IsBefore(booking.EndTime) {
				occupied = true
				break
			}
		}
		if !occupied {
			available = append(available, slot)
		}
	}

	return available
}

// unionSlots merges per-unit availability for the auto-assign placeholder:
// a slot is offered when at least one concrete unit is free for it. The
// result is deduplicated and sorted ascending.
func unionSlots(slotSets ...[]types.TimeString) []types.TimeString {
	seen := make(map[types.TimeString]struct{})
	for _, set := range slotSets {
		for _, slot := range set {
			seen[slot] = struct{}{}
		}
	}

	merged := make([]types.TimeString, 0, len(seen))
	for slot := range seen {
		merged = append(merged, slot)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].IsBefore(merged[j])
	})

	return merged
}
