package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelis/ARB-BookingService/internal/domain"
	"github.com/avelis/ARB-BookingService/pkg/types"
)

func dayHours(start, end string) domain.DayHours {
	return domain.DayHours{
		StartTime: types.MustTimeString(start),
		EndTime:   types.MustTimeString(end),
	}
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name         string
		hours        domain.DayHours
		slotDuration int
		buffer       int
		want         []string
	}{
		{
			name:         "full working day without buffer",
			hours:        dayHours("08:00", "17:00"),
			slotDuration: 30,
			buffer:       0,
			// 9 hours / 30 minutes = 18 slots, 08:00 through 16:30.
			want: []string{
				"08:00", "08:30", "09:00", "09:30", "10:00", "10:30",
				"11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
				"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
			},
		},
		{
			name:         "buffer suppresses the leading slots",
			hours:        dayHours("08:00", "10:00"),
			slotDuration: 30,
			buffer:       60,
			want:         []string{"09:00", "09:30"},
		},
		{
			name:         "buffer not aligned to the slot grid",
			hours:        dayHours("08:00", "10:00"),
			slotDuration: 30,
			buffer:       45,
			// The 08:30 slot starts before the 08:45 cutoff and is dropped.
			want: []string{"09:00", "09:30"},
		},
		{
			name:         "last slot must fit entirely before the end",
			hours:        dayHours("08:00", "09:15"),
			slotDuration: 30,
			buffer:       0,
			want:         []string{"08:00", "08:30"},
		},
		{
			name:         "window shorter than one slot",
			hours:        dayHours("08:00", "08:15"),
			slotDuration: 30,
			buffer:       0,
			want:         []string{},
		},
		{
			name:         "buffer consumes the whole window",
			hours:        dayHours("08:00", "09:00"),
			slotDuration: 30,
			buffer:       120,
			want:         []string{},
		},
		{
			name:         "non-positive duration yields nothing",
			hours:        dayHours("08:00", "17:00"),
			slotDuration: 0,
			buffer:       0,
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateSlots(tt.hours, tt.slotDuration, tt.buffer)

			gotStrs := make([]string, len(got))
			for i, slot := range got {
				gotStrs[i] = slot.String()
			}
			assert.Equal(t, tt.want, gotStrs)
		})
	}
}

func TestExcludeOccupied(t *testing.T) {
	candidates := generateSlots(dayHours("08:00", "12:00"), 30, 0)
	require.Len(t, candidates, 8)

	booking := func(start, end string, status domain.BookingStatus) *domain.Booking {
		return &domain.Booking{
			StartTime: types.MustTimeString(start),
			EndTime:   types.MustTimeString(end),
			Status:    status,
		}
	}

	tests := []struct {
		name     string
		bookings []*domain.Booking
		want     []string
	}{
		{
			name:     "no bookings keeps every candidate",
			bookings: nil,
			want:     []string{"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		},
		{
			name:     "accepted booking removes exactly its slot",
			bookings: []*domain.Booking{booking("10:00", "10:30", domain.StatusAccepted)},
			// A booking ending at 10:00 or starting at 10:30 would not
			// touch the 10:00 slot: the comparison is half-open.
			want: []string{"08:00", "08:30", "09:00", "09:30", "10:30", "11:00", "11:30"},
		},
		{
			name:     "pending bookings occupy slots too",
			bookings: []*domain.Booking{booking("08:00", "09:00", domain.StatusPending)},
			want:     []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		},
		{
			name: "terminal bookings free their slots",
			bookings: []*domain.Booking{
				booking("08:00", "09:00", domain.StatusCanceled),
				booking("09:00", "10:00", domain.StatusRejected),
			},
			want: []string{"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		},
		{
			name:     "booking straddling the slot grid removes both neighbours",
			bookings: []*domain.Booking{booking("09:15", "09:45", domain.StatusAccepted)},
			want:     []string{"08:00", "08:30", "10:00", "10:30", "11:00", "11:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := excludeOccupied(candidates, tt.bookings, 30)

			gotStrs := make([]string, len(got))
			for i, slot := range got {
				gotStrs[i] = slot.String()
			}
			assert.Equal(t, tt.want, gotStrs)
		})
	}
}

func TestUnionSlots(t *testing.T) {
	a := []types.TimeString{types.MustTimeString("09:00"), types.MustTimeString("10:00")}
	b := []types.TimeString{types.MustTimeString("08:00"), types.MustTimeString("09:00")}

	got := unionSlots(a, b)

	gotStrs := make([]string, len(got))
	for i, slot := range got {
		gotStrs[i] = slot.String()
	}
	assert.Equal(t, []string{"08:00", "09:00", "10:00"}, gotStrs)

	assert.Empty(t, unionSlots())
	assert.Empty(t, unionSlots(nil, nil))
}
