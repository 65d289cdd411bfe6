package get_available_slots

import (
	"github.com/avelis/ARB-BookingService/internal/domain"
	getAvailableSlots "github.com/avelis/ARB-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse is one free slot on the wire.
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// AvailableSlotsResponse is the availability of one unit for one date.
type AvailableSlotsResponse struct {
	Date                string         `json:"date"`
	BookableUnitID      int64          `json:"bookableUnitId"`
	AssetID             int64          `json:"assetId"`
	SlotDurationMinutes int            `json:"slotDurationMinutes"`
	Slots               []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the usecase response into the wire form.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
		}
	}

	return &AvailableSlotsResponse{
		Date:                resp.Date.Format(domain.DateFormat),
		BookableUnitID:      resp.BookableUnitID,
		AssetID:             resp.AssetID,
		SlotDurationMinutes: resp.SlotDurationMinutes,
		Slots:               slots,
	}
}
