package manage_working_hours

import (
	"time"

	"github.com/avelis/ARB-BookingService/internal/domain"
	"github.com/avelis/ARB-BookingService/pkg/types"
)

// UpsertWorkingHoursRequest is the HTTP request model for one weekday
// record.
type UpsertWorkingHoursRequest struct {
	Weekday   int    `json:"weekday"` // 0 = Sunday ... 6 = Saturday
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`
}

// WorkingHoursResponse is one weekday record on the wire.
type WorkingHoursResponse struct {
	ID        int64  `json:"id"`
	AssetID   int64  `json:"assetId"`
	Weekday   int    `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`
}

// ToDomain converts the HTTP request into the domain record.
func (r *UpsertWorkingHoursRequest) ToDomain(assetID int64) (*domain.WorkingHours, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.WorkingHours{
		AssetID:   assetID,
		Weekday:   time.Weekday(r.Weekday),
		StartTime: startTime,
		EndTime:   endTime,
		IsActive:  r.IsActive,
	}, nil
}

// FromDomain converts a weekday record into its wire form.
func FromDomain(wh *domain.WorkingHours) *WorkingHoursResponse {
	return &WorkingHoursResponse{
		ID:        wh.ID,
		AssetID:   wh.AssetID,
		Weekday:   int(wh.Weekday),
		StartTime: wh.StartTime.String(),
		EndTime:   wh.EndTime.String(),
		IsActive:  wh.IsActive,
	}
}

// FromDomainList converts the weekly template into its wire form.
func FromDomainList(hours []*domain.WorkingHours) []*WorkingHoursResponse {
	out := make([]*WorkingHoursResponse, len(hours))
	for i, wh := range hours {
		out[i] = FromDomain(wh)
	}
	return out
}
