package update_global_config

import (
	"github.com/avelis/ARB-BookingService/internal/domain"
	"github.com/avelis/ARB-BookingService/pkg/types"
)

// UpdateGlobalConfigRequest is the HTTP request model.
type UpdateGlobalConfigRequest struct {
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	BufferTimeMinutes   int    `json:"bufferTimeMinutes"`
}

// GlobalConfigResponse is the singleton configuration on the wire.
type GlobalConfigResponse struct {
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	BufferTimeMinutes   int    `json:"bufferTimeMinutes"`
}

// ToDomain converts the HTTP request into the domain configuration.
func (r *UpdateGlobalConfigRequest) ToDomain() (*domain.GlobalConfig, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.GlobalConfig{
		StartTime:           startTime,
		EndTime:             endTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
		BufferTimeMinutes:   r.BufferTimeMinutes,
	}, nil
}

// FromDomain converts the configuration into its wire form.
func FromDomain(cfg *domain.GlobalConfig) *GlobalConfigResponse {
	return &GlobalConfigResponse{
		StartTime:           cfg.StartTime.String(),
		EndTime:             cfg.EndTime.String(),
		SlotDurationMinutes: cfg.SlotDurationMinutes,
		BufferTimeMinutes:   cfg.BufferTimeMinutes,
	}
}
