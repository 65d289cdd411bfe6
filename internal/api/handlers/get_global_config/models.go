package get_global_config

import "github.com/avelis/ARB-BookingService/internal/domain"

// GlobalConfigResponse is the singleton configuration on the wire.
type GlobalConfigResponse struct {
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	BufferTimeMinutes   int    `json:"bufferTimeMinutes"`
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
