package manage_blackouts

import (
	"time"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

// BlackoutRequest is the HTTP request model for creating or updating a
// blackout period.
type BlackoutRequest struct {
	StartDate   string  `json:"startDate"` // "2025-07-01"
	EndDate     string  `json:"endDate"`   // "2025-07-05"
	Description *string `json:"description,omitempty"`
}

// BlackoutResponse is one blackout period on the wire.
type BlackoutResponse struct {
	ID          int64   `json:"id"`
	AssetID     int64   `json:"assetId"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Description *string `json:"description,omitempty"`
}

// ToDomain converts the HTTP request into the domain record.
func (r *BlackoutRequest) ToDomain(id, assetID int64) (*domain.BlackoutPeriod, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &domain.BlackoutPeriod{
		ID:          id,
		AssetID:     assetID,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: r.Description,
	}, nil
}

// FromDomain converts a blackout period into its wire form.
func FromDomain(period *domain.BlackoutPeriod) *BlackoutResponse {
	return &BlackoutResponse{
		ID:          period.ID,
		AssetID:     period.AssetID,
		StartDate:   period.StartDate.Format(domain.DateFormat),
		EndDate:     period.EndDate.Format(domain.DateFormat),
		Description: period.Description,
	}
}
