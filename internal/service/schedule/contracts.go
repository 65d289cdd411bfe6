package schedule

import (
	"context"
	"time"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

// ScheduleRepository persists the weekly template and blackout periods.
type ScheduleRepository interface {
	ListWorkingHours(ctx context.Context, assetID int64) ([]*domain.WorkingHours, error)
	UpsertWorkingHours(ctx context.Context, wh *domain.WorkingHours) error
	CreateBlackout(ctx context.Context, period *domain.BlackoutPeriod) (*domain.BlackoutPeriod, error)
	GetBlackout(ctx context.Context, id int64) (*domain.BlackoutPeriod, error)
	UpdateBlackout(ctx context.Context, period *domain.BlackoutPeriod) error
}

// BookingRepository checks for accepted bookings colliding with a blackout.
type BookingRepository interface {
	HasAcceptedInDateRange(ctx context.Context, assetID int64, startDate, endDate time.Time) (bool, error)
}

// AssetRepository verifies the asset a schedule record belongs to.
type AssetRepository interface {
	GetAsset(ctx context.Context, id int64) (*domain.Asset, error)
}

// TimeProvider supplies "today" for the past-date check on blackout
// creation.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the leveled logger consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
