package calendar

import (
	"context"
	"time"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

// ScheduleRepository reads the weekly template and blackout periods.
type ScheduleRepository interface {
	GetActiveWorkingHours(ctx context.Context, assetID int64, weekday time.Weekday) (*domain.WorkingHours, error)
	HasBlackout(ctx context.Context, assetID int64, date time.Time) (bool, error)
}

// ConfigRepository reads the global fallback configuration.
type ConfigRepository interface {
	Get(ctx context.Context) (*domain.GlobalConfig, error)
}

// TimeProvider supplies "today" so horizon checks stay testable.
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
