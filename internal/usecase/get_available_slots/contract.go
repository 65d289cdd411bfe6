package get_available_slots

import (
	"context"
	"time"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

// BookingRepository fetches the bookings occupying a time window.
type BookingRepository interface {
	GetOverlapping(ctx context.Context, filter domain.OverlapFilter) ([]*domain.Booking, error)
}

// AssetRepository reads units, assets and organizations.
type AssetRepository interface {
	GetUnit(ctx context.Context, id int64) (*domain.BookableUnit, error)
	GetAsset(ctx context.Context, id int64) (*domain.Asset, error)
	GetOrganization(ctx context.Context, id int64) (*domain.Organization, error)
	ListConcreteUnits(ctx context.Context, assetID int64) ([]*domain.BookableUnit, error)
}

// CalendarService resolves the booking rules for an asset and date.
type CalendarService interface {
	ResolveHours(ctx context.Context, assetID int64, date time.Time) (*domain.DayHours, error)
	ResolveSlotDuration(ctx context.Context, asset *domain.Asset) (int, error)
	ResolveBuffer(ctx context.Context, asset *domain.Asset) (int, error)
	IsBlackout(ctx context.Context, assetID int64, date time.Time) (bool, error)
	WithinHorizon(asset *domain.Asset, date time.Time) bool
}

// TimeProvider supplies the current time for past-date checks.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the leveled logger consumed by the usecase.
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
