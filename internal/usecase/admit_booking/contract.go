package admit_booking

import (
	"context"
	"time"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

// BookingRepository persists bookings during admission.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetOverlapping(ctx context.Context, filter domain.OverlapFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// AssetRepository reads units, assets and organizations.
type AssetRepository interface {
	GetUnit(ctx context.Context, id int64) (*domain.BookableUnit, error)
	GetAsset(ctx context.Context, id int64) (*domain.Asset, error)
	GetOrganization(ctx context.Context, id int64) (*domain.Organization, error)
}

// CalendarService resolves the booking rules for an asset and date.
type CalendarService interface {
	ResolveHours(ctx context.Context, assetID int64, date time.Time) (*domain.DayHours, error)
	IsBlackout(ctx context.Context, assetID int64, date time.Time) (bool, error)
	WithinHorizon(asset *domain.Asset, date time.Time) bool
}

// TxManager runs the conflict check and the writes atomically.
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
