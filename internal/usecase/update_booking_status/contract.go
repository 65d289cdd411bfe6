package update_booking_status

import (
	"context"

	"github.com/avelis/ARB-BookingService/internal/domain"
)

// BookingRepository reads and writes bookings during a status change.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByToken(ctx context.Context, token string) (*domain.Booking, error)
	GetOverlapping(ctx context.Context, filter domain.OverlapFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// AssetRepository reads the unit chain for the conflict scope.
type AssetRepository interface {
	GetUnit(ctx context.Context, id int64) (*domain.BookableUnit, error)
	GetAsset(ctx context.Context, id int64) (*domain.Asset, error)
	GetOrganization(ctx context.Context, id int64) (*domain.Organization, error)
}

// TxManager runs acceptance atomically with its demotion side effect.
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the leveled logger consumed by the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
