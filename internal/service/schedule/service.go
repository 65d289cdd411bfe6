package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelis/ARB-BookingService/internal/domain"
	assetRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/asset"
	scheduleRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/schedule"
)

// Service manages an asset's calendar shape: the weekly working-hours
// template and the blackout periods. A blackout never lands on dates that
// already hold accepted bookings; those must be resolved first.
type Service struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	assetRepo    AssetRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a schedule administration service.
func NewService(scheduleRepo ScheduleRepository, bookingRepo BookingRepository, assetRepo AssetRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		assetRepo:    assetRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider replaces the clock. Intended for tests.
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// ListWorkingHours returns the asset's full weekly template, inactive days
// included.
func (s *Service) ListWorkingHours(ctx context.Context, assetID int64) ([]*domain.WorkingHours, error) {
	if err := s.checkAsset(ctx, assetID); err != nil {
		return nil, err
	}

	hours, err := s.scheduleRepo.ListWorkingHours(ctx, assetID)
	if err != nil {
		s.logger.Error("ListWorkingHours: failed for asset=%d: %v", assetID, err)
		return nil, fmt.Errorf("%w: failed to list working hours: %v", ErrInternal, err)
	}
	return hours, nil
}

// UpsertWorkingHours writes one weekday record of the template. The record
// for a weekday is overwritten in place; deactivating keeps the row.
func (s *Service) UpsertWorkingHours(ctx context.Context, wh *domain.WorkingHours) error {
	if err := validateWorkingHours(wh); err != nil {
		s.logger.Warn("UpsertWorkingHours: validation failed: %v", err)
		return err
	}
	if err := s.checkAsset(ctx, wh.AssetID); err != nil {
		return err
	}

	if err := s.scheduleRepo.UpsertWorkingHours(ctx, wh); err != nil {
		s.logger.Error("UpsertWorkingHours: failed for asset=%d, weekday=%d: %v", wh.AssetID, wh.Weekday, err)
		return fmt.Errorf("%w: failed to upsert working hours: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertWorkingHours: asset=%d, weekday=%d, %s-%s, active=%t",
		wh.AssetID, wh.Weekday, wh.StartTime, wh.EndTime, wh.IsActive)
	return nil
}

// CreateBlackout adds a blackout period after checking it against the
// asset's accepted bookings.
func (s *Service) CreateBlackout(ctx context.Context, period *domain.BlackoutPeriod) (*domain.BlackoutPeriod, error) {
	if err := validateBlackout(period); err != nil {
		s.logger.Warn("CreateBlackout: validation failed: %v", err)
		return nil, err
	}
	// Only creation refuses past start dates; editing an already-running
	// blackout is allowed.
	if domain.DateOnly(period.StartDate).Before(domain.DateOnly(s.timeProvider.Now())) {
		s.logger.Warn("CreateBlackout: start date in the past: asset=%d, start=%s",
			period.AssetID, period.StartDate.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: startDate cannot be in the past", ErrInvalidInput)
	}
	if err := s.checkAsset(ctx, period.AssetID); err != nil {
		return nil, err
	}
	if err := s.checkAcceptedCollisions(ctx, period); err != nil {
		return nil, err
	}

	created, err := s.scheduleRepo.CreateBlackout(ctx, period)
	if err != nil {
		s.logger.Error("CreateBlackout: failed for asset=%d: %v", period.AssetID, err)
		return nil, fmt.Errorf("%w: failed to create blackout: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlackout: id=%d, asset=%d, %s..%s", created.ID, created.AssetID,
		created.StartDate.Format(domain.DateFormat), created.EndDate.Format(domain.DateFormat))
	return created, nil
}

// UpdateBlackout rewrites a blackout period's range and description under
// the same accepted-booking check as creation.
func (s *Service) UpdateBlackout(ctx context.Context, period *domain.BlackoutPeriod) (*domain.BlackoutPeriod, error) {
	if period.ID <= 0 {
		return nil, fmt.Errorf("%w: blackout id must be positive", ErrInvalidInput)
	}

	existing, err := s.scheduleRepo.GetBlackout(ctx, period.ID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrBlackoutNotFound) {
			return nil, ErrBlackoutNotFound
		}
		s.logger.Error("UpdateBlackout: failed to get blackout id=%d: %v", period.ID, err)
		return nil, fmt.Errorf("%w: failed to get blackout: %v", ErrInternal, err)
	}

	// The asset a blackout belongs to never changes.
	period.AssetID = existing.AssetID

	if err := validateBlackout(period); err != nil {
		s.logger.Warn("UpdateBlackout: validation failed: %v", err)
		return nil, err
	}
	if err := s.checkAcceptedCollisions(ctx, period); err != nil {
		return nil, err
	}

	if err := s.scheduleRepo.UpdateBlackout(ctx, period); err != nil {
		if errors.Is(err, scheduleRepo.ErrBlackoutNotFound) {
			return nil, ErrBlackoutNotFound
		}
		s.logger.Error("UpdateBlackout: failed for blackout id=%d: %v", period.ID, err)
		return nil, fmt.Errorf("%w: failed to update blackout: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBlackout: id=%d, asset=%d, %s..%s", period.ID, period.AssetID,
		period.StartDate.Format(domain.DateFormat), period.EndDate.Format(domain.DateFormat))
	return period, nil
}

// GetBlackout fetches one blackout period.
func (s *Service) GetBlackout(ctx context.Context, id int64) (*domain.BlackoutPeriod, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: blackout id must be positive", ErrInvalidInput)
	}

	period, err := s.scheduleRepo.GetBlackout(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrBlackoutNotFound) {
			return nil, ErrBlackoutNotFound
		}
		s.logger.Error("GetBlackout: failed for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get blackout: %v", ErrInternal, err)
	}
	return period, nil
}

func (s *Service) checkAsset(ctx context.Context, assetID int64) error {
	if assetID <= 0 {
		return fmt.Errorf("%w: assetID must be positive", ErrInvalidInput)
	}
	if _, err := s.assetRepo.GetAsset(ctx, assetID); err != nil {
		if errors.Is(err, assetRepo.ErrAssetNotFound) {
			return ErrAssetNotFound
		}
		s.logger.Error("checkAsset: failed to get asset id=%d: %v", assetID, err)
		return fmt.Errorf("%w: failed to get asset: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) checkAcceptedCollisions(ctx context.Context, period *domain.BlackoutPeriod) error {
	has, err := s.bookingRepo.HasAcceptedInDateRange(ctx, period.AssetID, period.StartDate, period.EndDate)
	if err != nil {
		s.logger.Error("checkAcceptedCollisions: failed for asset=%d: %v", period.AssetID, err)
		return fmt.Errorf("%w: failed to check accepted bookings: %v", ErrInternal, err)
	}
	if has {
		s.logger.Warn("checkAcceptedCollisions: asset=%d has accepted bookings in %s..%s",
			period.AssetID, period.StartDate.Format(domain.DateFormat), period.EndDate.Format(domain.DateFormat))
		return ErrAcceptedBookings
	}
	return nil
}

func validateWorkingHours(wh *domain.WorkingHours) error {
	if wh.AssetID <= 0 {
		return fmt.Errorf("%w: assetID must be positive", ErrInvalidInput)
	}
	if wh.Weekday < 0 || wh.Weekday > 6 {
		return fmt.Errorf("%w: weekday must be in [0, 6]", ErrInvalidInput)
	}
	if err := wh.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	if err := wh.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}
	if !wh.StartTime.IsBefore(wh.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	return nil
}

func validateBlackout(period *domain.BlackoutPeriod) error {
	if period.AssetID <= 0 {
		return fmt.Errorf("%w: assetID must be positive", ErrInvalidInput)
	}
	if period.StartDate.IsZero() || period.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if domain.DateOnly(period.EndDate).Before(domain.DateOnly(period.StartDate)) {
		return fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}
	return nil
}
