package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avelis/ARB-BookingService/internal/domain"
	configRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/globalconfig"
	scheduleRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/schedule"
)

// Service resolves the calendar rules for one asset and date: the working
// window, slot duration, buffer and horizon, with asset overrides falling
// back to the global configuration.
type Service struct {
	scheduleRepo ScheduleRepository
	configRepo   ConfigRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a calendar rules service.
func NewService(scheduleRepo ScheduleRepository, configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		configRepo:   configRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider replaces the clock. Intended for tests.
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// ResolveHours returns the working window for the asset on the date's
// weekday: the active weekly record if one exists, otherwise the global
// config window. A nil result (without error) means the date is not a
// working day at all.
func (s *Service) ResolveHours(ctx context.Context, assetID int64, date time.Time) (*domain.DayHours, error) {
	wh, err := s.scheduleRepo.GetActiveWorkingHours(ctx, assetID, date.Weekday())
	if err == nil {
		return &domain.DayHours{StartTime: wh.StartTime, EndTime: wh.EndTime}, nil
	}
	if !errors.Is(err, scheduleRepo.ErrWorkingHoursNotFound) {
		return nil, fmt.Errorf("%w: ResolveHours - working hours: %v", ErrInternal, err)
	}

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			// No weekly record and no fallback: not a working day.
			return nil, nil
		}
		return nil, fmt.Errorf("%w: ResolveHours - global config: %v", ErrInternal, err)
	}

	hours := cfg.DayHours()
	return &hours, nil
}

// ResolveSlotDuration returns the asset's slot duration override or the
// global config value.
func (s *Service) ResolveSlotDuration(ctx context.Context, asset *domain.Asset) (int, error) {
	if asset.SlotDurationMinutes != nil && *asset.SlotDurationMinutes > 0 {
		return *asset.SlotDurationMinutes, nil
	}

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return 0, ErrNoSlotDuration
		}
		return 0, fmt.Errorf("%w: ResolveSlotDuration - global config: %v", ErrInternal, err)
	}
	if cfg.SlotDurationMinutes <= 0 {
		return 0, ErrNoSlotDuration
	}
	return cfg.SlotDurationMinutes, nil
}

// ResolveBuffer returns the asset's buffer override or the global config
// value. Without any configuration the buffer is zero.
func (s *Service) ResolveBuffer(ctx context.Context, asset *domain.Asset) (int, error) {
	if asset.BufferTimeMinutes != nil {
		return *asset.BufferTimeMinutes, nil
	}

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: ResolveBuffer - global config: %v", ErrInternal, err)
	}
	return cfg.BufferTimeMinutes, nil
}

// IsBlackout reports whether the date falls inside a blackout period of
// the asset.
func (s *Service) IsBlackout(ctx context.Context, assetID int64, date time.Time) (bool, error) {
	blackout, err := s.scheduleRepo.HasBlackout(ctx, assetID, date)
	if err != nil {
		return false, fmt.Errorf("%w: IsBlackout: %v", ErrInternal, err)
	}
	return blackout, nil
}

// WithinHorizon reports whether the date is inside the asset's booking
// horizon: unrestricted when max_days_ahead is unset or non-positive,
// otherwise today <= date <= today+max_days_ahead.
func (s *Service) WithinHorizon(asset *domain.Asset, date time.Time) bool {
	if asset.MaxDaysAhead == nil || *asset.MaxDaysAhead <= 0 {
		return true
	}

	today := domain.DateOnly(s.timeProvider.Now())
	target := domain.DateOnly(date)
	maxDate := today.AddDate(0, 0, *asset.MaxDaysAhead)

	return !target.Before(today) && !target.After(maxDate)
}
