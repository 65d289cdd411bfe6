package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avelis/ARB-BookingService/internal/domain"
	assetRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/asset"
	"github.com/avelis/ARB-BookingService/pkg/types"
)

// UseCase computes the free slots of a bookable unit for one date.
type UseCase struct {
	bookingRepo  BookingRepository
	assetRepo    AssetRepository
	calendar     CalendarService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the availability usecase.
func NewUseCase(
	bookingRepo BookingRepository,
	assetRepo AssetRepository,
	calendar CalendarService,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		assetRepo:    assetRepo,
		calendar:     calendar,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider replaces the clock. Intended for tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute resolves the calendar rules, generates the candidate slots and
// removes the occupied ones. For the auto-assign placeholder the result is
// the union of every concrete unit's availability.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, unit=%d, date=%s",
		req.UserID, req.BookableUnitID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	unit, err := uc.assetRepo.GetUnit(ctx, req.BookableUnitID)
	if err != nil {
		if errors.Is(err, assetRepo.ErrUnitNotFound) {
			uc.logger.Warn("GetAvailableSlots: unit id=%d not found", req.BookableUnitID)
			return nil, ErrUnitNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get unit id=%d: %v", req.BookableUnitID, err)
		return nil, fmt.Errorf("%w: failed to get unit: %v", ErrInternal, err)
	}

	asset, err := uc.assetRepo.GetAsset(ctx, unit.AssetID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get asset id=%d: %v", unit.AssetID, err)
		return nil, fmt.Errorf("%w: failed to get asset: %v", ErrInternal, err)
	}

	org, err := uc.assetRepo.GetOrganization(ctx, asset.OrganizationID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get organization id=%d: %v", asset.OrganizationID, err)
		return nil, fmt.Errorf("%w: failed to get organization: %v", ErrInternal, err)
	}

	slotDuration, err := uc.calendar.ResolveSlotDuration(ctx, asset)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to resolve slot duration for asset id=%d: %v", asset.ID, err)
		return nil, fmt.Errorf("%w: failed to resolve slot duration: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:                req.Date,
		BookableUnitID:      unit.ID,
		AssetID:             asset.ID,
		SlotDurationMinutes: slotDuration,
		Slots:               []Slot{},
	}

	if !uc.calendar.WithinHorizon(asset, req.Date) {
		uc.logger.Warn("GetAvailableSlots: date %s outside booking horizon for asset id=%d",
			req.Date.Format(domain.DateFormat), asset.ID)
		return nil, ErrOutsideHorizon
	}

	// Past dates have no bookable slots.
	if domain.DateOnly(req.Date).Before(domain.DateOnly(uc.timeProvider.Now())) {
		return resp, nil
	}

	blackout, err := uc.calendar.IsBlackout(ctx, asset.ID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: blackout lookup failed for asset id=%d: %v", asset.ID, err)
		return nil, fmt.Errorf("%w: blackout lookup failed: %v", ErrInternal, err)
	}
	if blackout {
		uc.logger.Info("GetAvailableSlots: %s is a blackout date for asset id=%d",
			req.Date.Format(domain.DateFormat), asset.ID)
		return resp, nil
	}

	hours, err := uc.calendar.ResolveHours(ctx, asset.ID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to resolve hours for asset id=%d: %v", asset.ID, err)
		return nil, fmt.Errorf("%w: failed to resolve hours: %v", ErrInternal, err)
	}
	if hours == nil {
		uc.logger.Info("GetAvailableSlots: %s is not a working day for asset id=%d",
			req.Date.Format(domain.DateFormat), asset.ID)
		return resp, nil
	}

	buffer, err := uc.calendar.ResolveBuffer(ctx, asset)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to resolve buffer for asset id=%d: %v", asset.ID, err)
		return nil, fmt.Errorf("%w: failed to resolve buffer: %v", ErrInternal, err)
	}

	candidates := generateSlots(*hours, slotDuration, buffer)
	scope := domain.ResolveConflictScope(org)

	var free []types.TimeString
	if unit.IsAutoAssign() {
		free, err = uc.autoAssignAvailability(ctx, unit, asset, org, *hours, candidates, slotDuration, scope, req.Date)
	} else {
		free, err = uc.unitAvailability(ctx, unit, asset, org, *hours, candidates, slotDuration, scope, req.Date)
	}
	if err != nil {
		return nil, err
	}

	resp.Slots = make([]Slot, len(free))
	for i, slot := range free {
		resp.Slots[i] = Slot{StartTime: slot, DurationMinutes: slotDuration}
	}

	uc.logger.Info("GetAvailableSlots: %d free of %d candidate slots for unit=%d, date=%s",
		len(resp.Slots), len(candidates), unit.ID, req.Date.Format(domain.DateFormat))

	return resp, nil
}

// unitAvailability computes candidate-minus-occupied for one concrete unit.
func (uc *UseCase) unitAvailability(
	ctx context.Context,
	unit *domain.BookableUnit,
	asset *domain.Asset,
	org *domain.Organization,
	hours domain.DayHours,
	candidates []types.TimeString,
	slotDuration int,
	scope domain.ConflictScope,
	date time.Time,
) ([]types.TimeString, error) {
	bookings, err := uc.bookingRepo.GetOverlapping(ctx, domain.OverlapFilter{
		Scope:          scope,
		BookableUnitID: unit.ID,
		AssetID:        asset.ID,
		OrganizationID: org.ID,
		Date:           date,
		StartTime:      hours.StartTime,
		EndTime:        hours.EndTime,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for unit id=%d: %v", unit.ID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	return excludeOccupied(candidates, bookings, slotDuration), nil
}

// autoAssignAvailability offers a slot when at least one concrete unit of
// the asset is free for it: per-unit candidate-minus-occupied, then the
// union, deduplicated and sorted.
func (uc *UseCase) autoAssignAvailability(
	ctx context.Context,
	unit *domain.BookableUnit,
	asset *domain.Asset,
	org *domain.Organization,
	hours domain.DayHours,
	candidates []types.TimeString,
	slotDuration int,
	scope domain.ConflictScope,
	date time.Time,
) ([]types.TimeString, error) {
	units, err := uc.assetRepo.ListConcreteUnits(ctx, asset.ID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list units for asset id=%d: %v", asset.ID, err)
		return nil, fmt.Errorf("%w: failed to list units: %v", ErrInternal, err)
	}

	perUnit := make([][]types.TimeString, 0, len(units))
	for _, concrete := range units {
		free, err := uc.unitAvailability(ctx, concrete, asset, org, hours, candidates, slotDuration, scope, date)
		if err != nil {
			return nil, err
		}
		perUnit = append(perUnit, free)
	}

	return unionSlots(perUnit...), nil
}
