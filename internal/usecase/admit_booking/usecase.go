package admit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/avelis/ARB-BookingService/internal/domain"
	assetRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/asset"
	bookingRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/booking"
)

// UseCase is the admission engine: it decides whether a booking request
// enters the system, with what status, and which existing bookings it
// displaces. Both the create and the edit path run through it.
type UseCase struct {
	bookingRepo  BookingRepository
	assetRepo    AssetRepository
	calendar     CalendarService
	txManager    TxManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the admission usecase.
func NewUseCase(
	bookingRepo BookingRepository,
	assetRepo AssetRepository,
	calendar CalendarService,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		assetRepo:    assetRepo,
		calendar:     calendar,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider replaces the clock. Intended for tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute admits a booking request. The calendar rules are checked first
// and every violation is reported together as ValidationErrors. The
// conflict check and all writes then run in one serializable transaction:
// an overlapping accepted booking rejects the request outright, and an
// admitted request demotes every overlapping pending booking to rejected
// regardless of its own status.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdmitBooking: user=%d, unit=%d, date=%s, %s-%s",
		req.UserID, req.BookableUnitID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AdmitBooking: validation failed: %v", err)
		return nil, err
	}

	unit, err := uc.assetRepo.GetUnit(ctx, req.BookableUnitID)
	if err != nil {
		if errors.Is(err, assetRepo.ErrUnitNotFound) {
			uc.logger.Warn("AdmitBooking: unit id=%d not found", req.BookableUnitID)
			return nil, ErrUnitNotFound
		}
		uc.logger.Error("AdmitBooking: failed to get unit id=%d: %v", req.BookableUnitID, err)
		return nil, fmt.Errorf("%w: failed to get unit: %v", ErrInternal, err)
	}

	asset, err := uc.assetRepo.GetAsset(ctx, unit.AssetID)
	if err != nil {
		uc.logger.Error("AdmitBooking: failed to get asset id=%d: %v", unit.AssetID, err)
		return nil, fmt.Errorf("%w: failed to get asset: %v", ErrInternal, err)
	}

	org, err := uc.assetRepo.GetOrganization(ctx, asset.OrganizationID)
	if err != nil {
		uc.logger.Error("AdmitBooking: failed to get organization id=%d: %v", asset.OrganizationID, err)
		return nil, fmt.Errorf("%w: failed to get organization: %v", ErrInternal, err)
	}

	var existing *domain.Booking
	if req.BookingID != nil {
		existing, err = uc.bookingRepo.GetByID(ctx, *req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return nil, ErrBookingNotFound
			}
			uc.logger.Error("AdmitBooking: failed to get booking id=%d: %v", *req.BookingID, err)
			return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
		if existing.Status.IsTerminal() {
			uc.logger.Warn("AdmitBooking: booking id=%d is %s, edit refused", existing.ID, existing.Status)
			return nil, ErrEditTerminal
		}
		if req.UserID > 0 && existing.UserID != req.UserID {
			uc.logger.Warn("AdmitBooking: user=%d does not own booking id=%d", req.UserID, existing.ID)
			return nil, ErrPermissionDenied
		}
	}

	status, err := uc.resolveAdmittedStatus(req, asset, unit, existing)
	if err != nil {
		uc.logger.Warn("AdmitBooking: status refused for unit id=%d: %v", unit.ID, err)
		return nil, err
	}

	if err := uc.checkCalendarRules(ctx, req, asset); err != nil {
		uc.logger.Warn("AdmitBooking: calendar rules failed for unit id=%d: %v", unit.ID, err)
		return nil, err
	}

	booking := uc.buildBooking(req, existing, status)
	scope := domain.ResolveConflictScope(org)

	resp := &Response{}
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		demoted, events, err := uc.admit(txCtx, booking, unit, asset, org, scope, req.BookingID)
		if err != nil {
			return err
		}
		resp.DemotedBookingIDs = demoted
		resp.Events = events
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			uc.logger.Warn("AdmitBooking: slot %s-%s taken for unit id=%d", req.StartTime, req.EndTime, unit.ID)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("AdmitBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	resp.Booking = booking

	uc.logger.Info("AdmitBooking: booking id=%d admitted as %s, %d pending demoted",
		booking.ID, booking.Status, len(resp.DemotedBookingIDs))

	return resp, nil
}

// resolveAdmittedStatus picks the status for this admission. On the edit
// path an unset status keeps the booking's current one rather than falling
// back to the asset default.
func (uc *UseCase) resolveAdmittedStatus(req *Request, asset *domain.Asset, unit *domain.BookableUnit, existing *domain.Booking) (domain.BookingStatus, error) {
	if req.Status == nil && existing != nil {
		// Moving an accepted booking onto the placeholder without an
		// explicit status demotes it the same way a default would.
		if existing.Status == domain.StatusAccepted && unit.IsAutoAssign() {
			return domain.StatusPending, nil
		}
		return existing.Status, nil
	}
	return resolveStatus(req.Status, asset, unit)
}

// checkCalendarRules verifies the date and time range against the asset's
// calendar, collecting every violated rule.
func (uc *UseCase) checkCalendarRules(ctx context.Context, req *Request, asset *domain.Asset) error {
	verrs := &ValidationErrors{}

	if domain.DateOnly(req.Date).Before(domain.DateOnly(uc.timeProvider.Now())) {
		verrs.add(ErrPastDate)
	}
	if !uc.calendar.WithinHorizon(asset, req.Date) {
		verrs.add(ErrOutsideHorizon)
	}

	blackout, err := uc.calendar.IsBlackout(ctx, asset.ID, req.Date)
	if err != nil {
		return fmt.Errorf("%w: blackout lookup failed: %v", ErrInternal, err)
	}
	if blackout {
		verrs.add(ErrBlackoutDate)
	}

	hours, err := uc.calendar.ResolveHours(ctx, asset.ID, req.Date)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve hours: %v", ErrInternal, err)
	}
	switch {
	case hours == nil:
		verrs.add(ErrNotWorkingDay)
	case req.StartTime.IsBefore(hours.StartTime) || req.EndTime.IsAfter(hours.EndTime):
		verrs.add(ErrOutsideWorkingHours)
	}

	if verrs.hasErrors() {
		return verrs
	}
	return nil
}

// buildBooking assembles the booking row to write: a fresh one on the
// create path, the existing row with the request applied on the edit path.
func (uc *UseCase) buildBooking(req *Request, existing *domain.Booking, status domain.BookingStatus) *domain.Booking {
	if existing != nil {
		existing.BookableUnitID = req.BookableUnitID
		existing.Date = domain.DateOnly(req.Date)
		existing.StartTime = req.StartTime
		existing.EndTime = req.EndTime
		existing.Status = status
		existing.Notes = req.Notes
		return existing
	}

	return &domain.Booking{
		UserID:         req.UserID,
		BookableUnitID: req.BookableUnitID,
		Date:           domain.DateOnly(req.Date),
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Status:         status,
		Token:          uuid.New(),
		ParticipantIDs: req.ParticipantIDs,
		Notes:          req.Notes,
	}
}

// admit runs inside the serializable transaction: the locked conflict
// check, the demotion side effect and the booking write.
func (uc *UseCase) admit(
	ctx context.Context,
	booking *domain.Booking,
	unit *domain.BookableUnit,
	asset *domain.Asset,
	org *domain.Organization,
	scope domain.ConflictScope,
	excludeID *int64,
) ([]int64, []domain.Event, error) {
	overlapping, err := uc.bookingRepo.GetOverlapping(ctx, domain.OverlapFilter{
		Scope:            scope,
		BookableUnitID:   unit.ID,
		AssetID:          asset.ID,
		OrganizationID:   org.ID,
		Date:             booking.Date,
		StartTime:        booking.StartTime,
		EndTime:          booking.EndTime,
		ExcludeBookingID: excludeID,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get overlapping bookings: %w", err)
	}

	accepted, pending := partitionOverlaps(overlapping)
	if len(accepted) > 0 {
		return nil, nil, ErrSlotTaken
	}

	var demoted []int64
	var events []domain.Event

	for _, loser := range pending {
		if err := uc.bookingRepo.UpdateStatus(ctx, loser.ID, domain.StatusRejected); err != nil {
			return nil, nil, fmt.Errorf("failed to demote booking id=%d: %w", loser.ID, err)
		}
		demoted = append(demoted, loser.ID)
		events = append(events, domain.NewStatusChangedEvent(loser.ID, domain.StatusPending, domain.StatusRejected))
	}

	if excludeID != nil {
		if err := uc.bookingRepo.Update(ctx, booking); err != nil {
			return nil, nil, fmt.Errorf("failed to update booking id=%d: %w", booking.ID, err)
		}
		events = append(events, domain.Event{BookingID: booking.ID, Kind: domain.EventBookingUpdated})
	} else {
		if _, err := uc.bookingRepo.Create(ctx, booking); err != nil {
			return nil, nil, fmt.Errorf("failed to create booking: %w", err)
		}
		events = append(events, domain.Event{BookingID: booking.ID, Kind: domain.EventBookingCreated})
	}

	return demoted, events, nil
}
