package update_booking_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelis/ARB-BookingService/internal/domain"
	bookingRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/booking"
)

// UseCase moves a booking through its status state machine. Acceptance
// additionally re-runs the conflict check and demotes the losing pending
// bookings, all inside one serializable transaction.
type UseCase struct {
	bookingRepo BookingRepository
	assetRepo   AssetRepository
	txManager   TxManager
	logger      Logger
}

// NewUseCase creates the status transition usecase.
func NewUseCase(
	bookingRepo BookingRepository,
	assetRepo AssetRepository,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		assetRepo:   assetRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute applies the requested status change.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBookingStatus: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{}
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.getBooking(txCtx, req)
		if err != nil {
			return err
		}

		if req.ActorUserID > 0 && booking.UserID != req.ActorUserID {
			return ErrPermissionDenied
		}

		newStatus, err := booking.Status.Transition(req.NewStatus)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}

		if newStatus == domain.StatusAccepted {
			demoted, events, err := uc.accept(txCtx, booking)
			if err != nil {
				return err
			}
			resp.DemotedBookingIDs = demoted
			resp.Events = events
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, newStatus); err != nil {
			return fmt.Errorf("failed to update status of booking id=%d: %w", booking.ID, err)
		}

		resp.Events = append(resp.Events, domain.NewStatusChangedEvent(booking.ID, booking.Status, newStatus))
		booking.Status = newStatus
		resp.Booking = booking
		return nil
	})
	if err != nil {
		return nil, uc.mapError(err, req)
	}

	uc.logger.Info("UpdateBookingStatus: booking id=%d is now %s, %d pending demoted",
		resp.Booking.ID, resp.Booking.Status, len(resp.DemotedBookingIDs))

	return resp, nil
}

func (uc *UseCase) getBooking(ctx context.Context, req *Request) (*domain.Booking, error) {
	if req.Token != nil {
		booking, err := uc.bookingRepo.GetByToken(ctx, *req.Token)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, fmt.Errorf("failed to get booking by token: %w", err)
		}
		return booking, nil
	}

	booking, err := uc.bookingRepo.GetByID(ctx, *req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking id=%d: %w", *req.BookingID, err)
	}
	return booking, nil
}

// accept guards the acceptance path: the auto-assign placeholder cannot
// hold an accepted booking, an overlapping accepted booking wins, and the
// overlapping pending bookings lose.
func (uc *UseCase) accept(ctx context.Context, booking *domain.Booking) ([]int64, []domain.Event, error) {
	unit, err := uc.assetRepo.GetUnit(ctx, booking.BookableUnitID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get unit id=%d: %w", booking.BookableUnitID, err)
	}
	if unit.IsAutoAssign() {
		return nil, nil, ErrAutoAssignAccepted
	}

	asset, err := uc.assetRepo.GetAsset(ctx, unit.AssetID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get asset id=%d: %w", unit.AssetID, err)
	}
	org, err := uc.assetRepo.GetOrganization(ctx, asset.OrganizationID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get organization id=%d: %w", asset.OrganizationID, err)
	}

	overlapping, err := uc.bookingRepo.GetOverlapping(ctx, domain.OverlapFilter{
		Scope:            domain.ResolveConflictScope(org),
		BookableUnitID:   unit.ID,
		AssetID:          asset.ID,
		OrganizationID:   org.ID,
		Date:             booking.Date,
		StartTime:        booking.StartTime,
		EndTime:          booking.EndTime,
		ExcludeBookingID: &booking.ID,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get overlapping bookings: %w", err)
	}

	var demoted []int64
	var events []domain.Event
	for _, other := range overlapping {
		switch other.Status {
		case domain.StatusAccepted:
			return nil, nil, ErrSlotTaken
		case domain.StatusPending:
			if err := uc.bookingRepo.UpdateStatus(ctx, other.ID, domain.StatusRejected); err != nil {
				return nil, nil, fmt.Errorf("failed to demote booking id=%d: %w", other.ID, err)
			}
			demoted = append(demoted, other.ID)
			events = append(events, domain.NewStatusChangedEvent(other.ID, domain.StatusPending, domain.StatusRejected))
		}
	}

	return demoted, events, nil
}

// mapError keeps the business sentinels visible through the transaction
// wrapper and folds everything else into ErrInternal.
func (uc *UseCase) mapError(err error, req *Request) error {
	switch {
	case errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrSlotTaken),
		errors.Is(err, ErrAutoAssignAccepted),
		errors.Is(err, ErrPermissionDenied):
		uc.logger.Warn("UpdateBookingStatus: refused %s: %v", req.NewStatus, err)
		return err
	default:
		uc.logger.Error("UpdateBookingStatus: transaction failed: %v", err)
		return fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}
}
