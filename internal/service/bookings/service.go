package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelis/ARB-BookingService/internal/domain"
	bookingRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/booking"
)

// Service is the read and participant side of bookings: lookups by id,
// token, user or asset, and attaching or detaching participants. The
// admission engine and the state machine stay in the usecases.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates a bookings service.
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{bookingRepo: bookingRepo, logger: logger}
}

// GetByID fetches one booking. A positive actorUserID restricts access to
// the owner and the participants; zero skips the check for admin callers.
func (s *Service) GetByID(ctx context.Context, id, actorUserID int64) (*domain.Booking, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if actorUserID > 0 && booking.UserID != actorUserID && !booking.HasParticipant(actorUserID) {
		s.logger.Warn("GetByID: user=%d denied access to booking id=%d", actorUserID, id)
		return nil, ErrPermissionDenied
	}

	return booking, nil
}

// GetByToken fetches one booking by its opaque link token. Possession of
// the token is the access check.
func (s *Service) GetByToken(ctx context.Context, token string) (*domain.Booking, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: token must not be empty", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByToken: failed to get booking: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	return booking, nil
}

// ListUserBookings lists a user's bookings, optionally filtered by status.
func (s *Service) ListUserBookings(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *status)
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID, status)
	if err != nil {
		s.logger.Error("ListUserBookings: failed for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}
	return bookings, nil
}

// ListAssetBookings lists an asset's bookings for the admin calendar.
func (s *Service) ListAssetBookings(ctx context.Context, filter domain.AssetBookingsFilter) ([]*domain.Booking, error) {
	if filter.AssetID <= 0 {
		return nil, fmt.Errorf("%w: assetID must be positive", ErrInvalidInput)
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *filter.Status)
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByAssetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListAssetBookings: failed for asset=%d: %v", filter.AssetID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}
	return bookings, nil
}

// AddParticipant attaches a user to an open booking and returns the event
// to dispatch.
func (s *Service) AddParticipant(ctx context.Context, bookingID, actorUserID, userID int64) (*domain.Event, error) {
	booking, err := s.participantTarget(ctx, bookingID, actorUserID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.AddParticipant(ctx, booking.ID, userID); err != nil {
		s.logger.Error("AddParticipant: failed for booking id=%d, user=%d: %v", booking.ID, userID, err)
		return nil, fmt.Errorf("%w: failed to add participant: %v", ErrInternal, err)
	}

	s.logger.Info("AddParticipant: user=%d attached to booking id=%d", userID, booking.ID)
	return &domain.Event{BookingID: booking.ID, Kind: domain.EventParticipantAdded, UserID: &userID}, nil
}

// RemoveParticipant detaches a user from an open booking and returns the
// event to dispatch.
func (s *Service) RemoveParticipant(ctx context.Context, bookingID, actorUserID, userID int64) (*domain.Event, error) {
	booking, err := s.participantTarget(ctx, bookingID, actorUserID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.RemoveParticipant(ctx, booking.ID, userID); err != nil {
		if errors.Is(err, bookingRepo.ErrNotParticipant) {
			return nil, ErrNotParticipant
		}
		s.logger.Error("RemoveParticipant: failed for booking id=%d, user=%d: %v", booking.ID, userID, err)
		return nil, fmt.Errorf("%w: failed to remove participant: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveParticipant: user=%d detached from booking id=%d", userID, booking.ID)
	return &domain.Event{BookingID: booking.ID, Kind: domain.EventParticipantRemoved, UserID: &userID}, nil
}

// participantTarget loads the booking and enforces the participant-change
// rules: the booking must be open, and only the owner (or an admin caller
// with actorUserID zero) may change the participant list, except that a
// participant may remove themselves.
func (s *Service) participantTarget(ctx context.Context, bookingID, actorUserID, userID int64) (*domain.Booking, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	booking, err := s.GetByID(ctx, bookingID, 0)
	if err != nil {
		return nil, err
	}
	if booking.Status.IsTerminal() {
		return nil, ErrBookingClosed
	}

	if actorUserID > 0 && booking.UserID != actorUserID && actorUserID != userID {
		s.logger.Warn("participantTarget: user=%d denied participant change on booking id=%d", actorUserID, bookingID)
		return nil, ErrPermissionDenied
	}

	return booking, nil
}
