package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avelis/ARB-BookingService/internal/api/handlers"
	"github.com/avelis/ARB-BookingService/internal/api/middleware"
	"github.com/avelis/ARB-BookingService/internal/domain"
	"github.com/avelis/ARB-BookingService/internal/service/bookings/models"
	updateStatus "github.com/avelis/ARB-BookingService/internal/usecase/update_booking_status"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgMissingUserID    = "missing user id"
	msgMissingToken     = "missing booking token"
	msgBookingNotFound  = "booking not found"
	msgForbidden        = "access denied"
	msgAlreadyClosed    = "booking is already rejected or canceled"
)

type Handler struct {
	useCase    UpdateBookingStatusUseCase
	dispatcher EventDispatcher
	logger     Logger
}

func NewHandler(useCase UpdateBookingStatusUseCase, dispatcher EventDispatcher, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
// Cancellation by the booking's owner.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	h.cancel(w, r, &updateStatus.Request{
		BookingID:   &bookingID,
		NewStatus:   domain.StatusCanceled,
		ActorUserID: userID,
	}, "DELETE /bookings/{id}")
}

// HandleByToken POST /api/v1/bookings/token/{token}/cancel
// Cancellation through the opaque link; possession of the token is the
// access check.
func (h *Handler) HandleByToken(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	token := vars["token"]
	if token == "" {
		h.logger.Warn("POST /bookings/token/{token}/cancel - Missing token")
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	h.cancel(w, r, &updateStatus.Request{
		Token:     &token,
		NewStatus: domain.StatusCanceled,
	}, "POST /bookings/token/{token}/cancel")
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request, req *updateStatus.Request, route string) {
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, updateStatus.ErrBookingNotFound):
			h.logger.Warn("%s - Booking not found", route)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateStatus.ErrPermissionDenied):
			h.logger.Warn("%s - Permission denied", route)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateStatus.ErrInvalidTransition):
			h.logger.Warn("%s - Already closed: %v", route, err)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyClosed)

		case errors.Is(err, updateStatus.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", route, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("%s - Failed to cancel booking: %v", route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.dispatcher.Dispatch(r.Context(), result.Events)

	h.logger.Info("%s - Booking canceled: booking_id=%d", route, result.Booking.ID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomain(result.Booking))
}
